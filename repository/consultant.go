package repository

import (
	"context"
	"log/slog"

	"github.com/dtaccel/backend/models"
	"gorm.io/gorm"
)

// Consultant operations
func (r *GORMRepository) CreateConsultant(ctx context.Context, consultant *models.Consultant) error {
	if err := r.db.WithContext(ctx).Create(consultant).Error; err != nil {
		slog.Error("Failed to create consultant", "error", err)
		return err
	}
	slog.Info("Consultant created", "consultant_id", consultant.ID, "name", consultant.Name)
	return nil
}

func (r *GORMRepository) GetConsultants(ctx context.Context, activeOnly bool) ([]models.Consultant, error) {
	var consultants []models.Consultant
	query := r.db.WithContext(ctx).Preload("Skills").Order("name")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&consultants).Error; err != nil {
		slog.Error("Failed to get consultants", "error", err)
		return nil, err
	}
	return consultants, nil
}

func (r *GORMRepository) GetConsultantByID(ctx context.Context, id string) (*models.Consultant, error) {
	var consultant models.Consultant
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Skills").
		First(&consultant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get consultant by ID", "error", err, "consultant_id", id)
		return nil, err
	}
	return &consultant, nil
}

func (r *GORMRepository) UpdateConsultant(ctx context.Context, consultant *models.Consultant) error {
	if err := r.db.WithContext(ctx).Save(consultant).Error; err != nil {
		slog.Error("Failed to update consultant", "error", err, "consultant_id", consultant.ID)
		return err
	}
	slog.Info("Consultant updated", "consultant_id", consultant.ID, "name", consultant.Name)
	return nil
}

func (r *GORMRepository) DeleteConsultant(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Consultant{}).Error; err != nil {
		slog.Error("Failed to delete consultant", "error", err, "consultant_id", id)
		return err
	}
	slog.Info("Consultant deleted", "consultant_id", id)
	return nil
}

// ReplaceConsultantSkills replaces the skill set of a consultant.
func (r *GORMRepository) ReplaceConsultantSkills(ctx context.Context, consultant *models.Consultant, skills []models.Skill) error {
	if err := r.db.WithContext(ctx).Model(consultant).Association("Skills").Replace(skills); err != nil {
		slog.Error("Failed to replace consultant skills", "error", err, "consultant_id", consultant.ID)
		return err
	}
	return nil
}

// Skill operations
func (r *GORMRepository) CreateSkill(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		slog.Error("Failed to create skill", "error", err)
		return err
	}
	return nil
}

func (r *GORMRepository) GetSkills(ctx context.Context, activeOnly bool) ([]models.Skill, error) {
	var skills []models.Skill
	query := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&skills).Error; err != nil {
		slog.Error("Failed to get skills", "error", err)
		return nil, err
	}
	return skills, nil
}

func (r *GORMRepository) GetSkillByID(ctx context.Context, id string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&skill).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get skill by ID", "error", err, "skill_id", id)
		return nil, err
	}
	return &skill, nil
}

func (r *GORMRepository) GetSkillsByIDs(ctx context.Context, ids []string) ([]models.Skill, error) {
	var skills []models.Skill
	if len(ids) == 0 {
		return skills, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&skills).Error; err != nil {
		slog.Error("Failed to get skills by IDs", "error", err)
		return nil, err
	}
	return skills, nil
}

func (r *GORMRepository) GetConsultantsByIDs(ctx context.Context, ids []string) ([]models.Consultant, error) {
	var consultants []models.Consultant
	if len(ids) == 0 {
		return consultants, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&consultants).Error; err != nil {
		slog.Error("Failed to get consultants by IDs", "error", err)
		return nil, err
	}
	return consultants, nil
}

func (r *GORMRepository) UpdateSkill(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Save(skill).Error; err != nil {
		slog.Error("Failed to update skill", "error", err, "skill_id", skill.ID)
		return err
	}
	return nil
}

func (r *GORMRepository) DeleteSkill(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Skill{}).Error; err != nil {
		slog.Error("Failed to delete skill", "error", err, "skill_id", id)
		return err
	}
	return nil
}
