package repository

import (
	"context"
	"log/slog"

	"github.com/dtaccel/backend/models"
	"gorm.io/gorm"
)

// Assessment operations
func (r *GORMRepository) CreateAssessment(ctx context.Context, assessment *models.Assessment) error {
	if err := r.db.WithContext(ctx).Create(assessment).Error; err != nil {
		slog.Error("Failed to create assessment", "error", err)
		return err
	}
	slog.Info("Assessment created", "assessment_id", assessment.ID, "client_id", assessment.ClientID)
	return nil
}

func (r *GORMRepository) GetAssessments(ctx context.Context) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.WithContext(ctx).
		Order("assessment_date DESC, id DESC").
		Find(&assessments).Error
	if err != nil {
		slog.Error("Failed to get assessments", "error", err)
		return nil, err
	}
	return assessments, nil
}

func (r *GORMRepository) GetAssessmentByID(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&assessment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get assessment by ID", "error", err, "assessment_id", id)
		return nil, err
	}
	return &assessment, nil
}

// GetAssessmentWithLines loads an assessment together with its ordered lines.
func (r *GORMRepository) GetAssessmentWithLines(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment models.Assessment
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence, created_at")
		}).
		First(&assessment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get assessment with lines", "error", err, "assessment_id", id)
		return nil, err
	}
	return &assessment, nil
}

func (r *GORMRepository) UpdateAssessment(ctx context.Context, assessment *models.Assessment) error {
	if err := r.db.WithContext(ctx).Save(assessment).Error; err != nil {
		slog.Error("Failed to update assessment", "error", err, "assessment_id", assessment.ID)
		return err
	}
	slog.Info("Assessment updated", "assessment_id", assessment.ID, "state", assessment.State)
	return nil
}

func (r *GORMRepository) DeleteAssessment(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("assessment_id = ?", id).Delete(&models.AssessmentLine{}).Error; err != nil {
		slog.Error("Failed to delete assessment lines", "error", err, "assessment_id", id)
		return err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Assessment{}).Error; err != nil {
		slog.Error("Failed to delete assessment", "error", err, "assessment_id", id)
		return err
	}
	slog.Info("Assessment deleted", "assessment_id", id)
	return nil
}

// Assessment line operations
func (r *GORMRepository) CreateAssessmentLine(ctx context.Context, line *models.AssessmentLine) error {
	if err := r.db.WithContext(ctx).Create(line).Error; err != nil {
		slog.Error("Failed to create assessment line", "error", err)
		return err
	}
	return nil
}

func (r *GORMRepository) GetAssessmentLine(ctx context.Context, assessmentID, lineID string) (*models.AssessmentLine, error) {
	var line models.AssessmentLine
	err := r.db.WithContext(ctx).
		Where("id = ? AND assessment_id = ?", lineID, assessmentID).
		First(&line).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get assessment line", "error", err, "line_id", lineID)
		return nil, err
	}
	return &line, nil
}

func (r *GORMRepository) GetAssessmentLines(ctx context.Context, assessmentID string) ([]models.AssessmentLine, error) {
	var lines []models.AssessmentLine
	err := r.db.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("sequence, created_at").
		Find(&lines).Error
	if err != nil {
		slog.Error("Failed to get assessment lines", "error", err, "assessment_id", assessmentID)
		return nil, err
	}
	return lines, nil
}

func (r *GORMRepository) UpdateAssessmentLine(ctx context.Context, line *models.AssessmentLine) error {
	if err := r.db.WithContext(ctx).Save(line).Error; err != nil {
		slog.Error("Failed to update assessment line", "error", err, "line_id", line.ID)
		return err
	}
	return nil
}

// Template operations
func (r *GORMRepository) CreateAssessmentTemplate(ctx context.Context, template *models.AssessmentTemplate) error {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		slog.Error("Failed to create assessment template", "error", err)
		return err
	}
	slog.Info("Assessment template created", "template_id", template.ID, "category", template.Category)
	return nil
}

func (r *GORMRepository) GetAssessmentTemplates(ctx context.Context, activeOnly bool) ([]models.AssessmentTemplate, error) {
	var templates []models.AssessmentTemplate
	query := r.db.WithContext(ctx).Order("sequence, created_at")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&templates).Error; err != nil {
		slog.Error("Failed to get assessment templates", "error", err)
		return nil, err
	}
	return templates, nil
}

func (r *GORMRepository) GetAssessmentTemplateByID(ctx context.Context, id string) (*models.AssessmentTemplate, error) {
	var template models.AssessmentTemplate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get assessment template", "error", err, "template_id", id)
		return nil, err
	}
	return &template, nil
}

func (r *GORMRepository) UpdateAssessmentTemplate(ctx context.Context, template *models.AssessmentTemplate) error {
	if err := r.db.WithContext(ctx).Save(template).Error; err != nil {
		slog.Error("Failed to update assessment template", "error", err, "template_id", template.ID)
		return err
	}
	return nil
}

func (r *GORMRepository) DeleteAssessmentTemplate(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AssessmentTemplate{}).Error; err != nil {
		slog.Error("Failed to delete assessment template", "error", err, "template_id", id)
		return err
	}
	return nil
}

func (r *GORMRepository) CountAssessmentTemplates(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AssessmentTemplate{}).Count(&count).Error; err != nil {
		slog.Error("Failed to count assessment templates", "error", err)
		return 0, err
	}
	return count, nil
}
