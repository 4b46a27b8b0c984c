package repository

import (
	"context"
	"log/slog"

	"github.com/dtaccel/backend/models"
	"gorm.io/gorm"
)

// Project operations
func (r *GORMRepository) CreateProject(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		slog.Error("Failed to create project", "error", err)
		return err
	}
	slog.Info("Project created", "project_id", project.ID, "client_id", project.ClientID)
	return nil
}

func (r *GORMRepository) GetProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		slog.Error("Failed to get projects", "error", err)
		return nil, err
	}
	return projects, nil
}

func (r *GORMRepository) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get project by ID", "error", err, "project_id", id)
		return nil, err
	}
	return &project, nil
}

// GetProjectWithDetails loads a project with its full breakdown.
func (r *GORMRepository) GetProjectWithDetails(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Phases", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence, created_at")
		}).
		Preload("Phases.Tasks").
		Preload("Milestones").
		Preload("Deliverables").
		Preload("Consultants").
		Preload("TeamMembers").
		First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get project with details", "error", err, "project_id", id)
		return nil, err
	}
	return &project, nil
}

func (r *GORMRepository) UpdateProject(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		slog.Error("Failed to update project", "error", err, "project_id", project.ID)
		return err
	}
	slog.Info("Project updated", "project_id", project.ID, "state", project.State)
	return nil
}

func (r *GORMRepository) DeleteProject(ctx context.Context, id string) error {
	var phaseIDs []string
	if err := r.db.WithContext(ctx).Model(&models.ProjectPhase{}).Where("project_id = ?", id).Pluck("id", &phaseIDs).Error; err != nil {
		slog.Error("Failed to collect project phases", "error", err, "project_id", id)
		return err
	}
	if len(phaseIDs) > 0 {
		if err := r.db.WithContext(ctx).Where("phase_id IN ?", phaseIDs).Delete(&models.ProjectTask{}).Error; err != nil {
			slog.Error("Failed to delete project tasks", "error", err, "project_id", id)
			return err
		}
	}
	for _, child := range []interface{}{&models.ProjectPhase{}, &models.ProjectMilestone{}, &models.ProjectDeliverable{}} {
		if err := r.db.WithContext(ctx).Where("project_id = ?", id).Delete(child).Error; err != nil {
			slog.Error("Failed to delete project children", "error", err, "project_id", id)
			return err
		}
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{}).Error; err != nil {
		slog.Error("Failed to delete project", "error", err, "project_id", id)
		return err
	}
	slog.Info("Project deleted", "project_id", id)
	return nil
}

// ReplaceProjectConsultants replaces the assigned-consultant set.
func (r *GORMRepository) ReplaceProjectConsultants(ctx context.Context, project *models.Project, consultants []models.Consultant) error {
	if err := r.db.WithContext(ctx).Model(project).Association("Consultants").Replace(consultants); err != nil {
		slog.Error("Failed to replace project consultants", "error", err, "project_id", project.ID)
		return err
	}
	return nil
}

// ReplaceProjectTeamMembers replaces the team-member set.
func (r *GORMRepository) ReplaceProjectTeamMembers(ctx context.Context, project *models.Project, members []models.Consultant) error {
	if err := r.db.WithContext(ctx).Model(project).Association("TeamMembers").Replace(members); err != nil {
		slog.Error("Failed to replace project team members", "error", err, "project_id", project.ID)
		return err
	}
	return nil
}

// Phase operations
func (r *GORMRepository) CreateProjectPhase(ctx context.Context, phase *models.ProjectPhase) error {
	if err := r.db.WithContext(ctx).Create(phase).Error; err != nil {
		slog.Error("Failed to create project phase", "error", err)
		return err
	}
	slog.Info("Project phase created", "phase_id", phase.ID, "project_id", phase.ProjectID, "name", phase.Name)
	return nil
}

func (r *GORMRepository) GetProjectPhases(ctx context.Context, projectID string) ([]models.ProjectPhase, error) {
	var phases []models.ProjectPhase
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sequence, created_at").
		Find(&phases).Error
	if err != nil {
		slog.Error("Failed to get project phases", "error", err, "project_id", projectID)
		return nil, err
	}
	return phases, nil
}

func (r *GORMRepository) GetProjectPhase(ctx context.Context, projectID, phaseID string) (*models.ProjectPhase, error) {
	var phase models.ProjectPhase
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", phaseID, projectID).
		First(&phase).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get project phase", "error", err, "phase_id", phaseID)
		return nil, err
	}
	return &phase, nil
}

func (r *GORMRepository) UpdateProjectPhase(ctx context.Context, phase *models.ProjectPhase) error {
	if err := r.db.WithContext(ctx).Save(phase).Error; err != nil {
		slog.Error("Failed to update project phase", "error", err, "phase_id", phase.ID)
		return err
	}
	return nil
}

func (r *GORMRepository) DeleteProjectPhase(ctx context.Context, phaseID string) error {
	if err := r.db.WithContext(ctx).Where("phase_id = ?", phaseID).Delete(&models.ProjectTask{}).Error; err != nil {
		slog.Error("Failed to delete phase tasks", "error", err, "phase_id", phaseID)
		return err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", phaseID).Delete(&models.ProjectPhase{}).Error; err != nil {
		slog.Error("Failed to delete project phase", "error", err, "phase_id", phaseID)
		return err
	}
	return nil
}

// Milestone operations
func (r *GORMRepository) CreateProjectMilestone(ctx context.Context, milestone *models.ProjectMilestone) error {
	if err := r.db.WithContext(ctx).Create(milestone).Error; err != nil {
		slog.Error("Failed to create project milestone", "error", err)
		return err
	}
	return nil
}

func (r *GORMRepository) GetProjectMilestone(ctx context.Context, projectID, milestoneID string) (*models.ProjectMilestone, error) {
	var milestone models.ProjectMilestone
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", milestoneID, projectID).
		First(&milestone).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get project milestone", "error", err, "milestone_id", milestoneID)
		return nil, err
	}
	return &milestone, nil
}

func (r *GORMRepository) UpdateProjectMilestone(ctx context.Context, milestone *models.ProjectMilestone) error {
	if err := r.db.WithContext(ctx).Save(milestone).Error; err != nil {
		slog.Error("Failed to update project milestone", "error", err, "milestone_id", milestone.ID)
		return err
	}
	return nil
}

func (r *GORMRepository) DeleteProjectMilestone(ctx context.Context, milestoneID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", milestoneID).Delete(&models.ProjectMilestone{}).Error; err != nil {
		slog.Error("Failed to delete project milestone", "error", err, "milestone_id", milestoneID)
		return err
	}
	return nil
}

// Deliverable operations
func (r *GORMRepository) CreateProjectDeliverable(ctx context.Context, deliverable *models.ProjectDeliverable) error {
	if err := r.db.WithContext(ctx).Create(deliverable).Error; err != nil {
		slog.Error("Failed to create project deliverable", "error", err)
		return err
	}
	return nil
}

func (r *GORMRepository) GetProjectDeliverable(ctx context.Context, projectID, deliverableID string) (*models.ProjectDeliverable, error) {
	var deliverable models.ProjectDeliverable
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", deliverableID, projectID).
		First(&deliverable).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get project deliverable", "error", err, "deliverable_id", deliverableID)
		return nil, err
	}
	return &deliverable, nil
}

func (r *GORMRepository) UpdateProjectDeliverable(ctx context.Context, deliverable *models.ProjectDeliverable) error {
	if err := r.db.WithContext(ctx).Save(deliverable).Error; err != nil {
		slog.Error("Failed to update project deliverable", "error", err, "deliverable_id", deliverable.ID)
		return err
	}
	return nil
}

func (r *GORMRepository) DeleteProjectDeliverable(ctx context.Context, deliverableID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", deliverableID).Delete(&models.ProjectDeliverable{}).Error; err != nil {
		slog.Error("Failed to delete project deliverable", "error", err, "deliverable_id", deliverableID)
		return err
	}
	return nil
}

// Task operations
func (r *GORMRepository) CreateProjectTask(ctx context.Context, task *models.ProjectTask) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		slog.Error("Failed to create project task", "error", err)
		return err
	}
	return nil
}

func (r *GORMRepository) GetProjectTask(ctx context.Context, phaseID, taskID string) (*models.ProjectTask, error) {
	var task models.ProjectTask
	err := r.db.WithContext(ctx).
		Where("id = ? AND phase_id = ?", taskID, phaseID).
		First(&task).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get project task", "error", err, "task_id", taskID)
		return nil, err
	}
	return &task, nil
}

func (r *GORMRepository) UpdateProjectTask(ctx context.Context, task *models.ProjectTask) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		slog.Error("Failed to update project task", "error", err, "task_id", task.ID)
		return err
	}
	return nil
}

func (r *GORMRepository) DeleteProjectTask(ctx context.Context, taskID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).Delete(&models.ProjectTask{}).Error; err != nil {
		slog.Error("Failed to delete project task", "error", err, "task_id", taskID)
		return err
	}
	return nil
}

// Consultant workload queries
func (r *GORMRepository) GetManagedProjects(ctx context.Context, consultantID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("project_manager_id = ?", consultantID).
		Find(&projects).Error
	if err != nil {
		slog.Error("Failed to get managed projects", "error", err, "consultant_id", consultantID)
		return nil, err
	}
	return projects, nil
}

func (r *GORMRepository) CountTeamMemberships(ctx context.Context, consultantID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("project_team_members").
		Where("consultant_id = ?", consultantID).
		Count(&count).Error
	if err != nil {
		slog.Error("Failed to count team memberships", "error", err, "consultant_id", consultantID)
		return 0, err
	}
	return count, nil
}
