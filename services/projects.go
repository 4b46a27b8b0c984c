package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
	ws "github.com/dtaccel/backend/websocket"
)

// StandardPhase is one entry of the fixed phase plan seeded into projects.
type StandardPhase struct {
	Name   string
	Weight int
}

// StandardPhases returns the fixed six-phase plan; weights sum to 100.
func StandardPhases() []StandardPhase {
	return []StandardPhase{
		{Name: "Initiation", Weight: 10},
		{Name: "Planning", Weight: 20},
		{Name: "Design", Weight: 15},
		{Name: "Development", Weight: 35},
		{Name: "Testing", Weight: 15},
		{Name: "Deployment", Weight: 5},
	}
}

// ValidateProjectDates enforces the date ordering invariant. Equal dates
// are allowed.
func ValidateProjectDates(start, target *time.Time) error {
	if start != nil && target != nil && target.Before(*start) {
		return NewValidationError("Target completion date cannot be earlier than start date.")
	}
	return nil
}

// ProjectService owns the project lifecycle, the phase/milestone/
// deliverable/task breakdown, and the progress rollups.
type ProjectService struct {
	repo *repository.GORMRepository
	hub  *ws.Hub
}

func NewProjectService(repo *repository.GORMRepository, hub *ws.Hub) *ProjectService {
	return &ProjectService{repo: repo, hub: hub}
}

func (s *ProjectService) Create(ctx context.Context, project *models.Project) error {
	if project.Name == "" {
		return NewValidationError("Project name is required")
	}
	if project.ClientID == "" {
		return NewValidationError("Project client is required")
	}
	if err := ValidateProjectDates(project.StartDate, project.TargetCompletionDate); err != nil {
		return err
	}
	project.State = models.ProjectDraft

	return s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		if err := tx.CreateProject(ctx, project); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, project.ClientID)
	})
}

func (s *ProjectService) Update(ctx context.Context, project *models.Project) error {
	if project.Name == "" {
		return NewValidationError("Project name is required")
	}
	if err := ValidateProjectDates(project.StartDate, project.TargetCompletionDate); err != nil {
		return err
	}
	return s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		if err := tx.UpdateProject(ctx, project); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, project.ClientID)
	})
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		project, err := tx.GetProjectByID(ctx, id)
		if err != nil {
			return err
		}
		if project == nil {
			return nil
		}
		if err := tx.DeleteProject(ctx, id); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, project.ClientID)
	})
}

// setState applies one of the unconditional project transitions.
func (s *ProjectService) setState(ctx context.Context, id, state string) (*models.Project, error) {
	var project *models.Project
	err := s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		var err error
		project, err = tx.GetProjectByID(ctx, id)
		if err != nil {
			return err
		}
		if project == nil {
			return NewValidationError("Project not found")
		}

		project.State = state
		if state == models.ProjectCompleted {
			now := truncateToDay(time.Now())
			project.ActualCompletionDate = &now
		}
		if err := tx.UpdateProject(ctx, project); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, project.ClientID)
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Start(ctx context.Context, id string) (*models.Project, error) {
	return s.setState(ctx, id, models.ProjectInProgress)
}

func (s *ProjectService) Complete(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.setState(ctx, id, models.ProjectCompleted)
	if err != nil {
		return nil, err
	}
	publishEvent(s.hub, EventProjectCompleted, project)
	slog.Info("Project completed", "project_id", project.ID, "progress", project.Progress)
	return project, nil
}

func (s *ProjectService) Hold(ctx context.Context, id string) (*models.Project, error) {
	return s.setState(ctx, id, models.ProjectOnHold)
}

func (s *ProjectService) Cancel(ctx context.Context, id string) (*models.Project, error) {
	return s.setState(ctx, id, models.ProjectCancelled)
}

func (s *ProjectService) ResetToDraft(ctx context.Context, id string) (*models.Project, error) {
	return s.setState(ctx, id, models.ProjectDraft)
}

// GenerateStandardPhases appends the fixed six-phase plan after any phases
// the project already has.
func (s *ProjectService) GenerateStandardPhases(ctx context.Context, projectID string) ([]models.ProjectPhase, error) {
	var created []models.ProjectPhase
	err := s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		project, err := tx.GetProjectByID(ctx, projectID)
		if err != nil {
			return err
		}
		if project == nil {
			return NewValidationError("Project not found")
		}

		existing, err := tx.GetProjectPhases(ctx, projectID)
		if err != nil {
			return err
		}

		for i, std := range StandardPhases() {
			phase := models.ProjectPhase{
				ProjectID: projectID,
				Name:      std.Name,
				Weight:    std.Weight,
				Sequence:  len(existing) + i + 1,
			}
			if err := tx.CreateProjectPhase(ctx, &phase); err != nil {
				return err
			}
			created = append(created, phase)
		}

		if err := refreshProjectProgress(ctx, tx, project); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, project.ClientID)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Standard phases generated", "project_id", projectID, "count", len(created))
	return created, nil
}

// CreatePhase adds a phase and recomputes the project progress rollup.
func (s *ProjectService) CreatePhase(ctx context.Context, phase *models.ProjectPhase) error {
	if phase.Name == "" {
		return NewValidationError("Phase name is required")
	}
	return s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		project, err := tx.GetProjectByID(ctx, phase.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return NewValidationError("Project not found")
		}
		if err := tx.CreateProjectPhase(ctx, phase); err != nil {
			return err
		}
		if err := refreshProjectProgress(ctx, tx, project); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, project.ClientID)
	})
}

// UpdatePhase saves a phase and recomputes the progress chain up to the
// client. Phase progress is a direct input, not derived from tasks.
func (s *ProjectService) UpdatePhase(ctx context.Context, phase *models.ProjectPhase) (*models.Project, error) {
	if phase.Progress < 0 || phase.Progress > 100 {
		return nil, NewValidationError("Phase progress must be between 0 and 100")
	}

	var project *models.Project
	err := s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		var err error
		project, err = tx.GetProjectByID(ctx, phase.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return NewValidationError("Project not found")
		}
		if err := tx.UpdateProjectPhase(ctx, phase); err != nil {
			return err
		}
		if err := refreshProjectProgress(ctx, tx, project); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, project.ClientID)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(s.hub, EventProjectProgress, project)
	return project, nil
}

// DeletePhase removes a phase (and its tasks) and recomputes the rollups.
func (s *ProjectService) DeletePhase(ctx context.Context, projectID, phaseID string) error {
	return s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		project, err := tx.GetProjectByID(ctx, projectID)
		if err != nil {
			return err
		}
		if project == nil {
			return NewValidationError("Project not found")
		}
		phase, err := tx.GetProjectPhase(ctx, projectID, phaseID)
		if err != nil {
			return err
		}
		if phase == nil {
			return NewValidationError("Phase not found")
		}
		if err := tx.DeleteProjectPhase(ctx, phaseID); err != nil {
			return err
		}
		if err := refreshProjectProgress(ctx, tx, project); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, project.ClientID)
	})
}
