package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
	ws "github.com/dtaccel/backend/websocket"
)

// AssessmentService owns the assessment lifecycle: question generation,
// answer submission, the draft -> in_progress -> review -> completed state
// machine, and the rollups the mutations invalidate.
type AssessmentService struct {
	repo *repository.GORMRepository
	hub  *ws.Hub
}

func NewAssessmentService(repo *repository.GORMRepository, hub *ws.Hub) *AssessmentService {
	return &AssessmentService{repo: repo, hub: hub}
}

// CheckReviewReady is the submit-for-review guard: the assessment must be
// fully answered before it can move to review.
func CheckReviewReady(progress float64) error {
	if progress < 100 {
		return NewValidationError("Please complete all assessment questions before submitting.")
	}
	return nil
}

// Create validates and persists a new draft assessment, then refreshes the
// owning client's snapshots.
func (s *AssessmentService) Create(ctx context.Context, assessment *models.Assessment) error {
	if assessment.Name == "" {
		return NewValidationError("Assessment name is required")
	}
	if assessment.ClientID == "" {
		return NewValidationError("Assessment client is required")
	}
	if assessment.ConsultantID == "" {
		return NewValidationError("Assessment lead consultant is required")
	}
	if assessment.AssessmentDate.IsZero() {
		assessment.AssessmentDate = truncateToDay(time.Now())
	}
	assessment.State = models.AssessmentDraft

	return s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		if err := tx.CreateAssessment(ctx, assessment); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, assessment.ClientID)
	})
}

// Start moves a draft assessment to in_progress and instantiates one line
// per active template question, copying category, text and weight.
func (s *AssessmentService) Start(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment *models.Assessment
	err := s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		var err error
		assessment, err = tx.GetAssessmentByID(ctx, id)
		if err != nil {
			return err
		}
		if assessment == nil {
			return NewValidationError("Assessment not found")
		}
		if assessment.State != models.AssessmentDraft {
			return NewValidationError("Only draft assessments can be started")
		}

		templates, err := tx.GetAssessmentTemplates(ctx, true)
		if err != nil {
			return err
		}
		for _, template := range templates {
			templateID := template.ID
			line := &models.AssessmentLine{
				AssessmentID: assessment.ID,
				TemplateID:   &templateID,
				Category:     template.Category,
				QuestionText: template.QuestionText,
				Weight:       template.Weight,
				Sequence:     template.Sequence,
			}
			if err := tx.CreateAssessmentLine(ctx, line); err != nil {
				return err
			}
		}

		assessment.State = models.AssessmentInProgress
		if err := refreshAssessmentRollups(ctx, tx, assessment); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, assessment.ClientID)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(s.hub, EventAssessmentStarted, assessment)
	slog.Info("Assessment started", "assessment_id", assessment.ID, "client_id", assessment.ClientID)
	return assessment, nil
}

// AnswerLine records an answer (and optional notes) on one question line
// and recomputes the line score, the assessment rollups and the client
// rollups in a single transaction.
func (s *AssessmentService) AnswerLine(ctx context.Context, assessmentID, lineID string, answer int, notes string) (*models.Assessment, error) {
	if answer < 1 || answer > 5 {
		return nil, NewValidationError("Answer must be between 1 and 5")
	}

	var assessment *models.Assessment
	err := s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		var err error
		assessment, err = tx.GetAssessmentByID(ctx, assessmentID)
		if err != nil {
			return err
		}
		if assessment == nil {
			return NewValidationError("Assessment not found")
		}
		if assessment.State != models.AssessmentInProgress && assessment.State != models.AssessmentReview {
			return NewValidationError("Answers can only be submitted on an assessment in progress")
		}

		line, err := tx.GetAssessmentLine(ctx, assessmentID, lineID)
		if err != nil {
			return err
		}
		if line == nil {
			return NewValidationError("Assessment question not found")
		}

		line.Answer = answer
		if notes != "" {
			line.Notes = notes
		}
		line.Score = LineScore(line)
		if err := tx.UpdateAssessmentLine(ctx, line); err != nil {
			return err
		}

		if err := refreshAssessmentRollups(ctx, tx, assessment); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, assessment.ClientID)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(s.hub, EventAssessmentScored, assessment)
	return assessment, nil
}

// SubmitReview moves the assessment to review; fails unless every question
// is answered.
func (s *AssessmentService) SubmitReview(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment *models.Assessment
	err := s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		var err error
		assessment, err = tx.GetAssessmentByID(ctx, id)
		if err != nil {
			return err
		}
		if assessment == nil {
			return NewValidationError("Assessment not found")
		}
		if err := CheckReviewReady(assessment.Progress); err != nil {
			return err
		}

		assessment.State = models.AssessmentReview
		if err := tx.UpdateAssessment(ctx, assessment); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, assessment.ClientID)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Assessment submitted for review", "assessment_id", assessment.ID)
	return assessment, nil
}

// Complete finalizes the assessment: sets the completion date and derives
// the recommendations text from the category scores.
func (s *AssessmentService) Complete(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment *models.Assessment
	err := s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		var err error
		assessment, err = tx.GetAssessmentByID(ctx, id)
		if err != nil {
			return err
		}
		if assessment == nil {
			return NewValidationError("Assessment not found")
		}

		now := truncateToDay(time.Now())
		assessment.State = models.AssessmentCompleted
		assessment.CompletionDate = &now
		assessment.Recommendations = GenerateRecommendations(CategoryScores{
			Technology: assessment.TechnologyScore,
			Process:    assessment.ProcessScore,
			People:     assessment.PeopleScore,
			Culture:    assessment.CultureScore,
		})
		if err := tx.UpdateAssessment(ctx, assessment); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, assessment.ClientID)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(s.hub, EventAssessmentCompleted, assessment)
	slog.Info("Assessment completed", "assessment_id", assessment.ID, "total_score", assessment.TotalScore)
	return assessment, nil
}

// Cancel is a direct status set with no side effects beyond the client
// snapshot refresh.
func (s *AssessmentService) Cancel(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment *models.Assessment
	err := s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		var err error
		assessment, err = tx.GetAssessmentByID(ctx, id)
		if err != nil {
			return err
		}
		if assessment == nil {
			return NewValidationError("Assessment not found")
		}

		assessment.State = models.AssessmentCancelled
		if err := tx.UpdateAssessment(ctx, assessment); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, assessment.ClientID)
	})
	if err != nil {
		return nil, err
	}
	return assessment, nil
}

// Update applies editable header fields and refreshes the rollups that
// depend on them (the assessment date feeds the client's latest snapshot).
func (s *AssessmentService) Update(ctx context.Context, assessment *models.Assessment) error {
	if assessment.Name == "" {
		return NewValidationError("Assessment name is required")
	}
	return s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		if err := tx.UpdateAssessment(ctx, assessment); err != nil {
			return err
		}
		return refreshClientRollups(ctx, tx, assessment.ClientID)
	})
}

// Delete removes the assessment and its lines, then refreshes the client.
func (s *AssessmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		assessment, err := tx.GetAssessmentByID(ctx, id)
		if err != nil {
			return err
		}
		if assessment == nil {
			return nil
		}
		if err := tx.DeleteAssessment(ctx, id); err != nil {
			return fmt.Errorf("failed to delete assessment: %w", err)
		}
		return refreshClientRollups(ctx, tx, assessment.ClientID)
	})
}

// truncateToDay drops the time-of-day component; assessment and completion
// dates are calendar dates.
func truncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
