package services

import (
	"context"
	"fmt"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
)

// Rollup refresh helpers. Each runs on the repository handle of the
// surrounding transaction so the recomputed values commit atomically with
// the mutation that invalidated them.

// refreshAssessmentRollups recomputes the stored category scores, total
// score and progress of an assessment from its current lines and saves it.
func refreshAssessmentRollups(ctx context.Context, tx *repository.GORMRepository, assessment *models.Assessment) error {
	lines, err := tx.GetAssessmentLines(ctx, assessment.ID)
	if err != nil {
		return fmt.Errorf("failed to load assessment lines: %w", err)
	}

	scores := ComputeCategoryScores(lines)
	assessment.TechnologyScore = scores.Technology
	assessment.ProcessScore = scores.Process
	assessment.PeopleScore = scores.People
	assessment.CultureScore = scores.Culture
	assessment.TotalScore = ComputeTotalScore(scores)
	assessment.Progress = ComputeProgress(lines)

	if err := tx.UpdateAssessment(ctx, assessment); err != nil {
		return fmt.Errorf("failed to save assessment rollups: %w", err)
	}
	return nil
}

// refreshClientRollups recomputes a client's derived maturity fields and
// the latest assessment/project snapshots and saves the client.
func refreshClientRollups(ctx context.Context, tx *repository.GORMRepository, clientID string) error {
	client, err := tx.GetClientByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to load client: %w", err)
	}
	if client == nil {
		// Client gone (cascaded delete in the same transaction); nothing to refresh.
		return nil
	}

	assessments, err := tx.GetClientAssessments(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to load client assessments: %w", err)
	}
	projects, err := tx.GetClientProjects(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to load client projects: %w", err)
	}

	if latest := LatestAssessment(assessments); latest != nil {
		client.DigitalMaturityScore = latest.TotalScore
		date := latest.AssessmentDate
		client.LatestAssessmentDate = &date
		client.LatestAssessmentState = latest.State
		client.LatestAssessmentScore = latest.TotalScore
	} else {
		client.DigitalMaturityScore = 0
		client.LatestAssessmentDate = nil
		client.LatestAssessmentState = ""
		client.LatestAssessmentScore = 0
	}

	if client.DigitalMaturityScore < 0 || client.DigitalMaturityScore > 100 {
		return NewValidationError("Digital maturity score must be between 0 and 100")
	}
	client.MaturityLevel = MaturityLevel(client.DigitalMaturityScore)

	if latest := LatestProject(projects); latest != nil {
		client.LatestProjectStartDate = latest.StartDate
		client.LatestProjectTargetDate = latest.TargetCompletionDate
		client.LatestProjectProgress = latest.Progress
		client.LatestProjectState = latest.State
	} else {
		client.LatestProjectStartDate = nil
		client.LatestProjectTargetDate = nil
		client.LatestProjectProgress = 0
		client.LatestProjectState = ""
	}

	if err := tx.UpdateClient(ctx, client); err != nil {
		return fmt.Errorf("failed to save client rollups: %w", err)
	}
	return nil
}

// refreshProjectProgress recomputes a project's stored progress from its
// phases and saves the project.
func refreshProjectProgress(ctx context.Context, tx *repository.GORMRepository, project *models.Project) error {
	phases, err := tx.GetProjectPhases(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("failed to load project phases: %w", err)
	}
	project.Progress = ComputeProjectProgress(phases)
	if err := tx.UpdateProject(ctx, project); err != nil {
		return fmt.Errorf("failed to save project progress: %w", err)
	}
	return nil
}
