package services

import (
	"context"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
)

// ComputeConsultantStats derives the workload metrics from the consultant's
// managed projects and team-membership count. A manager who also appears in
// a project's team list is counted in both totals; the business reads
// "participated" that way on purpose. Satisfaction averages only managed
// projects that have actually been rated (score above 0).
func ComputeConsultantStats(managed []models.Project, teamMemberships int64) models.ConsultantStats {
	stats := models.ConsultantStats{
		ProjectsManaged:      int64(len(managed)),
		ProjectsParticipated: int64(len(managed)) + teamMemberships,
	}

	var sum float64
	var rated int
	for i := range managed {
		if managed[i].SatisfactionScore > 0 {
			sum += managed[i].SatisfactionScore
			rated++
		}
	}
	if rated > 0 {
		stats.ClientSatisfactionAvg = sum / float64(rated)
	}
	return stats
}

// ConsultantService answers workload/satisfaction queries for consultants.
// The stats are computed on read; they are queries over small sets and
// never stored.
type ConsultantService struct {
	repo *repository.GORMRepository
}

func NewConsultantService(repo *repository.GORMRepository) *ConsultantService {
	return &ConsultantService{repo: repo}
}

// Stats loads the inputs and derives the consultant's metrics.
func (s *ConsultantService) Stats(ctx context.Context, consultantID string) (*models.ConsultantStats, error) {
	managed, err := s.repo.GetManagedProjects(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	teamMemberships, err := s.repo.CountTeamMemberships(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	stats := ComputeConsultantStats(managed, teamMemberships)
	return &stats, nil
}
