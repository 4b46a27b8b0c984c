package services

import (
	"testing"

	"github.com/dtaccel/backend/models"
)

func TestComputeConsultantStats(t *testing.T) {
	tests := []struct {
		name            string
		managed         []models.Project
		teamMemberships int64
		expected        models.ConsultantStats
	}{
		{
			name:     "No projects at all",
			expected: models.ConsultantStats{},
		},
		{
			name: "Manager also on team counts twice",
			managed: []models.Project{
				{ID: "p1"},
				{ID: "p2"},
			},
			teamMemberships: 3,
			expected: models.ConsultantStats{
				ProjectsManaged:      2,
				ProjectsParticipated: 5,
			},
		},
		{
			name: "Satisfaction averages only rated projects",
			managed: []models.Project{
				{ID: "p1", SatisfactionScore: 4},
				{ID: "p2", SatisfactionScore: 0},
				{ID: "p3", SatisfactionScore: 5},
			},
			expected: models.ConsultantStats{
				ProjectsManaged:       3,
				ProjectsParticipated:  3,
				ClientSatisfactionAvg: 4.5,
			},
		},
		{
			name: "No rated projects keeps average at zero",
			managed: []models.Project{
				{ID: "p1", SatisfactionScore: 0},
			},
			expected: models.ConsultantStats{
				ProjectsManaged:      1,
				ProjectsParticipated: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeConsultantStats(tt.managed, tt.teamMemberships)
			if got != tt.expected {
				t.Errorf("ComputeConsultantStats() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}
