package services

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/dtaccel/backend/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLineScore(t *testing.T) {
	tests := []struct {
		name     string
		answer   int
		weight   float64
		expected float64
	}{
		{name: "Unanswered line scores zero", answer: 0, weight: 2.0, expected: 0},
		{name: "Answer times weight", answer: 4, weight: 1.5, expected: 6},
		{name: "Default weight", answer: 3, weight: 1.0, expected: 3},
		{name: "Maximum answer with heavy weight", answer: 5, weight: 2.0, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := &models.AssessmentLine{Answer: tt.answer, Weight: tt.weight}
			if got := LineScore(line); !almostEqual(got, tt.expected) {
				t.Errorf("LineScore() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestComputeCategoryScores(t *testing.T) {
	lines := []models.AssessmentLine{
		{Category: models.CategoryTechnology, Answer: 5, Weight: 1.0},
		{Category: models.CategoryTechnology, Answer: 5, Weight: 1.0},
		{Category: models.CategoryPeople, Answer: 3, Weight: 1.0},
		{Category: models.CategoryPeople, Answer: 0, Weight: 1.0},
	}

	scores := ComputeCategoryScores(lines)

	if !almostEqual(scores.Technology, 50) {
		t.Errorf("Technology = %v, expected 50", scores.Technology)
	}
	// (3 + 0) / 2 * 10: the unanswered line drags the mean down
	if !almostEqual(scores.People, 15) {
		t.Errorf("People = %v, expected 15", scores.People)
	}
	if scores.Process != 0 || scores.Culture != 0 {
		t.Errorf("Empty categories must score 0, got process=%v culture=%v", scores.Process, scores.Culture)
	}
}

func TestComputeCategoryScoresWeighted(t *testing.T) {
	lines := []models.AssessmentLine{
		{Category: models.CategoryProcess, Answer: 4, Weight: 2.0},
		{Category: models.CategoryProcess, Answer: 2, Weight: 1.0},
	}

	scores := ComputeCategoryScores(lines)

	// (8 + 2) / 2 * 10 = 50
	if !almostEqual(scores.Process, 50) {
		t.Errorf("Process = %v, expected 50", scores.Process)
	}
}

func TestComputeCategoryScoresEmpty(t *testing.T) {
	scores := ComputeCategoryScores(nil)
	for _, category := range models.AssessmentCategories {
		if scores.ByCategory(category) != 0 {
			t.Errorf("Category %s = %v, expected 0 for no lines", category, scores.ByCategory(category))
		}
	}
}

func TestComputeTotalScore(t *testing.T) {
	tests := []struct {
		name     string
		scores   CategoryScores
		expected float64
	}{
		{
			name:     "Single scored category dominates",
			scores:   CategoryScores{Technology: 80},
			expected: 80,
		},
		{
			name:     "Zero categories excluded from the mean",
			scores:   CategoryScores{Technology: 100, People: 30},
			expected: 65,
		},
		{
			name:     "All categories scored",
			scores:   CategoryScores{Technology: 40, Process: 60, People: 20, Culture: 80},
			expected: 50,
		},
		{
			name:     "Everything zero",
			scores:   CategoryScores{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTotalScore(tt.scores); !almostEqual(got, tt.expected) {
				t.Errorf("ComputeTotalScore() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name     string
		answers  []int
		expected float64
	}{
		{name: "No lines", answers: nil, expected: 0},
		{name: "Nothing answered", answers: []int{0, 0, 0}, expected: 0},
		{name: "Half answered", answers: []int{3, 0, 5, 0}, expected: 50},
		{name: "Fully answered", answers: []int{1, 2, 3}, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := make([]models.AssessmentLine, len(tt.answers))
			for i, a := range tt.answers {
				lines[i] = models.AssessmentLine{Answer: a, Weight: 1.0}
			}
			if got := ComputeProgress(lines); !almostEqual(got, tt.expected) {
				t.Errorf("ComputeProgress() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestComputeProjectProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress []float64
		expected float64
	}{
		{name: "No phases", progress: nil, expected: 0},
		{name: "Mixed progress", progress: []float64{100, 50, 0}, expected: 50},
		{name: "All complete", progress: []float64{100, 100}, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phases := make([]models.ProjectPhase, len(tt.progress))
			for i, p := range tt.progress {
				phases[i] = models.ProjectPhase{Progress: p}
			}
			if got := ComputeProjectProgress(phases); !almostEqual(got, tt.expected) {
				t.Errorf("ComputeProjectProgress() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMaturityLevel(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{100, models.MaturityExpert},
		{80, models.MaturityExpert},
		{79.999, models.MaturityAdvanced},
		{65, models.MaturityAdvanced},
		{64.999, models.MaturityProficient},
		{45, models.MaturityProficient},
		{44.999, models.MaturityDeveloping},
		{25, models.MaturityDeveloping},
		{24.999, models.MaturityBeginner},
		{0, models.MaturityBeginner},
	}

	for _, tt := range tests {
		if got := MaturityLevel(tt.score); got != tt.expected {
			t.Errorf("MaturityLevel(%v) = %s, expected %s", tt.score, got, tt.expected)
		}
	}
}

func TestLatestAssessment(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("Empty slice", func(t *testing.T) {
		if got := LatestAssessment(nil); got != nil {
			t.Errorf("LatestAssessment(nil) = %v, expected nil", got)
		}
	})

	t.Run("Greatest date wins", func(t *testing.T) {
		assessments := []models.Assessment{
			{ID: "a", AssessmentDate: day(3)},
			{ID: "b", AssessmentDate: day(10)},
			{ID: "c", AssessmentDate: day(7)},
		}
		if got := LatestAssessment(assessments); got.ID != "b" {
			t.Errorf("LatestAssessment() = %s, expected b", got.ID)
		}
	})

	t.Run("Date tie breaks on greater ID", func(t *testing.T) {
		assessments := []models.Assessment{
			{ID: "zz", AssessmentDate: day(5)},
			{ID: "aa", AssessmentDate: day(5)},
		}
		if got := LatestAssessment(assessments); got.ID != "zz" {
			t.Errorf("LatestAssessment() = %s, expected zz", got.ID)
		}
	})
}

func TestLatestProject(t *testing.T) {
	day := func(d int) *time.Time {
		t := time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	t.Run("Empty slice", func(t *testing.T) {
		if got := LatestProject(nil); got != nil {
			t.Errorf("LatestProject(nil) = %v, expected nil", got)
		}
	})

	t.Run("Undated projects lose to dated ones", func(t *testing.T) {
		projects := []models.Project{
			{ID: "undated"},
			{ID: "dated", StartDate: day(1)},
		}
		if got := LatestProject(projects); got.ID != "dated" {
			t.Errorf("LatestProject() = %s, expected dated", got.ID)
		}
	})

	t.Run("Greatest start date wins", func(t *testing.T) {
		projects := []models.Project{
			{ID: "a", StartDate: day(1)},
			{ID: "b", StartDate: day(20)},
			{ID: "c", StartDate: day(10)},
		}
		if got := LatestProject(projects); got.ID != "b" {
			t.Errorf("LatestProject() = %s, expected b", got.ID)
		}
	})

	t.Run("Tie breaks on greater ID", func(t *testing.T) {
		projects := []models.Project{
			{ID: "bb", StartDate: day(5)},
			{ID: "cc", StartDate: day(5)},
		}
		if got := LatestProject(projects); got.ID != "cc" {
			t.Errorf("LatestProject() = %s, expected cc", got.ID)
		}
	})

	t.Run("All undated falls back to greatest ID", func(t *testing.T) {
		projects := []models.Project{
			{ID: "x"},
			{ID: "y"},
		}
		if got := LatestProject(projects); got.ID != "y" {
			t.Errorf("LatestProject() = %s, expected y", got.ID)
		}
	})
}

func TestGenerateRecommendations(t *testing.T) {
	t.Run("No weak categories", func(t *testing.T) {
		scores := CategoryScores{Technology: 50, Process: 50, People: 50, Culture: 50}
		if got := GenerateRecommendations(scores); got != "" {
			t.Errorf("GenerateRecommendations() = %q, expected empty", got)
		}
	})

	t.Run("One weak category", func(t *testing.T) {
		scores := CategoryScores{Technology: 30, Process: 50, People: 50, Culture: 50}
		got := GenerateRecommendations(scores)
		expected := "• Urgent technology infrastructure upgrade needed"
		if got != expected {
			t.Errorf("GenerateRecommendations() = %q, expected %q", got, expected)
		}
	})

	t.Run("Multiple weak categories in display order", func(t *testing.T) {
		scores := CategoryScores{Technology: 30, Process: 55, People: 10, Culture: 49.9}
		got := GenerateRecommendations(scores)
		lines := strings.Split(got, "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 recommendations, got %d: %q", len(lines), got)
		}
		if lines[0] != "• Urgent technology infrastructure upgrade needed" {
			t.Errorf("first recommendation = %q", lines[0])
		}
		if lines[1] != "• Skills development and training programs essential" {
			t.Errorf("second recommendation = %q", lines[1])
		}
		if lines[2] != "• Change management and culture transformation needed" {
			t.Errorf("third recommendation = %q", lines[2])
		}
	})
}
