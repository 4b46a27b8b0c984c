package services

import (
	"strings"

	"github.com/dtaccel/backend/models"
)

// Scoring rollups. Every function here is pure: mutation handlers call
// them inside the same transaction that persists the inputs, so stored
// derived values are always consistent with the latest child state.

// Maturity bucket thresholds, closed below: a score of exactly 80 is expert.
const (
	maturityExpertMin     = 80.0
	maturityAdvancedMin   = 65.0
	maturityProficientMin = 45.0
	maturityDevelopingMin = 25.0
)

// recommendationTexts maps a category to the advice emitted when its
// score falls below 50 on a completed assessment.
var recommendationTexts = map[string]string{
	models.CategoryTechnology: "Urgent technology infrastructure upgrade needed",
	models.CategoryProcess:    "Business process optimization required",
	models.CategoryPeople:     "Skills development and training programs essential",
	models.CategoryCulture:    "Change management and culture transformation needed",
}

// CategoryScores holds the per-category rollup of one assessment.
type CategoryScores struct {
	Technology float64 `json:"technology"`
	Process    float64 `json:"process"`
	People     float64 `json:"people"`
	Culture    float64 `json:"culture"`
}

// ByCategory returns the score for a category name.
func (s CategoryScores) ByCategory(category string) float64 {
	switch category {
	case models.CategoryTechnology:
		return s.Technology
	case models.CategoryProcess:
		return s.Process
	case models.CategoryPeople:
		return s.People
	case models.CategoryCulture:
		return s.Culture
	}
	return 0
}

// LineScore is answer * weight for an answered line, 0 otherwise.
// An unanswered line is not an error, it simply does not score.
func LineScore(line *models.AssessmentLine) float64 {
	if !line.Answered() {
		return 0
	}
	return float64(line.Answer) * line.Weight
}

// ComputeCategoryScores partitions the lines by category and returns the
// mean line score per category scaled to 0-50 (mean * 10). An empty
// category scores exactly 0, never NaN.
func ComputeCategoryScores(lines []models.AssessmentLine) CategoryScores {
	sums := make(map[string]float64, len(models.AssessmentCategories))
	counts := make(map[string]int, len(models.AssessmentCategories))
	for i := range lines {
		sums[lines[i].Category] += LineScore(&lines[i])
		counts[lines[i].Category]++
	}

	mean := func(category string) float64 {
		if counts[category] == 0 {
			return 0
		}
		return sums[category] / float64(counts[category]) * 10
	}

	return CategoryScores{
		Technology: mean(models.CategoryTechnology),
		Process:    mean(models.CategoryProcess),
		People:     mean(models.CategoryPeople),
		Culture:    mean(models.CategoryCulture),
	}
}

// ComputeTotalScore is the mean of the category scores that are strictly
// above zero; 0 if every category is zero. A category that legitimately
// scores 0 is therefore indistinguishable from an unanswered one. That is
// the established aggregation policy and is preserved as is.
func ComputeTotalScore(scores CategoryScores) float64 {
	var sum float64
	var n int
	for _, s := range []float64{scores.Technology, scores.Process, scores.People, scores.Culture} {
		if s > 0 {
			sum += s
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ComputeProgress is answered lines / total lines * 100, 0 when there are
// no lines.
func ComputeProgress(lines []models.AssessmentLine) float64 {
	if len(lines) == 0 {
		return 0
	}
	answered := 0
	for i := range lines {
		if lines[i].Answered() {
			answered++
		}
	}
	return float64(answered) / float64(len(lines)) * 100
}

// ComputeProjectProgress is the mean of the phase progress values, 0 when
// the project has no phases.
func ComputeProjectProgress(phases []models.ProjectPhase) float64 {
	if len(phases) == 0 {
		return 0
	}
	var sum float64
	for i := range phases {
		sum += phases[i].Progress
	}
	return sum / float64(len(phases))
}

// MaturityLevel buckets a 0-100 maturity score into the five named tiers.
func MaturityLevel(score float64) string {
	switch {
	case score >= maturityExpertMin:
		return models.MaturityExpert
	case score >= maturityAdvancedMin:
		return models.MaturityAdvanced
	case score >= maturityProficientMin:
		return models.MaturityProficient
	case score >= maturityDevelopingMin:
		return models.MaturityDeveloping
	default:
		return models.MaturityBeginner
	}
}

// LatestAssessment picks the assessment with the greatest assessment date.
// Ties break on the greater ID so the result is deterministic regardless
// of query order. Returns nil for an empty slice.
func LatestAssessment(assessments []models.Assessment) *models.Assessment {
	var latest *models.Assessment
	for i := range assessments {
		a := &assessments[i]
		if latest == nil {
			latest = a
			continue
		}
		if a.AssessmentDate.After(latest.AssessmentDate) {
			latest = a
		} else if a.AssessmentDate.Equal(latest.AssessmentDate) && a.ID > latest.ID {
			latest = a
		}
	}
	return latest
}

// LatestProject picks the project with the greatest start date, with the
// same greater-ID tie break. Projects without a start date are considered
// older than any dated project. Returns nil for an empty slice.
func LatestProject(projects []models.Project) *models.Project {
	var latest *models.Project
	for i := range projects {
		p := &projects[i]
		if latest == nil {
			latest = p
			continue
		}
		switch {
		case p.StartDate == nil && latest.StartDate == nil:
			if p.ID > latest.ID {
				latest = p
			}
		case p.StartDate == nil:
			// keep latest
		case latest.StartDate == nil:
			latest = p
		case p.StartDate.After(*latest.StartDate):
			latest = p
		case p.StartDate.Equal(*latest.StartDate) && p.ID > latest.ID:
			latest = p
		}
	}
	return latest
}

// GenerateRecommendations produces one fixed sentence per category whose
// score is below 50, joined with newlines. Empty string when every
// category scores 50 or better.
func GenerateRecommendations(scores CategoryScores) string {
	var out []string
	for _, category := range models.AssessmentCategories {
		if scores.ByCategory(category) < 50 {
			out = append(out, "• "+recommendationTexts[category])
		}
	}
	return strings.Join(out, "\n")
}
