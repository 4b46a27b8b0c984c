package services

import (
	"testing"

	"github.com/dtaccel/backend/models"
)

func TestDefaultTemplates(t *testing.T) {
	templates := defaultTemplates()

	if len(templates) != 20 {
		t.Fatalf("expected 20 templates, got %d", len(templates))
	}

	perCategory := make(map[string]int)
	for _, template := range templates {
		perCategory[template.Category]++
		if template.QuestionText == "" {
			t.Errorf("template %q has empty question text", template.Name)
		}
		if template.Weight < 1.0 || template.Weight > 2.0 {
			t.Errorf("template %q weight %v outside [1, 2]", template.Name, template.Weight)
		}
		if !template.Active {
			t.Errorf("template %q is not active", template.Name)
		}
	}

	for _, category := range models.AssessmentCategories {
		if perCategory[category] != 5 {
			t.Errorf("category %s has %d templates, expected 5", category, perCategory[category])
		}
	}
}

func TestDefaultSkillsCategories(t *testing.T) {
	valid := map[string]bool{
		"technical":     true,
		"functional":    true,
		"industry":      true,
		"soft_skills":   true,
		"certification": true,
	}

	for _, skill := range defaultSkills() {
		if !valid[skill.Category] {
			t.Errorf("skill %q has invalid category %q", skill.Name, skill.Category)
		}
	}
}
