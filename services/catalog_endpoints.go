package services

import (
	"encoding/json"
	"net/http"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
	"github.com/go-chi/chi/v5"
)

// CatalogEndpoints serves the reference data behind assessments and
// staffing: the question template bank and the skill catalog.
type CatalogEndpoints struct {
	repo *repository.GORMRepository
}

func NewCatalogEndpoints(repo *repository.GORMRepository) *CatalogEndpoints {
	return &CatalogEndpoints{repo: repo}
}

func (e *CatalogEndpoints) RegisterRoutes(r chi.Router) {
	r.Route("/templates", func(r chi.Router) {
		r.Post("/", e.CreateTemplateHandler)
		r.Get("/", e.GetTemplatesHandler)
		r.Get("/{id}", e.GetTemplateHandler)
		r.Put("/{id}", e.UpdateTemplateHandler)
		r.Delete("/{id}", e.DeleteTemplateHandler)
	})
	r.Route("/skills", func(r chi.Router) {
		r.Post("/", e.CreateSkillHandler)
		r.Get("/", e.GetSkillsHandler)
		r.Put("/{id}", e.UpdateSkillHandler)
		r.Delete("/{id}", e.DeleteSkillHandler)
	})
}

type TemplateRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	QuestionText *string  `json:"question_text"`
	Weight       *float64 `json:"weight"`
	Sequence     *int     `json:"sequence"`
	Active       *bool    `json:"active"`
}

func (req *TemplateRequest) apply(template *models.AssessmentTemplate) {
	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Category != nil {
		template.Category = *req.Category
	}
	if req.QuestionText != nil {
		template.QuestionText = *req.QuestionText
	}
	if req.Weight != nil {
		template.Weight = *req.Weight
	}
	if req.Sequence != nil {
		template.Sequence = *req.Sequence
	}
	if req.Active != nil {
		template.Active = *req.Active
	}
}

func (e *CatalogEndpoints) CreateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	template := models.AssessmentTemplate{Weight: 1.0, Active: true}
	req.apply(&template)
	if template.Category == "" || template.QuestionText == "" {
		http.Error(w, "Category and question text are required", http.StatusBadRequest)
		return
	}
	if template.Name == "" {
		template.Name = template.QuestionText
	}
	if template.Weight <= 0 {
		writeServiceError(w, NewValidationError("Question weight must be positive"), "")
		return
	}

	if err := e.repo.CreateAssessmentTemplate(r.Context(), &template); err != nil {
		writeServiceError(w, err, "Failed to create template")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"template": template})
}

func (e *CatalogEndpoints) GetTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	templates, err := e.repo.GetAssessmentTemplates(r.Context(), activeOnly)
	if err != nil {
		http.Error(w, "Failed to get templates", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"templates": templates,
		"count":     len(templates),
	})
}

func (e *CatalogEndpoints) GetTemplateHandler(w http.ResponseWriter, r *http.Request) {
	template, err := e.repo.GetAssessmentTemplateByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Failed to get template", http.StatusInternalServerError)
		return
	}
	if template == nil {
		http.Error(w, "Template not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"template": template})
}

func (e *CatalogEndpoints) UpdateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	template, err := e.repo.GetAssessmentTemplateByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Failed to get template", http.StatusInternalServerError)
		return
	}
	if template == nil {
		http.Error(w, "Template not found", http.StatusNotFound)
		return
	}

	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.apply(template)
	if template.Weight <= 0 {
		writeServiceError(w, NewValidationError("Question weight must be positive"), "")
		return
	}

	if err := e.repo.UpdateAssessmentTemplate(r.Context(), template); err != nil {
		writeServiceError(w, err, "Failed to update template")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"template": template})
}

func (e *CatalogEndpoints) DeleteTemplateHandler(w http.ResponseWriter, r *http.Request) {
	if err := e.repo.DeleteAssessmentTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, "Failed to delete template")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Template deleted"})
}

type SkillRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (req *SkillRequest) apply(skill *models.Skill) {
	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Description != nil {
		skill.Description = *req.Description
	}
	if req.Active != nil {
		skill.Active = *req.Active
	}
}

func (e *CatalogEndpoints) CreateSkillHandler(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	skill := models.Skill{Category: "technical", Active: true}
	req.apply(&skill)
	if skill.Name == "" {
		http.Error(w, "Skill name is required", http.StatusBadRequest)
		return
	}

	if err := e.repo.CreateSkill(r.Context(), &skill); err != nil {
		writeServiceError(w, err, "Failed to create skill")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"skill": skill})
}

func (e *CatalogEndpoints) GetSkillsHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	skills, err := e.repo.GetSkills(r.Context(), activeOnly)
	if err != nil {
		http.Error(w, "Failed to get skills", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"skills": skills,
		"count":  len(skills),
	})
}

func (e *CatalogEndpoints) UpdateSkillHandler(w http.ResponseWriter, r *http.Request) {
	skill, err := e.repo.GetSkillByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Failed to get skill", http.StatusInternalServerError)
		return
	}
	if skill == nil {
		http.Error(w, "Skill not found", http.StatusNotFound)
		return
	}

	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.apply(skill)

	if err := e.repo.UpdateSkill(r.Context(), skill); err != nil {
		writeServiceError(w, err, "Failed to update skill")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"skill": skill})
}

func (e *CatalogEndpoints) DeleteSkillHandler(w http.ResponseWriter, r *http.Request) {
	if err := e.repo.DeleteSkill(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, "Failed to delete skill")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Skill deleted"})
}
