package services

import (
	"encoding/json"
	"net/http"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
	"github.com/go-chi/chi/v5"
)

type ConsultantEndpoints struct {
	repo        *repository.GORMRepository
	consultants *ConsultantService
}

func NewConsultantEndpoints(repo *repository.GORMRepository, consultants *ConsultantService) *ConsultantEndpoints {
	return &ConsultantEndpoints{repo: repo, consultants: consultants}
}

type ConsultantRequest struct {
	Name                *string  `json:"name"`
	Title               *string  `json:"title"`
	Department          *string  `json:"department"`
	SeniorityLevel      *string  `json:"seniority_level"`
	HourlyRate          *float64 `json:"hourly_rate"`
	SpecializationAreas *string  `json:"specialization_areas"`
	Availability        *string  `json:"availability"`
	CapacityPercentage  *float64 `json:"capacity_percentage"`
	Email               *string  `json:"email"`
	Phone               *string  `json:"phone"`
	Active              *bool    `json:"active"`
	SkillIDs            []string `json:"skill_ids"`
}

func (e *ConsultantEndpoints) RegisterRoutes(r chi.Router) {
	r.Route("/consultants", func(r chi.Router) {
		r.Post("/", e.CreateConsultantHandler)
		r.Get("/", e.GetConsultantsHandler)
		r.Get("/{id}", e.GetConsultantHandler)
		r.Put("/{id}", e.UpdateConsultantHandler)
		r.Delete("/{id}", e.DeleteConsultantHandler)
		r.Get("/{id}/stats", e.GetConsultantStatsHandler)
	})
}

func (req *ConsultantRequest) apply(consultant *models.Consultant) {
	if req.Name != nil {
		consultant.Name = *req.Name
	}
	if req.Title != nil {
		consultant.Title = *req.Title
	}
	if req.Department != nil {
		consultant.Department = *req.Department
	}
	if req.SeniorityLevel != nil {
		consultant.SeniorityLevel = *req.SeniorityLevel
	}
	if req.HourlyRate != nil {
		consultant.HourlyRate = *req.HourlyRate
	}
	if req.SpecializationAreas != nil {
		consultant.SpecializationAreas = *req.SpecializationAreas
	}
	if req.Availability != nil {
		consultant.Availability = *req.Availability
	}
	if req.CapacityPercentage != nil {
		consultant.CapacityPercentage = *req.CapacityPercentage
	}
	if req.Email != nil {
		consultant.Email = *req.Email
	}
	if req.Phone != nil {
		consultant.Phone = *req.Phone
	}
	if req.Active != nil {
		consultant.Active = *req.Active
	}
}

// syncSkills replaces the skill set when the request names one.
func (e *ConsultantEndpoints) syncSkills(r *http.Request, consultant *models.Consultant, req *ConsultantRequest) error {
	if req.SkillIDs == nil {
		return nil
	}
	skills, err := e.repo.GetSkillsByIDs(r.Context(), req.SkillIDs)
	if err != nil {
		return err
	}
	return e.repo.ReplaceConsultantSkills(r.Context(), consultant, skills)
}

func (e *ConsultantEndpoints) CreateConsultantHandler(w http.ResponseWriter, r *http.Request) {
	var req ConsultantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	consultant := models.Consultant{
		SeniorityLevel:     "consultant",
		Availability:       "available",
		CapacityPercentage: 100,
		Active:             true,
	}
	req.apply(&consultant)
	if consultant.Name == "" {
		http.Error(w, "Consultant name is required", http.StatusBadRequest)
		return
	}

	if err := e.repo.CreateConsultant(r.Context(), &consultant); err != nil {
		writeServiceError(w, err, "Failed to create consultant")
		return
	}
	if err := e.syncSkills(r, &consultant, &req); err != nil {
		writeServiceError(w, err, "Failed to assign skills")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"consultant": consultant})
}

func (e *ConsultantEndpoints) GetConsultantsHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	consultants, err := e.repo.GetConsultants(r.Context(), activeOnly)
	if err != nil {
		http.Error(w, "Failed to get consultants", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"consultants": consultants,
		"count":       len(consultants),
	})
}

func (e *ConsultantEndpoints) GetConsultantHandler(w http.ResponseWriter, r *http.Request) {
	consultant, err := e.repo.GetConsultantByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Failed to get consultant", http.StatusInternalServerError)
		return
	}
	if consultant == nil {
		http.Error(w, "Consultant not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"consultant": consultant})
}

func (e *ConsultantEndpoints) UpdateConsultantHandler(w http.ResponseWriter, r *http.Request) {
	consultant, err := e.repo.GetConsultantByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Failed to get consultant", http.StatusInternalServerError)
		return
	}
	if consultant == nil {
		http.Error(w, "Consultant not found", http.StatusNotFound)
		return
	}

	var req ConsultantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.apply(consultant)

	if err := e.repo.UpdateConsultant(r.Context(), consultant); err != nil {
		writeServiceError(w, err, "Failed to update consultant")
		return
	}
	if err := e.syncSkills(r, consultant, &req); err != nil {
		writeServiceError(w, err, "Failed to assign skills")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"consultant": consultant})
}

func (e *ConsultantEndpoints) DeleteConsultantHandler(w http.ResponseWriter, r *http.Request) {
	if err := e.repo.DeleteConsultant(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, "Failed to delete consultant")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Consultant deleted"})
}

func (e *ConsultantEndpoints) GetConsultantStatsHandler(w http.ResponseWriter, r *http.Request) {
	consultantID := chi.URLParam(r, "id")

	consultant, err := e.repo.GetConsultantByID(r.Context(), consultantID)
	if err != nil {
		http.Error(w, "Failed to get consultant", http.StatusInternalServerError)
		return
	}
	if consultant == nil {
		http.Error(w, "Consultant not found", http.StatusNotFound)
		return
	}

	stats, err := e.consultants.Stats(r.Context(), consultantID)
	if err != nil {
		http.Error(w, "Failed to compute consultant stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"consultant": consultant,
		"stats":      stats,
	})
}
