package services

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
	"github.com/go-chi/chi/v5"
)

type AssessmentEndpoints struct {
	repo        *repository.GORMRepository
	assessments *AssessmentService
}

func NewAssessmentEndpoints(repo *repository.GORMRepository, assessments *AssessmentService) *AssessmentEndpoints {
	return &AssessmentEndpoints{repo: repo, assessments: assessments}
}

type CreateAssessmentRequest struct {
	Name           string     `json:"name"`
	ClientID       string     `json:"client_id"`
	ConsultantID   string     `json:"consultant_id"`
	AssessmentDate *time.Time `json:"assessment_date"`
}

type UpdateAssessmentRequest struct {
	Name              *string    `json:"name"`
	AssessmentDate    *time.Time `json:"assessment_date"`
	PriorityAreas     *string    `json:"priority_areas"`
	EstimatedTimeline *string    `json:"estimated_timeline"`
	EstimatedBudget   *float64   `json:"estimated_budget"`
}

type AnswerLineRequest struct {
	Answer int    `json:"answer"`
	Notes  string `json:"notes"`
}

func (e *AssessmentEndpoints) RegisterRoutes(r chi.Router) {
	r.Route("/assessments", func(r chi.Router) {
		r.Post("/", e.CreateAssessmentHandler)
		r.Get("/", e.GetAssessmentsHandler)
		r.Get("/{id}", e.GetAssessmentHandler)
		r.Put("/{id}", e.UpdateAssessmentHandler)
		r.Delete("/{id}", e.DeleteAssessmentHandler)

		r.Post("/{id}/start", e.StartAssessmentHandler)
		r.Post("/{id}/submit-review", e.SubmitReviewHandler)
		r.Post("/{id}/complete", e.CompleteAssessmentHandler)
		r.Post("/{id}/cancel", e.CancelAssessmentHandler)

		r.Put("/{id}/lines/{lineID}", e.AnswerLineHandler)
	})
}

func (e *AssessmentEndpoints) CreateAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assessment := models.Assessment{
		Name:         req.Name,
		ClientID:     req.ClientID,
		ConsultantID: req.ConsultantID,
	}
	if req.AssessmentDate != nil {
		assessment.AssessmentDate = *req.AssessmentDate
	}

	if err := e.assessments.Create(r.Context(), &assessment); err != nil {
		writeServiceError(w, err, "Failed to create assessment")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"assessment": assessment})
}

func (e *AssessmentEndpoints) GetAssessmentsHandler(w http.ResponseWriter, r *http.Request) {
	assessments, err := e.repo.GetAssessments(r.Context())
	if err != nil {
		http.Error(w, "Failed to get assessments", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": assessments,
		"count":       len(assessments),
	})
}

func (e *AssessmentEndpoints) GetAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "id")

	assessment, err := e.repo.GetAssessmentWithLines(r.Context(), assessmentID)
	if err != nil {
		http.Error(w, "Failed to get assessment", http.StatusInternalServerError)
		return
	}
	if assessment == nil {
		http.Error(w, "Assessment not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessment": assessment})
}

func (e *AssessmentEndpoints) UpdateAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "id")

	assessment, err := e.repo.GetAssessmentByID(r.Context(), assessmentID)
	if err != nil {
		http.Error(w, "Failed to get assessment", http.StatusInternalServerError)
		return
	}
	if assessment == nil {
		http.Error(w, "Assessment not found", http.StatusNotFound)
		return
	}

	var req UpdateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name != nil {
		assessment.Name = *req.Name
	}
	if req.AssessmentDate != nil {
		assessment.AssessmentDate = *req.AssessmentDate
	}
	if req.PriorityAreas != nil {
		assessment.PriorityAreas = *req.PriorityAreas
	}
	if req.EstimatedTimeline != nil {
		assessment.EstimatedTimeline = *req.EstimatedTimeline
	}
	if req.EstimatedBudget != nil {
		assessment.EstimatedBudget = *req.EstimatedBudget
	}

	if err := e.assessments.Update(r.Context(), assessment); err != nil {
		writeServiceError(w, err, "Failed to update assessment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessment": assessment})
}

func (e *AssessmentEndpoints) DeleteAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "id")

	if err := e.assessments.Delete(r.Context(), assessmentID); err != nil {
		writeServiceError(w, err, "Failed to delete assessment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Assessment deleted"})
}

func (e *AssessmentEndpoints) StartAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	assessment, err := e.assessments.Start(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "Failed to start assessment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessment": assessment})
}

func (e *AssessmentEndpoints) SubmitReviewHandler(w http.ResponseWriter, r *http.Request) {
	assessment, err := e.assessments.SubmitReview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "Failed to submit assessment for review")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessment": assessment})
}

func (e *AssessmentEndpoints) CompleteAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	assessment, err := e.assessments.Complete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "Failed to complete assessment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessment": assessment})
}

func (e *AssessmentEndpoints) CancelAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	assessment, err := e.assessments.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "Failed to cancel assessment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessment": assessment})
}

func (e *AssessmentEndpoints) AnswerLineHandler(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "id")
	lineID := chi.URLParam(r, "lineID")

	var req AnswerLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assessment, err := e.assessments.AnswerLine(r.Context(), assessmentID, lineID, req.Answer, req.Notes)
	if err != nil {
		writeServiceError(w, err, "Failed to record answer")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessment": assessment})
}
