package services

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
	"github.com/go-chi/chi/v5"
)

type ClientEndpoints struct {
	repo    *repository.GORMRepository
	clients *ClientService
}

func NewClientEndpoints(repo *repository.GORMRepository, clients *ClientService) *ClientEndpoints {
	return &ClientEndpoints{repo: repo, clients: clients}
}

type ClientRequest struct {
	Name           string     `json:"name"`
	IndustryType   string     `json:"industry_type"`
	CompanySize    string     `json:"company_size"`
	AnnualRevenue  float64    `json:"annual_revenue"`
	CurrentERP     string     `json:"current_erp"`
	TechStack      string     `json:"tech_stack"`
	CloudAdoption  string     `json:"cloud_adoption"`
	Status         string     `json:"status"`
	OnboardingDate *time.Time `json:"onboarding_date"`
	Notes          string     `json:"notes"`
}

type GetClientsResponse struct {
	Clients []models.Client `json:"clients"`
	Count   int             `json:"count"`
}

func (e *ClientEndpoints) RegisterRoutes(r chi.Router) {
	r.Route("/clients", func(r chi.Router) {
		r.Post("/", e.CreateClientHandler)
		r.Get("/", e.GetClientsHandler)
		r.Get("/{id}", e.GetClientHandler)
		r.Put("/{id}", e.UpdateClientHandler)
		r.Delete("/{id}", e.DeleteClientHandler)
		r.Get("/{id}/assessments", e.GetClientAssessmentsHandler)
		r.Get("/{id}/projects", e.GetClientProjectsHandler)
	})
}

func (req *ClientRequest) apply(client *models.Client) {
	client.Name = req.Name
	client.IndustryType = req.IndustryType
	client.CompanySize = req.CompanySize
	client.AnnualRevenue = req.AnnualRevenue
	client.CurrentERP = req.CurrentERP
	client.TechStack = req.TechStack
	client.CloudAdoption = req.CloudAdoption
	client.Status = req.Status
	client.OnboardingDate = req.OnboardingDate
	client.Notes = req.Notes
}

func (e *ClientEndpoints) CreateClientHandler(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var client models.Client
	req.apply(&client)

	if err := e.clients.Create(r.Context(), &client); err != nil {
		writeServiceError(w, err, "Failed to create client")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"client": client})
	slog.Info("Client registered", "client_id", client.ID, "name", client.Name)
}

func (e *ClientEndpoints) GetClientsHandler(w http.ResponseWriter, r *http.Request) {
	clients, err := e.repo.GetClients(r.Context())
	if err != nil {
		http.Error(w, "Failed to get clients", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GetClientsResponse{Clients: clients, Count: len(clients)})
}

func (e *ClientEndpoints) GetClientHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	client, err := e.repo.GetClientByID(r.Context(), clientID)
	if err != nil {
		http.Error(w, "Failed to get client", http.StatusInternalServerError)
		return
	}
	if client == nil {
		http.Error(w, "Client not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"client": client})
}

func (e *ClientEndpoints) UpdateClientHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	client, err := e.repo.GetClientByID(r.Context(), clientID)
	if err != nil {
		http.Error(w, "Failed to get client", http.StatusInternalServerError)
		return
	}
	if client == nil {
		http.Error(w, "Client not found", http.StatusNotFound)
		return
	}

	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.apply(client)

	if err := e.clients.Update(r.Context(), client); err != nil {
		writeServiceError(w, err, "Failed to update client")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"client": client})
}

func (e *ClientEndpoints) DeleteClientHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	if err := e.clients.Delete(r.Context(), clientID); err != nil {
		writeServiceError(w, err, "Failed to delete client")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Client deleted"})
}

func (e *ClientEndpoints) GetClientAssessmentsHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	assessments, err := e.repo.GetClientAssessments(r.Context(), clientID)
	if err != nil {
		http.Error(w, "Failed to get client assessments", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": assessments,
		"count":       len(assessments),
	})
}

func (e *ClientEndpoints) GetClientProjectsHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	projects, err := e.repo.GetClientProjects(r.Context(), clientID)
	if err != nil {
		http.Error(w, "Failed to get client projects", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"projects": projects,
		"count":    len(projects),
	})
}
