package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
	"github.com/go-chi/chi/v5"
)

type ProjectEndpoints struct {
	repo     *repository.GORMRepository
	projects *ProjectService
}

func NewProjectEndpoints(repo *repository.GORMRepository, projects *ProjectService) *ProjectEndpoints {
	return &ProjectEndpoints{repo: repo, projects: projects}
}

type ProjectRequest struct {
	Name                 *string    `json:"name"`
	Description          *string    `json:"description"`
	ClientID             *string    `json:"client_id"`
	AssessmentID         *string    `json:"assessment_id"`
	ProjectManagerID     *string    `json:"project_manager_id"`
	StartDate            *time.Time `json:"start_date"`
	TargetCompletionDate *time.Time `json:"target_completion_date"`
	EstimatedBudget      *float64   `json:"estimated_budget"`
	ActualBudget         *float64   `json:"actual_budget"`
	Objectives           *string    `json:"objectives"`
	Scope                *string    `json:"scope"`
	Risks                *string    `json:"risks"`
	MitigationPlans      *string    `json:"mitigation_plans"`
	RiskLevel            *string    `json:"risk_level"`
	DurationMonths       *int       `json:"duration_months"`
	SatisfactionScore    *float64   `json:"satisfaction_score"`
	ClientFeedback       *string    `json:"client_feedback"`
	ConsultantIDs        []string   `json:"consultant_ids"`
	TeamMemberIDs        []string   `json:"team_member_ids"`
}

type PhaseRequest struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Sequence      *int       `json:"sequence"`
	Weight        *int       `json:"weight"`
	Progress      *float64   `json:"progress"`
	State         *string    `json:"state"`
	ResponsibleID *string    `json:"responsible_id"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

type MilestoneRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	TargetDate  *time.Time `json:"target_date"`
	ActualDate  *time.Time `json:"actual_date"`
	Achieved    *bool      `json:"achieved"`
	Importance  *string    `json:"importance"`
	State       *string    `json:"state"`
}

type DeliverableRequest struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	DueDate       *time.Time `json:"due_date"`
	DeliveryDate  *time.Time `json:"delivery_date"`
	Delivered     *bool      `json:"delivered"`
	DocumentURL   *string    `json:"document_url"`
	ResponsibleID *string    `json:"responsible_id"`
	State         *string    `json:"state"`
}

type TaskRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	AssignedToID *string `json:"assigned_to_id"`
	State        *string `json:"state"`
}

func (e *ProjectEndpoints) RegisterRoutes(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Post("/", e.CreateProjectHandler)
		r.Get("/", e.GetProjectsHandler)
		r.Get("/{id}", e.GetProjectHandler)
		r.Put("/{id}", e.UpdateProjectHandler)
		r.Delete("/{id}", e.DeleteProjectHandler)

		r.Post("/{id}/start", e.actionHandler(e.projects.Start))
		r.Post("/{id}/complete", e.actionHandler(e.projects.Complete))
		r.Post("/{id}/hold", e.actionHandler(e.projects.Hold))
		r.Post("/{id}/cancel", e.actionHandler(e.projects.Cancel))
		r.Post("/{id}/reset-to-draft", e.actionHandler(e.projects.ResetToDraft))

		r.Post("/{id}/phases", e.CreatePhaseHandler)
		r.Post("/{id}/phases/standard", e.GenerateStandardPhasesHandler)
		r.Put("/{id}/phases/{phaseID}", e.UpdatePhaseHandler)
		r.Delete("/{id}/phases/{phaseID}", e.DeletePhaseHandler)

		r.Post("/{id}/milestones", e.CreateMilestoneHandler)
		r.Put("/{id}/milestones/{milestoneID}", e.UpdateMilestoneHandler)
		r.Delete("/{id}/milestones/{milestoneID}", e.DeleteMilestoneHandler)

		r.Post("/{id}/deliverables", e.CreateDeliverableHandler)
		r.Put("/{id}/deliverables/{deliverableID}", e.UpdateDeliverableHandler)
		r.Delete("/{id}/deliverables/{deliverableID}", e.DeleteDeliverableHandler)

		r.Post("/{id}/phases/{phaseID}/tasks", e.CreateTaskHandler)
		r.Put("/{id}/phases/{phaseID}/tasks/{taskID}", e.UpdateTaskHandler)
		r.Delete("/{id}/phases/{phaseID}/tasks/{taskID}", e.DeleteTaskHandler)
	})
}

func (req *ProjectRequest) apply(project *models.Project) {
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ClientID != nil {
		project.ClientID = *req.ClientID
	}
	if req.AssessmentID != nil {
		project.AssessmentID = req.AssessmentID
	}
	if req.ProjectManagerID != nil {
		project.ProjectManagerID = req.ProjectManagerID
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.TargetCompletionDate != nil {
		project.TargetCompletionDate = req.TargetCompletionDate
	}
	if req.EstimatedBudget != nil {
		project.EstimatedBudget = *req.EstimatedBudget
	}
	if req.ActualBudget != nil {
		project.ActualBudget = *req.ActualBudget
	}
	if req.Objectives != nil {
		project.Objectives = *req.Objectives
	}
	if req.Scope != nil {
		project.Scope = *req.Scope
	}
	if req.Risks != nil {
		project.Risks = *req.Risks
	}
	if req.MitigationPlans != nil {
		project.MitigationPlans = *req.MitigationPlans
	}
	if req.RiskLevel != nil {
		project.RiskLevel = *req.RiskLevel
	}
	if req.DurationMonths != nil {
		project.DurationMonths = *req.DurationMonths
	}
	if req.SatisfactionScore != nil {
		project.SatisfactionScore = *req.SatisfactionScore
	}
	if req.ClientFeedback != nil {
		project.ClientFeedback = *req.ClientFeedback
	}
}

// syncProjectTeams replaces the consultant associations when the request
// names them.
func (e *ProjectEndpoints) syncProjectTeams(r *http.Request, project *models.Project, req *ProjectRequest) error {
	if req.ConsultantIDs != nil {
		consultants, err := e.repo.GetConsultantsByIDs(r.Context(), req.ConsultantIDs)
		if err != nil {
			return err
		}
		if err := e.repo.ReplaceProjectConsultants(r.Context(), project, consultants); err != nil {
			return err
		}
	}
	if req.TeamMemberIDs != nil {
		members, err := e.repo.GetConsultantsByIDs(r.Context(), req.TeamMemberIDs)
		if err != nil {
			return err
		}
		if err := e.repo.ReplaceProjectTeamMembers(r.Context(), project, members); err != nil {
			return err
		}
	}
	return nil
}

func (e *ProjectEndpoints) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var project models.Project
	req.apply(&project)

	if err := e.projects.Create(r.Context(), &project); err != nil {
		writeServiceError(w, err, "Failed to create project")
		return
	}
	if err := e.syncProjectTeams(r, &project, &req); err != nil {
		writeServiceError(w, err, "Failed to assign consultants")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"project": project})
}

func (e *ProjectEndpoints) GetProjectsHandler(w http.ResponseWriter, r *http.Request) {
	projects, err := e.repo.GetProjects(r.Context())
	if err != nil {
		http.Error(w, "Failed to get projects", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"projects": projects,
		"count":    len(projects),
	})
}

func (e *ProjectEndpoints) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	project, err := e.repo.GetProjectWithDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Failed to get project", http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"project": project})
}

func (e *ProjectEndpoints) UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	project, err := e.repo.GetProjectByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Failed to get project", http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.apply(project)

	if err := e.projects.Update(r.Context(), project); err != nil {
		writeServiceError(w, err, "Failed to update project")
		return
	}
	if err := e.syncProjectTeams(r, project, &req); err != nil {
		writeServiceError(w, err, "Failed to assign consultants")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"project": project})
}

func (e *ProjectEndpoints) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	if err := e.projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, "Failed to delete project")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

// actionHandler wraps the unconditional state transitions.
func (e *ProjectEndpoints) actionHandler(action func(ctx context.Context, id string) (*models.Project, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := action(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Failed to update project state")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"project": project})
	}
}

func (e *ProjectEndpoints) GenerateStandardPhasesHandler(w http.ResponseWriter, r *http.Request) {
	phases, err := e.projects.GenerateStandardPhases(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "Failed to generate standard phases")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"phases": phases,
		"count":  len(phases),
	})
}

func (req *PhaseRequest) apply(phase *models.ProjectPhase) {
	if req.Name != nil {
		phase.Name = *req.Name
	}
	if req.Description != nil {
		phase.Description = *req.Description
	}
	if req.Sequence != nil {
		phase.Sequence = *req.Sequence
	}
	if req.Weight != nil {
		phase.Weight = *req.Weight
	}
	if req.Progress != nil {
		phase.Progress = *req.Progress
	}
	if req.State != nil {
		phase.State = *req.State
	}
	if req.ResponsibleID != nil {
		phase.ResponsibleID = req.ResponsibleID
	}
	if req.StartDate != nil {
		phase.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		phase.EndDate = req.EndDate
	}
}

func (e *ProjectEndpoints) CreatePhaseHandler(w http.ResponseWriter, r *http.Request) {
	var req PhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	phase := models.ProjectPhase{ProjectID: chi.URLParam(r, "id")}
	req.apply(&phase)

	if err := e.projects.CreatePhase(r.Context(), &phase); err != nil {
		writeServiceError(w, err, "Failed to create phase")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"phase": phase})
}

func (e *ProjectEndpoints) UpdatePhaseHandler(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	phaseID := chi.URLParam(r, "phaseID")

	phase, err := e.repo.GetProjectPhase(r.Context(), projectID, phaseID)
	if err != nil {
		http.Error(w, "Failed to get phase", http.StatusInternalServerError)
		return
	}
	if phase == nil {
		http.Error(w, "Phase not found", http.StatusNotFound)
		return
	}

	var req PhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.apply(phase)

	project, err := e.projects.UpdatePhase(r.Context(), phase)
	if err != nil {
		writeServiceError(w, err, "Failed to update phase")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"phase":   phase,
		"project": project,
	})
}

func (e *ProjectEndpoints) DeletePhaseHandler(w http.ResponseWriter, r *http.Request) {
	if err := e.projects.DeletePhase(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "phaseID")); err != nil {
		writeServiceError(w, err, "Failed to delete phase")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Phase deleted"})
}

func (req *MilestoneRequest) apply(milestone *models.ProjectMilestone) {
	if req.Name != nil {
		milestone.Name = *req.Name
	}
	if req.Description != nil {
		milestone.Description = *req.Description
	}
	if req.DueDate != nil {
		milestone.DueDate = req.DueDate
	}
	if req.TargetDate != nil {
		milestone.TargetDate = req.TargetDate
	}
	if req.ActualDate != nil {
		milestone.ActualDate = req.ActualDate
	}
	if req.Achieved != nil {
		milestone.Achieved = *req.Achieved
	}
	if req.Importance != nil {
		milestone.Importance = *req.Importance
	}
	if req.State != nil {
		milestone.State = *req.State
	}
}

func (e *ProjectEndpoints) CreateMilestoneHandler(w http.ResponseWriter, r *http.Request) {
	var req MilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	milestone := models.ProjectMilestone{ProjectID: chi.URLParam(r, "id")}
	req.apply(&milestone)
	if milestone.Name == "" {
		http.Error(w, "Milestone name is required", http.StatusBadRequest)
		return
	}

	if err := e.repo.CreateProjectMilestone(r.Context(), &milestone); err != nil {
		writeServiceError(w, err, "Failed to create milestone")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"milestone": milestone})
}

func (e *ProjectEndpoints) UpdateMilestoneHandler(w http.ResponseWriter, r *http.Request) {
	milestone, err := e.repo.GetProjectMilestone(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "milestoneID"))
	if err != nil {
		http.Error(w, "Failed to get milestone", http.StatusInternalServerError)
		return
	}
	if milestone == nil {
		http.Error(w, "Milestone not found", http.StatusNotFound)
		return
	}

	var req MilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.apply(milestone)

	if err := e.repo.UpdateProjectMilestone(r.Context(), milestone); err != nil {
		writeServiceError(w, err, "Failed to update milestone")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"milestone": milestone})
}

func (e *ProjectEndpoints) DeleteMilestoneHandler(w http.ResponseWriter, r *http.Request) {
	milestone, err := e.repo.GetProjectMilestone(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "milestoneID"))
	if err != nil {
		http.Error(w, "Failed to get milestone", http.StatusInternalServerError)
		return
	}
	if milestone == nil {
		http.Error(w, "Milestone not found", http.StatusNotFound)
		return
	}

	if err := e.repo.DeleteProjectMilestone(r.Context(), milestone.ID); err != nil {
		writeServiceError(w, err, "Failed to delete milestone")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Milestone deleted"})
}

func (req *DeliverableRequest) apply(deliverable *models.ProjectDeliverable) {
	if req.Name != nil {
		deliverable.Name = *req.Name
	}
	if req.Description != nil {
		deliverable.Description = *req.Description
	}
	if req.DueDate != nil {
		deliverable.DueDate = req.DueDate
	}
	if req.DeliveryDate != nil {
		deliverable.DeliveryDate = req.DeliveryDate
	}
	if req.Delivered != nil {
		deliverable.Delivered = *req.Delivered
	}
	if req.DocumentURL != nil {
		deliverable.DocumentURL = *req.DocumentURL
	}
	if req.ResponsibleID != nil {
		deliverable.ResponsibleID = req.ResponsibleID
	}
	if req.State != nil {
		deliverable.State = *req.State
	}
}

func (e *ProjectEndpoints) CreateDeliverableHandler(w http.ResponseWriter, r *http.Request) {
	var req DeliverableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	deliverable := models.ProjectDeliverable{ProjectID: chi.URLParam(r, "id")}
	req.apply(&deliverable)
	if deliverable.Name == "" {
		http.Error(w, "Deliverable name is required", http.StatusBadRequest)
		return
	}

	if err := e.repo.CreateProjectDeliverable(r.Context(), &deliverable); err != nil {
		writeServiceError(w, err, "Failed to create deliverable")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"deliverable": deliverable})
}

func (e *ProjectEndpoints) UpdateDeliverableHandler(w http.ResponseWriter, r *http.Request) {
	deliverable, err := e.repo.GetProjectDeliverable(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "deliverableID"))
	if err != nil {
		http.Error(w, "Failed to get deliverable", http.StatusInternalServerError)
		return
	}
	if deliverable == nil {
		http.Error(w, "Deliverable not found", http.StatusNotFound)
		return
	}

	var req DeliverableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.apply(deliverable)

	if err := e.repo.UpdateProjectDeliverable(r.Context(), deliverable); err != nil {
		writeServiceError(w, err, "Failed to update deliverable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deliverable": deliverable})
}

func (e *ProjectEndpoints) DeleteDeliverableHandler(w http.ResponseWriter, r *http.Request) {
	deliverable, err := e.repo.GetProjectDeliverable(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "deliverableID"))
	if err != nil {
		http.Error(w, "Failed to get deliverable", http.StatusInternalServerError)
		return
	}
	if deliverable == nil {
		http.Error(w, "Deliverable not found", http.StatusNotFound)
		return
	}

	if err := e.repo.DeleteProjectDeliverable(r.Context(), deliverable.ID); err != nil {
		writeServiceError(w, err, "Failed to delete deliverable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deliverable deleted"})
}

func (req *TaskRequest) apply(task *models.ProjectTask) {
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssignedToID != nil {
		task.AssignedToID = req.AssignedToID
	}
	if req.State != nil {
		task.State = *req.State
	}
}

func (e *ProjectEndpoints) CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	task := models.ProjectTask{PhaseID: chi.URLParam(r, "phaseID")}
	req.apply(&task)
	if task.Name == "" {
		http.Error(w, "Task name is required", http.StatusBadRequest)
		return
	}

	if err := e.repo.CreateProjectTask(r.Context(), &task); err != nil {
		writeServiceError(w, err, "Failed to create task")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"task": task})
}

func (e *ProjectEndpoints) UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	task, err := e.repo.GetProjectTask(r.Context(), chi.URLParam(r, "phaseID"), chi.URLParam(r, "taskID"))
	if err != nil {
		http.Error(w, "Failed to get task", http.StatusInternalServerError)
		return
	}
	if task == nil {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.apply(task)

	if err := e.repo.UpdateProjectTask(r.Context(), task); err != nil {
		writeServiceError(w, err, "Failed to update task")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

func (e *ProjectEndpoints) DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	task, err := e.repo.GetProjectTask(r.Context(), chi.URLParam(r, "phaseID"), chi.URLParam(r, "taskID"))
	if err != nil {
		http.Error(w, "Failed to get task", http.StatusInternalServerError)
		return
	}
	if task == nil {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}

	if err := e.repo.DeleteProjectTask(r.Context(), task.ID); err != nil {
		writeServiceError(w, err, "Failed to delete task")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}
