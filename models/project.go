package models

import (
	"time"

	"gorm.io/gorm"
)

// Project states
const (
	ProjectDraft      = "draft"
	ProjectInProgress = "in_progress"
	ProjectOnHold     = "on_hold"
	ProjectCompleted  = "completed"
	ProjectCancelled  = "cancelled"
)

// Phase, milestone and deliverable states
const (
	PhaseNotStarted = "not_started"
	PhaseInProgress = "in_progress"
	PhaseCompleted  = "completed"
	PhaseBlocked    = "blocked"
)

// Task states
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskDone       = "done"
	TaskBlocked    = "blocked"
)

// Project is a transformation engagement for one client. Progress is a
// stored rollup (mean of phase progress), recomputed whenever a phase
// changes.
type Project struct {
	ID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	ClientID    string  `gorm:"type:uuid;not null;index" json:"client_id"`
	AssessmentID *string `gorm:"type:uuid;index" json:"assessment_id,omitempty"` // Optional source assessment
	ProjectManagerID *string `gorm:"type:uuid;index" json:"project_manager_id,omitempty"`

	StartDate            *time.Time `json:"start_date,omitempty"`
	TargetCompletionDate *time.Time `json:"target_completion_date,omitempty"`
	ActualCompletionDate *time.Time `json:"actual_completion_date,omitempty"`

	Progress float64 `gorm:"type:decimal(5,2);default:0" json:"progress"`
	State    string  `gorm:"size:20;not null;default:'draft';check:state IN ('draft', 'in_progress', 'on_hold', 'completed', 'cancelled')" json:"state"`

	EstimatedBudget float64 `gorm:"default:0" json:"estimated_budget"`
	ActualBudget    float64 `gorm:"default:0" json:"actual_budget"`

	Objectives      string `gorm:"type:text" json:"objectives,omitempty"`
	Scope           string `gorm:"type:text" json:"scope,omitempty"`
	Risks           string `gorm:"type:text" json:"risks,omitempty"`
	MitigationPlans string `gorm:"type:text" json:"mitigation_plans,omitempty"`
	RiskLevel       string `gorm:"size:50" json:"risk_level,omitempty"`
	DurationMonths  int    `gorm:"default:0" json:"duration_months"`

	SatisfactionScore float64 `gorm:"type:decimal(5,2);default:0" json:"satisfaction_score"` // 0 = not yet rated
	ClientFeedback    string  `gorm:"type:text" json:"client_feedback,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Client         Client               `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Assessment     *Assessment          `gorm:"foreignKey:AssessmentID" json:"assessment,omitempty"`
	ProjectManager *Consultant          `gorm:"foreignKey:ProjectManagerID" json:"project_manager,omitempty"`
	Phases         []ProjectPhase       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"phases,omitempty"`
	Milestones     []ProjectMilestone   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"milestones,omitempty"`
	Deliverables   []ProjectDeliverable `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"deliverables,omitempty"`
	Consultants    []Consultant         `gorm:"many2many:project_consultants" json:"consultants,omitempty"`
	TeamMembers    []Consultant         `gorm:"many2many:project_team_members" json:"team_members,omitempty"`
}

// ProjectPhase is a coarse execution stage. Progress is entered directly
// on the phase, not derived from its tasks.
type ProjectPhase struct {
	ID            string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID     string     `gorm:"type:uuid;not null;index" json:"project_id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Sequence      int        `gorm:"default:1" json:"sequence"`
	Weight        int        `gorm:"default:0" json:"weight"` // Percent share of the project
	Progress      float64    `gorm:"type:decimal(5,2);default:0" json:"progress"`
	State         string     `gorm:"size:20;not null;default:'not_started';check:state IN ('not_started', 'in_progress', 'completed', 'blocked')" json:"state"`
	ResponsibleID *string    `gorm:"type:uuid" json:"responsible_id,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Project     Project       `gorm:"foreignKey:ProjectID" json:"-"`
	Responsible *Consultant   `gorm:"foreignKey:ResponsibleID" json:"responsible,omitempty"`
	Tasks       []ProjectTask `gorm:"foreignKey:PhaseID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

type ProjectMilestone struct {
	ID          string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID   string     `gorm:"type:uuid;not null;index" json:"project_id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	ActualDate  *time.Time `json:"actual_date,omitempty"`
	Achieved    bool       `gorm:"default:false" json:"achieved"`
	Importance  string     `gorm:"size:20;check:importance IN ('', 'low', 'medium', 'high')" json:"importance,omitempty"`
	State       string     `gorm:"size:20;not null;default:'not_started';check:state IN ('not_started', 'in_progress', 'completed', 'blocked')" json:"state"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}

type ProjectDeliverable struct {
	ID            string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID     string     `gorm:"type:uuid;not null;index" json:"project_id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`
	Delivered     bool       `gorm:"default:false" json:"delivered"`
	DocumentURL   string     `gorm:"size:500" json:"document_url,omitempty"`
	ResponsibleID *string    `gorm:"type:uuid" json:"responsible_id,omitempty"`
	State         string     `gorm:"size:20;not null;default:'not_started';check:state IN ('not_started', 'in_progress', 'completed', 'blocked')" json:"state"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Project     Project     `gorm:"foreignKey:ProjectID" json:"-"`
	Responsible *Consultant `gorm:"foreignKey:ResponsibleID" json:"responsible,omitempty"`
}

type ProjectTask struct {
	ID           string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PhaseID      string  `gorm:"type:uuid;not null;index" json:"phase_id"`
	Name         string  `gorm:"size:255;not null" json:"name"`
	Description  string  `gorm:"type:text" json:"description,omitempty"`
	AssignedToID *string `gorm:"type:uuid" json:"assigned_to_id,omitempty"`
	State        string  `gorm:"size:20;not null;default:'todo';check:state IN ('todo', 'in_progress', 'done', 'blocked')" json:"state"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Phase      ProjectPhase `gorm:"foreignKey:PhaseID" json:"-"`
	AssignedTo *Consultant  `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}
