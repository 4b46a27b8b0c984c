package models

import (
	"time"

	"gorm.io/gorm"
)

// Maturity levels derived from the digital maturity score
const (
	MaturityBeginner   = "beginner"
	MaturityDeveloping = "developing"
	MaturityProficient = "proficient"
	MaturityAdvanced   = "advanced"
	MaturityExpert     = "expert"
)

// Client is a consulting client company. The maturity fields and the
// latest assessment/project snapshots are stored rollups, recomputed
// inside the same transaction as any mutation they depend on.
type Client struct {
	ID            string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	IndustryType  string     `gorm:"size:50;not null;check:industry_type IN ('manufacturing', 'retail', 'finance', 'healthcare', 'education', 'technology', 'construction', 'logistics', 'other')" json:"industry_type"`
	CompanySize   string     `gorm:"size:50;not null;check:company_size IN ('startup', 'small', 'medium', 'large', 'enterprise')" json:"company_size"`
	AnnualRevenue float64    `gorm:"default:0" json:"annual_revenue"`
	CurrentERP    string     `gorm:"size:255" json:"current_erp,omitempty"`
	TechStack     string     `gorm:"type:text" json:"tech_stack,omitempty"`
	CloudAdoption string     `gorm:"size:50;default:'none';check:cloud_adoption IN ('none', 'basic', 'hybrid', 'full')" json:"cloud_adoption"`
	Status        string     `gorm:"size:50;default:'prospect';check:status IN ('prospect', 'assessment', 'proposal', 'active', 'completed', 'inactive')" json:"status"`
	OnboardingDate *time.Time `json:"onboarding_date,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`

	// Derived maturity metrics (0-100 score bucketed into five levels)
	DigitalMaturityScore float64 `gorm:"type:decimal(5,2);default:0" json:"digital_maturity_score"`
	MaturityLevel        string  `gorm:"size:20;default:'beginner'" json:"maturity_level"`

	// Snapshot of the latest assessment by assessment date, regardless of state
	LatestAssessmentDate  *time.Time `json:"latest_assessment_date,omitempty"`
	LatestAssessmentState string     `gorm:"size:20" json:"latest_assessment_state,omitempty"`
	LatestAssessmentScore float64    `gorm:"type:decimal(5,2);default:0" json:"latest_assessment_score"`

	// Snapshot of the latest project by start date, regardless of state
	LatestProjectStartDate  *time.Time `json:"latest_project_start_date,omitempty"`
	LatestProjectTargetDate *time.Time `json:"latest_project_target_date,omitempty"`
	LatestProjectProgress   float64    `gorm:"type:decimal(5,2);default:0" json:"latest_project_progress"`
	LatestProjectState      string     `gorm:"size:20" json:"latest_project_state,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Assessments []Assessment `gorm:"foreignKey:ClientID" json:"assessments,omitempty"`
	Projects    []Project    `gorm:"foreignKey:ClientID" json:"projects,omitempty"`
}
