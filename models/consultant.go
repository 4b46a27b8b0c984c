package models

import (
	"time"

	"gorm.io/gorm"
)

// Consultant is an independently owned staffing resource. It is only
// referenced by assessments and projects, never cascade-deleted with them.
type Consultant struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Title      string `gorm:"size:255" json:"title,omitempty"`
	Department string `gorm:"size:50;check:department IN ('', 'consulting', 'technical', 'project_management', 'business_analysis', 'change_management')" json:"department,omitempty"`
	SeniorityLevel string `gorm:"size:50;default:'consultant';check:seniority_level IN ('junior', 'consultant', 'senior', 'principal', 'partner')" json:"seniority_level"`

	HourlyRate          float64 `gorm:"default:0" json:"hourly_rate"`
	SpecializationAreas string  `gorm:"type:text" json:"specialization_areas,omitempty"`

	Availability       string  `gorm:"size:50;default:'available';check:availability IN ('available', 'busy', 'partially_available', 'unavailable')" json:"availability"`
	CapacityPercentage float64 `gorm:"default:100" json:"capacity_percentage"`

	Email  string `gorm:"size:255" json:"email,omitempty"`
	Phone  string `gorm:"size:50" json:"phone,omitempty"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Skills []Skill `gorm:"many2many:consultant_skills" json:"skills,omitempty"`
}

// ConsultantStats holds the workload metrics derived on read from the
// project tables. A consultant managing a project who is also listed as a
// team member counts in both totals; that matches how the business reads
// "participated".
type ConsultantStats struct {
	ProjectsManaged       int64   `json:"projects_managed"`
	ProjectsParticipated  int64   `json:"projects_participated"`
	ClientSatisfactionAvg float64 `json:"client_satisfaction_avg"`
}

// Skill is a catalog entry for consultant skills and certifications.
type Skill struct {
	ID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Category    string `gorm:"size:50;not null;check:category IN ('technical', 'functional', 'industry', 'soft_skills', 'certification')" json:"category"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
