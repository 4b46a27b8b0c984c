package models

import (
	"time"

	"gorm.io/gorm"
)

// The four fixed assessment categories
const (
	CategoryTechnology = "technology"
	CategoryProcess    = "process"
	CategoryPeople     = "people"
	CategoryCulture    = "culture"
)

// AssessmentCategories lists the categories in display order.
var AssessmentCategories = []string{
	CategoryTechnology,
	CategoryProcess,
	CategoryPeople,
	CategoryCulture,
}

// Assessment states
const (
	AssessmentDraft      = "draft"
	AssessmentInProgress = "in_progress"
	AssessmentReview     = "review"
	AssessmentCompleted  = "completed"
	AssessmentCancelled  = "cancelled"
)

// Assessment is a digital-maturity questionnaire instance for one client.
// Category scores, total score and progress are stored rollups over the
// assessment lines, recomputed whenever a line changes.
type Assessment struct {
	ID             string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	ClientID       string     `gorm:"type:uuid;not null;index" json:"client_id"`
	ConsultantID   string     `gorm:"type:uuid;not null;index" json:"consultant_id"`
	AssessmentDate time.Time  `gorm:"not null" json:"assessment_date"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	State          string     `gorm:"size:20;not null;default:'draft';check:state IN ('draft', 'in_progress', 'review', 'completed', 'cancelled')" json:"state"`

	// Stored category rollups (mean of line scores in category * 10)
	TechnologyScore float64 `gorm:"type:decimal(5,2);default:0" json:"technology_score"`
	ProcessScore    float64 `gorm:"type:decimal(5,2);default:0" json:"process_score"`
	PeopleScore     float64 `gorm:"type:decimal(5,2);default:0" json:"people_score"`
	CultureScore    float64 `gorm:"type:decimal(5,2);default:0" json:"culture_score"`

	// Mean of the category scores that are strictly above zero
	TotalScore float64 `gorm:"type:decimal(5,2);default:0" json:"total_score"`

	// Answered lines / total lines * 100
	Progress float64 `gorm:"type:decimal(5,2);default:0" json:"progress"`

	Recommendations   string  `gorm:"type:text" json:"recommendations,omitempty"`
	PriorityAreas     string  `gorm:"type:text" json:"priority_areas,omitempty"`
	EstimatedTimeline string  `gorm:"size:255" json:"estimated_timeline,omitempty"`
	EstimatedBudget   float64 `gorm:"default:0" json:"estimated_budget"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Client     Client           `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Consultant Consultant       `gorm:"foreignKey:ConsultantID" json:"consultant,omitempty"`
	Lines      []AssessmentLine `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
}

// AssessmentLine is one weighted question within an assessment.
// Answer 0 means unanswered; answered lines carry an ordinal 1-5.
type AssessmentLine struct {
	ID           string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AssessmentID string  `gorm:"type:uuid;not null;index" json:"assessment_id"`
	TemplateID   *string `gorm:"type:uuid" json:"template_id,omitempty"`
	Category     string  `gorm:"size:20;not null;check:category IN ('technology', 'process', 'people', 'culture')" json:"category"`
	QuestionText string  `gorm:"type:text;not null" json:"question_text"`
	Weight       float64 `gorm:"default:1" json:"weight"`
	Answer       int     `gorm:"default:0;check:answer >= 0 AND answer <= 5" json:"answer"`
	Score        float64 `gorm:"type:decimal(5,2);default:0" json:"score"` // answer * weight, 0 while unanswered
	Notes        string  `gorm:"type:text" json:"notes,omitempty"`
	Sequence     int     `gorm:"default:10" json:"sequence"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Assessment Assessment          `gorm:"foreignKey:AssessmentID" json:"-"`
	Template   *AssessmentTemplate `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
}

// Answered reports whether the line has been answered.
func (l *AssessmentLine) Answered() bool {
	return l.Answer > 0
}

// AssessmentTemplate is a catalog question. Active templates are copied
// into assessment lines when an assessment is started.
type AssessmentTemplate struct {
	ID           string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string  `gorm:"size:255;not null" json:"name"`
	Category     string  `gorm:"size:20;not null;check:category IN ('technology', 'process', 'people', 'culture')" json:"category"`
	QuestionText string  `gorm:"type:text;not null" json:"question_text"`
	Weight       float64 `gorm:"default:1" json:"weight"`
	Active       bool    `gorm:"default:true" json:"active"`
	Sequence     int     `gorm:"default:10" json:"sequence"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
