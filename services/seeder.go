package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
	"golang.org/x/crypto/bcrypt"
)

// DatabaseSeeder handles database seeding operations
type DatabaseSeeder struct {
	repo *repository.GORMRepository
}

// NewDatabaseSeeder creates a new database seeder
func NewDatabaseSeeder(repo *repository.GORMRepository) *DatabaseSeeder {
	return &DatabaseSeeder{repo: repo}
}

// SeedDatabase seeds the database with initial data (idempotent)
func (s *DatabaseSeeder) SeedDatabase() error {
	ctx := context.Background()

	if s.isSeedingComplete(ctx) {
		slog.Info("Database seeding already completed, skipping")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	users := []models.User{
		{
			Email:    "admin@example.com",
			Password: string(hashedPassword),
			FullName: "Admin User",
			Role:     "admin",
		},
		{
			Email:    "consultant@example.com",
			Password: string(hashedPassword),
			FullName: "Demo Consultant",
			Role:     "consultant",
		},
	}

	for _, user := range users {
		if err := s.seedUser(ctx, user); err != nil {
			slog.Error("Failed to seed user", "email", user.Email, "error", err)
		}
	}

	for _, skill := range defaultSkills() {
		if err := s.seedSkill(ctx, skill); err != nil {
			slog.Error("Failed to seed skill", "name", skill.Name, "error", err)
		}
	}

	for _, template := range defaultTemplates() {
		if err := s.repo.CreateAssessmentTemplate(ctx, &template); err != nil {
			slog.Error("Failed to seed template", "name", template.Name, "error", err)
		}
	}

	slog.Info("Database seeding completed successfully")
	return nil
}

// isSeedingComplete checks if seeding has already been completed. The
// template bank only exists once seeded, so its count is the marker.
func (s *DatabaseSeeder) isSeedingComplete(ctx context.Context) bool {
	count, err := s.repo.CountAssessmentTemplates(ctx)
	if err != nil {
		return false
	}
	return count > 0
}

// seedUser seeds a single user (idempotent)
func (s *DatabaseSeeder) seedUser(ctx context.Context, user models.User) error {
	existingUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("error checking user %s: %w", user.Email, err)
	}
	if existingUser != nil {
		slog.Info("User already exists, skipping", "email", user.Email)
		return nil
	}

	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}

	slog.Info("Created user", "email", user.Email)
	return nil
}

// seedSkill seeds a single skill (idempotent by name)
func (s *DatabaseSeeder) seedSkill(ctx context.Context, skill models.Skill) error {
	existing, err := s.repo.GetSkills(ctx, false)
	if err != nil {
		return fmt.Errorf("error checking skills: %w", err)
	}
	for _, e := range existing {
		if e.Name == skill.Name {
			return nil
		}
	}

	if err := s.repo.CreateSkill(ctx, &skill); err != nil {
		return fmt.Errorf("failed to create skill %s: %w", skill.Name, err)
	}

	slog.Info("Created skill", "name", skill.Name)
	return nil
}

func defaultSkills() []models.Skill {
	return []models.Skill{
		{Name: "Cloud Architecture", Category: "technical", Description: "Designing and migrating workloads to cloud platforms"},
		{Name: "Data Analytics", Category: "technical", Description: "Building reporting and analytics capabilities"},
		{Name: "Cybersecurity", Category: "technical", Description: "Security posture assessment and remediation"},
		{Name: "Process Mining", Category: "functional", Description: "Discovering and optimizing business processes from event data"},
		{Name: "ERP Implementation", Category: "functional", Description: "Enterprise resource planning rollouts"},
		{Name: "Manufacturing Operations", Category: "industry", Description: "Production and supply chain domain knowledge"},
		{Name: "Financial Services", Category: "industry", Description: "Banking and insurance domain knowledge"},
		{Name: "Stakeholder Management", Category: "soft_skills", Description: "Executive communication and alignment"},
		{Name: "Workshop Facilitation", Category: "soft_skills", Description: "Running discovery and design workshops"},
		{Name: "PMP", Category: "certification", Description: "Project Management Professional certification"},
		{Name: "PROSCI Change Management", Category: "certification", Description: "Certified change management practitioner"},
	}
}

// defaultTemplates returns the standard question bank: five weighted
// questions per maturity category.
func defaultTemplates() []models.AssessmentTemplate {
	type q struct {
		text   string
		weight float64
	}
	byCategory := map[string][]q{
		models.CategoryTechnology: {
			{"How would you rate the organization's cloud adoption?", 2.0},
			{"How modern and integrated is the core application landscape?", 1.5},
			{"How mature are data management and analytics capabilities?", 1.5},
			{"How would you rate the cybersecurity posture?", 1.5},
			{"How automated is the IT infrastructure and its operations?", 1.0},
		},
		models.CategoryProcess: {
			{"How well documented and standardized are core business processes?", 1.5},
			{"To what degree are repetitive processes automated?", 2.0},
			{"How data-driven is operational decision making?", 1.5},
			{"How quickly can processes adapt to changing business needs?", 1.0},
			{"How well are processes measured with defined KPIs?", 1.0},
		},
		models.CategoryPeople: {
			{"How strong are digital skills across the workforce?", 2.0},
			{"How effective are training and upskilling programs?", 1.5},
			{"How digitally fluent is the leadership team?", 1.5},
			{"How well does the organization attract and retain digital talent?", 1.0},
			{"How widely are collaboration tools adopted in daily work?", 1.0},
		},
		models.CategoryCulture: {
			{"How open is the organization to change and experimentation?", 2.0},
			{"How clearly is a digital vision communicated from the top?", 1.5},
			{"How empowered are teams to make decisions autonomously?", 1.5},
			{"How tolerant is the culture of failure in innovation efforts?", 1.0},
			{"How well do departments collaborate across silos?", 1.0},
		},
	}

	var templates []models.AssessmentTemplate
	for _, category := range models.AssessmentCategories {
		for i, question := range byCategory[category] {
			templates = append(templates, models.AssessmentTemplate{
				Name:         question.text,
				Category:     category,
				QuestionText: question.text,
				Weight:       question.weight,
				Active:       true,
				Sequence:     (i + 1) * 10,
			})
		}
	}
	return templates
}
