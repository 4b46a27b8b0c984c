package services

import (
	"context"

	"github.com/dtaccel/backend/models"
	"github.com/dtaccel/backend/repository"
)

// ValidateClient enforces the client write-time invariants.
func ValidateClient(client *models.Client) error {
	if client.Name == "" {
		return NewValidationError("Company name is required")
	}
	if client.IndustryType == "" {
		return NewValidationError("Industry is required")
	}
	if client.CompanySize == "" {
		return NewValidationError("Company size is required")
	}
	if client.AnnualRevenue < 0 {
		return NewValidationError("Annual revenue cannot be negative")
	}
	return nil
}

// ClientService owns client profiles. Derived maturity fields are never
// written directly here; they are refreshed by the assessment and project
// services through the shared rollup helpers.
type ClientService struct {
	repo *repository.GORMRepository
}

func NewClientService(repo *repository.GORMRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) Create(ctx context.Context, client *models.Client) error {
	if err := ValidateClient(client); err != nil {
		return err
	}
	if client.CloudAdoption == "" {
		client.CloudAdoption = "none"
	}
	if client.Status == "" {
		client.Status = "prospect"
	}
	client.MaturityLevel = models.MaturityBeginner
	return s.repo.CreateClient(ctx, client)
}

func (s *ClientService) Update(ctx context.Context, client *models.Client) error {
	if err := ValidateClient(client); err != nil {
		return err
	}
	return s.repo.UpdateClient(ctx, client)
}

// Delete removes a client together with the assessments and projects it
// exclusively owns.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx *repository.GORMRepository) error {
		assessments, err := tx.GetClientAssessments(ctx, id)
		if err != nil {
			return err
		}
		for i := range assessments {
			if err := tx.DeleteAssessment(ctx, assessments[i].ID); err != nil {
				return err
			}
		}

		projects, err := tx.GetClientProjects(ctx, id)
		if err != nil {
			return err
		}
		for i := range projects {
			if err := tx.DeleteProject(ctx, projects[i].ID); err != nil {
				return err
			}
		}

		return tx.DeleteClient(ctx, id)
	})
}
