package repository

import (
	"context"
	"log/slog"

	"github.com/dtaccel/backend/models"
	"gorm.io/gorm"
)

// Client operations
func (r *GORMRepository) CreateClient(ctx context.Context, client *models.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		slog.Error("Failed to create client", "error", err)
		return err
	}
	slog.Info("Client created", "client_id", client.ID, "name", client.Name)
	return nil
}

func (r *GORMRepository) GetClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("name").Find(&clients).Error; err != nil {
		slog.Error("Failed to get clients", "error", err)
		return nil, err
	}
	return clients, nil
}

func (r *GORMRepository) GetClientByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get client by ID", "error", err, "client_id", id)
		return nil, err
	}
	return &client, nil
}

func (r *GORMRepository) UpdateClient(ctx context.Context, client *models.Client) error {
	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		slog.Error("Failed to update client", "error", err, "client_id", client.ID)
		return err
	}
	slog.Info("Client updated", "client_id", client.ID, "name", client.Name)
	return nil
}

func (r *GORMRepository) DeleteClient(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Client{}).Error; err != nil {
		slog.Error("Failed to delete client", "error", err, "client_id", id)
		return err
	}
	slog.Info("Client deleted", "client_id", id)
	return nil
}

// GetClientAssessments returns every assessment of a client, newest first.
func (r *GORMRepository) GetClientAssessments(ctx context.Context, clientID string) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("assessment_date DESC, id DESC").
		Find(&assessments).Error
	if err != nil {
		slog.Error("Failed to get client assessments", "error", err, "client_id", clientID)
		return nil, err
	}
	return assessments, nil
}

// GetClientProjects returns every project of a client, newest first.
func (r *GORMRepository) GetClientProjects(ctx context.Context, clientID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		slog.Error("Failed to get client projects", "error", err, "client_id", clientID)
		return nil, err
	}
	return projects, nil
}
