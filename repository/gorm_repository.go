package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/dtaccel/backend/models"
	"gorm.io/gorm"
)

type GORMRepository struct {
	db *gorm.DB
}

func NewGORMRepository(db *gorm.DB) *GORMRepository {
	return &GORMRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GORMRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.PermanentToken{},
		&models.Consultant{},
		&models.Skill{},
		&models.Client{},
		&models.AssessmentTemplate{},
		&models.Assessment{},
		&models.AssessmentLine{},
		&models.Project{},
		&models.ProjectPhase{},
		&models.ProjectMilestone{},
		&models.ProjectDeliverable{},
		&models.ProjectTask{},
	)
}

// Transaction runs fn inside one database transaction. Every mutation that
// touches a rollup input goes through here so derived fields are committed
// together with the change that invalidated them.
func (r *GORMRepository) Transaction(ctx context.Context, fn func(tx *GORMRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GORMRepository{db: tx})
	})
}

// User operations
func (r *GORMRepository) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		slog.Error("Failed to create user", "error", err)
		return err
	}
	slog.Info("User created", "user_id", user.ID, "email", user.Email)
	return nil
}

func (r *GORMRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get user by email", "error", err, "email", email)
		return nil, err
	}
	return &user, nil
}

func (r *GORMRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get user by ID", "error", err, "user_id", id)
		return nil, err
	}
	return &user, nil
}

// Token operations
func (r *GORMRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		slog.Error("Failed to create refresh token", "error", err)
		return err
	}
	return nil
}

func (r *GORMRepository) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var refreshToken models.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ? AND expires_at > ?", token, time.Now()).First(&refreshToken).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get refresh token", "error", err)
		return nil, err
	}
	return &refreshToken, nil
}

func (r *GORMRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.RefreshToken{}).Error; err != nil {
		slog.Error("Failed to delete refresh token", "error", err)
		return err
	}
	return nil
}

func (r *GORMRepository) CreatePermanentToken(ctx context.Context, token *models.PermanentToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		slog.Error("Failed to create permanent token", "error", err)
		return err
	}
	return nil
}

func (r *GORMRepository) GetPermanentToken(ctx context.Context, token string) (*models.PermanentToken, error) {
	var permanentToken models.PermanentToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&permanentToken).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		slog.Error("Failed to get permanent token", "error", err)
		return nil, err
	}
	return &permanentToken, nil
}

func (r *GORMRepository) DeletePermanentToken(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.PermanentToken{}).Error; err != nil {
		slog.Error("Failed to delete permanent token", "error", err)
		return err
	}
	return nil
}

func (r *GORMRepository) DeleteAllUserTokens(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error; err != nil {
		slog.Error("Failed to delete user refresh tokens", "error", err, "user_id", userID)
		return err
	}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.PermanentToken{}).Error; err != nil {
		slog.Error("Failed to delete user permanent tokens", "error", err, "user_id", userID)
		return err
	}
	return nil
}
