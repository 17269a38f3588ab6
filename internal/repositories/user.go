package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/flashnote-app/flashnote/internal/models"
	"gorm.io/gorm"
)

// UserRepository owns user records and credential checks.
type UserRepository interface {
	Register(ctx context.Context, email, rawPassword string) (*models.User, error)
	VerifyCredentials(ctx context.Context, email, rawPassword string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository backed by db.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Register(ctx context.Context, email, rawPassword string) (*models.User, error) {
	if !models.ValidEmail(email) {
		return nil, models.ValidationError("Please provide a valid email address.")
	}
	if len(rawPassword) < models.MinPasswordLength {
		return nil, models.ValidationError("Password must be at least 6 characters long.")
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if count > 0 {
		return nil, models.ErrDuplicateEmail
	}

	user := models.User{Email: email}
	user.SetPassword(rawPassword)
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) VerifyCredentials(ctx context.Context, email, rawPassword string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if !user.CheckPassword(rawPassword) {
		return nil, models.ErrInvalidCredentials
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", id, err)
	}
	return &user, nil
}
