// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"hobbyverse/internal/cache"
	"hobbyverse/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Stats(ctx context.Context, id uint) (*models.UserStats, error)
	FindByHobby(ctx context.Context, hobby string, excludeUserID uint) ([]models.UserSummary, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User not found.")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Email already in use.")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; sqlite reports the column.
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// Stats derives the profile counters by aggregate query. Counts are never
// stored on the user row.
func (r *userRepository) Stats(ctx context.Context, id uint) (*models.UserStats, error) {
	var stats models.UserStats

	if err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("following_id = ?", id).Count(&stats.Followers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ?", id).Count(&stats.Following).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("user_id = ?", id).Count(&stats.Posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return &stats, nil
}

// FindByHobby returns the public view of every user tagged with the hobby,
// matched by exact name and excluding the caller.
func (r *userRepository) FindByHobby(ctx context.Context, hobby string, excludeUserID uint) ([]models.UserSummary, error) {
	results := []models.UserSummary{}
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("users.id, users.name, users.profile_picture").
		Joins("JOIN user_hobbies ON user_hobbies.user_id = users.id").
		Joins("JOIN hobbies ON hobbies.id = user_hobbies.hobby_id").
		Where("hobbies.name = ? AND users.id <> ?", hobby, excludeUserID).
		Scan(&results).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return results, nil
}
