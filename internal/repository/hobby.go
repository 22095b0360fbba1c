package repository

import (
	"context"
	"errors"

	"hobbyverse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HobbyRepository defines persistence operations for hobby tags and the
// user-hobby association.
type HobbyRepository interface {
	Upsert(ctx context.Context, name string) (*models.Hobby, error)
	GetByName(ctx context.Context, name string) (*models.Hobby, error)
	ListNamesForUser(ctx context.Context, userID uint) ([]string, error)
	AddToUser(ctx context.Context, userID, hobbyID uint) error
	RemoveFromUser(ctx context.Context, userID, hobbyID uint) error
}

type hobbyRepository struct {
	db *gorm.DB
}

// NewHobbyRepository returns a new HobbyRepository implementation.
func NewHobbyRepository(db *gorm.DB) HobbyRepository {
	return &hobbyRepository{db: db}
}

// Upsert returns the hobby with the given exact name, creating it if absent.
// The insert uses ON CONFLICT DO NOTHING so concurrent callers racing on the
// same new name both land on the single surviving row.
func (r *hobbyRepository) Upsert(ctx context.Context, name string) (*models.Hobby, error) {
	return upsertHobby(r.db.WithContext(ctx), name)
}

// upsertHobby is the transaction-friendly core of Upsert.
func upsertHobby(tx *gorm.DB, name string) (*models.Hobby, error) {
	hobby := models.Hobby{Name: name}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&hobby).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	// A conflicting insert leaves ID zero; fetch the winner.
	if hobby.ID == 0 {
		if err := tx.Where("name = ?", name).First(&hobby).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
	}
	return &hobby, nil
}

func (r *hobbyRepository) GetByName(ctx context.Context, name string) (*models.Hobby, error) {
	var hobby models.Hobby
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&hobby).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &hobby, nil
}

func (r *hobbyRepository) ListNamesForUser(ctx context.Context, userID uint) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).Model(&models.Hobby{}).
		Select("hobbies.name").
		Joins("JOIN user_hobbies ON user_hobbies.hobby_id = hobbies.id").
		Where("user_hobbies.user_id = ?", userID).
		Order("hobbies.name").
		Scan(&names).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return names, nil
}

func (r *hobbyRepository) AddToUser(ctx context.Context, userID, hobbyID uint) error {
	link := models.UserHobby{UserID: userID, HobbyID: hobbyID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *hobbyRepository) RemoveFromUser(ctx context.Context, userID, hobbyID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND hobby_id = ?", userID, hobbyID).
		Delete(&models.UserHobby{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
