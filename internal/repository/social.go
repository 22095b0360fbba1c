package repository

import (
	"context"

	"hobbyverse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SocialRepository defines persistence operations for the follow graph and
// the notification inbox.
type SocialRepository interface {
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	FollowingDetails(ctx context.Context, userID uint) ([]models.UserSummary, error)
	FollowersDetails(ctx context.Context, userID uint) ([]models.UserSummary, error)
	CreateNotification(ctx context.Context, notif *models.Notification) error
	ListNotifications(ctx context.Context, userID uint) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID uint) error
}

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository returns a new SocialRepository implementation.
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

// Follow inserts the directed edge. Repeat follows collapse into the
// existing row via the unique pair index.
func (r *socialRepository) Follow(ctx context.Context, followerID, followingID uint) error {
	edge := models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Unfollow deletes the edge if present. Deleting a missing edge succeeds.
func (r *socialRepository) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *socialRepository) FollowingDetails(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return r.edgeDetails(ctx, "follows.follower_id = ?", "users.id = follows.following_id", userID)
}

func (r *socialRepository) FollowersDetails(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return r.edgeDetails(ctx, "follows.following_id = ?", "users.id = follows.follower_id", userID)
}

func (r *socialRepository) edgeDetails(ctx context.Context, where, join string, userID uint) ([]models.UserSummary, error) {
	results := []models.UserSummary{}
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("users.id, users.name, users.profile_picture").
		Joins("JOIN follows ON "+join).
		Where(where, userID).
		Scan(&results).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return results, nil
}

func (r *socialRepository) CreateNotification(ctx context.Context, notif *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notif).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) ListNotifications(ctx context.Context, userID uint) ([]models.Notification, error) {
	notifs := []models.Notification{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&notifs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifs, nil
}

// MarkNotificationRead flips is_read on the caller's own notification. The
// update is scoped to the recipient, so ids belonging to someone else, or to
// nothing at all, are quiet no-ops rather than errors.
func (r *socialRepository) MarkNotificationRead(ctx context.Context, userID, notificationID uint) error {
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
