package service

import (
	"context"
	"log/slog"

	"hobbyverse/internal/middleware"
	"hobbyverse/internal/models"
	"hobbyverse/internal/notifications"
	"hobbyverse/internal/repository"
)

// SocialService implements the follow graph and the notification inbox.
type SocialService struct {
	social   repository.SocialRepository
	notifier *notifications.Notifier
}

// NewSocialService creates a new SocialService.
func NewSocialService(social repository.SocialRepository, notifier *notifications.Notifier) *SocialService {
	return &SocialService{social: social, notifier: notifier}
}

// FollowUser records the follow edge and notifies the followee. Following
// yourself stores the edge the caller asked for but stays silent.
func (s *SocialService) FollowUser(ctx context.Context, followerID, followingID uint) error {
	if err := s.social.Follow(ctx, followerID, followingID); err != nil {
		return err
	}

	if followerID == followingID {
		return nil
	}

	notif := &models.Notification{
		UserID: followingID,
		Type:   models.NotificationTypeFollow,
		Data:   models.NotificationData{From: followerID}.Encode(),
	}
	if err := s.social.CreateNotification(ctx, notif); err != nil {
		slog.WarnContext(ctx, "failed to create follow notification",
			slog.Uint64("recipient", uint64(followingID)),
			slog.String("error", err.Error()),
		)
		return nil
	}
	middleware.NotificationsCreated.WithLabelValues(string(models.NotificationTypeFollow)).Inc()

	if err := s.notifier.PublishNotification(ctx, notif); err != nil {
		slog.WarnContext(ctx, "failed to publish follow notification", slog.String("error", err.Error()))
	}
	return nil
}

// UnfollowUser removes the edge; removing a missing edge still succeeds.
func (s *SocialService) UnfollowUser(ctx context.Context, followerID, followingID uint) error {
	return s.social.Unfollow(ctx, followerID, followingID)
}

// FollowingIDs returns the ids the user follows.
func (s *SocialService) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.social.FollowingIDs(ctx, userID)
}

// FollowingDetails returns the public view of everyone the user follows.
func (s *SocialService) FollowingDetails(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return s.social.FollowingDetails(ctx, userID)
}

// FollowersDetails returns the public view of the user's followers.
func (s *SocialService) FollowersDetails(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return s.social.FollowersDetails(ctx, userID)
}

// ListNotifications returns the caller's inbox newest first.
func (s *SocialService) ListNotifications(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.social.ListNotifications(ctx, userID)
}

// MarkNotificationRead marks one of the caller's notifications as read.
func (s *SocialService) MarkNotificationRead(ctx context.Context, userID, notificationID uint) error {
	return s.social.MarkNotificationRead(ctx, userID, notificationID)
}
