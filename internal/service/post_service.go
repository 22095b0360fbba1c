// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"log/slog"
	"strings"

	"hobbyverse/internal/middleware"
	"hobbyverse/internal/models"
	"hobbyverse/internal/notifications"
	"hobbyverse/internal/repository"
)

// PostService implements post creation, feeds, reactions, and sharing.
type PostService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	social   repository.SocialRepository
	notifier *notifications.Notifier
}

// NewPostService creates a new PostService.
func NewPostService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	social repository.SocialRepository,
	notifier *notifications.Notifier,
) *PostService {
	return &PostService{posts: posts, comments: comments, social: social, notifier: notifier}
}

// notify persists a notification for recipient and fans it out best-effort.
// Self-actions never notify: acting on your own content is not news.
func (s *PostService) notify(ctx context.Context, recipient, actor uint, typ models.NotificationType, postID uint) {
	if recipient == actor {
		return
	}

	notif := &models.Notification{
		UserID: recipient,
		Type:   typ,
		Data:   models.NotificationData{PostID: postID, From: actor}.Encode(),
	}
	if err := s.social.CreateNotification(ctx, notif); err != nil {
		slog.WarnContext(ctx, "failed to create notification",
			slog.String("type", string(typ)),
			slog.Uint64("recipient", uint64(recipient)),
			slog.String("error", err.Error()),
		)
		return
	}
	middleware.NotificationsCreated.WithLabelValues(string(typ)).Inc()

	if err := s.notifier.PublishNotification(ctx, notif); err != nil {
		slog.WarnContext(ctx, "failed to publish notification", slog.String("error", err.Error()))
	}
}

// CreatePost creates a post with its hobby tags in one transaction.
func (s *PostService) CreatePost(ctx context.Context, userID uint, content, image string, hobbies []string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Content is required.")
	}

	post := &models.Post{
		UserID:  userID,
		Content: content,
		Image:   image,
	}
	if err := s.posts.CreateWithHobbies(ctx, post, hobbies); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns the feed, optionally filtered by owner or hobby.
func (s *PostService) ListPosts(ctx context.Context, filter repository.PostFilter) ([]models.Post, error) {
	return s.posts.List(ctx, filter)
}

// LikePost records the like and notifies the post owner. Liking again keeps
// a single row and stays silent; only a fresh insert notifies.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	inserted, err := s.posts.Like(ctx, userID, postID)
	if err != nil {
		return err
	}
	if inserted {
		s.notify(ctx, post.UserID, userID, models.NotificationTypeLike, postID)
	}
	return nil
}

// CommentOnPost adds a comment and notifies the post owner.
func (s *PostService) CommentOnPost(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Content is required.")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	s.notify(ctx, post.UserID, userID, models.NotificationTypeComment, postID)
	return comment, nil
}

// ListComments returns a post's comments oldest first with author fields.
func (s *PostService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// SharePost re-posts the source under the caller's name.
func (s *PostService) SharePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	return s.posts.Share(ctx, userID, postID)
}

// LikesCount returns a per-post like tally for the requested ids. An empty
// request short-circuits to an empty map without touching the store.
func (s *PostService) LikesCount(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return s.posts.LikesCount(ctx, ids)
}

// CommentsCount returns a per-post comment tally.
func (s *PostService) CommentsCount(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return s.posts.CommentsCount(ctx, ids)
}

// SharesCount tallies posts that name each id as their share origin.
func (s *PostService) SharesCount(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return s.posts.SharesCount(ctx, ids)
}

// LikedByUser reports which of the posts the caller has liked.
func (s *PostService) LikedByUser(ctx context.Context, userID uint, ids []uint) (map[uint]bool, error) {
	return s.posts.LikedByUser(ctx, userID, ids)
}
