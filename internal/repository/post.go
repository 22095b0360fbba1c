package repository

import (
	"context"
	"errors"

	"hobbyverse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostFilter narrows the post listing. Zero values mean no filtering.
type PostFilter struct {
	UserID uint
	Hobby  string
}

// PostRepository defines persistence operations for posts, likes, and the
// batch aggregate lookups backing the feed.
type PostRepository interface {
	CreateWithHobbies(ctx context.Context, post *models.Post, hobbies []string) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, filter PostFilter) ([]models.Post, error)
	Share(ctx context.Context, userID, postID uint) (*models.Post, error)
	Like(ctx context.Context, userID, postID uint) (bool, error)
	LikesCount(ctx context.Context, ids []uint) (map[uint]int64, error)
	CommentsCount(ctx context.Context, ids []uint) (map[uint]int64, error)
	SharesCount(ctx context.Context, ids []uint) (map[uint]int64, error)
	LikedByUser(ctx context.Context, userID uint, ids []uint) (map[uint]bool, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// CreateWithHobbies inserts the post and its hobby links in one transaction.
// Hobby rows are created lazily by exact name.
func (r *postRepository) CreateWithHobbies(ctx context.Context, post *models.Post, hobbies []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, name := range hobbies {
			hobby, err := upsertHobby(tx, name)
			if err != nil {
				return err
			}
			link := models.PostHobby{PostID: post.ID, HobbyID: hobby.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found.")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// List returns posts newest first with the author row preloaded for
// rendering. An owner filter takes precedence; the hobby filter applies only
// when no owner is given.
func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	posts := []models.Post{}

	q := r.db.WithContext(ctx).Model(&models.Post{}).Preload("User")
	switch {
	case filter.UserID != 0:
		q = q.Where("posts.user_id = ?", filter.UserID)
	case filter.Hobby != "":
		q = q.Joins("JOIN post_hobbies ON post_hobbies.post_id = posts.id").
			Joins("JOIN hobbies ON hobbies.id = post_hobbies.hobby_id").
			Where("hobbies.name = ?", filter.Hobby)
	}

	if err := q.Order("posts.created_at DESC, posts.id DESC").Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Share copies the source post under a new owner inside one transaction. The
// copy records its origin in shared_from_id and inherits the source's hobby
// links so it surfaces in the same hobby feeds.
func (r *postRepository) Share(ctx context.Context, userID, postID uint) (*models.Post, error) {
	var shared models.Post

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var source models.Post
		if err := tx.First(&source, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post not found.")
			}
			return err
		}

		origin := source.ID
		shared = models.Post{
			UserID:       userID,
			Content:      source.Content,
			Image:        source.Image,
			SharedFromID: &origin,
		}
		if err := tx.Create(&shared).Error; err != nil {
			return err
		}

		var links []models.PostHobby
		if err := tx.Where("post_id = ?", source.ID).Find(&links).Error; err != nil {
			return err
		}
		for _, l := range links {
			copied := models.PostHobby{PostID: shared.ID, HobbyID: l.HobbyID}
			if err := tx.Create(&copied).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, models.NewInternalError(err)
	}
	return &shared, nil
}

// Like records the like if it is not already present. Repeats are silent
// no-ops thanks to the unique (user_id, post_id) pair. Returns whether a new
// row was inserted so callers can skip side effects on repeats.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) (bool, error) {
	like := models.Like{UserID: userID, PostID: postID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

type idCount struct {
	PostID uint  `gorm:"column:post_id"`
	N      int64 `gorm:"column:n"`
}

// LikesCount and CommentsCount are sparse: ids with no rows stay absent and
// callers zero-fill.
func (r *postRepository) LikesCount(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return r.countBy(ctx, &models.Like{}, "post_id", ids)
}

func (r *postRepository) CommentsCount(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return r.countBy(ctx, &models.Comment{}, "post_id", ids)
}

// SharesCount counts posts whose shared_from_id points at each id. An exact
// edge lookup, so unrelated posts with identical text never collide. Unlike
// the sparse tallies, every requested id appears in the result, zero when
// nothing points at it.
func (r *postRepository) SharesCount(ctx context.Context, ids []uint) (map[uint]int64, error) {
	counts, err := r.countBy(ctx, &models.Post{}, "shared_from_id", ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := counts[id]; !ok {
			counts[id] = 0
		}
	}
	return counts, nil
}

func (r *postRepository) countBy(ctx context.Context, model interface{}, column string, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []idCount
	err := r.db.WithContext(ctx).Model(model).
		Select(column+" AS post_id, COUNT(*) AS n").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	for _, row := range rows {
		counts[row.PostID] = row.N
	}
	return counts, nil
}

// LikedByUser reports for every requested post whether the user has liked
// it. Posts the user has not liked come back explicitly false.
func (r *postRepository) LikedByUser(ctx context.Context, userID uint, ids []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return liked, nil
	}
	for _, id := range ids {
		liked[id] = false
	}

	var postIDs []uint
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, ids).
		Pluck("post_id", &postIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	for _, id := range postIDs {
		liked[id] = true
	}
	return liked, nil
}
