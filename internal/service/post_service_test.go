package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"hobbyverse/internal/database"
	"hobbyverse/internal/models"
	"hobbyverse/internal/notifications"
	"hobbyverse/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type serviceFixture struct {
	db     *gorm.DB
	posts  *PostService
	social *SocialService
	users  *UserService
}

func newFixture(t *testing.T) *serviceFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	socialRepo := repository.NewSocialRepository(db)
	userRepo := repository.NewUserRepository(db)
	hobbyRepo := repository.NewHobbyRepository(db)
	notifier := notifications.NewNotifier(nil)

	return &serviceFixture{
		db:     db,
		posts:  NewPostService(postRepo, commentRepo, socialRepo, notifier),
		social: NewSocialService(socialRepo, notifier),
		users:  NewUserService(userRepo, hobbyRepo),
	}
}

func (f *serviceFixture) user(t *testing.T, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com", Password: "hash"}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *serviceFixture) notificationsFor(t *testing.T, userID uint) []models.Notification {
	t.Helper()
	var notifs []models.Notification
	require.NoError(t, f.db.Where("user_id = ?", userID).Find(&notifs).Error)
	return notifs
}

func TestCreatePostRequiresContent(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")

	_, err := f.posts.CreatePost(context.Background(), alice.ID, "   ", "", nil)
	require.Error(t, err)
	assert.Equal(t, 400, models.StatusForError(err))
}

func TestLikeNotifiesOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	post, err := f.posts.CreatePost(ctx, alice.ID, "hello", "", []string{"chess"})
	require.NoError(t, err)

	require.NoError(t, f.posts.LikePost(ctx, bob.ID, post.ID))
	// Liking again keeps the single row and stays silent.
	require.NoError(t, f.posts.LikePost(ctx, bob.ID, post.ID))

	notifs := f.notificationsFor(t, alice.ID)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationTypeLike, notifs[0].Type)

	var data models.NotificationData
	require.NoError(t, decodeData(notifs[0].Data, &data))
	assert.Equal(t, post.ID, data.PostID)
	assert.Equal(t, bob.ID, data.From)

	// The actor gets nothing.
	assert.Empty(t, f.notificationsFor(t, bob.ID))
}

func TestSelfLikeSuppressed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.user(t, "alice")
	post, err := f.posts.CreatePost(ctx, alice.ID, "my post", "", nil)
	require.NoError(t, err)

	require.NoError(t, f.posts.LikePost(ctx, alice.ID, post.ID))
	assert.Empty(t, f.notificationsFor(t, alice.ID))
}

func TestCommentNotifiesOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	post, err := f.posts.CreatePost(ctx, alice.ID, "discuss", "", nil)
	require.NoError(t, err)

	comment, err := f.posts.CommentOnPost(ctx, bob.ID, post.ID, "interesting")
	require.NoError(t, err)
	require.NotZero(t, comment.ID)

	notifs := f.notificationsFor(t, alice.ID)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationTypeComment, notifs[0].Type)

	_, err = f.posts.CommentOnPost(ctx, bob.ID, post.ID, "  ")
	require.Error(t, err)
	assert.Equal(t, 400, models.StatusForError(err))
}

func TestFollowNotifiesFolloweeUnlessSelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	require.NoError(t, f.social.FollowUser(ctx, bob.ID, alice.ID))
	notifs := f.notificationsFor(t, alice.ID)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationTypeFollow, notifs[0].Type)

	var data models.NotificationData
	require.NoError(t, decodeData(notifs[0].Data, &data))
	assert.Equal(t, bob.ID, data.From)
	assert.Zero(t, data.PostID)

	require.NoError(t, f.social.FollowUser(ctx, alice.ID, alice.ID))
	assert.Len(t, f.notificationsFor(t, alice.ID), 1)
}

func TestAddHobbyValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")

	_, err := f.users.AddHobby(ctx, alice.ID, "")
	require.Error(t, err)
	assert.Equal(t, 400, models.StatusForError(err))

	names, err := f.users.AddHobby(ctx, alice.ID, "chess")
	require.NoError(t, err)
	assert.Equal(t, []string{"chess"}, names)

	_, err = f.users.RemoveHobby(ctx, alice.ID, "curling")
	require.Error(t, err)
	assert.Equal(t, 404, models.StatusForError(err))
}

func decodeData(raw string, out *models.NotificationData) error {
	return json.Unmarshal([]byte(raw), out)
}
