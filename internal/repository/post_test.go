package repository

import (
	"context"
	"testing"

	"hobbyverse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo UserRepository, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestCreateWithHobbiesLinksTags(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users, "Alice", "alice@example.com")

	post := &models.Post{UserID: alice.ID, Content: "opening prep"}
	require.NoError(t, posts.CreateWithHobbies(ctx, post, []string{"chess", "chess", "reading"}))

	byHobby, err := posts.List(ctx, PostFilter{Hobby: "chess"})
	require.NoError(t, err)
	require.NotEmpty(t, byHobby)
	assert.Equal(t, post.ID, byHobby[0].ID)

	var hobbyCount int64
	require.NoError(t, db.Model(&models.Hobby{}).Count(&hobbyCount).Error)
	assert.EqualValues(t, 2, hobbyCount)
}

func TestShareCopiesOriginAndLinks(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users, "Alice", "alice@example.com")
	bob := seedUser(t, users, "Bob", "bob@example.com")

	source := &models.Post{UserID: alice.ID, Content: "look at this", Image: "/uploads/x.png"}
	require.NoError(t, posts.CreateWithHobbies(ctx, source, []string{"photography"}))

	shared, err := posts.Share(ctx, bob.ID, source.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, shared.UserID)
	assert.Equal(t, source.Content, shared.Content)
	assert.Equal(t, source.Image, shared.Image)
	require.NotNil(t, shared.SharedFromID)
	assert.Equal(t, source.ID, *shared.SharedFromID)

	counts, err := posts.SharesCount(ctx, []uint{source.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[source.ID])

	// Two posts with identical text never collide in the count; only the
	// recorded edge matters. The unshared twin is still answered, with zero.
	twin := &models.Post{UserID: alice.ID, Content: "look at this", Image: "/uploads/x.png"}
	require.NoError(t, posts.CreateWithHobbies(ctx, twin, nil))
	counts, err = posts.SharesCount(ctx, []uint{source.ID, twin.ID})
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.EqualValues(t, 1, counts[source.ID])
	assert.EqualValues(t, 0, counts[twin.ID])

	_, err = posts.Share(ctx, bob.ID, 9999)
	require.Error(t, err)
	assert.Equal(t, 404, models.StatusForError(err))
}

func TestLikeAndBatchLookups(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users, "Alice", "alice@example.com")
	bob := seedUser(t, users, "Bob", "bob@example.com")

	first := &models.Post{UserID: alice.ID, Content: "one"}
	second := &models.Post{UserID: alice.ID, Content: "two"}
	require.NoError(t, posts.CreateWithHobbies(ctx, first, nil))
	require.NoError(t, posts.CreateWithHobbies(ctx, second, nil))

	inserted, err := posts.Like(ctx, bob.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, inserted)

	// A repeat is silent and reports no new row.
	inserted, err = posts.Like(ctx, bob.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, inserted)

	_, err = posts.Like(ctx, alice.ID, first.ID)
	require.NoError(t, err)

	counts, err := posts.LikesCount(ctx, []uint{first.ID, second.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[first.ID])
	assert.EqualValues(t, 0, counts[second.ID])

	// Every requested id is answered; unliked posts come back explicitly false.
	liked, err := posts.LikedByUser(ctx, bob.ID, []uint{first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, liked, 2)
	assert.True(t, liked[first.ID])
	assert.False(t, liked[second.ID])

	// Empty input never touches the store.
	counts, err = posts.LikesCount(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
