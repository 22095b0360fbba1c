// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"hobbyverse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// hobbyTaxonomy is the pool of hobby names demo data draws from.
var hobbyTaxonomy = []string{
	"chess", "photography", "hiking", "painting", "cycling", "gardening",
	"baking", "climbing", "pottery", "birdwatching", "woodworking", "running",
	"astronomy", "knitting", "surfing", "calligraphy",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. All seeded accounts use
// the password "password123" so they are usable in local testing.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	user := &models.User{
		Name:           gofakeit.Name(),
		Email:          fmt.Sprintf("%d-%s", gofakeit.Number(100, 999), gofakeit.Email()),
		Password:       string(hashedPassword),
		ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateHobby finds or creates a hobby by exact name.
func (f *Factory) CreateHobby(name string) (*models.Hobby, error) {
	hobby := models.Hobby{Name: name}
	if err := f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&hobby).Error; err != nil {
		return nil, err
	}
	if hobby.ID == 0 {
		if err := f.db.Where("name = ?", name).First(&hobby).Error; err != nil {
			return nil, err
		}
	}
	return &hobby, nil
}

// CreatePost persists a post for the user tagged with the given hobbies,
// spread over a realistic created_at window.
func (f *Factory) CreatePost(user *models.User, hobbies []*models.Hobby, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:  user.ID,
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
	}
	if f.rng.Intn(2) == 0 {
		post.Image = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}

	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	for _, h := range hobbies {
		link := models.PostHobby{PostID: post.ID, HobbyID: h.ID}
		if err := f.db.Create(&link).Error; err != nil {
			return nil, err
		}
	}
	return post, nil
}

// TagUser attaches a hobby to a user's profile.
func (f *Factory) TagUser(user *models.User, hobby *models.Hobby) error {
	link := models.UserHobby{UserID: user.ID, HobbyID: hobby.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// CreateFollow adds a follow edge between two users.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	edge := models.Follow{FollowerID: follower.ID, FollowingID: following.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
}

// CreateLike adds a like from the user on the post.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := models.Like{UserID: user.ID, PostID: post.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
}

// CreateComment adds a short comment from the user on the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: gofakeit.Sentence(f.rng.Intn(10) + 3),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
