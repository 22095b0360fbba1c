package seed

import (
	"fmt"
	"log"
	"math/rand"

	"hobbyverse/internal/models"

	"gorm.io/gorm"
)

// Options controls the volume of generated demo data.
type Options struct {
	Users        int
	PostsPerUser int
}

// DefaultOptions returns a small but lively dataset.
func DefaultOptions() Options {
	return Options{Users: 20, PostsPerUser: 5}
}

// Run populates the database with a connected demo community: users tagged
// with hobbies, posts carrying those tags, a follow mesh, and enough likes
// and comments to exercise every feed surface.
func Run(db *gorm.DB, opts Options) error {
	if opts.Users <= 0 {
		opts = DefaultOptions()
	}

	f := NewFactory(db)

	hobbies := make([]*models.Hobby, 0, len(hobbyTaxonomy))
	for _, name := range hobbyTaxonomy {
		h, err := f.CreateHobby(name)
		if err != nil {
			return fmt.Errorf("seed hobby %q: %w", name, err)
		}
		hobbies = append(hobbies, h)
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, u)

		for _, h := range pick(f.rng, hobbies, 1+f.rng.Intn(3)) {
			if err := f.TagUser(u, h); err != nil {
				return fmt.Errorf("seed user hobby: %w", err)
			}
		}
	}

	var posts []*models.Post
	for _, u := range users {
		n := 1 + f.rng.Intn(opts.PostsPerUser)
		for i := 0; i < n; i++ {
			p, err := f.CreatePost(u, pick(f.rng, hobbies, 1+f.rng.Intn(2)))
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, p)
		}
	}

	// Follow mesh: everyone follows a handful of others.
	for _, u := range users {
		for _, other := range pick(f.rng, users, 2+f.rng.Intn(4)) {
			if other.ID == u.ID {
				continue
			}
			if err := f.CreateFollow(u, other); err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
	}

	for _, p := range posts {
		for _, u := range pick(f.rng, users, f.rng.Intn(5)) {
			if err := f.CreateLike(u, p); err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
		for _, u := range pick(f.rng, users, f.rng.Intn(3)) {
			if _, err := f.CreateComment(u, p); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	log.Printf("Seed complete: %d users, %d hobbies, %d posts", len(users), len(hobbies), len(posts))
	return nil
}

// pick returns up to n distinct random elements from items.
func pick[T any](rng *rand.Rand, items []T, n int) []T {
	if n >= len(items) {
		n = len(items)
	}
	idx := rng.Perm(len(items))[:n]
	out := make([]T, 0, n)
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}
