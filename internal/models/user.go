// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered HobbyVerse account.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Email          string         `gorm:"unique;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	ProfilePicture string         `json:"profile_picture"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Posts          []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// UserSummary is the restricted field set exposed on public profile and
// follower/following detail lookups. It never carries the email.
type UserSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

// Summary returns the public view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
	}
}

// UserStats holds the aggregate counters shown on the profile page.
// Counts are always derived by query, never stored.
type UserStats struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
	Posts     int64 `json:"posts"`
}
