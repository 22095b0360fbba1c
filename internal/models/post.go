// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post in the HobbyVerse application.
//
// A shared post is a full copy of the original's content and image under a
// new owner; SharedFromID records the origin so share counts are an exact
// edge lookup rather than a content-equality heuristic.
type Post struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	Image        string         `json:"image"`
	SharedFromID *uint          `gorm:"index" json:"shared_from_id,omitempty"`
	User         User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
