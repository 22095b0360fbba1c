// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post in the HobbyVerse application.
//
// Name and ProfilePicture are not persisted on this table; the comment list
// query joins them in from the author row so clients can render without an
// extra lookup per comment.
type Comment struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	PostID         uint           `gorm:"not null;index" json:"post_id"`
	UserID         uint           `gorm:"not null" json:"user_id"`
	Content        string         `gorm:"not null" json:"content"`
	Name           string         `gorm:"->;-:migration" json:"name,omitempty"`
	ProfilePicture string         `gorm:"->;-:migration" json:"profile_picture,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
