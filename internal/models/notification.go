package models

import (
	"encoding/json"
	"time"
)

// NotificationType enumerates the events that produce a notification.
type NotificationType string

const (
	// NotificationTypeLike is emitted when someone likes a post.
	NotificationTypeLike NotificationType = "like"
	// NotificationTypeComment is emitted when someone comments on a post.
	NotificationTypeComment NotificationType = "comment"
	// NotificationTypeFollow is emitted when someone follows a user.
	NotificationTypeFollow NotificationType = "follow"
)

// Notification is a one-way persisted event record visible only to its
// recipient. It is created only when the triggering actor differs from the
// recipient; self-actions are suppressed at the service layer.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Data      string           `gorm:"type:text" json:"data"`
	IsRead    bool             `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// NotificationData is the free-form payload stored in a notification's Data
// column. From is the acting user; PostID is set for like/comment events.
type NotificationData struct {
	PostID uint `json:"postId,omitempty"`
	From   uint `json:"from"`
}

// Encode marshals the payload into the wire/storage form.
func (d NotificationData) Encode() string {
	b, err := json.Marshal(d)
	if err != nil {
		return "{}"
	}
	return string(b)
}
