package client

import "time"

// User is the authenticated account as returned by the API. The password is
// never present in responses.
type User struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserSummary is the public view of a user.
type UserSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

// UserStats holds the profile counters.
type UserStats struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
	Posts     int64 `json:"posts"`
}

// Post is a feed entry.
type Post struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	Content      string    `json:"content"`
	Image        string    `json:"image"`
	SharedFromID *uint     `json:"shared_from_id,omitempty"`
	User         User      `json:"user,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Comment is a post comment with the author's display fields joined in.
type Comment struct {
	ID             uint      `json:"id"`
	PostID         uint      `json:"post_id"`
	UserID         uint      `json:"user_id"`
	Content        string    `json:"content"`
	Name           string    `json:"name,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Notification is an inbox entry. Data is a JSON payload whose shape depends
// on Type; DecodeData parses the common fields.
type Notification struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Type      string    `json:"type"`
	Data      string    `json:"data"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationData is the decoded notification payload.
type NotificationData struct {
	PostID uint `json:"postId,omitempty"`
	From   uint `json:"from"`
}

// PostCounts aggregates the batch counters for one post.
type PostCounts struct {
	Likes    int64
	Comments int64
	Shares   int64
	Liked    bool
}
