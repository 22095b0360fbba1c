package models

// Hobby is a free-text tag shared by posts and users. Names are unique and
// case-sensitive; rows are created lazily on first reference and never
// deleted when the last association goes away.
type Hobby struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// PostHobby links a post to a hobby tag.
type PostHobby struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	PostID  uint `gorm:"not null;index" json:"post_id"`
	HobbyID uint `gorm:"not null;index" json:"hobby_id"`
}

// UserHobby links a user to a hobby. The pair is unique so the add
// operation is idempotent at the store level.
type UserHobby struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_user_hobby" json:"user_id"`
	HobbyID uint `gorm:"not null;uniqueIndex:idx_user_hobby" json:"hobby_id"`
}
