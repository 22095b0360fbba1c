package models

import "time"

// Follow is a directed edge from follower to followee. It is not
// automatically reciprocal. The pair is unique so repeated follow requests
// collapse into a single row.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
