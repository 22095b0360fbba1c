package database

import "hobbyverse/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Hobby{},
		&models.PostHobby{},
		&models.UserHobby{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
	}
}
