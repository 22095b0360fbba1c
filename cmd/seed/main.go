// Command main populates the database with demo data for local development.
package main

import (
	"flag"
	"log"

	"hobbyverse/internal/config"
	"hobbyverse/internal/database"
	"hobbyverse/internal/seed"
)

func main() {
	users := flag.Int("users", 20, "number of users to create")
	postsPerUser := flag.Int("posts-per-user", 5, "maximum posts per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{Users: *users, PostsPerUser: *postsPerUser}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
