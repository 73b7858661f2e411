// Command loadposts bulk-creates posts from a JSON seed file. The file is
// posts.json in the working directory unless POSTS_FILE says otherwise.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/plume-dev/plume/db"
	"github.com/plume-dev/plume/internal/bulk"
	"github.com/plume-dev/plume/internal/cache"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if err := db.ConnectDatabase(db.DSNFromEnv()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("REDIS_HOST") != "" {
		if err := cache.InitRedis(); err != nil {
			log.Printf("Redis unavailable, feed cache left as-is: %v", err)
		}
	}

	path := os.Getenv("POSTS_FILE")

	if path == "" {
		path = "posts.json"
	}

	seeds, err := bulk.ParseSeedFile(path)

	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	created, loadErr := bulk.LoadPosts(db.DB, seeds)

	for _, post := range created {
		fmt.Printf("Created Post with title: %s and ID: %d\n", post.Title, post.ID)
	}

	if cache.Enabled() && len(created) > 0 {
		if err := cache.InvalidateFeed(context.Background()); err != nil {
			log.Printf("Failed to invalidate feed cache: %v", err)
		}
	}

	if loadErr != nil {
		log.Fatalf("Failed to load posts: %v", loadErr)
	}
}
