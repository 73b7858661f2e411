// Command purgeposts deletes every post and reports the count.
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

	count, err := bulk.DeleteAllPosts(db.DB)

	if err != nil {
		log.Fatalf("Failed to delete posts: %v", err)
	}

	if cache.Enabled() {
		if err := cache.InvalidateFeed(context.Background()); err != nil {
			log.Printf("Failed to invalidate feed cache: %v", err)
		}
	}

	fmt.Printf("%d posts deleted successfully.\n", count)
}
