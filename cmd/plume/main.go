package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/plume-dev/plume/db"
	"github.com/plume-dev/plume/internal/auth"
	"github.com/plume-dev/plume/internal/cache"
	"github.com/plume-dev/plume/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if err := db.ConnectDatabase(db.DSNFromEnv()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if os.Getenv("REDIS_HOST") != "" {
		if err := cache.InitRedis(); err != nil {
			log.Printf("Redis unavailable, serving the feed uncached: %v", err)
		}
	}

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "8000"
		log.Println("PORT not set, defaulting to 8000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
