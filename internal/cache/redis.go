package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/plume-dev/plume/internal/models"
	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

const (
	feedKey = "feed:posts"
	feedTTL = 5 * time.Minute
)

// InitRedis connects the feed cache. The cache is optional: callers should
// check Enabled before using it.
func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		RedisClient = nil
		return err
	}

	return nil
}

func Enabled() bool {
	return RedisClient != nil
}

// CacheFeed stores the full post feed with a short TTL.
func CacheFeed(ctx context.Context, posts []models.Post) error {
	postsJSON, err := json.Marshal(posts)

	if err != nil {
		return err
	}

	return RedisClient.Set(ctx, feedKey, postsJSON, feedTTL).Err()
}

// GetFeed retrieves the cached feed; a miss comes back as redis.Nil.
func GetFeed(ctx context.Context) ([]models.Post, error) {
	result, err := RedisClient.Get(ctx, feedKey).Result()

	if err != nil {
		return nil, err
	}

	var posts []models.Post

	if err := json.Unmarshal([]byte(result), &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// InvalidateFeed drops the cached feed after any post write.
func InvalidateFeed(ctx context.Context) error {
	return RedisClient.Del(ctx, feedKey).Err()
}
