// Package bulk holds the maintenance operations behind the loadposts and
// purgeposts commands.
package bulk

import (
	"encoding/json"
	"os"

	"github.com/plume-dev/plume/internal/models"
	"gorm.io/gorm"
)

// PostSeed is one entry of the bulk-load input file. Every key is optional;
// missing title/content load as empty strings and a missing user_id is left
// for the author foreign key to reject.
type PostSeed struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  uint   `json:"user_id"`
}

// ParseSeedFile reads a JSON array of post seeds.
func ParseSeedFile(path string) ([]PostSeed, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	var seeds []PostSeed

	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, err
	}

	return seeds, nil
}

// LoadPosts creates one post per seed, in order. On the first storage
// failure it returns the posts created so far along with the error.
func LoadPosts(gdb *gorm.DB, seeds []PostSeed) ([]models.Post, error) {
	created := make([]models.Post, 0, len(seeds))

	for _, seed := range seeds {
		post := models.Post{
			Title:    seed.Title,
			Content:  seed.Content,
			AuthorID: seed.UserID,
		}

		if err := gdb.Create(&post).Error; err != nil {
			return created, err
		}

		created = append(created, post)
	}

	return created, nil
}

// DeleteAllPosts removes every post and reports how many went away.
func DeleteAllPosts(gdb *gorm.DB) (int64, error) {
	result := gdb.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Post{})

	return result.RowsAffected, result.Error
}
