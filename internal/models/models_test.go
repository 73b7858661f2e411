package models_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/plume-dev/plume/db"
	"github.com/plume-dev/plume/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	// Skip if no database connection
	if os.Getenv("DB_HOST") == "" && os.Getenv("DATABASE_URL") == "" {
		t.Skip("Skipping test - no database connection configured")
	}

	require.NoError(t, db.ConnectDatabase(db.DSNFromEnv()))
	require.NoError(t, db.MigrateDatabase())
}

func createTestUser(t *testing.T, prefix string) models.User {
	t.Helper()

	user := models.User{
		Username:     fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano()),
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.DB.Create(&user).Error)

	return user
}

func TestUserCreateProvisionsProfile(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "profiled")

	var profiles []models.Profile
	require.NoError(t, db.DB.Where("user_id = ?", user.ID).Find(&profiles).Error)

	require.Len(t, profiles, 1)
	assert.Equal(t, models.DefaultProfileImage, profiles[0].Image)
}

func TestUserSavePersistsProfile(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "resaved")

	var before models.Profile
	require.NoError(t, db.DB.Where("user_id = ?", user.ID).First(&before).Error)

	time.Sleep(10 * time.Millisecond)

	user.Email = "resaved@example.com"
	require.NoError(t, db.DB.Save(&user).Error)

	var after models.Profile
	require.NoError(t, db.DB.Where("user_id = ?", user.ID).First(&after).Error)

	assert.Equal(t, before.ID, after.ID)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestPostDatePostedDefault(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "poster")

	before := time.Now()

	post := models.Post{
		Title:    "First Post",
		Content:  "Hello",
		AuthorID: user.ID,
	}
	require.NoError(t, db.DB.Create(&post).Error)

	assert.False(t, post.DatePosted.IsZero())
	assert.WithinDuration(t, before, post.DatePosted, 5*time.Second)
}

func TestPostDatePostedSupplied(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "backdater")

	posted := time.Date(2020, time.March, 1, 12, 0, 0, 0, time.UTC)

	post := models.Post{
		Title:      "Backdated",
		Content:    "Old news",
		DatePosted: posted,
		AuthorID:   user.ID,
	}
	require.NoError(t, db.DB.Create(&post).Error)

	var reloaded models.Post
	require.NoError(t, db.DB.First(&reloaded, post.ID).Error)

	assert.WithinDuration(t, posted, reloaded.DatePosted, time.Second)
}

func TestUserDeleteCascades(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "deleted")

	post := models.Post{
		Title:    "Doomed",
		Content:  "Goes with the author",
		AuthorID: user.ID,
	}
	require.NoError(t, db.DB.Create(&post).Error)

	require.NoError(t, db.DB.Delete(&user).Error)

	var postCount int64
	require.NoError(t, db.DB.Model(&models.Post{}).Where("author_id = ?", user.ID).Count(&postCount).Error)
	assert.Equal(t, int64(0), postCount)

	var profileCount int64
	require.NoError(t, db.DB.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&profileCount).Error)
	assert.Equal(t, int64(0), profileCount)
}
