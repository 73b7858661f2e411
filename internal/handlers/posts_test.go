package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/plume-dev/plume/db"
	"github.com/plume-dev/plume/internal/bulk"
	"github.com/plume-dev/plume/internal/handlers"
	"github.com/plume-dev/plume/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/about", handlers.About)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "About", resp["title"])
}

func TestHomeListsAllPosts(t *testing.T) {
	setupTestDB(t)

	_, err := bulk.DeleteAllPosts(db.DB)
	require.NoError(t, err)

	author := models.User{
		Username:     fmt.Sprintf("feeder-%d", time.Now().UnixNano()),
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.DB.Create(&author).Error)

	first := models.Post{Title: "First", Content: "one", AuthorID: author.ID}
	second := models.Post{Title: "Second", Content: "two", AuthorID: author.ID}
	require.NoError(t, db.DB.Create(&first).Error)
	require.NoError(t, db.DB.Create(&second).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handlers.Home)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Posts []struct {
			ID     uint   `json:"id"`
			Title  string `json:"title"`
			Author struct {
				Username string `json:"username"`
			} `json:"author"`
		} `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.GreaterOrEqual(t, len(resp.Posts), 2)

	// Insertion order is preserved: no explicit ordering is applied
	firstIdx, secondIdx := -1, -1
	for i, post := range resp.Posts {
		switch post.ID {
		case first.ID:
			firstIdx = i
			assert.Equal(t, "First", post.Title)
			assert.Equal(t, author.Username, post.Author.Username)
		case second.ID:
			secondIdx = i
		}
	}

	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}
