package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/plume-dev/plume/db"
	"github.com/plume-dev/plume/internal/cache"
	"github.com/plume-dev/plume/internal/models"
	"github.com/plume-dev/plume/internal/utils"
)

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

type PostResponse struct {
	ID         uint           `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	DatePosted time.Time      `json:"date_posted"`
	Author     AuthorResponse `json:"author"`
}

type AuthorResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func postResponses(posts []models.Post) []PostResponse {
	response := make([]PostResponse, 0, len(posts))

	for _, post := range posts {
		response = append(response, PostResponse{
			ID:         post.ID,
			Title:      post.Title,
			Content:    post.Content,
			DatePosted: post.DatePosted,
			Author: AuthorResponse{
				ID:       post.AuthorID,
				Username: post.Author.Username,
			},
		})
	}

	return response
}

// Home serves the feed: every post, in storage order, no pagination.
func Home(ctx *gin.Context) {
	if cache.Enabled() {
		if posts, err := cache.GetFeed(ctx.Request.Context()); err == nil {
			ctx.JSON(http.StatusOK, gin.H{"posts": postResponses(posts)})
			return
		}
	}

	var posts []models.Post

	if err := db.DB.Preload("Author").Find(&posts).Error; err != nil {
		log.Printf("Failed to retrieve posts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}

	if cache.Enabled() {
		if err := cache.CacheFeed(ctx.Request.Context(), posts); err != nil {
			log.Printf("Failed to cache feed: %v", err)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"posts": postResponses(posts)})
}

func About(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"title": "About"})
}

func CreatePost(ctx *gin.Context) {
	var req CreatePostRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	post := models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: currentUser.ID,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		log.Printf("Failed to create post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	if cache.Enabled() {
		if err := cache.InvalidateFeed(ctx.Request.Context()); err != nil {
			log.Printf("Failed to invalidate feed cache: %v", err)
		}
	}

	post.Author = models.User{ID: currentUser.ID, Username: currentUser.Username}

	BroadcastPostCreated(post)

	ctx.JSON(http.StatusCreated, PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		DatePosted: post.DatePosted,
		Author: AuthorResponse{
			ID:       currentUser.ID,
			Username: currentUser.Username,
		},
	})
}
