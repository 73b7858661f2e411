package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/plume-dev/plume/db"
	"github.com/plume-dev/plume/internal/models"
	"github.com/plume-dev/plume/internal/types"
	"github.com/plume-dev/plume/internal/utils"
	"gorm.io/gorm"
)

type ProfileResponse struct {
	ID    uint         `json:"id"`
	Image string       `json:"image"`
	User  UserResponse `json:"user"`
}

func GetProfile(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.Profile

	if err := db.DB.Where("user_id = ?", currentUser.ID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			log.Printf("Failed to retrieve profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		}
		return
	}

	ctx.JSON(http.StatusOK, ProfileResponse{
		ID:    profile.ID,
		Image: profile.Image,
		User: UserResponse{
			ID:       currentUser.ID,
			Username: currentUser.Username,
			Email:    currentUser.Email,
		},
	})
}

// UpdateProfileImage replaces the profile picture. The upload is stored
// under the upload directory with a generated filename.
func UpdateProfileImage(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	file, err := ctx.FormFile("image")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	var profile models.Profile

	if err := db.DB.Where("user_id = ?", currentUser.ID).First(&profile).Error; err != nil {
		log.Printf("Failed to retrieve profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	dest := filepath.Join(types.UploadDir(), filename)

	if err := ctx.SaveUploadedFile(file, dest); err != nil {
		log.Printf("Failed to save uploaded image: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	profile.Image = dest

	if err := db.DB.Save(&profile).Error; err != nil {
		log.Printf("Failed to update profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	ctx.JSON(http.StatusOK, ProfileResponse{
		ID:    profile.ID,
		Image: profile.Image,
		User: UserResponse{
			ID:       currentUser.ID,
			Username: currentUser.Username,
			Email:    currentUser.Email,
		},
	})
}
