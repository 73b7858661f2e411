package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultProfileImage is the image reference assigned to newly provisioned
// profiles until the user uploads their own.
const DefaultProfileImage = "default.jpg"

type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Image     string    `gorm:"size:255;not null" json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.Image == "" {
		p.Image = DefaultProfileImage
	}
	return nil
}
