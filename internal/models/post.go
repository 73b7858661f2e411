package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:100;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	DatePosted time.Time `gorm:"not null" json:"date_posted"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`

	// Relationships
	Author User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"author"`
}

// BeforeCreate stamps DatePosted with the creation moment when the caller
// did not supply one.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.DatePosted.IsZero() {
		p.DatePosted = time.Now()
	}
	return nil
}
