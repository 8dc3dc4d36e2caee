package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog represents a published blog post.
type Blog struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	// Uniqueness only applies to live rows so a deleted blog's name can be reused.
	Name        string `gorm:"uniqueIndex:uidx_blogs_name,where:deleted_at IS NULL;not null" json:"name"`
	Description string `json:"description"`
	Content     string `gorm:"not null" json:"content"`
	Image       string `json:"image"`
	CategoryID  uint   `gorm:"not null" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	UserID      uint   `gorm:"not null" json:"user_id"`
	User        User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// Likes is the set of users who liked this blog, read from blog_likes.
	Likes     []User         `gorm:"many2many:blog_likes" json:"likes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
