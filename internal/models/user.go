// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account on the platform.
//
// LikedBlogs is one projection of the blog_likes association table; the
// other projection is Blog.Likes. Both read the same rows, so membership
// on one side always implies membership on the other.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Email      string         `gorm:"uniqueIndex:uidx_users_email,where:deleted_at IS NULL;not null" json:"email"`
	Password   string         `gorm:"not null" json:"-"`
	Phone      string         `json:"phone"`
	IsAdmin    bool           `gorm:"default:false" json:"is_admin"`
	LikedBlogs []Blog         `gorm:"many2many:blog_likes" json:"liked_blogs,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
