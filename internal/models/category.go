package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is a taxonomy record. Many blogs belong to one category.
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex:uidx_categories_name,where:deleted_at IS NULL;not null" json:"name"`
	Description string         `gorm:"size:200" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
