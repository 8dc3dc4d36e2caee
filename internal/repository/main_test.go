package repository

import (
	"testing"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupCacheClient points the cache package at a throwaway miniredis so a
// test can observe cache hits and invalidations. Tests that do not call it
// run with a nil client and read straight through.
func setupCacheClient(t *testing.T) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Blog{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func seedUserAndBlog(t *testing.T, db *gorm.DB) (models.User, models.Blog) {
	t.Helper()

	user := models.User{Name: "Reader", Email: "reader@example.com", Password: "hash", Phone: "555-0100"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	category := models.Category{Name: "Tech", Description: "Technology posts"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	blog := models.Blog{
		Name:        "First Post",
		Description: "An opening post",
		Content:     "Hello, world.",
		CategoryID:  category.ID,
		UserID:      user.ID,
	}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("create blog: %v", err)
	}

	return user, blog
}
