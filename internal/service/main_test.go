package service

import (
	"testing"

	"inkwell/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServiceDB(t *testing.T) *gorm.DB {
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

func createUser(t *testing.T, db *gorm.DB, name, email, password string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Name: name, Email: email, Password: string(hashed), Phone: "555-0100"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createBlog(t *testing.T, db *gorm.DB, name string, userID uint) models.Blog {
	t.Helper()
	category := models.Category{Name: "cat-" + name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	blog := models.Blog{Name: name, Content: "body", CategoryID: category.ID, UserID: userID}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("create blog: %v", err)
	}
	return blog
}
