// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configure the seeder.
type Options struct {
	NumUsers    int
	NumBlogs    int
	ShouldClean bool
}

var categoryNames = []string{
	"Travel", "Food", "Technology", "Music", "Books",
	"Fitness", "Photography", "Gaming", "Finance", "Science",
}

// Seeder populates the database with generated content.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run seeds users, categories, blogs, and a random spread of likes.
func (s *Seeder) Run(opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumBlogs <= 0 {
		opts.NumBlogs = 60
	}

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("clean database: %w", err)
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("create users: %w", err)
	}
	slog.Info("seeded users", "count", len(users))

	categories, err := s.createCategories()
	if err != nil {
		return fmt.Errorf("create categories: %w", err)
	}
	slog.Info("seeded categories", "count", len(categories))

	blogs, err := s.createBlogs(users, categories, opts.NumBlogs)
	if err != nil {
		return fmt.Errorf("create blogs: %w", err)
	}
	slog.Info("seeded blogs", "count", len(blogs))

	likes, err := s.createLikes(users, blogs)
	if err != nil {
		return fmt.Errorf("create likes: %w", err)
	}
	slog.Info("seeded likes", "count", likes)

	return nil
}

// ClearAll deletes all seeded rows. Hard deletes so repeated reseeding does
// not accumulate soft-deleted rows.
func (s *Seeder) ClearAll() error {
	if err := s.db.Exec("DELETE FROM blog_likes").Error; err != nil {
		return err
	}
	for _, table := range []string{"blogs", "categories", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createUsers(n int) ([]models.User, error) {
	// One shared hash keeps seeding fast; every demo account logs in with
	// the same password.
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password: string(hashed),
			Phone:    gofakeit.Phone(),
			IsAdmin:  i == 0,
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Seeder) createCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		categories = append(categories, models.Category{
			Name:        name,
			Description: gofakeit.Sentence(8),
		})
	}
	if err := s.db.Create(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Seeder) createBlogs(users []models.User, categories []models.Category, n int) ([]models.Blog, error) {
	blogs := make([]models.Blog, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		category := categories[s.rand.Intn(len(categories))]
		blogs = append(blogs, models.Blog{
			Name:        fmt.Sprintf("%s-%d", gofakeit.Slogan(), i),
			Description: gofakeit.Sentence(12),
			Content:     gofakeit.Paragraph(2, 4, 8, "\n\n"),
			Image:       fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
			CategoryID:  category.ID,
			UserID:      author.ID,
			CreatedAt:   time.Now().Add(-time.Duration(s.rand.Intn(90*24)) * time.Hour),
		})
	}
	if err := s.db.Create(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// createLikes gives each user a random sample of liked blogs through the
// join table, the same rows the API's toggle writes.
func (s *Seeder) createLikes(users []models.User, blogs []models.Blog) (int, error) {
	total := 0
	for _, user := range users {
		count := s.rand.Intn(len(blogs)/4 + 1)
		perm := s.rand.Perm(len(blogs))
		for _, idx := range perm[:count] {
			err := s.db.Exec(
				"INSERT INTO blog_likes (user_id, blog_id) VALUES (?, ?) ON CONFLICT (user_id, blog_id) DO NOTHING",
				user.ID, blogs[idx].ID,
			).Error
			if err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}
