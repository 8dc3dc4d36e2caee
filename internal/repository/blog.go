package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	GetByName(ctx context.Context, name string) (*models.Blog, error)
	List(ctx context.Context, limit, offset int) ([]models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository returns a new BlogRepository implementation.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Blog post already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID loads a blog together with its author, category and likers.
func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	key := cache.BlogKey(id)

	err := cache.Aside(ctx, key, &blog, cache.BlogTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User").
			Preload("Category").
			Preload("Likes").
			First(&blog, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Blog", id)
			}
			return models.NewInternalError(err)
		}
		blog.User.Password = ""
		for i := range blog.Likes {
			blog.Likes[i].Password = ""
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) GetByName(ctx context.Context, name string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context, limit, offset int) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&blogs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for i := range blogs {
		blogs[i].User.Password = ""
	}
	return blogs, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	// Likers are managed exclusively through the like repository.
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(blog).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Blog post already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateBlog(ctx, blog.ID)
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	// The blog row is soft-deleted but its like rows are gone for good,
	// so no liked-set can keep reporting a blog that no longer resolves.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Blog{}, id)
		if result.Error != nil {
			return models.NewInternalError(result.Error)
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("Blog", id)
		}
		if err := tx.Exec("DELETE FROM blog_likes WHERE blog_id = ?", id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidateBlog(ctx, id)
	return nil
}

func (r *blogRepository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Blog{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Exec("DELETE FROM blog_likes").Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
