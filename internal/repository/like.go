package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// LikeRepository manages the blog_likes association table. Both the user's
// liked-set and the blog's likers-set are projections of these rows, so a
// single insert or delete here keeps the two sides consistent by
// construction.
type LikeRepository interface {
	Toggle(ctx context.Context, userID, blogID uint) (added bool, err error)
	IsLiked(ctx context.Context, userID, blogID uint) (bool, error)
	LikedBlogIDs(ctx context.Context, userID uint) ([]uint, error)
	LikedBlogs(ctx context.Context, userID uint) ([]models.Blog, error)
	LikedBlogsDetailed(ctx context.Context, userID uint) ([]models.Blog, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the like state for the (user, blog) pair. The membership test
// and the write run in one transaction; the unique composite key on
// blog_likes makes a concurrent duplicate insert a no-op rather than an
// error, so the pair can never end up with more than one row.
func (r *likeRepository) Toggle(ctx context.Context, userID, blogID uint) (bool, error) {
	var added bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("blog_likes").
			Where("user_id = ? AND blog_id = ?", userID, blogID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			// Unlike: drop the association row.
			if err := tx.Exec(
				"DELETE FROM blog_likes WHERE user_id = ? AND blog_id = ?",
				userID, blogID,
			).Error; err != nil {
				return err
			}
			added = false
			return nil
		}

		if err := tx.Exec(
			"INSERT INTO blog_likes (user_id, blog_id) VALUES (?, ?) ON CONFLICT (user_id, blog_id) DO NOTHING",
			userID, blogID,
		).Error; err != nil {
			return err
		}
		added = true
		return nil
	})

	if err != nil {
		return false, models.NewInternalError(err)
	}

	cache.InvalidateUser(ctx, userID)
	cache.InvalidateBlog(ctx, blogID)
	return added, nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, blogID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("blog_likes").
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) LikedBlogIDs(ctx context.Context, userID uint) ([]uint, error) {
	// Resolved through the blogs table so only live blogs are reported,
	// matching what LikedBlogs returns for the same user.
	ids := []uint{}
	if err := r.db.WithContext(ctx).Model(&models.Blog{}).
		Joins("JOIN blog_likes ON blog_likes.blog_id = blogs.id").
		Where("blog_likes.user_id = ?", userID).
		Order("blogs.id").
		Pluck("blogs.id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// LikedBlogs returns the blogs a user has liked, without relation expansion.
func (r *likeRepository) LikedBlogs(ctx context.Context, userID uint) ([]models.Blog, error) {
	blogs := []models.Blog{}
	if err := r.likedBlogsQuery(ctx, userID).
		Find(&blogs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return blogs, nil
}

// LikedBlogsDetailed returns the liked blogs with author and likers expanded.
func (r *likeRepository) LikedBlogsDetailed(ctx context.Context, userID uint) ([]models.Blog, error) {
	blogs := []models.Blog{}
	if err := r.likedBlogsQuery(ctx, userID).
		Preload("User").
		Preload("Category").
		Preload("Likes").
		Find(&blogs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for i := range blogs {
		blogs[i].User.Password = ""
		for j := range blogs[i].Likes {
			blogs[i].Likes[j].Password = ""
		}
	}
	return blogs, nil
}

func (r *likeRepository) likedBlogsQuery(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Joins("JOIN blog_likes ON blog_likes.blog_id = blogs.id").
		Where("blog_likes.user_id = ?", userID).
		Order("blogs.created_at DESC")
}
