package repository

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRepository_CreateDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	user, blog := seedUserAndBlog(t, db)

	duplicate := models.Blog{
		Name:       blog.Name,
		Content:    "Different body",
		CategoryID: blog.CategoryID,
		UserID:     user.ID,
	}
	err := repo.Create(ctx, &duplicate)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestBlogRepository_GetByIDExpandsRelations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	user, blog := seedUserAndBlog(t, db)

	got, err := repo.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Name, got.User.Name)
	assert.Empty(t, got.User.Password)
	assert.Equal(t, "Tech", got.Category.Name)
}

func TestBlogRepository_GetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepository(db)

	_, err := repo.GetByID(context.Background(), 123)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestBlogRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	user, first := seedUserAndBlog(t, db)
	second := models.Blog{
		Name:       "Second Post",
		Content:    "Another body",
		CategoryID: first.CategoryID,
		UserID:     user.ID,
	}
	require.NoError(t, db.Create(&second).Error)
	// Force a distinct, later timestamp; sqlite timestamps can collide
	// within a single test run.
	require.NoError(t, db.Model(&second).Update("created_at", first.CreatedAt.Add(1e9)).Error)

	blogs, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "Second Post", blogs[0].Name)
	assert.Equal(t, "First Post", blogs[1].Name)
}

func TestBlogRepository_DeleteAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	seedUserAndBlog(t, db)

	require.NoError(t, repo.DeleteAll(ctx))

	blogs, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestBlogRepository_DeleteRemovesLikeRows(t *testing.T) {
	db := setupTestDB(t)
	blogs := NewBlogRepository(db)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	user, blog := seedUserAndBlog(t, db)

	added, err := likes.Toggle(ctx, user.ID, blog.ID)
	require.NoError(t, err)
	require.True(t, added)

	require.NoError(t, blogs.Delete(ctx, blog.ID))

	ids, err := likes.LikedBlogIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	liked, err := likes.LikedBlogs(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, liked)

	var rows int64
	require.NoError(t, db.Table("blog_likes").Where("blog_id = ?", blog.ID).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestBlogRepository_DeleteAllClearsLikedSets(t *testing.T) {
	db := setupTestDB(t)
	blogs := NewBlogRepository(db)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	user, blog := seedUserAndBlog(t, db)
	second := models.Blog{Name: "Second Post", Content: "More words.", CategoryID: blog.CategoryID, UserID: user.ID}
	require.NoError(t, db.Create(&second).Error)

	for _, id := range []uint{blog.ID, second.ID} {
		_, err := likes.Toggle(ctx, user.ID, id)
		require.NoError(t, err)
	}

	require.NoError(t, blogs.DeleteAll(ctx))

	ids, err := likes.LikedBlogIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	var rows int64
	require.NoError(t, db.Table("blog_likes").Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestBlogRepository_NameReusableAfterDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	user, blog := seedUserAndBlog(t, db)
	require.NoError(t, repo.Delete(ctx, blog.ID))

	recreated := models.Blog{
		Name:       blog.Name,
		Content:    "Fresh take under the same title.",
		CategoryID: blog.CategoryID,
		UserID:     user.ID,
	}
	require.NoError(t, repo.Create(ctx, &recreated))
	assert.NotEqual(t, blog.ID, recreated.ID)
}

func TestBlogRepository_GetByIDUsesCache(t *testing.T) {
	setupCacheClient(t)
	db := setupTestDB(t)
	blogs := NewBlogRepository(db)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	user, blog := seedUserAndBlog(t, db)

	first, err := blogs.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Empty(t, first.Likes)

	// Writes that bypass the repository stay invisible while the entry lives.
	require.NoError(t, db.Model(&models.Blog{}).Where("id = ?", blog.ID).
		Update("description", "changed behind the cache").Error)

	cached, err := blogs.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Description, cached.Description)

	// Toggling a like invalidates the entry, so the next read is fresh.
	_, err = likes.Toggle(ctx, user.ID, blog.ID)
	require.NoError(t, err)

	fresh, err := blogs.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed behind the cache", fresh.Description)
	require.Len(t, fresh.Likes, 1)
	assert.Empty(t, fresh.Likes[0].Password)
}
