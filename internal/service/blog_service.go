package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// BlogService handles blog CRUD with ownership checks.
type BlogService struct {
	blogRepo     repository.BlogRepository
	categoryRepo repository.CategoryRepository
	isAdmin      func(ctx context.Context, userID uint) (bool, error)
}

// CreateBlogInput carries the fields for a new blog post.
type CreateBlogInput struct {
	UserID      uint
	Name        string
	Description string
	Content     string
	Image       string
	CategoryID  uint
}

// UpdateBlogInput carries merge-patch fields for a blog update.
type UpdateBlogInput struct {
	UserID      uint
	BlogID      uint
	Name        string
	Description string
	Content     string
	Image       string
	CategoryID  uint
}

// NewBlogService returns a new BlogService. isAdmin resolves whether a user
// may bypass the ownership check on update and delete.
func NewBlogService(
	blogRepo repository.BlogRepository,
	categoryRepo repository.CategoryRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *BlogService {
	return &BlogService{
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
		isAdmin:      isAdmin,
	}
}

func (s *BlogService) CreateBlog(ctx context.Context, in CreateBlogInput) (*models.Blog, error) {
	if in.Name == "" || in.Content == "" {
		return nil, models.NewValidationError("Name and content are required")
	}

	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	existing, err := s.blogRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Blog post already exists")
	}

	blog := &models.Blog{
		Name:        in.Name,
		Description: in.Description,
		Content:     in.Content,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
		UserID:      in.UserID,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return s.blogRepo.GetByID(ctx, blog.ID)
}

func (s *BlogService) ListBlogs(ctx context.Context, limit, offset int) ([]models.Blog, error) {
	return s.blogRepo.List(ctx, limit, offset)
}

func (s *BlogService) GetBlog(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

func (s *BlogService) UpdateBlog(ctx context.Context, in UpdateBlogInput) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, in.BlogID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeMutation(ctx, blog, in.UserID); err != nil {
		return nil, err
	}

	if in.Name != "" && in.Name != blog.Name {
		existing, err := s.blogRepo.GetByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Blog post already exists")
		}
		blog.Name = in.Name
	}
	if in.Description != "" {
		blog.Description = in.Description
	}
	if in.Content != "" {
		blog.Content = in.Content
	}
	if in.Image != "" {
		blog.Image = in.Image
	}
	if in.CategoryID != 0 && in.CategoryID != blog.CategoryID {
		if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
			return nil, err
		}
		blog.CategoryID = in.CategoryID
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return s.blogRepo.GetByID(ctx, blog.ID)
}

func (s *BlogService) DeleteBlog(ctx context.Context, userID, blogID uint) error {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return err
	}

	if err := s.authorizeMutation(ctx, blog, userID); err != nil {
		return err
	}

	return s.blogRepo.Delete(ctx, blogID)
}

// DeleteAllBlogs wipes every blog post. The route carries the admin gate;
// the service performs the wipe unconditionally.
func (s *BlogService) DeleteAllBlogs(ctx context.Context) error {
	return s.blogRepo.DeleteAll(ctx)
}

// authorizeMutation allows the author or an admin to mutate a blog.
func (s *BlogService) authorizeMutation(ctx context.Context, blog *models.Blog, userID uint) error {
	if blog.UserID == userID {
		return nil
	}
	admin, err := s.isAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !admin {
		return models.NewForbiddenError("You can only modify your own blog posts")
	}
	return nil
}
