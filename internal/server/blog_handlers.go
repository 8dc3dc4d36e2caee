package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetBlogs handles GET /api/blogs.
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	blogs, err := s.blogService.ListBlogs(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(blogs)
}

// GetBlog handles GET /api/blogs/:id.
func (s *Server) GetBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	blog, err := s.blogService.GetBlog(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(blog)
}

// CreateBlog handles POST /api/blogs.
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Content     string `json:"content"`
		Image       string `json:"image"`
		CategoryID  uint   `json:"categoryId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.CreateBlog(c.Context(), service.CreateBlogInput{
		UserID:      currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(blog)
}

// UpdateBlog handles PUT /api/blogs/:id.
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Content     string `json:"content"`
		Image       string `json:"image"`
		CategoryID  uint   `json:"categoryId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.UpdateBlog(c.Context(), service.UpdateBlogInput{
		UserID:      currentUserID(c),
		BlogID:      id,
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(blog)
}

// DeleteBlog handles DELETE /api/blogs/:id.
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.blogService.DeleteBlog(c.Context(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Blog deleted successfully",
	})
}

// DeleteAllBlogs handles DELETE /api/blogs. Admin only.
func (s *Server) DeleteAllBlogs(c *fiber.Ctx) error {
	if err := s.blogService.DeleteAllBlogs(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "All blogs deleted successfully",
	})
}
