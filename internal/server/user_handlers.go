package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	users, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /api/users/:id.
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PUT /api/users/:id. Only the user themselves or an
// admin may update a profile.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.requireSelfOrAdmin(c, id); err != nil {
		return respondError(c, err)
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// ToggleLikedBlog handles POST /api/users/:id/liked-blogs. The body names
// the blog whose like state flips for the user in the path.
func (s *Server) ToggleLikedBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.requireSelfOrAdmin(c, id); err != nil {
		return respondError(c, err)
	}

	var req struct {
		BlogID uint `json:"blogId"`
	}
	if err := c.BodyParser(&req); err != nil || req.BlogID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("blogId is required"))
	}

	result, err := s.likeService.Toggle(c.Context(), id, req.BlogID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetLikedBlogs handles GET /api/users/:id/liked-blogs.
func (s *Server) GetLikedBlogs(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	blogs, err := s.likeService.LikedBlogs(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(blogs)
}

// GetLikedBlogsDetailed handles GET /api/users/:id/liked-blogs/details.
func (s *Server) GetLikedBlogsDetailed(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	blogs, err := s.likeService.LikedBlogsDetailed(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(blogs)
}

// requireSelfOrAdmin rejects requests acting on another user's account
// unless the caller is an admin.
func (s *Server) requireSelfOrAdmin(c *fiber.Ctx, targetID uint) error {
	callerID := currentUserID(c)
	if callerID == targetID {
		return nil
	}
	admin, err := s.isAdminByUserID(c.Context(), callerID)
	if err != nil {
		return err
	}
	if !admin {
		recordAuthFailure("admin", "not_self")
		return models.NewForbiddenError("Cannot act on another user's account")
	}
	return nil
}
