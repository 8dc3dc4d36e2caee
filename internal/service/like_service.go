// Package service contains the business logic layered between handlers and repositories.
package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

const (
	// ToggleActionAdded is reported when the toggle created the like.
	ToggleActionAdded = "added"
	// ToggleActionRemoved is reported when the toggle removed the like.
	ToggleActionRemoved = "removed"
)

// ToggleResult describes the outcome of a like toggle.
type ToggleResult struct {
	Action     string `json:"action"`
	LikedBlogs []uint `json:"liked_blogs"`
}

// LikeService implements the like/unlike toggle between users and blogs.
type LikeService struct {
	userRepo repository.UserRepository
	blogRepo repository.BlogRepository
	likeRepo repository.LikeRepository
}

// NewLikeService returns a new LikeService.
func NewLikeService(
	userRepo repository.UserRepository,
	blogRepo repository.BlogRepository,
	likeRepo repository.LikeRepository,
) *LikeService {
	return &LikeService{
		userRepo: userRepo,
		blogRepo: blogRepo,
		likeRepo: likeRepo,
	}
}

// Toggle flips the like state for the (user, blog) pair and returns the
// action taken together with the user's resulting liked-set. Both records
// must exist. Calling Toggle twice always returns to the original state.
func (s *LikeService) Toggle(ctx context.Context, userID, blogID uint) (*ToggleResult, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return nil, err
	}

	added, err := s.likeRepo.Toggle(ctx, userID, blogID)
	if err != nil {
		return nil, err
	}

	action := ToggleActionRemoved
	if added {
		action = ToggleActionAdded
	}
	observability.LikesToggled.WithLabelValues(action).Inc()

	likedIDs, err := s.likeRepo.LikedBlogIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ToggleResult{Action: action, LikedBlogs: likedIDs}, nil
}

// LikedBlogs returns the blogs a user has liked, without relation expansion.
func (s *LikeService) LikedBlogs(ctx context.Context, userID uint) ([]models.Blog, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.likeRepo.LikedBlogs(ctx, userID)
}

// LikedBlogsDetailed returns the liked blogs with author and likers expanded.
func (s *LikeService) LikedBlogsDetailed(ctx context.Context, userID uint) ([]models.Blog, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.likeRepo.LikedBlogsDetailed(ctx, userID)
}
