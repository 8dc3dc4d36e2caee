package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

// CategoryService handles category CRUD.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService returns a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, name, description string) (*models.Category, error) {
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if err := validation.ValidateCategoryDescription(description); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Category already exists")
	}

	category := &models.Category{Name: name, Description: description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, name, description string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" && name != category.Name {
		// Only conflict when a different record already holds the name.
		existing, err := s.categoryRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Category already exists")
		}
		category.Name = name
	}
	if description != "" {
		if err := validation.ValidateCategoryDescription(description); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		category.Description = description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return s.categoryRepo.Delete(ctx, id)
}

// DeleteAllCategories wipes every category. The route carries the admin gate.
func (s *CategoryService) DeleteAllCategories(ctx context.Context) error {
	return s.categoryRepo.DeleteAll(ctx)
}
