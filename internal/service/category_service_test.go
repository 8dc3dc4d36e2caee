package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryServiceForTest(t *testing.T) *CategoryService {
	t.Helper()
	db := setupServiceDB(t)
	return NewCategoryService(repository.NewCategoryRepository(db))
}

func TestCategoryServiceCreateAndList(t *testing.T) {
	svc := newCategoryServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, "go", "posts about go")
	require.NoError(t, err)
	assert.Equal(t, "go", created.Name)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
}

func TestCategoryServiceCreateRequiresName(t *testing.T) {
	svc := newCategoryServiceForTest(t)

	_, err := svc.CreateCategory(context.Background(), "", "no name")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestCategoryServiceCreateRejectsLongDescription(t *testing.T) {
	svc := newCategoryServiceForTest(t)

	_, err := svc.CreateCategory(context.Background(), "go", strings.Repeat("x", 201))
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestCategoryServiceCreateDuplicateName(t *testing.T) {
	svc := newCategoryServiceForTest(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "go", "")
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, "go", "")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestCategoryServiceUpdateKeepingOwnNameIsNotAConflict(t *testing.T) {
	svc := newCategoryServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, "go", "old description")
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(ctx, created.ID, "go", "new description")
	require.NoError(t, err)
	assert.Equal(t, "new description", updated.Description)
}

func TestCategoryServiceUpdateToTakenNameConflicts(t *testing.T) {
	svc := newCategoryServiceForTest(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "go", "")
	require.NoError(t, err)
	second, err := svc.CreateCategory(ctx, "rust", "")
	require.NoError(t, err)

	_, err = svc.UpdateCategory(ctx, second.ID, "go", "")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestCategoryServiceDelete(t *testing.T) {
	svc := newCategoryServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, "go", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, created.ID))

	_, err = svc.GetCategory(ctx, created.ID)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCategoryServiceDeleteMissingCategory(t *testing.T) {
	svc := newCategoryServiceForTest(t)

	err := svc.DeleteCategory(context.Background(), 9999)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
