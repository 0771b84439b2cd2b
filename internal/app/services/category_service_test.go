package services

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	appErrors "github.com/rdityas/weblog-core/internal/app/errors"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/infrastructures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategoryService(t *testing.T) (*CategoryService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	return NewCategoryService(db, infrastructures.NewValidator()), mock
}

func TestFindCategoryByIDNotFound(t *testing.T) {
	categoryService, mock := newTestCategoryService(t)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := categoryService.FindCategoryByID(42)
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "Not found", appErr.Message)
}

func TestCreateCategory(t *testing.T) {
	categoryService, mock := newTestCategoryService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	category, err := categoryService.CreateCategory(&models.CategoryRequest{Name: "golang"})
	require.NoError(t, err)

	assert.Equal(t, uint(3), category.ID)
	assert.Equal(t, "golang", category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategoryValidation(t *testing.T) {
	categoryService, _ := newTestCategoryService(t)

	_, err := categoryService.CreateCategory(&models.CategoryRequest{})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestDeleteCategory(t *testing.T) {
	categoryService, mock := newTestCategoryService(t)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "golang"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "categories"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	category, err := categoryService.DeleteCategory(3)
	require.NoError(t, err)

	assert.Equal(t, "golang", category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
