package services

import (
	"errors"

	appErrors "github.com/rdityas/weblog-core/internal/app/errors"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/infrastructures"
	"gorm.io/gorm"
)

type CategoryService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewCategoryService(db *gorm.DB, validator *infrastructures.Validator) *CategoryService {
	return &CategoryService{
		db:        db,
		validator: validator,
	}
}

func (s *CategoryService) FindManyCategories(req models.PageRequest) (*models.PageResult[models.Category], error) {
	return pkg.Paginate[models.Category](s.db, req, pkg.PageQuery{
		View: func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.name ASC")
		},
	})
}

func (s *CategoryService) FindCategoryByID(categoryID uint) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("id = ?", categoryID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError()
		}
		return nil, err
	}

	return &category, nil
}

// CreateCategory inserts the category. The unique index on name turns a
// duplicate into a unique violation which the response boundary maps to 400.
func (s *CategoryService) CreateCategory(req *models.CategoryRequest) (*models.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name: req.Name,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) UpdateCategory(categoryID uint, req *models.CategoryRequest) (*models.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	category, err := s.FindCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(category).Update("name", req.Name).Error; err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) DeleteCategory(categoryID uint) (*models.Category, error) {
	category, err := s.FindCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.Category{}, categoryID).Error; err != nil {
		return nil, err
	}

	return category, nil
}
