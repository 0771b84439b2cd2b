package services

import (
	"errors"

	appErrors "github.com/rdityas/weblog-core/internal/app/errors"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/infrastructures"
	"gorm.io/gorm"
)

type PostService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewPostService(db *gorm.DB, validator *infrastructures.Validator) *PostService {
	return &PostService{
		db:        db,
		validator: validator,
	}
}

func (s *PostService) FindManyPosts(req models.PageRequest, filter models.PostListFilter) (*models.PageResult[models.Post], error) {
	return pkg.Paginate[models.Post](s.db, req, pkg.PageQuery{
		Filter: func(db *gorm.DB) *gorm.DB {
			if filter.UserID != 0 {
				db = db.Where("posts.user_id = ?", filter.UserID)
			}
			if filter.CategoryID != 0 {
				db = db.Joins("JOIN post_categories ON post_categories.post_id = posts.id").
					Where("post_categories.category_id = ?", filter.CategoryID)
			}
			return db
		},
		View: func(db *gorm.DB) *gorm.DB {
			return db.Preload("User").Preload("Categories").Order("posts.created_at DESC")
		},
	})
}

func (s *PostService) FindPostByID(postID uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("User").Preload("Categories").Where("id = ?", postID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError()
		}
		return nil, err
	}

	return &post, nil
}

func (s *PostService) CreatePost(userID uint, req *models.PostRequest) (*models.Post, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	categories, err := s.findCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      req.Title,
		Details:    req.Details,
		UserID:     userID,
		Categories: categories,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}

	return s.FindPostByID(post.ID)
}

func (s *PostService) UpdatePost(postID uint, req *models.PostRequest) (*models.Post, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	post, err := s.FindPostByID(postID)
	if err != nil {
		return nil, err
	}

	categories, err := s.findCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(post).Updates(map[string]interface{}{
			"title":   req.Title,
			"details": req.Details,
		}).Error
		if err != nil {
			return err
		}

		if len(categories) == 0 {
			return tx.Model(post).Association("Categories").Clear()
		}
		return tx.Model(post).Association("Categories").Replace(&categories)
	})
	if err != nil {
		return nil, err
	}

	return s.FindPostByID(postID)
}

func (s *PostService) DeletePost(postID uint) (*models.Post, error) {
	post, err := s.FindPostByID(postID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(post).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// IsOwner reports whether the post belongs to the user.
func (s *PostService) IsOwner(userID uint, post *models.Post) bool {
	return post != nil && post.UserID == userID
}

func (s *PostService) findCategories(categoryIDs []uint) ([]models.Category, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	var categories []models.Category
	if err := s.db.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
		return nil, err
	}

	if len(categories) != len(categoryIDs) {
		return nil, appErrors.NewBadRequestError(map[string]string{"categoryIds": "Unknown category"})
	}

	return categories, nil
}
