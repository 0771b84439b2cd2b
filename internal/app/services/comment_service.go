package services

import (
	"errors"

	appErrors "github.com/rdityas/weblog-core/internal/app/errors"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/infrastructures"
	"gorm.io/gorm"
)

type CommentService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewCommentService(db *gorm.DB, validator *infrastructures.Validator) *CommentService {
	return &CommentService{
		db:        db,
		validator: validator,
	}
}

func (s *CommentService) FindManyComments(postID uint, req models.PageRequest) (*models.PageResult[models.Comment], error) {
	return pkg.Paginate[models.Comment](s.db, req, pkg.PageQuery{
		Filter: func(db *gorm.DB) *gorm.DB {
			return db.Where("comments.post_id = ?", postID)
		},
		View: func(db *gorm.DB) *gorm.DB {
			return db.Preload("User").Order("comments.created_at ASC")
		},
	})
}

func (s *CommentService) FindCommentByID(commentID uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Preload("User").Where("id = ?", commentID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError()
		}
		return nil, err
	}

	return &comment, nil
}

func (s *CommentService) CreateComment(postID, userID uint, req *models.CommentRequest) (*models.Comment, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   req.Text,
		PostID: postID,
		UserID: userID,
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}

	return s.FindCommentByID(comment.ID)
}

func (s *CommentService) UpdateComment(commentID uint, req *models.CommentRequest) (*models.Comment, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	comment, err := s.FindCommentByID(commentID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(comment).Update("text", req.Text).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) DeleteComment(commentID uint) (*models.Comment, error) {
	comment, err := s.FindCommentByID(commentID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.Comment{}, commentID).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

// IsOwner reports whether the comment belongs to the user.
func (s *CommentService) IsOwner(userID uint, comment *models.Comment) bool {
	return comment != nil && comment.UserID == userID
}
