package services

import (
	"errors"

	appErrors "github.com/rdityas/weblog-core/internal/app/errors"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/infrastructures"
	"gorm.io/gorm"
)

type UserService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewUserService(db *gorm.DB, validator *infrastructures.Validator) *UserService {
	return &UserService{
		db:        db,
		validator: validator,
	}
}

func (s *UserService) FindManyUsers(req models.PageRequest) (*models.PageResult[models.User], error) {
	return pkg.Paginate[models.User](s.db, req, pkg.PageQuery{
		View: func(db *gorm.DB) *gorm.DB {
			return db.Preload("Profile").Order("users.id ASC")
		},
	})
}

func (s *UserService) FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Profile").Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError()
		}
		return nil, err
	}

	return &user, nil
}

// UpdateUser applies an admin update across the user and its profile in one
// transaction.
func (s *UserService) UpdateUser(userID uint, req *models.UserUpdateRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(user).Updates(map[string]interface{}{
			"name":  req.Name,
			"email": req.Email,
			"role":  req.Role,
		}).Error
		if err != nil {
			return err
		}

		return tx.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
			"age":     req.Age,
			"address": req.Address,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.FindUserByID(userID)
}

// UpdateOwnProfile is the self-service variant: name, email and profile
// fields only, never the role.
func (s *UserService) UpdateOwnProfile(userID uint, req *models.UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(user).Updates(map[string]interface{}{
			"name":  req.Name,
			"email": req.Email,
		}).Error
		if err != nil {
			return err
		}

		return tx.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
			"age":     req.Age,
			"address": req.Address,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.FindUserByID(userID)
}

func (s *UserService) DeleteUser(userID uint) (*models.User, error) {
	user, err := s.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
