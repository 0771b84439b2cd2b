package services

import (
	"errors"

	appErrors "github.com/rdityas/weblog-core/internal/app/errors"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/infrastructures"
	"gorm.io/gorm"
)

type AuthService struct {
	db           *gorm.DB
	validator    *infrastructures.Validator
	tokenService *TokenService
}

func NewAuthService(db *gorm.DB, validator *infrastructures.Validator, tokenService *TokenService) *AuthService {
	return &AuthService{
		db:           db,
		validator:    validator,
		tokenService: tokenService,
	}
}

// Register creates the user and its profile atomically and returns a signed
// token. A duplicate email surfaces as a unique violation and is translated
// at the response boundary.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, string, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, "", err
	}

	hashedPassword, err := pkg.HashPassword(req.UserData.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:     req.UserData.Name,
		Email:    req.UserData.Email,
		Password: hashedPassword,
		Role:     models.UserRoleUser,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile := &models.Profile{
			Age:     req.ProfileData.Age,
			Address: req.ProfileData.Address,
			UserID:  user.ID,
		}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		user.Profile = profile
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokenService.Sign(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) Login(req *models.LoginRequest) (string, error) {
	if err := s.validator.Validate(req); err != nil {
		return "", err
	}

	var user models.User
	err := s.db.Where("email = ?", req.Email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	// A missing user and a wrong password are indistinguishable to the caller.
	if err != nil || !pkg.ComparePassword(req.Password, user.Password) {
		return "", appErrors.NewUnauthorizedError("Invalid credentials")
	}

	return s.tokenService.Sign(user.ID)
}

func (s *AuthService) ChangePassword(userID uint, req *models.ChangePasswordRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var user models.User
	err := s.db.Where("id = ?", userID).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err != nil || !pkg.ComparePassword(req.CurrentPassword, user.Password) {
		return nil, appErrors.NewUnauthorizedError("Password incorrect")
	}

	hashedPassword, err := pkg.HashPassword(req.NewPassword)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&user).Update("password", hashedPassword).Error; err != nil {
		return nil, err
	}

	return &user, nil
}
