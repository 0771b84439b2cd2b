package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rdityas/weblog-core/internal/app/middlewares"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/app/services"
)

type AuthHandler struct {
	authService    *services.AuthService
	userService    *services.UserService
	authMiddleware *middlewares.AuthMiddleware
}

func NewAuthHandler(authService *services.AuthService, userService *services.UserService, authMiddleware *middlewares.AuthMiddleware) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		userService:    userService,
		authMiddleware: authMiddleware,
	}
}

func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authGroup := router.Group("/auth")

	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)

	authGroup.Get("/profile", h.authMiddleware.Auth, h.GetProfile)
	authGroup.Put("/profile", h.authMiddleware.Auth, h.UpdateProfile)
	authGroup.Delete("/profile", h.authMiddleware.Auth, h.DeleteProfile)
	authGroup.Put("/change-password", h.authMiddleware.Auth, h.ChangePassword)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	_, token, err := h.authService.Register(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, models.TokenResponse{Token: token})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, models.TokenResponse{Token: token})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	profile, err := h.userService.FindUserByID(user.ID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, profile)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	updated, err := h.userService.UpdateOwnProfile(user.ID, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, updated)
}

func (h *AuthHandler) DeleteProfile(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	deleted, err := h.userService.DeleteUser(user.ID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, deleted)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	updated, err := h.authService.ChangePassword(user.ID, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, updated)
}
