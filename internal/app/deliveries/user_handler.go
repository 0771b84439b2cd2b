package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rdityas/weblog-core/internal/app/middlewares"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/app/services"
)

type UserHandler struct {
	userService    *services.UserService
	authMiddleware *middlewares.AuthMiddleware
}

func NewUserHandler(userService *services.UserService, authMiddleware *middlewares.AuthMiddleware) *UserHandler {
	return &UserHandler{
		userService:    userService,
		authMiddleware: authMiddleware,
	}
}

func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userGroup := router.Group("/users")

	userGroup.Get("/", h.FindManyUsers)
	userGroup.Get("/:userId", h.FindUserByID)

	// Admin only
	userGroup.Put("/:userId", h.authMiddleware.RequireAdmin, h.UpdateUser)
	userGroup.Delete("/:userId", h.authMiddleware.RequireAdmin, h.DeleteUser)
}

func (h *UserHandler) FindManyUsers(c *fiber.Ctx) error {
	req := pkg.PageRequestFromQuery(c)

	users, err := h.userService.FindManyUsers(req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, users)
}

func (h *UserHandler) FindUserByID(c *fiber.Ctx) error {
	userID, err := idParam(c, "userId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	user, err := h.userService.FindUserByID(userID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "userId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	var req models.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	user, err := h.userService.UpdateUser(userID, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, user)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := idParam(c, "userId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	user, err := h.userService.DeleteUser(userID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, user)
}
