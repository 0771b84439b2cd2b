package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rdityas/weblog-core/internal/app/middlewares"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/app/services"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	authMiddleware  *middlewares.AuthMiddleware
}

func NewCategoryHandler(categoryService *services.CategoryService, authMiddleware *middlewares.AuthMiddleware) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		authMiddleware:  authMiddleware,
	}
}

func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryGroup := router.Group("/categories")

	categoryGroup.Get("/", h.FindManyCategories)
	categoryGroup.Get("/:categoryId", h.FindCategoryByID)

	// Admin only
	categoryGroup.Post("/", h.authMiddleware.RequireAdmin, h.CreateCategory)
	categoryGroup.Put("/:categoryId", h.authMiddleware.RequireAdmin, h.UpdateCategory)
	categoryGroup.Delete("/:categoryId", h.authMiddleware.RequireAdmin, h.DeleteCategory)
}

func (h *CategoryHandler) FindManyCategories(c *fiber.Ctx) error {
	req := pkg.PageRequestFromQuery(c)

	categories, err := h.categoryService.FindManyCategories(req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, categories)
}

func (h *CategoryHandler) FindCategoryByID(c *fiber.Ctx) error {
	categoryID, err := idParam(c, "categoryId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	category, err := h.categoryService.FindCategoryByID(categoryID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, category)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req models.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponseWithStatus(c, fiber.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := idParam(c, "categoryId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	var req models.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	category, err := h.categoryService.UpdateCategory(categoryID, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, category)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := idParam(c, "categoryId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	category, err := h.categoryService.DeleteCategory(categoryID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, category)
}
