package deliveries

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	appErrors "github.com/rdityas/weblog-core/internal/app/errors"
	"github.com/rdityas/weblog-core/internal/app/middlewares"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/app/services"
)

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postGroup := router.Group("/posts")

	postGroup.Get("/", h.FindManyPosts)
	postGroup.Post("/", h.CreatePost)
	postGroup.Get("/:postId", h.FindPostByID)
	postGroup.Put("/:postId", h.UpdatePost)
	postGroup.Delete("/:postId", h.DeletePost)
}

func (h *PostHandler) FindManyPosts(c *fiber.Ctx) error {
	req := pkg.PageRequestFromQuery(c)

	var filter models.PostListFilter
	if userID, err := strconv.ParseUint(c.Query("userId"), 10, 32); err == nil {
		filter.UserID = uint(userID)
	}
	if categoryID, err := strconv.ParseUint(c.Query("categoryId"), 10, 32); err == nil {
		filter.CategoryID = uint(categoryID)
	}

	posts, err := h.postService.FindManyPosts(req, filter)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, posts)
}

func (h *PostHandler) FindPostByID(c *fiber.Ctx) error {
	postID, err := idParam(c, "postId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	post, err := h.postService.FindPostByID(postID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, post)
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req models.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	post, err := h.postService.CreatePost(user.ID, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponseWithStatus(c, fiber.StatusCreated, post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	postID, err := idParam(c, "postId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	var req models.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	post, err := h.postService.FindPostByID(postID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if !user.IsAdmin() && !h.postService.IsOwner(user.ID, post) {
		return pkg.ErrorResponse(c, appErrors.NewForbiddenError())
	}

	post, err = h.postService.UpdatePost(postID, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, post)
}

func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	postID, err := idParam(c, "postId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	post, err := h.postService.FindPostByID(postID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if !user.IsAdmin() && !h.postService.IsOwner(user.ID, post) {
		return pkg.ErrorResponse(c, appErrors.NewForbiddenError())
	}

	post, err = h.postService.DeletePost(postID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, post)
}
