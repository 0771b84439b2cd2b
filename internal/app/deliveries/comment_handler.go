package deliveries

import (
	"github.com/gofiber/fiber/v2"
	appErrors "github.com/rdityas/weblog-core/internal/app/errors"
	"github.com/rdityas/weblog-core/internal/app/middlewares"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/app/services"
)

type CommentHandler struct {
	commentService *services.CommentService
	postService    *services.PostService
}

func NewCommentHandler(commentService *services.CommentService, postService *services.PostService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		postService:    postService,
	}
}

func (h *CommentHandler) RegisterRoutes(router fiber.Router) {
	commentGroup := router.Group("/posts/:postId/comments")

	commentGroup.Get("/", h.FindManyComments)
	commentGroup.Post("/", h.CreateComment)
	commentGroup.Get("/:commentId", h.FindCommentByID)
	commentGroup.Put("/:commentId", h.UpdateComment)
	commentGroup.Delete("/:commentId", h.DeleteComment)
}

func (h *CommentHandler) FindManyComments(c *fiber.Ctx) error {
	postID, err := idParam(c, "postId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	// The post must exist before listing its comments
	if _, err := h.postService.FindPostByID(postID); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	req := pkg.PageRequestFromQuery(c)

	comments, err := h.commentService.FindManyComments(postID, req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, comments)
}

func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	postID, err := idParam(c, "postId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if _, err := h.postService.FindPostByID(postID); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	comment, err := h.commentService.CreateComment(postID, user.ID, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponseWithStatus(c, fiber.StatusCreated, comment)
}

func (h *CommentHandler) FindCommentByID(c *fiber.Ctx) error {
	commentID, err := idParam(c, "commentId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	comment, err := h.commentService.FindCommentByID(commentID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, comment)
}

func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	commentID, err := idParam(c, "commentId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	comment, err := h.commentService.FindCommentByID(commentID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if !user.IsAdmin() && !h.commentService.IsOwner(user.ID, comment) {
		return pkg.ErrorResponse(c, appErrors.NewForbiddenError())
	}

	comment, err = h.commentService.UpdateComment(commentID, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, comment)
}

func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	commentID, err := idParam(c, "commentId")
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	comment, err := h.commentService.FindCommentByID(commentID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if !user.IsAdmin() && !h.commentService.IsOwner(user.ID, comment) {
		return pkg.ErrorResponse(c, appErrors.NewForbiddenError())
	}

	comment, err = h.commentService.DeleteComment(commentID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, comment)
}
