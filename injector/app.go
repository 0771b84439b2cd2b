package injector

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rdityas/weblog-core/internal/app/deliveries"
	"github.com/rdityas/weblog-core/internal/app/middlewares"
	"github.com/rdityas/weblog-core/pkg/ratelimit"
)

// Application represents the main application container for weblog-core
type Application struct {
	HealthHandler       *deliveries.HealthHandler
	AuthHandler         *deliveries.AuthHandler
	UserHandler         *deliveries.UserHandler
	PostHandler         *deliveries.PostHandler
	CommentHandler      *deliveries.CommentHandler
	CategoryHandler     *deliveries.CategoryHandler
	AuthMiddleware      *middlewares.AuthMiddleware
	RateLimitMiddleware *middlewares.RateLimitMiddleware
}

// RegisterRoutes registers all application routes using a Fiber router
func (app *Application) RegisterRoutes(router fiber.Router) {
	// Apply global rate limit for public API
	router.Use(app.RateLimitMiddleware.LimitByIP(ratelimit.PublicAPILimit))

	// Auth endpoints with stricter rate limit
	router.Use("/auth", app.RateLimitMiddleware.LimitByIP(ratelimit.AuthLimit))

	app.HealthHandler.RegisterRoutes(router)
	app.AuthHandler.RegisterRoutes(router)

	// Resource endpoints authenticate first so the user-based rate limit can
	// key on the principal instead of falling back to the IP
	protectedGroup := router.Group("")
	protectedGroup.Use(app.AuthMiddleware.Auth)
	protectedGroup.Use(app.RateLimitMiddleware.LimitByUser(ratelimit.AuthenticatedAPILimit))

	app.UserHandler.RegisterRoutes(protectedGroup)
	app.PostHandler.RegisterRoutes(protectedGroup)
	app.CommentHandler.RegisterRoutes(protectedGroup)
	app.CategoryHandler.RegisterRoutes(protectedGroup)
}
