//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/google/wire"
	"github.com/rdityas/weblog-core/internal/app/deliveries"
	"github.com/rdityas/weblog-core/internal/app/middlewares"
	"github.com/rdityas/weblog-core/internal/app/services"
	"github.com/rdityas/weblog-core/internal/infrastructures"
	"github.com/rdityas/weblog-core/pkg/ratelimit"
)

// Infrastructure providers
var infrastructureSet = wire.NewSet(
	infrastructures.NewDatabase,
	infrastructures.NewRedisClient,
	infrastructures.NewValidator,
	wire.Value("weblog"),
	wire.Bind(new(ratelimit.RateLimiter), new(*ratelimit.RedisRateLimiter)),
	ratelimit.NewRedisRateLimiter,
)

// Service providers
var serviceSet = wire.NewSet(
	services.NewTokenService,
	services.NewAuthService,
	services.NewUserService,
	services.NewPostService,
	services.NewCommentService,
	services.NewCategoryService,
)

// Middleware providers
var middlewareSet = wire.NewSet(
	middlewares.NewAuthMiddleware,
	middlewares.NewRateLimitMiddleware,
)

// Handler providers
var handlerSet = wire.NewSet(
	deliveries.NewHealthHandler,
	deliveries.NewAuthHandler,
	deliveries.NewUserHandler,
	deliveries.NewPostHandler,
	deliveries.NewCommentHandler,
	deliveries.NewCategoryHandler,
	wire.Struct(new(Application), "*"),
)

// InitializeApplication initializes the application with all its dependencies
func InitializeApplication() (*Application, error) {
	wire.Build(
		infrastructureSet,
		serviceSet,
		middlewareSet,
		handlerSet,
	)
	return &Application{}, nil
}
