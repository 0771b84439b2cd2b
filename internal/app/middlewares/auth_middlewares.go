package middlewares

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	appErrors "github.com/rdityas/weblog-core/internal/app/errors"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/pkg"
	"github.com/rdityas/weblog-core/internal/app/services"
)

type AuthMiddleware struct {
	tokenService *services.TokenService
	userService  *services.UserService
}

func NewAuthMiddleware(tokenService *services.TokenService, userService *services.UserService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userService:  userService,
	}
}

// Auth verifies the bearer token, loads the principal and stores it in the
// request locals.
func (m *AuthMiddleware) Auth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return pkg.ErrorResponse(c, appErrors.NewUnauthorizedError("No token"))
	}

	token := strings.TrimPrefix(header, "Bearer ")

	userID, err := m.tokenService.Verify(token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTokenPayload) {
			return pkg.ErrorResponse(c, appErrors.NewUnauthorizedError("Invalid payload"))
		}
		return pkg.ErrorResponse(c, appErrors.NewUnauthorizedError("Invalid token"))
	}

	user, err := m.userService.FindUserByID(userID)
	if err != nil {
		return pkg.ErrorResponse(c, appErrors.NewUnauthorizedError("No user"))
	}

	c.Locals("user", user)
	c.Locals("user_id", user.ID)

	return c.Next()
}

// RequireAdmin gates a route to admin principals. It assumes Auth ran first.
func (m *AuthMiddleware) RequireAdmin(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return pkg.ErrorResponse(c, appErrors.NewUnauthorizedError())
	}
	if !user.IsAdmin() {
		return pkg.ErrorResponse(c, appErrors.NewForbiddenError())
	}

	return c.Next()
}

// CurrentUser returns the principal stored by Auth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
