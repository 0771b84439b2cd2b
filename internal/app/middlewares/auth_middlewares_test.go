package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/app/services"
	"github.com/rdityas/weblog-core/internal/infrastructures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *services.TokenService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "weblog-test-secret-0123456789")
	tokenService := services.NewTokenService()
	userService := services.NewUserService(db, infrastructures.NewValidator())

	return NewAuthMiddleware(tokenService, userService), tokenService, mock
}

func TestAuthMissingToken(t *testing.T) {
	authMiddleware, _, _ := newTestAuthMiddleware(t)

	app := fiber.New()
	app.Get("/", authMiddleware.Auth, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMalformedToken(t *testing.T) {
	authMiddleware, _, _ := newTestAuthMiddleware(t)

	app := fiber.New()
	app.Get("/", authMiddleware.Auth, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthLoadsPrincipal(t *testing.T) {
	authMiddleware, tokenService, mock := newTestAuthMiddleware(t)

	token, err := tokenService.Sign(1)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "role"}).
			AddRow(1, "Alice", "alice@example.com", "hash", "user"))
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE "profiles"\."user_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "age", "address", "user_id"}))

	var principal *models.User
	app := fiber.New()
	app.Get("/", authMiddleware.Auth, func(c *fiber.Ctx) error {
		principal = CurrentUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, principal)
	assert.Equal(t, uint(1), principal.ID)
}

func TestAuthUnknownUser(t *testing.T) {
	authMiddleware, tokenService, mock := newTestAuthMiddleware(t)

	token, err := tokenService.Sign(42)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "role"}))

	app := fiber.New()
	app.Get("/", authMiddleware.Auth, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       models.UserRole
		statusCode int
	}{
		{"admin allowed", models.UserRoleAdmin, fiber.StatusOK},
		{"user forbidden", models.UserRoleUser, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMiddleware := NewAuthMiddleware(nil, nil)

			app := fiber.New()
			app.Get("/",
				func(c *fiber.Ctx) error {
					c.Locals("user", &models.User{ID: 1, Role: tt.role})
					return c.Next()
				},
				authMiddleware.RequireAdmin,
				func(c *fiber.Ctx) error {
					return c.SendStatus(fiber.StatusOK)
				},
			)

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, resp.StatusCode)
		})
	}
}

func TestRequireAdminWithoutPrincipal(t *testing.T) {
	authMiddleware := NewAuthMiddleware(nil, nil)

	app := fiber.New()
	app.Get("/", authMiddleware.RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
