package deliveries

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	appErrors "github.com/rdityas/weblog-core/internal/app/errors"
)

// idParam parses a numeric route parameter.
func idParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, appErrors.NewBadRequestError(map[string]string{name: "Must be a positive number"})
	}
	return uint(id), nil
}
