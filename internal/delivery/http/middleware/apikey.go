package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/station-microservice/internal/pkg/errors"
	"github.com/station-microservice/internal/pkg/utils"
)

// APIKey gates routes behind the shared x-api-key header. Comparison is
// constant-time; a missing or mismatched key short-circuits before any
// handler logic runs.
func APIKey(key string) fiber.Handler {
	expected := []byte(key)
	return func(c *fiber.Ctx) error {
		provided := c.Get("x-api-key")
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		return c.Next()
	}
}
