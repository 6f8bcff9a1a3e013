package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"guard_server/pkg/apperr"
)

// LocalsAccessToken is the Locals key under which BearerToken stores the
// caller's platform access token.
const LocalsAccessToken = "access_token"

// BearerToken extracts the platform OAuth access token from the
// Authorization header and stores it in the request context. The token is
// issued and refreshed by an external identity provider; this server only
// forwards it to the comment platform and never validates or persists it.
func BearerToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return apperr.Unauthorized("Missing Authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return apperr.Unauthorized("Invalid Authorization header format")
		}

		c.Locals(LocalsAccessToken, parts[1])
		return c.Next()
	}
}

// AccessToken returns the platform access token stored by BearerToken,
// or an empty string when the request is unauthenticated.
func AccessToken(c *fiber.Ctx) string {
	token, _ := c.Locals(LocalsAccessToken).(string)
	return token
}
