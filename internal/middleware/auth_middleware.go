package middleware

import (
	"strings"

	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/anshmehta/stockwatch/internal/token"
	"github.com/gofiber/fiber/v2"
)

// Auth validates the bearer token and attaches the caller's identity to
// the request. Claims are stored in locals strictly before Next is
// called; any verification failure aborts the request so a protected
// handler never runs with unset claims.
func Auth(tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return httperr.New(httperr.KindMissingToken, "token not found")
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			return httperr.New(httperr.KindInvalidToken, "invalid token format")
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return httperr.Wrap(httperr.KindInvalidToken, "invalid token", err)
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}
