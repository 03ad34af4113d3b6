package middleware

import (
	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/anshmehta/stockwatch/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AdminOnly gates a route on the Admin role. It composes after Auth,
// which is responsible for putting the verified role into locals.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != models.RoleAdmin {
			return httperr.New(httperr.KindForbidden, "access denied, admins only")
		}
		return c.Next()
	}
}
