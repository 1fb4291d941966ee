package handlers

import (
	applog "omoro/internal/log"

	"github.com/gofiber/fiber/v2"
)

const authCookie = "auth_token"

func isAdmin(c *fiber.Ctx) bool { return c.Cookies(authCookie) != "" }

// RequireAdmin lets a request through when the auth_token cookie is present.
// Anything else is sent to the login page.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isAdmin(c) {
			applog.Security(c, "access.denied.admin", map[string]any{"path": c.Path()})
			return c.Redirect("/login")
		}
		return c.Next()
	}
}
