package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "omoro/internal/log"
)

const (
	clientCookie = "sid"
	// ClientHeader lets API callers name their client scope without the cookie.
	ClientHeader = "X-Client-ID"
)

func validClient(s string) bool {
	_, err := uuid.Parse(s)
	return s != "" && err == nil
}

// ClientScope gives every browser a sid cookie and exposes it as the client id.
// /api/ paths are left to APIClient, static assets need no scope.
func ClientScope(secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := c.Path()
		if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/") {
			return c.Next()
		}
		sid := c.Cookies(clientCookie)
		if !validClient(sid) {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     clientCookie,
				Value:    sid,
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				Secure:   secure,
			})
		}
		c.Locals(applog.ClientKey, sid)
		return c.Next()
	}
}

// APIClient reads the client id from the cookie or header. It never issues one:
// callers without a scope get read-only seed data.
func APIClient() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(clientCookie)
		if !validClient(sid) {
			sid = strings.TrimSpace(c.Get(ClientHeader))
		}
		if validClient(sid) {
			c.Locals(applog.ClientKey, sid)
		}
		return c.Next()
	}
}

func clientID(c *fiber.Ctx) string {
	s, _ := c.Locals(applog.ClientKey).(string)
	return s
}
