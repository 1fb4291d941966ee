package handlers

import (
	"time"

	"omoro/internal/log"
	"omoro/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth         *services.AuthService
	CookieSecure bool
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if isAdmin(c) {
		return c.Redirect("/admin")
	}
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	user := c.FormValue("username")
	pass := c.FormValue("password")

	if _, err := h.Auth.Login(user, pass); err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"username": user})
		c.Status(fiber.StatusUnauthorized)
		return render(c, "login", fiber.Map{"Err": "Invalid credentials. Please try again.", "Username": user})
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    "true",
		Path:     "/",
		MaxAge:   86400,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   h.CookieSecure,
	})
	log.Audit(c, "auth.login.success", map[string]any{"username": user})
	return c.Redirect("/admin")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    "",
		Path:     "/",
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   h.CookieSecure,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/login")
}
