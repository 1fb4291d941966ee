package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "omoro/internal/log"
	"omoro/internal/notify"
	"omoro/internal/services"
)

type APIHandler struct {
	Catalog *services.CatalogService
	Mailer  notify.Mailer
}

// POST /api/contact
func (h *APIHandler) Contact(c *fiber.Ctx) error {
	var m notify.Message
	if err := c.BodyParser(&m); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "Invalid request body",
		})
	}
	e, err := notify.Compose(c.App().Config().Views, m)
	if err == nil {
		err = h.Mailer.Send(c.UserContext(), e)
	}
	if err != nil {
		applog.Error(c, "mail.send.fail", err, map[string]any{"subject": e.Subject})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to send email", "error": err.Error(),
		})
	}
	applog.Info(c, "mail.send", map[string]any{"subject": e.Subject})
	return c.JSON(fiber.Map{"success": true, "message": "Email sent successfully"})
}

// GET /api/v1/products
func (h *APIHandler) Products(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Products(clientID(c)).Resolve(c.UserContext()))
}

// GET /api/v1/projects
func (h *APIHandler) Projects(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Projects(clientID(c)).Resolve(c.UserContext()))
}

// GET /api/v1/gallery
func (h *APIHandler) Gallery(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Gallery(clientID(c)).Resolve(c.UserContext()))
}

// GET /api/v1/modes
func (h *APIHandler) Modes(c *fiber.Ctx) error {
	out := fiber.Map{}
	for _, s := range h.Catalog.Stats(c.UserContext(), clientID(c)) {
		out[s.Name] = s.Mode
	}
	return c.JSON(out)
}
