package handlers

import (
	"strings"

	"omoro/internal/domain"
	"omoro/internal/services"

	"github.com/gofiber/fiber/v2"
)

type GalleryHandler struct {
	Catalog *services.CatalogService
}

// GET /gallery?category=
func (h *GalleryHandler) Gallery(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	images := h.Catalog.GalleryByCategory(c.UserContext(), clientID(c), category)
	return render(c, "gallery", fiber.Map{
		"Images": images, "Category": category, "Categories": domain.GalleryCategories,
	})
}

// Page renders a template that needs no data.
func Page(tmpl string) fiber.Handler {
	return func(c *fiber.Ctx) error { return render(c, tmpl, nil) }
}
