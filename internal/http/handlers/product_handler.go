package handlers

import (
	"omoro/internal/domain"
	"omoro/internal/log"
	"omoro/internal/services"
	"omoro/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return notFound(c, "This product is no longer available", "/products")
	}
	p, ok := h.Catalog.Products(clientID(c)).FindBySlug(c.UserContext(), slug)
	if !ok {
		return notFound(c, "This product is no longer available", "/products")
	}
	related := h.Catalog.ProductsByCategory(c.UserContext(), clientID(c), p.Category)
	var others []domain.Product
	for _, r := range related {
		if r.ID != p.ID {
			others = append(others, r)
		}
	}
	return render(c, "product", fiber.Map{
		"P": p, "Related": firstN(others, 4),
		"Sent": c.Query("sent") == "1",
	})
}
