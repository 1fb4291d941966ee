package handlers

import (
	"strings"

	"omoro/internal/domain"
	"omoro/internal/log"
	"omoro/internal/services"
	"omoro/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		// Initial page load: show empty search without errors
		return render(c, "search", fiber.Map{"Q": "", "Products": []domain.Product{}, "Count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		c.Status(fiber.StatusBadRequest)
		return render(c, "search", fiber.Map{
			"Q": "", "Products": []domain.Product{}, "Count": 0, "Err": "Enter a valid keyword (letters/numbers only)",
		})
	}
	category := strings.TrimSpace(c.Query("category"))
	if category != "" {
		if _, ok := validate.OneOf(category, domain.ProductCategories); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "category"})
			c.Status(fiber.StatusBadRequest)
			return render(c, "search", fiber.Map{
				"Q": q, "Products": []domain.Product{}, "Count": 0, "Err": "Invalid category",
			})
		}
	}

	products := h.Catalog.SearchProducts(c.UserContext(), clientID(c), q, category)
	return render(c, "search", fiber.Map{
		"Q": q, "Category": category, "Products": products, "Count": len(products),
	})
}
