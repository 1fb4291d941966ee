package handlers

import (
	"omoro/internal/domain"
	"omoro/internal/log"
	"omoro/internal/services"
	"omoro/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func firstN[T any](list []T, n int) []T {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func (h *CategoryHandler) Home(c *fiber.Ctx) error {
	ctx, client := c.UserContext(), clientID(c)
	products := h.Catalog.Products(client).Resolve(ctx)
	projects := h.Catalog.Projects(client).Resolve(ctx)
	gallery := h.Catalog.Gallery(client).Resolve(ctx)
	return render(c, "home", fiber.Map{
		"Products":     firstN(products, 4),
		"Projects":     firstN(projects, 4),
		"Gallery":      firstN(gallery, 6),
		"GalleryCount": len(gallery),
	})
}

// GET /products
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	products := h.Catalog.Products(clientID(c)).Resolve(c.UserContext())
	return render(c, "products", fiber.Map{"Title": "All Products", "Products": products})
}

// GET /products/category/:slug
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	slug, ok := validate.OneOf(c.Params("slug"), domain.ProductCategories)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "category", "value": c.Params("slug")})
		return notFound(c, "Category not found", "/products")
	}
	products := h.Catalog.ProductsByCategory(c.UserContext(), clientID(c), slug)
	return render(c, "products", fiber.Map{
		"Title": domain.CategoryLabel(slug), "Category": slug, "Products": products,
	})
}
