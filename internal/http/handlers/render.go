package handlers

import (
	"github.com/gofiber/fiber/v2"

	"omoro/internal/domain"
)

type categoryLink struct {
	Slug  string
	Label string
}

var productCategoryLinks = func() []categoryLink {
	out := make([]categoryLink, 0, len(domain.ProductCategories))
	for _, s := range domain.ProductCategories {
		out = append(out, categoryLink{Slug: s, Label: domain.CategoryLabel(s)})
	}
	return out
}()

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if isAdmin(c) {
		data["Admin"] = true
	}
	data["NavCategories"] = productCategoryLinks
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

func notFound(c *fiber.Ctx, msg string, back ...string) error {
	m := fiber.Map{"Message": msg}
	if len(back) > 0 {
		m["Back"] = back[0]
	}
	return c.Status(fiber.StatusNotFound).Render("notfound", m)
}
