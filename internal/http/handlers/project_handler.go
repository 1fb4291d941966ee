package handlers

import (
	"omoro/internal/services"
	"omoro/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProjectHandler struct {
	Catalog *services.CatalogService
}

// GET /our-projects
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects := h.Catalog.Projects(clientID(c)).Resolve(c.UserContext())
	return render(c, "projects", fiber.Map{"Projects": projects})
}

// GET /our-projects/:slug
func (h *ProjectHandler) Detail(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		return notFound(c, "Project not found", "/our-projects")
	}
	page, ok := h.Catalog.ProjectBySlug(c.UserContext(), clientID(c), slug)
	if !ok {
		return notFound(c, "Project not found", "/our-projects")
	}
	return render(c, "project", fiber.Map{"P": page.Project, "Prev": page.Prev, "Next": page.Next})
}
