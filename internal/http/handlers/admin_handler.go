package handlers

import (
	applog "omoro/internal/log"
	"omoro/internal/services"
	"omoro/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Catalog   *services.CatalogService
	Enquiries *services.EnquiryService
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	ctx, client := c.UserContext(), clientID(c)
	enqs, err := h.Enquiries.List(ctx, client)
	if err != nil {
		applog.Error(c, "admin.enquiries.list.fail", err, nil)
	}
	return render(c, "admin_dashboard", fiber.Map{
		"Stats": h.Catalog.Stats(ctx, client), "EnquiryCount": len(enqs),
	})
}

// GET /admin/enquiries
func (h *AdminHandler) EnquiriesPage(c *fiber.Ctx) error {
	enqs, err := h.Enquiries.List(c.UserContext(), clientID(c))
	if err != nil {
		applog.Error(c, "admin.enquiries.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load enquiries"})
	}
	return render(c, "admin_enquiries", fiber.Map{"Enquiries": enqs, "Deleted": c.Query("deleted") == "1"})
}

// POST /admin/enquiries/:id/delete
func (h *AdminHandler) DeleteEnquiry(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return c.Status(400).SendString("invalid id")
	}
	if err := h.Enquiries.Delete(c.UserContext(), clientID(c), id); err != nil {
		applog.Error(c, "admin.enquiries.delete.fail", err, map[string]any{"id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not delete enquiry", "Back": "/admin/enquiries"})
	}
	applog.Audit(c, "admin.enquiries.delete", map[string]any{"id": id})
	return c.Redirect("/admin/enquiries?deleted=1")
}
