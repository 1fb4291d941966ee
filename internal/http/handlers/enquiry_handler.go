package handlers

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"omoro/internal/domain"
	applog "omoro/internal/log"
	"omoro/internal/services"
	"omoro/internal/validate"
)

type EnquiryHandler struct {
	Enquiries *services.EnquiryService
	Catalog   *services.CatalogService
}

const (
	msgEnquiryFailed = "Failed to submit enquiry. Please try again."
	msgSaveFailed    = "We could not save your enquiry. Please try again later."
)

// submit runs the save-then-notify flow and maps its outcome to a user message.
// An empty message means success.
func (h *EnquiryHandler) submit(c *fiber.Ctx, f services.Form) (int, string) {
	saved, err := h.Enquiries.Submit(c.UserContext(), clientID(c), f)
	if saved.ID != 0 {
		applog.Audit(c, "enquiry.save", map[string]any{"id": saved.ID, "type": saved.Type})
	}
	switch {
	case errors.Is(err, services.ErrNotificationFailed):
		applog.Error(c, "enquiry.notify.fail", err, map[string]any{"id": saved.ID})
		return fiber.StatusBadGateway, msgEnquiryFailed
	case err != nil:
		applog.Error(c, "enquiry.save.fail", err, nil)
		return fiber.StatusInternalServerError, msgSaveFailed
	}
	return fiber.StatusOK, ""
}

func invalid(c *fiber.Ctx, field string) {
	applog.Security(c, "validation.fail", map[string]any{"field": field})
	c.Status(fiber.StatusBadRequest)
}

// GET /contact
func (h *EnquiryHandler) ContactForm(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{
		"Types": domain.ContactTypes, "Form": services.ContactForm{Type: "general"},
		"Sent": c.Query("sent") == "1",
	})
}

// POST /contact
func (h *EnquiryHandler) Contact(c *fiber.Ctx) error {
	f := services.ContactForm{
		Type:      c.FormValue("enquiryType"),
		FirstName: validate.Optional(c.FormValue("firstName"), 80),
		LastName:  validate.Optional(c.FormValue("lastName"), 80),
		Email:     validate.Optional(c.FormValue("email"), 100),
		Phone:     validate.Optional(c.FormValue("phone"), 20),
		Company:   validate.Optional(c.FormValue("company"), 120),
		Location:  validate.Optional(c.FormValue("location"), 120),
		Message:   validate.Optional(c.FormValue("message"), 2000),
	}
	data := fiber.Map{"Types": domain.ContactTypes, "Form": f}

	var ok bool
	if f.Type, ok = validate.OneOf(f.Type, domain.ContactTypes); !ok {
		invalid(c, "enquiryType")
		data["Err"] = "Please choose an enquiry type."
		return render(c, "contact", data)
	}
	if _, ok = validate.Name(f.FirstName); !ok {
		invalid(c, "firstName")
		data["Err"] = "Please enter your name."
		return render(c, "contact", data)
	}
	if _, ok = validate.Email(f.Email); !ok {
		invalid(c, "email")
		data["Err"] = "Please enter a valid email address."
		return render(c, "contact", data)
	}
	if _, ok = validate.Phone(f.Phone); !ok {
		invalid(c, "phone")
		data["Err"] = "Please enter a valid phone number."
		return render(c, "contact", data)
	}

	if status, msg := h.submit(c, f); msg != "" {
		c.Status(status)
		data["Err"] = msg
		return render(c, "contact", data)
	}
	return c.Redirect("/contact?sent=1")
}

// POST /enquire
func (h *EnquiryHandler) ProductEnquiry(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.FormValue("product"))
	if !ok {
		invalid(c, "product")
		return notFound(c, "This product is no longer available", "/products")
	}
	p, ok := h.Catalog.Products(clientID(c)).FindBySlug(c.UserContext(), slug)
	if !ok {
		return notFound(c, "This product is no longer available", "/products")
	}
	f := services.ProductEnquiryForm{
		Name:        validate.Optional(c.FormValue("name"), 80),
		Phone:       validate.Optional(c.FormValue("phone"), 20),
		Place:       validate.Optional(c.FormValue("place"), 120),
		ProductName: p.Title,
		ModelNumber: p.ModelNumber,
	}
	data := fiber.Map{"P": p, "Enquiry": f}

	if _, ok := validate.Name(f.Name); !ok {
		invalid(c, "name")
		data["Err"] = "Please enter your name."
		return render(c, "product", data)
	}
	if _, ok := validate.Phone(f.Phone); !ok {
		invalid(c, "phone")
		data["Err"] = "Please enter a valid phone number."
		return render(c, "product", data)
	}
	if _, ok := validate.Required(f.Place, 120); !ok {
		invalid(c, "place")
		data["Err"] = "Please enter your location."
		return render(c, "product", data)
	}

	if status, msg := h.submit(c, f); msg != "" {
		c.Status(status)
		data["Err"] = msg
		return render(c, "product", data)
	}
	return c.Redirect("/products/" + p.Slug + "?sent=1")
}

// GET /customized-products-request
func (h *EnquiryHandler) CustomForm(c *fiber.Ctx) error {
	return render(c, "customized", fiber.Map{
		"Form": services.CustomProductForm{CountryCode: "+91"}, "Sent": c.Query("sent") == "1",
	})
}

// POST /customized-products-request
func (h *EnquiryHandler) Custom(c *fiber.Ctx) error {
	f := services.CustomProductForm{
		FirstName:   validate.Optional(c.FormValue("firstName"), 80),
		LastName:    validate.Optional(c.FormValue("lastName"), 80),
		Email:       validate.Optional(c.FormValue("email"), 100),
		CountryCode: validate.Optional(c.FormValue("countryCode"), 6),
		Phone:       validate.Optional(c.FormValue("phone"), 20),
		Info:        validate.Optional(c.FormValue("customizationInfo"), 2000),
	}
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		f.FileName = validate.Optional(filepath.Base(fh.Filename), 120)
	}
	data := fiber.Map{"Form": f}

	if _, ok := validate.Name(f.FirstName); !ok {
		invalid(c, "firstName")
		data["Err"] = "Please enter your name."
		return render(c, "customized", data)
	}
	if _, ok := validate.Email(f.Email); !ok {
		invalid(c, "email")
		data["Err"] = "Please enter a valid email address."
		return render(c, "customized", data)
	}
	if _, ok := validate.Phone(f.Phone); !ok {
		invalid(c, "phone")
		data["Err"] = "Please enter a valid phone number."
		return render(c, "customized", data)
	}
	if _, ok := validate.Required(f.Info, 2000); !ok {
		invalid(c, "customizationInfo")
		data["Err"] = "Please describe the customization you need."
		return render(c, "customized", data)
	}

	if status, msg := h.submit(c, f); msg != "" {
		c.Status(status)
		data["Err"] = msg
		return render(c, "customized", data)
	}
	return c.Redirect("/customized-products-request?sent=1")
}
