package handlers

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	applog "omoro/internal/log"
)

// Mount registers the site, API and admin routes.
func Mount(app *fiber.App, d *Deps) {
	app.Use(ClientScope(d.CookieSecure))

	formLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|enquiry"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.enquiry.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("notfound", fiber.Map{"Message": "Too many submissions. Please try again in a minute."})
		},
	})

	// Public pages
	app.Get("/", d.CategoryHandler.Home)
	app.Get("/about", Page("about"))
	app.Get("/why-omoro", Page("why"))
	app.Get("/privacy-policy", Page("privacy"))
	app.Get("/terms-of-use", Page("terms"))
	app.Get("/products", d.CategoryHandler.Products)
	app.Get("/products/category/:slug", d.CategoryHandler.List)
	app.Get("/products/:slug", d.ProductHandler.Detail)
	app.Get("/our-projects", d.ProjectHandler.List)
	app.Get("/our-projects/:slug", d.ProjectHandler.Detail)
	app.Get("/gallery", d.GalleryHandler.Gallery)
	app.Get("/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), d.SearchHandler.Search)

	// Enquiries
	app.Get("/contact", d.EnquiryHandler.ContactForm)
	app.Post("/contact", formLimiter, d.EnquiryHandler.Contact)
	app.Post("/enquire", formLimiter, d.EnquiryHandler.ProductEnquiry)
	app.Get("/customized-products-request", d.EnquiryHandler.CustomForm)
	app.Post("/customized-products-request", formLimiter, d.EnquiryHandler.Custom)

	// API
	app.Post("/api/contact", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.contact.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"success": false, "message": "rate limit exceeded, retry soon"})
		},
	}), d.APIHandler.Contact)
	api := app.Group("/api/v1", APIClient())
	api.Get("/products", d.APIHandler.Products)
	api.Get("/projects", d.APIHandler.Projects)
	api.Get("/gallery", d.APIHandler.Gallery)
	api.Get("/modes", d.APIHandler.Modes)

	// Auth routes (login throttled)
	app.Get("/login", d.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), d.AuthHandler.Login)
	app.Post("/logout", d.AuthHandler.Logout)

	// Admin
	admin := app.Group("/admin", RequireAdmin())
	admin.Get("/", d.AdminHandler.Dashboard)
	d.AdminProducts.Mount(admin)
	d.AdminProjects.Mount(admin)
	d.AdminGallery.Mount(admin)
	admin.Get("/enquiries", d.AdminHandler.EnquiriesPage)
	admin.Post("/enquiries/:id/delete", d.AdminHandler.DeleteEnquiry)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
}

// BodyLimit rejects non-multipart bodies larger than limit bytes. Multipart
// uploads are bounded by the app's BodyLimit instead.
func BodyLimit(limit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(c.Body()) > limit && !isMultipart(c) {
			applog.Security(c, "body.too_large", map[string]any{"bytes": len(c.Body())})
			return c.Status(fiber.StatusRequestEntityTooLarge).SendString("request body too large")
		}
		return c.Next()
	}
}

func isMultipart(c *fiber.Ctx) bool {
	return len(c.Request().Header.MultipartFormBoundary()) > 0
}

// Media serves files under dir, refusing anything that could escape it.
func Media(dir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		// Block encoded traversal attempts as well as raw .. or null bytes
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendFile(filepath.Join(dir, clean), true)
	}
}
