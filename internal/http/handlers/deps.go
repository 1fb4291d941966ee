package handlers

import (
	"omoro/internal/catalog"
	"omoro/internal/config"
	"omoro/internal/domain"
	"omoro/internal/media"
	"omoro/internal/notify"
	"omoro/internal/repos"
	"omoro/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Catalog      *services.CatalogService
	Enquiries    *services.EnquiryService
	CookieSecure bool

	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	ProjectHandler  *ProjectHandler
	GalleryHandler  *GalleryHandler
	SearchHandler   *SearchHandler
	EnquiryHandler  *EnquiryHandler
	APIHandler      *APIHandler
	AuthHandler     *AuthHandler
	AdminHandler    *AdminHandler

	AdminProducts *KindAdmin[domain.Product]
	AdminProjects *KindAdmin[domain.Project]
	AdminGallery  *KindAdmin[domain.GalleryImage]
}

// NewMailer picks SMTP delivery when a host is configured and log-only delivery otherwise.
func NewMailer(cfg config.Config) notify.Mailer {
	if cfg.SMTPHost == "" {
		return notify.LogMailer{}
	}
	return &notify.SMTPMailer{
		Host: cfg.SMTPHost, Port: cfg.SMTPPort,
		Username: cfg.SMTPUser, Password: cfg.SMTPPassword,
		From: cfg.MailFrom, To: cfg.MailTo,
	}
}

// NewNotifier posts to cfg.NotifyURL when one is configured. Otherwise enquiries
// are mailed in process, so they never compete with visitors for the
// /api/contact rate limit.
func NewNotifier(cfg config.Config, mailer notify.Mailer, views fiber.Views) notify.Notifier {
	if cfg.NotifyURL == "" {
		return &notify.MailerNotifier{Mailer: mailer, Views: views}
	}
	return &notify.HTTPNotifier{URL: cfg.NotifyURL, Timeout: cfg.NotifyTimeout}
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService, views fiber.Views) *Deps {
	kvRepo := repos.NewKVRepo(db)
	enqRepo := repos.NewEnquiryRepo(db)

	catalogSvc := services.NewCatalogService(kvRepo, catalog.NewIDSource(nil))
	mailer := NewMailer(cfg)
	enquirySvc := services.NewEnquiryService(enqRepo, NewNotifier(cfg, mailer, views))
	uploads := media.NewUploader(cfg.MediaDir)

	return &Deps{
		Catalog:      catalogSvc,
		Enquiries:    enquirySvc,
		CookieSecure: cfg.CookieSecure,

		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		ProjectHandler:  &ProjectHandler{Catalog: catalogSvc},
		GalleryHandler:  &GalleryHandler{Catalog: catalogSvc},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		EnquiryHandler:  &EnquiryHandler{Enquiries: enquirySvc, Catalog: catalogSvc},
		APIHandler:      &APIHandler{Catalog: catalogSvc, Mailer: mailer},
		AuthHandler:     &AuthHandler{Auth: auth, CookieSecure: cfg.CookieSecure},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc, Enquiries: enquirySvc},

		AdminProducts: &KindAdmin[domain.Product]{
			Kind: "products", Label: "Product", Open: catalogSvc.Products, Uploads: uploads,
			Fields: []FormField{
				{Name: "title", Label: "Title", Type: "text", Required: true},
				{Name: "brand", Label: "Brand", Type: "text"},
				{Name: "category", Label: "Category", Type: "select", Required: true, Options: domain.ProductCategories},
				{Name: "modelNumber", Label: "Model Number", Type: "text", Required: true},
				{Name: "mrp", Label: "MRP", Type: "text"},
				{Name: "size", Label: "Size", Type: "text"},
				{Name: "lampType", Label: "Lamp Type", Type: "text"},
				{Name: "power", Label: "Power", Type: "text"},
				{Name: "bodyColor", Label: "Body Color", Type: "text"},
				{Name: "material", Label: "Material", Type: "text"},
				{Name: "warranty", Label: "Warranty", Type: "text"},
				{Name: "description", Label: "Description", Type: "textarea"},
			},
			Row: func(p domain.Product) AdminRow {
				return AdminRow{ID: p.ID, Title: p.Title, Subtitle: p.ModelNumber, Category: p.Category,
					Image: p.Image, Link: "/products/" + p.Slug}
			},
		},
		AdminProjects: &KindAdmin[domain.Project]{
			Kind: "projects", Label: "Project", Open: catalogSvc.Projects, Uploads: uploads,
			Fields: []FormField{
				{Name: "title", Label: "Title", Type: "text", Required: true},
				{Name: "location", Label: "Location", Type: "text", Required: true},
				{Name: "category", Label: "Category", Type: "select", Required: true, Options: domain.ProjectCategories},
				{Name: "client", Label: "Client", Type: "text"},
				{Name: "year", Label: "Year", Type: "text"},
				{Name: "description", Label: "Description", Type: "textarea"},
			},
			Row: func(p domain.Project) AdminRow {
				return AdminRow{ID: p.ID, Title: p.Title, Subtitle: p.Location, Category: p.Category,
					Image: p.Image, Link: "/our-projects/" + p.Slug}
			},
		},
		AdminGallery: &KindAdmin[domain.GalleryImage]{
			Kind: "gallery", Label: "Gallery Image", Open: catalogSvc.Gallery, Uploads: uploads,
			Fields: []FormField{
				{Name: "alt", Label: "Description", Type: "text", Required: true},
				{Name: "category", Label: "Category", Type: "select", Required: true, Options: domain.GalleryCategories},
			},
			Row: func(g domain.GalleryImage) AdminRow {
				return AdminRow{ID: g.ID, Title: g.Alt, Category: g.Category, Image: g.Src, Link: "/gallery"}
			},
		},
	}
}
