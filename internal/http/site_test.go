package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"omoro/internal/domain"
	"omoro/internal/http/handlers"
)

func TestPublicPagesRender(t *testing.T) {
	app, _ := newSiteApp(t)
	b := newBrowser(t, app)

	pages := map[string]string{
		"/":                                      "LEGERO",
		"/about":                                 "About Omoro",
		"/why-omoro":                             "Why Omoro",
		"/privacy-policy":                        "Privacy Policy",
		"/terms-of-use":                          "Terms of Use",
		"/products":                              "All Products",
		"/products/category/outdoor-lighting":    "LEGERO Garden Bollard",
		"/products/legero-cob-spot-7w":           "LEGERO COB Spot 7W",
		"/our-projects":                          "Residential Series",
		"/our-projects/commercial-logic-project": "Aero-Electric",
		"/gallery":                               "Luxury Home Lighting",
		"/contact":                               "dealership",
		"/customized-products-request":           "customizationInfo",
	}
	for path, want := range pages {
		resp := b.get(path)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: status %d", path, resp.StatusCode)
		}
		if body := readBody(t, resp); !strings.Contains(body, want) {
			t.Fatalf("%s: %q not found", path, want)
		}
	}

	for _, path := range []string{"/products/category/lamps", "/products/nope", "/our-projects/nope", "/no-such-page"} {
		if resp := b.get(path); resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: want 404, got %d", path, resp.StatusCode)
		}
	}
}

func TestCategoryPageOnlyListsCategory(t *testing.T) {
	app, _ := newSiteApp(t)
	b := newBrowser(t, app)
	body := readBody(t, b.get("/products/category/industrial-lighting"))
	if !strings.Contains(body, "LEGERO High Bay 100W") || strings.Contains(body, "LEGERO Garden Bollard") {
		t.Fatal("category page mixes categories")
	}
}

func TestSearchValidation(t *testing.T) {
	app, _ := newSiteApp(t)
	b := newBrowser(t, app)

	resp := b.get("/search?q=" + url.QueryEscape("<script>alert(1)</script>"))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for bad query, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); strings.Contains(body, "<script>alert(1)</script>") {
		t.Fatal("query reflected unescaped")
	}

	resp = b.get("/search?q=LG-HB")
	if body := readBody(t, resp); resp.StatusCode != http.StatusOK || !strings.Contains(body, "LEGERO High Bay 100W") {
		t.Fatalf("model number search: %d", resp.StatusCode)
	}
	if resp := b.get("/search?q=panel&category=moon"); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad category: %d", resp.StatusCode)
	}
	if resp := b.get("/search"); resp.StatusCode != http.StatusOK {
		t.Fatalf("empty search page: %d", resp.StatusCode)
	}
}

func TestTemplateAutoEscape(t *testing.T) {
	app, _ := newSiteApp(t)
	b := newBrowser(t, app)
	b.login()
	if resp := b.post("/admin/products", url.Values{
		"title": {"<b>Bold</b> Lamp"}, "category": {"indoor-lighting"}, "modelNumber": {"<i>M</i>"},
	}); resp.StatusCode != http.StatusFound {
		t.Fatalf("create: %d", resp.StatusCode)
	}
	body := readBody(t, b.get("/products"))
	if strings.Contains(body, "<b>Bold</b>") || !strings.Contains(body, "&lt;b&gt;Bold&lt;/b&gt;") {
		t.Fatal("product title not escaped")
	}
}

func TestRateLimits(t *testing.T) {
	app, _ := newSiteApp(t)
	b := newBrowser(t, app)

	for i := 0; i < 21; i++ {
		resp := b.get("/search?q=led")
		if i < 20 && resp.StatusCode == http.StatusTooManyRequests {
			t.Fatalf("search limited too early at %d", i)
		}
		if i == 20 && resp.StatusCode != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after search limit, got %d", resp.StatusCode)
		}
	}

	var last *http.Response
	entries := captureLogs(t, func() {
		for i := 0; i < 11; i++ {
			last = b.post("/contact", url.Values{"enquiryType": {"spam"}})
		}
	})
	if last.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after enquiry limit, got %d", last.StatusCode)
	}
	if _, ok := findLog(entries, "rate.enquiry.hit"); !ok {
		t.Fatal("rate.enquiry.hit not logged")
	}
}

func TestBodySizeLimit(t *testing.T) {
	app, _ := newSiteApp(t)
	b := newBrowser(t, app)

	oversize := bytes.Repeat([]byte("A"), (1<<20)+10)
	req := httptest.NewRequest("POST", "/contact", bytes.NewReader(oversize))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	var resp *http.Response
	entries := captureLogs(t, func() { resp = b.do(req) })
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for oversize, got %d", resp.StatusCode)
	}
	if _, ok := findLog(entries, "body.too_large"); !ok {
		t.Fatal("body.too_large not logged")
	}
}

func TestMediaTraversalBlocked(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "uploads"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "uploads", "ok.txt"), []byte("lamp"), 0o644); err != nil {
		t.Fatal(err)
	}
	app := fiber.New(fiber.Config{Views: html.New("../../web/templates", ".html")})
	app.Get("/media/*", handlers.Media(dir))

	resp, err := app.Test(httptest.NewRequest("GET", "/media/uploads/ok.txt", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("plain media file: %v %d", err, resp.StatusCode)
	}

	for _, p := range []string{"/media/..%2f..%2fetc%2fpasswd", "/media/uploads/%2e%2e/%2e%2e/secret", "/media/uploads/..%5c..%5cwin.ini"} {
		var resp *http.Response
		entries := captureLogs(t, func() {
			resp, err = app.Test(httptest.NewRequest("GET", p, nil))
		})
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: want 404, got %d", p, resp.StatusCode)
		}
		if _, ok := findLog(entries, "media.traversal.block"); !ok {
			t.Fatalf("%s: media.traversal.block not logged", p)
		}
	}
}

func TestCatalogImagesAreServed(t *testing.T) {
	app, deps := newSiteApp(t)
	b := newBrowser(t, app)

	products := deps.Catalog.Products(b.cookies["sid"]).Resolve(context.Background())
	for _, src := range []string{products[0].Image, domain.FallbackImage} {
		resp := b.get(src)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: %d", src, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
			t.Fatalf("GET %s: content type %q", src, ct)
		}
	}
}
