package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Slugify lower-cases a title and replaces each space with a hyphen.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

func ProjectSlug(title string) string { return Slugify(title) + "-project" }

// SplitImages parses a comma-separated image list, dropping blanks.
func SplitImages(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstOr(images []string, fallback string) string {
	if len(images) > 0 {
		return images[0]
	}
	return fallback
}

func (p Product) RecordID() int64    { return p.ID }
func (p Product) RecordSlug() string { return p.Slug }

// With returns a copy of p with one field replaced.
func (p Product) With(field, value string) (Product, error) {
	switch field {
	case "id":
		return p, fmt.Errorf("product %s: %w", field, ErrReadOnlyField)
	case "slug":
		p.Slug = value
	case "title":
		p.Title = value
	case "brand":
		p.Brand = value
	case "category":
		p.Category = value
	case "modelNumber":
		p.ModelNumber = value
	case "mrp":
		p.MRP = value
	case "size":
		p.Size = value
	case "lampType":
		p.LampType = value
	case "power":
		p.Power = value
	case "bodyColor":
		p.BodyColor = value
	case "material":
		p.Material = value
	case "warranty":
		p.Warranty = value
	case "description":
		p.Description = value
	case "location":
		p.Location = value
	case "image":
		p.Image = value
	case "images":
		p.Images = SplitImages(value)
		p.Image = firstOr(p.Images, p.Image)
	default:
		return p, fmt.Errorf("product %q: %w", field, ErrUnknownField)
	}
	return p, nil
}

func (p Project) RecordID() int64    { return p.ID }
func (p Project) RecordSlug() string { return p.Slug }

func (p Project) With(field, value string) (Project, error) {
	switch field {
	case "id":
		return p, fmt.Errorf("project %s: %w", field, ErrReadOnlyField)
	case "slug":
		p.Slug = value
	case "title":
		p.Title = value
	case "location":
		p.Location = value
	case "category":
		p.Category = value
	case "description":
		p.Description = value
	case "year":
		p.Year = value
	case "client":
		p.Client = value
	case "image":
		p.Image = value
	case "images":
		p.Images = SplitImages(value)
		p.Image = firstOr(p.Images, p.Image)
	default:
		return p, fmt.Errorf("project %q: %w", field, ErrUnknownField)
	}
	return p, nil
}

func (g GalleryImage) RecordID() int64    { return g.ID }
func (g GalleryImage) RecordSlug() string { return g.Slug }

func (g GalleryImage) With(field, value string) (GalleryImage, error) {
	switch field {
	case "id":
		return g, fmt.Errorf("gallery %s: %w", field, ErrReadOnlyField)
	case "slug":
		g.Slug = value
	case "src", "image":
		g.Src = value
	case "images":
		g.Src = firstOr(SplitImages(value), g.Src)
	case "alt":
		g.Alt = value
	case "category":
		g.Category = value
	default:
		return g, fmt.Errorf("gallery %q: %w", field, ErrUnknownField)
	}
	return g, nil
}

// NewProduct builds a product from admin form fields. Unset brand, category and
// location take the admin form defaults.
func NewProduct(id int64, fields map[string]string, images []string) (Product, error) {
	p := Product{ID: id, Brand: "LEGERO", Category: "indoor-lighting", Location: "New"}
	p, err := apply(p, fields)
	if err != nil {
		return p, err
	}
	if len(images) > 0 {
		p.Images = images
	}
	p.Image = firstOr(p.Images, FallbackImage)
	p.Slug = Slugify(p.Title)
	return p, nil
}

func NewProject(id int64, fields map[string]string, images []string) (Project, error) {
	p := Project{ID: id, Category: "Residential"}
	p, err := apply(p, fields)
	if err != nil {
		return p, err
	}
	if len(images) > 0 {
		p.Images = images
	}
	p.Image = firstOr(p.Images, FallbackImage)
	p.Slug = ProjectSlug(p.Title)
	return p, nil
}

func NewGalleryImage(id int64, fields map[string]string, images []string) (GalleryImage, error) {
	g := GalleryImage{ID: id, Category: "Interior"}
	g, err := apply(g, fields)
	if err != nil {
		return g, err
	}
	if len(images) > 0 {
		g.Src = images[0]
	}
	if g.Src == "" {
		g.Src = FallbackImage
	}
	g.Slug = Slugify(g.Alt)
	return g, nil
}

// Updatable is a record whose fields can be replaced one at a time.
type Updatable[T any] interface {
	With(field, value string) (T, error)
}

// Apply folds fields over r in key order, skipping "id".
func Apply[T Updatable[T]](r T, fields map[string]string) (T, error) {
	return apply(r, fields)
}

func apply[T Updatable[T]](r T, fields map[string]string) (T, error) {
	for _, k := range sortedKeys(fields) {
		if k == "id" {
			continue
		}
		next, err := r.With(k, fields[k])
		if err != nil {
			return r, err
		}
		r = next
	}
	return r, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// "images" after "image" so an explicit list wins over a single image
	sort.Strings(keys)
	return keys
}
