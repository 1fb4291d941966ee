package domain

import "errors"

var (
	ErrReadOnlyField = errors.New("field is read-only")
	ErrUnknownField  = errors.New("unknown field")
)

// FallbackImage is used when an entity is created without any image.
const FallbackImage = "/static/img/fallback.svg"

type Product struct {
	ID          int64    `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Brand       string   `json:"brand,omitempty"`
	Category    string   `json:"category"`
	ModelNumber string   `json:"modelNumber,omitempty"`
	MRP         string   `json:"mrp,omitempty"`
	Size        string   `json:"size,omitempty"`
	LampType    string   `json:"lampType,omitempty"`
	Power       string   `json:"power,omitempty"`
	BodyColor   string   `json:"bodyColor,omitempty"`
	Material    string   `json:"material,omitempty"`
	Warranty    string   `json:"warranty,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
	Location    string   `json:"location,omitempty"`
}

type Project struct {
	ID          int64    `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Year        string   `json:"year,omitempty"`
	Client      string   `json:"client,omitempty"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
}

type GalleryImage struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug,omitempty"`
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Category string `json:"category"`
}

// Enquiry is a visitor submission. Status is "new" at creation and never transitions.
type Enquiry struct {
	ID          int64  `db:"id" json:"id"`
	Type        string `db:"type" json:"type"`
	Name        string `db:"name" json:"name"`
	Phone       string `db:"phone" json:"phone"`
	Email       string `db:"email" json:"email,omitempty"`
	Location    string `db:"location" json:"location,omitempty"`
	Message     string `db:"message" json:"message,omitempty"`
	ProductName string `db:"product_name" json:"productName,omitempty"`
	ModelNumber string `db:"model_number" json:"modelNumber,omitempty"`
	Date        string `db:"date" json:"date"` // ISO-8601 UTC, millisecond precision
	Status      string `db:"status" json:"status"`
}

const (
	EnquiryStatusNew = "new"

	EnquiryProduct       = "product"
	EnquiryCustomProduct = "custom_product"
)

// DateLayout is fixed width so stored dates sort lexicographically.
const DateLayout = "2006-01-02T15:04:05.000Z"

var (
	ProductCategories = []string{"indoor-lighting", "architectural-lighting", "industrial-lighting", "outdoor-lighting"}
	ProjectCategories = []string{"Residential", "Commercial", "Industrial", "Outdoor"}
	GalleryCategories = []string{"Interior", "Exterior", "Commercial", "Residential", "Office"}
	// ContactTypes are the subjects offered on the contact form.
	ContactTypes = []string{"general", "dealership", "project", "support"}
)

// CategoryLabel turns "indoor-lighting" into "Indoor Lighting".
func CategoryLabel(slug string) string {
	out := []byte(slug)
	upper := true
	for i, b := range out {
		switch {
		case b == '-':
			out[i] = ' '
			upper = true
		case upper && 'a' <= b && b <= 'z':
			out[i] = b - 'a' + 'A'
			upper = false
		default:
			upper = false
		}
	}
	return string(out)
}
