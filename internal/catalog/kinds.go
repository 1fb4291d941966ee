package catalog

import (
	"omoro/internal/domain"
	"omoro/internal/seed"
)

var (
	Products = Kind[domain.Product]{Name: "products", Seed: seed.Products, New: domain.NewProduct}
	Projects = Kind[domain.Project]{Name: "projects", Seed: seed.Projects, New: domain.NewProject}
	Gallery  = Kind[domain.GalleryImage]{Name: "gallery", Seed: seed.Gallery, New: domain.NewGalleryImage}
)
