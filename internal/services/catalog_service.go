package services

import (
	"context"
	"strings"

	"omoro/internal/catalog"
	"omoro/internal/domain"
	"omoro/internal/repos"
)

// CatalogService opens the per-client overlay collections for each entity kind.
type CatalogService struct {
	KV  *repos.KVRepo
	IDs *catalog.IDSource
}

func NewCatalogService(kv *repos.KVRepo, ids *catalog.IDSource) *CatalogService {
	if ids == nil {
		ids = catalog.NewIDSource(nil)
	}
	return &CatalogService{KV: kv, IDs: ids}
}

func (s *CatalogService) Products(client string) *catalog.Collection[domain.Product] {
	return catalog.New(catalog.Products, s.KV.Store(client), s.IDs)
}

func (s *CatalogService) Projects(client string) *catalog.Collection[domain.Project] {
	return catalog.New(catalog.Projects, s.KV.Store(client), s.IDs)
}

func (s *CatalogService) Gallery(client string) *catalog.Collection[domain.GalleryImage] {
	return catalog.New(catalog.Gallery, s.KV.Store(client), s.IDs)
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, client, category string) []domain.Product {
	return s.Products(client).Filter(ctx, func(p domain.Product) bool { return p.Category == category })
}

// SearchProducts matches q case-insensitively against title and model number.
// An empty q matches everything; category narrows when set.
func (s *CatalogService) SearchProducts(ctx context.Context, client, q, category string) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	return s.Products(client).Filter(ctx, func(p domain.Product) bool {
		if category != "" && p.Category != category {
			return false
		}
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.ModelNumber), q)
	})
}

func (s *CatalogService) GalleryByCategory(ctx context.Context, client, category string) []domain.GalleryImage {
	g := s.Gallery(client)
	if category == "" {
		return g.Resolve(ctx)
	}
	return g.Filter(ctx, func(img domain.GalleryImage) bool { return img.Category == category })
}

// ProjectPage is a project plus its neighbours in listing order.
type ProjectPage struct {
	Project domain.Project
	Prev    *domain.Project
	Next    *domain.Project
}

func (s *CatalogService) ProjectBySlug(ctx context.Context, client, slug string) (ProjectPage, bool) {
	prev, cur, next, ok := s.Projects(client).Neighbours(ctx, slug)
	if !ok {
		return ProjectPage{}, false
	}
	return ProjectPage{Project: cur, Prev: prev, Next: next}, true
}

// KindStats summarizes one kind for the admin dashboard.
type KindStats struct {
	Name  string
	Count int
	Mode  catalog.Mode
}

func (s *CatalogService) Stats(ctx context.Context, client string) []KindStats {
	p, pr, g := s.Products(client), s.Projects(client), s.Gallery(client)
	return []KindStats{
		{Name: p.Name(), Count: len(p.Resolve(ctx)), Mode: p.Mode(ctx)},
		{Name: pr.Name(), Count: len(pr.Resolve(ctx)), Mode: pr.Mode(ctx)},
		{Name: g.Name(), Count: len(g.Resolve(ctx)), Mode: g.Mode(ctx)},
	}
}
