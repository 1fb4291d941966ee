package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omoro/internal/domain"
)

func TestAccessorsReturnCopies(t *testing.T) {
	p := Products()
	p[0].Title = "mutated"
	p[0].Images[0] = "mutated"
	assert.NotEqual(t, "mutated", Products()[0].Title)
	assert.NotEqual(t, "mutated", Products()[0].Images[0])

	g := Gallery()
	g[0].Alt = "mutated"
	assert.NotEqual(t, "mutated", Gallery()[0].Alt)
}

func TestSeedIDsUniquePerKind(t *testing.T) {
	seen := map[int64]bool{}
	for _, p := range Products() {
		require.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true
		assert.Contains(t, domain.ProductCategories, p.Category)
		assert.Equal(t, domain.Slugify(p.Title), p.Slug)
	}
	assert.Len(t, Projects(), 4)
	assert.Len(t, Gallery(), 6)
}

func TestSeedImagesShipUnderStatic(t *testing.T) {
	paths := []string{domain.FallbackImage}
	for _, p := range Products() {
		paths = append(paths, p.Images...)
	}
	for _, p := range Projects() {
		paths = append(paths, p.Images...)
	}
	for _, g := range Gallery() {
		paths = append(paths, g.Src)
	}
	for _, p := range paths {
		require.True(t, strings.HasPrefix(p, "/static/"), p)
		_, err := os.Stat(filepath.Join("../../web", filepath.FromSlash(p)))
		assert.NoError(t, err, p)
	}
}
