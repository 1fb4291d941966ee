package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omoro/internal/domain"
	"omoro/internal/kv"
	"omoro/internal/seed"
)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func newProducts(t *testing.T) (*Collection[domain.Product], *kv.Memory) {
	t.Helper()
	store := kv.NewMemory()
	return New(Products, store, NewIDSource(fixedClock(1_700_000_000_000))), store
}

func newProjects(store kv.Store, ms int64) *Collection[domain.Project] {
	return New(Projects, store, NewIDSource(fixedClock(ms)))
}

func ids[T Record[T]](list []T) []int64 {
	out := make([]int64, 0, len(list))
	for _, r := range list {
		out = append(out, r.RecordID())
	}
	return out
}

func TestResolveSeedOnly(t *testing.T) {
	c, store := newProducts(t)
	assert.Equal(t, seed.Products(), c.Resolve(context.Background()))
	assert.Equal(t, ModeMerge, c.Mode(context.Background()))
	assert.Empty(t, store.Keys(), "resolve never writes")
}

func TestResolveAdditionsBeforeSeed(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	adds := []domain.Project{{ID: 100, Title: "A"}, {ID: 101, Title: "B"}}
	require.NoError(t, kv.SetJSON(ctx, store, "local_projects", adds))

	got := newProjects(store, 1).Resolve(ctx)
	want := append(adds, seed.Projects()...)
	assert.Equal(t, want, got)
}

func TestResolveOverrideIsExact(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, kv.SetJSON(ctx, store, "local_projects", []domain.Project{{ID: 100}}))
	require.NoError(t, kv.SetJSON(ctx, store, "projects_full_list", []domain.Project{{ID: 7, Title: "Only"}}))

	c := newProjects(store, 1)
	assert.Equal(t, []domain.Project{{ID: 7, Title: "Only"}}, c.Resolve(ctx))
	assert.Equal(t, ModeOverride, c.Mode(ctx), "a full list without a mode key means override")
}

func TestResolveEmptyOverrideIsAuthoritative(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, "gallery_full_list", []byte("[]")))

	c := New(Gallery, store, nil)
	assert.Empty(t, c.Resolve(ctx))
}

func TestResolveDedupesCollidingAdditions(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, kv.SetJSON(ctx, store, "local_projects", []domain.Project{{ID: 2, Title: "Local copy"}}))

	got := newProjects(store, 1).Resolve(ctx)
	require.Len(t, got, 4)
	assert.Equal(t, int64(2), got[0].ID, "first occurrence keeps its position")
	assert.Equal(t, "Commercial Logic", got[0].Title, "last occurrence wins")
}

func TestCreatePrependsToAdditions(t *testing.T) {
	ctx := context.Background()
	c, store := newProducts(t)

	p, err := c.Create(ctx, map[string]string{"title": "Track Light", "category": "indoor-lighting"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000_000), p.ID)
	assert.Equal(t, "track-light", p.Slug)

	got := c.Resolve(ctx)
	assert.Equal(t, p, got[0])
	assert.Len(t, got, len(seed.Products())+1)
	_, hasFull := store.Get(ctx, "products_full_list")
	assert.False(t, hasFull, "create in merge mode leaves the full list alone")
	assert.Equal(t, ModeMerge, c.Mode(ctx))
}

func TestCreateIDsAreUniqueWithinOneMillisecond(t *testing.T) {
	ctx := context.Background()
	c, _ := newProducts(t)

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		p, err := c.Create(ctx, map[string]string{"title": "Same"}, nil)
		require.NoError(t, err)
		require.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
	list := c.Resolve(ctx)
	assert.Len(t, Dedupe(list), len(list))
}

func TestCreateInOverrideModeUpdatesBothLists(t *testing.T) {
	ctx := context.Background()
	c, store := newProducts(t)
	require.NoError(t, c.Delete(ctx, 1))

	p, err := c.Create(ctx, map[string]string{"title": "Strip"}, []string{"/media/uploads/s.jpg"})
	require.NoError(t, err)

	got := c.Resolve(ctx)
	assert.Equal(t, p.ID, got[0].ID)
	assert.Equal(t, "/media/uploads/s.jpg", got[0].Image)
	adds, ok := kv.GetJSON[[]domain.Product](ctx, store, "local_products")
	require.True(t, ok)
	assert.Equal(t, []int64{p.ID}, ids(adds))
}

func TestUpdatePreservesIDAndMaterializes(t *testing.T) {
	ctx := context.Background()
	c, store := newProducts(t)

	before := c.Resolve(ctx)
	u, err := c.Update(ctx, 3, map[string]string{"id": "999", "title": "Linear Profile 5FT", "mrp": "3600"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, "legero-linear-profile-4ft", u.Slug, "slug is fixed at creation")

	after := c.Resolve(ctx)
	assert.Equal(t, ids(before), ids(after))
	assert.Equal(t, "Linear Profile 5FT", after[2].Title)
	assert.Equal(t, ModeOverride, c.Mode(ctx))
	mode, _ := store.Get(ctx, "products_mode")
	assert.Equal(t, "override", string(mode))
}

func TestUpdateMirrorsIntoAdditions(t *testing.T) {
	ctx := context.Background()
	c, store := newProducts(t)
	p, err := c.Create(ctx, map[string]string{"title": "Pendant"}, nil)
	require.NoError(t, err)

	_, err = c.Update(ctx, p.ID, map[string]string{"power": "18W"})
	require.NoError(t, err)

	adds, ok := kv.GetJSON[[]domain.Product](ctx, store, "local_products")
	require.True(t, ok)
	require.Len(t, adds, 1)
	assert.Equal(t, "18W", adds[0].Power)
}

func TestUpdateUnknownIDWritesNothing(t *testing.T) {
	ctx := context.Background()
	c, store := newProducts(t)

	_, err := c.Update(ctx, 424242, map[string]string{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, store.Keys())
}

func TestUpdateRejectsUnknownField(t *testing.T) {
	ctx := context.Background()
	c, store := newProducts(t)

	_, err := c.Update(ctx, 1, map[string]string{"colour": "red"})
	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Empty(t, store.Keys())
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c, _ := newProducts(t)

	require.NoError(t, c.Delete(ctx, 2))
	once := c.Resolve(ctx)
	require.NoError(t, c.Delete(ctx, 2))
	assert.Equal(t, once, c.Resolve(ctx))
	assert.NotContains(t, ids(once), int64(2))

	require.NoError(t, c.Delete(ctx, 31337), "unknown id is a no-op filter")
	assert.Equal(t, once, c.Resolve(ctx))
}

func TestDeleteEverythingLeavesEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	c := New(Gallery, kv.NewMemory(), nil)
	for _, g := range seed.Gallery() {
		require.NoError(t, c.Delete(ctx, g.ID))
	}
	assert.Empty(t, c.Resolve(ctx))
}

func TestMergeThenOverrideScenario(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	c := newProjects(store, 5_000)

	x, err := c.Create(ctx, map[string]string{"title": "Harbour Walk", "location": "BEYPORE"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{x.ID, 1, 2, 3, 4}, ids(c.Resolve(ctx)))

	require.NoError(t, c.Delete(ctx, 1))
	assert.Equal(t, []int64{x.ID, 2, 3, 4}, ids(c.Resolve(ctx)))

	y, err := c.Create(ctx, map[string]string{"title": "Hill Court"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{y.ID, x.ID, 2, 3, 4}, ids(c.Resolve(ctx)))

	raw, _ := store.Get(ctx, "local_projects")
	var adds []domain.Project
	require.NoError(t, json.Unmarshal(raw, &adds))
	assert.Equal(t, []int64{y.ID, x.ID}, ids(adds))
}

func TestUnavailableStorageDegradesToSeed(t *testing.T) {
	ctx := context.Background()
	c := New(Products, kv.Unavailable{}, nil)

	assert.Equal(t, seed.Products(), c.Resolve(ctx))
	_, err := c.Create(ctx, map[string]string{"title": "x"}, nil)
	assert.ErrorIs(t, err, kv.ErrUnavailable)
	_, err = c.Update(ctx, 1, map[string]string{"title": "x"})
	assert.ErrorIs(t, err, kv.ErrUnavailable)
	assert.ErrorIs(t, c.Delete(ctx, 1), kv.ErrUnavailable)
}

func TestWriteFailurePropagates(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	store.FailSet = errors.New("quota exceeded")
	c := New(Products, store, nil)

	_, err := c.Create(ctx, map[string]string{"title": "x"}, nil)
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestNeighboursAndSlugLookup(t *testing.T) {
	ctx := context.Background()
	c := newProjects(kv.NewMemory(), 1)

	prev, cur, next, ok := c.Neighbours(ctx, "commercial-logic-project")
	require.True(t, ok)
	assert.Equal(t, int64(2), cur.ID)
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, int64(1), prev.ID)
	assert.Equal(t, int64(3), next.ID)

	prev, _, _, ok = c.Neighbours(ctx, "residential-series-project")
	require.True(t, ok)
	assert.Nil(t, prev)

	_, _, _, ok = c.Neighbours(ctx, "nope")
	assert.False(t, ok)

	p, ok := c.FindBySlug(ctx, "urban-flow-project")
	require.True(t, ok)
	assert.Equal(t, "KALARIKANDY", p.Location)
	_, ok = c.FindBySlug(ctx, "")
	assert.False(t, ok)
}

func TestFilterAndGet(t *testing.T) {
	ctx := context.Background()
	c, _ := newProducts(t)

	outdoor := c.Filter(ctx, func(p domain.Product) bool { return p.Category == "outdoor-lighting" })
	assert.Equal(t, []int64{7, 8}, ids(outdoor))

	p, ok := c.Get(ctx, 5)
	require.True(t, ok)
	assert.Equal(t, "LG-HB-100", p.ModelNumber)
	_, ok = c.Get(ctx, 55)
	assert.False(t, ok)
}

func TestIDSourceMonotonic(t *testing.T) {
	s := NewIDSource(fixedClock(10))
	assert.Equal(t, int64(10), s.Next())
	assert.Equal(t, int64(11), s.Next())
	assert.Equal(t, int64(101), s.After(100))
	assert.Equal(t, int64(102), s.Next())
}
