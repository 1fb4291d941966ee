// Package catalog overlays locally stored edits on top of the shipped seed
// catalog.
//
// Each entity kind keeps three keys in a kv.Store:
//
//	local_<kind>      additions created in merge mode
//	<kind>_full_list  the complete list once any edit or delete happened
//	<kind>_mode       "merge" or "override"
//
// While merging, the visible catalog is additions followed by the seed. The
// first update or delete materializes that view into the full list and the
// kind stays in override mode from then on.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"omoro/internal/domain"
	"omoro/internal/kv"
)

var ErrNotFound = errors.New("catalog: record not found")

type Mode string

const (
	ModeMerge    Mode = "merge"
	ModeOverride Mode = "override"
)

// Record is what a Collection can hold: an id, a slug and a per-field copy-on-write update.
type Record[T any] interface {
	RecordID() int64
	RecordSlug() string
	With(field, value string) (T, error)
}

// Kind describes one entity type: its key prefix, seed and constructor.
type Kind[T Record[T]] struct {
	Name string
	Seed func() []T
	New  func(id int64, fields map[string]string, images []string) (T, error)
}

func (k Kind[T]) AdditionsKey() string { return "local_" + k.Name }
func (k Kind[T]) OverrideKey() string  { return k.Name + "_full_list" }
func (k Kind[T]) ModeKey() string      { return k.Name + "_mode" }

type Collection[T Record[T]] struct {
	kind  Kind[T]
	store kv.Store
	ids   *IDSource
}

func New[T Record[T]](kind Kind[T], store kv.Store, ids *IDSource) *Collection[T] {
	if ids == nil {
		ids = NewIDSource(nil)
	}
	return &Collection[T]{kind: kind, store: store, ids: ids}
}

func (c *Collection[T]) Name() string { return c.kind.Name }

// Mode reports the persisted mode. Stores written before the mode key existed
// are in override mode exactly when they hold a full list.
func (c *Collection[T]) Mode(ctx context.Context) Mode {
	if raw, ok := c.store.Get(ctx, c.kind.ModeKey()); ok && Mode(raw) == ModeOverride {
		return ModeOverride
	}
	if _, ok := c.store.Get(ctx, c.kind.OverrideKey()); ok {
		return ModeOverride
	}
	return ModeMerge
}

// Resolve returns the catalog a visitor sees. It never writes.
func (c *Collection[T]) Resolve(ctx context.Context) []T {
	if full, ok := c.fullList(ctx); ok {
		return full
	}
	return c.merged(ctx)
}

func (c *Collection[T]) fullList(ctx context.Context) ([]T, bool) {
	full, ok := kv.GetJSON[[]T](ctx, c.store, c.kind.OverrideKey())
	if !ok {
		return nil, false
	}
	if full == nil {
		full = []T{}
	}
	return full, true
}

func (c *Collection[T]) additions(ctx context.Context) []T {
	adds, _ := kv.GetJSON[[]T](ctx, c.store, c.kind.AdditionsKey())
	return adds
}

func (c *Collection[T]) merged(ctx context.Context) []T {
	adds := c.additions(ctx)
	if len(adds) == 0 {
		return c.kind.Seed()
	}
	return Dedupe(append(adds, c.kind.Seed()...))
}

// Create builds a new record, prepends it to the additions and, in override
// mode, to the full list as well.
func (c *Collection[T]) Create(ctx context.Context, fields map[string]string, images []string) (T, error) {
	var zero T
	id := c.ids.Next()
	for _, r := range c.Resolve(ctx) {
		if r.RecordID() >= id {
			id = c.ids.After(r.RecordID())
		}
	}
	rec, err := c.kind.New(id, fields, images)
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", c.kind.Name, err)
	}

	adds := append([]T{rec}, c.additions(ctx)...)
	if err := kv.SetJSON(ctx, c.store, c.kind.AdditionsKey(), adds); err != nil {
		return zero, fmt.Errorf("create %s: %w", c.kind.Name, err)
	}
	if full, ok := c.fullList(ctx); ok {
		full = append([]T{rec}, full...)
		if err := kv.SetJSON(ctx, c.store, c.kind.OverrideKey(), full); err != nil {
			return zero, fmt.Errorf("create %s: %w", c.kind.Name, err)
		}
	}
	return rec, nil
}

// Update shallow-merges fields into the record with the given id. The id never
// changes. Unknown ids return ErrNotFound and nothing is written.
func (c *Collection[T]) Update(ctx context.Context, id int64, fields map[string]string) (T, error) {
	var zero T
	working, ok := c.fullList(ctx)
	if !ok {
		working = c.merged(ctx)
	}
	idx := indexOf(working, id)
	if idx < 0 {
		return zero, fmt.Errorf("update %s %d: %w", c.kind.Name, id, ErrNotFound)
	}
	updated, err := domain.Apply(working[idx], fields)
	if err != nil {
		return zero, fmt.Errorf("update %s %d: %w", c.kind.Name, id, err)
	}
	working[idx] = updated
	if err := c.writeFull(ctx, working); err != nil {
		return zero, fmt.Errorf("update %s %d: %w", c.kind.Name, id, err)
	}

	adds := c.additions(ctx)
	if i := indexOf(adds, id); i >= 0 {
		mirrored, err := domain.Apply(adds[i], fields)
		if err != nil {
			return zero, fmt.Errorf("update %s %d: %w", c.kind.Name, id, err)
		}
		adds[i] = mirrored
		if err := kv.SetJSON(ctx, c.store, c.kind.AdditionsKey(), adds); err != nil {
			return zero, fmt.Errorf("update %s %d: %w", c.kind.Name, id, err)
		}
	}
	return updated, nil
}

// Delete removes id from the visible catalog. Deleting an unknown id still
// materializes the full list and is not an error.
func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	current := c.Resolve(ctx)
	kept := make([]T, 0, len(current))
	for _, r := range current {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	if err := c.writeFull(ctx, kept); err != nil {
		return fmt.Errorf("delete %s %d: %w", c.kind.Name, id, err)
	}
	return nil
}

func (c *Collection[T]) writeFull(ctx context.Context, list []T) error {
	if list == nil {
		list = []T{}
	}
	if err := kv.SetJSON(ctx, c.store, c.kind.OverrideKey(), list); err != nil {
		return err
	}
	return c.store.Set(ctx, c.kind.ModeKey(), []byte(ModeOverride))
}

func (c *Collection[T]) Get(ctx context.Context, id int64) (T, bool) {
	list := c.Resolve(ctx)
	if i := indexOf(list, id); i >= 0 {
		return list[i], true
	}
	var zero T
	return zero, false
}

// FindBySlug returns the first record with slug. Slugs are not unique.
func (c *Collection[T]) FindBySlug(ctx context.Context, slug string) (T, bool) {
	var zero T
	if slug == "" {
		return zero, false
	}
	for _, r := range c.Resolve(ctx) {
		if r.RecordSlug() == slug {
			return r, true
		}
	}
	return zero, false
}

// Neighbours finds slug and the records either side of it in resolved order.
func (c *Collection[T]) Neighbours(ctx context.Context, slug string) (prev *T, cur T, next *T, found bool) {
	list := c.Resolve(ctx)
	for i, r := range list {
		if r.RecordSlug() != slug {
			continue
		}
		if i > 0 {
			prev = &list[i-1]
		}
		if i+1 < len(list) {
			next = &list[i+1]
		}
		return prev, r, next, true
	}
	return nil, cur, nil, false
}

func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) []T {
	var out []T
	for _, r := range c.Resolve(ctx) {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Dedupe keeps the first position of every id and the last record seen for it.
func Dedupe[T Record[T]](items []T) []T {
	pos := make(map[int64]int, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if i, ok := pos[it.RecordID()]; ok {
			out[i] = it
			continue
		}
		pos[it.RecordID()] = len(out)
		out = append(out, it)
	}
	return out
}

func indexOf[T Record[T]](list []T, id int64) int {
	for i, r := range list {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}
