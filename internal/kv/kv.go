// Package kv is the small persistent key-value contract the catalog overlay and
// its admin tooling are written against.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	applog "omoro/internal/log"
)

// ErrUnavailable is returned by Set when no persistent storage exists for the caller.
var ErrUnavailable = errors.New("kv: storage unavailable")

// Store reads and writes opaque values by key.
//
// Get never fails: a missing key, an unavailable backend and a backend error
// all read as absent. Set reports every failure to the caller.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// GetJSON decodes the value at key into T. Undecodable values read as absent.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool) {
	var out T
	raw, ok := s.Get(ctx, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		applog.Error(nil, "kv.decode.fail", err, map[string]any{"key": key})
		var zero T
		return zero, false
	}
	return out, true
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, b)
}

// Unavailable is the store used when the caller has no persistent scope.
type Unavailable struct{}

func (Unavailable) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Unavailable) Set(context.Context, string, []byte) error  { return ErrUnavailable }

// Memory is an in-process Store, safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
	// FailSet, when non-nil, is returned by every Set call.
	FailSet error
}

func NewMemory() *Memory {
	return &Memory{data: map[string][]byte{}}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Keys lists stored keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
