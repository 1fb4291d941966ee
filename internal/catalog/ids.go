package catalog

import (
	"sync"
	"time"
)

// IDSource hands out millisecond timestamps as ids, bumping by one when two
// creations land in the same millisecond.
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// After returns an id greater than both floor and anything handed out so far.
func (s *IDSource) After(floor int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := max(floor, s.last) + 1
	s.last = id
	return id
}
