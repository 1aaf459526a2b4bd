package services

import (
	"sync"
	"sync/atomic"
)

// RequestSequencer hands out monotonically increasing tickets per key and
// remembers the latest one issued, so a slow request can tell that a newer
// one for the same key has started since.
type RequestSequencer struct {
	counter atomic.Uint64

	mu     sync.Mutex
	latest map[string]uint64
}

// NewRequestSequencer creates an empty sequencer.
func NewRequestSequencer() *RequestSequencer {
	return &RequestSequencer{latest: make(map[string]uint64)}
}

// Next issues a new ticket for key and makes it the latest.
func (s *RequestSequencer) Next(key string) uint64 {
	ticket := s.counter.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket > s.latest[key] {
		s.latest[key] = ticket
	}
	return ticket
}

// IsLatest reports whether ticket is still the newest ticket for key.
func (s *RequestSequencer) IsLatest(key string, ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[key] == ticket
}
