package store

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
)

// slot holds one piece of remote state. Every refetch takes a ticket
// before it calls the backend; a response is applied only when its ticket
// is newer than the one that produced the current value, so a slow early
// response can never overwrite a later one.
type slot[T any] struct {
	issued uint64

	mu      sync.RWMutex
	applied uint64
	loaded  bool
	value   T
}

func (s *slot[T]) ticket() uint64 {
	return atomic.AddUint64(&s.issued, 1)
}

func (s *slot[T]) apply(ticket uint64, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket <= s.applied {
		return false
	}
	s.applied = ticket
	s.value = v
	s.loaded = true
	return true
}

func (s *slot[T]) get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.loaded
}

// refresh runs fetch and stores its result. On error the previous value is
// kept. When the response turns out to be stale the current value is
// returned instead.
func refresh[T any](ctx context.Context, s *slot[T], name string, fetch func(context.Context) (T, error)) (T, error) {
	t := s.ticket()
	v, err := fetch(ctx)
	if err != nil {
		logSnapshot("refresh %s failed: %v", name, err)
		var zero T
		return zero, err
	}
	if !s.apply(t, v) {
		logSnapshot("discarded stale %s response (ticket %d)", name, t)
		cur, _ := s.get()
		return cur, nil
	}
	return v, nil
}

func logSnapshot(format string, args ...interface{}) {
	log.Printf("[SNAPSHOT] "+format, args...)
}
