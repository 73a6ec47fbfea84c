package database

import (
	"context"
	"sync"
)

// Handle is a process-wide, lazily connected resource. The first Get
// connects; later calls reuse the connection. Concurrent first callers wait
// for a single connect attempt. A failed attempt is not cached, so the next
// Get tries again.
type Handle[T any] struct {
	mu      sync.Mutex
	connect func(ctx context.Context) (T, error)
	release func(T)
	value   T
	ready   bool
}

// NewHandle creates a Handle. release is called by Close on a connected value
// and may be nil.
func NewHandle[T any](connect func(ctx context.Context) (T, error), release func(T)) *Handle[T] {
	return &Handle[T]{connect: connect, release: release}
}

// Get returns the shared value, connecting on first use. The lock is held
// across connect, so concurrent first callers wait for that attempt and do
// not observe their own context deadlines while waiting. Handles are meant
// to be primed once at startup.
func (h *Handle[T]) Get(ctx context.Context) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ready {
		return h.value, nil
	}

	value, err := h.connect(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	h.value = value
	h.ready = true
	return value, nil
}

// Close releases the value if one was connected. A later Get reconnects.
func (h *Handle[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.ready {
		return
	}
	if h.release != nil {
		h.release(h.value)
	}
	var zero T
	h.value = zero
	h.ready = false
}
