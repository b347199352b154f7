package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Handler processes one event
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, event Event) error

// Handle calls f
func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Router dispatches events to the handlers registered for their kind, in
// registration order. Kinds with no handlers are dropped.
type Router struct {
	mu       sync.RWMutex
	handlers map[Kind][]Handler
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[Kind][]Handler),
	}
}

// Register adds a handler for kind
func (r *Router) Register(kind Kind, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[kind] = append(r.handlers[kind], handler)
}

// Dispatch runs every handler for the event's kind. All handlers run even
// if one fails; their errors are joined.
func (r *Router) Dispatch(ctx context.Context, event Event) error {
	if event == nil {
		return nil
	}

	r.mu.RLock()
	handlers := r.handlers[event.Kind()]
	r.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h.Handle(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", event.Kind(), err))
		}
	}

	return errors.Join(errs...)
}

// HandlerCount returns the number of handlers registered for kind
func (r *Router) HandlerCount(kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers[kind])
}
