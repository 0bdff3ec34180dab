package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ScoreFunc evaluates one quality dimension. Arguments arrive in the order
// the task line declared its parameter keys. The returned duration is the
// scorer's own elapsed measurement; the dispatcher substitutes its wall-clock
// measurement when it is zero. Failures are returned as errors and are never
// retried by the scorer itself.
type ScoreFunc func(ctx context.Context, args []any) (Score, time.Duration, error)

// ErrDuplicateName is returned when a function name is registered twice.
var ErrDuplicateName = errors.New("core: function name already registered")

type registration struct {
	fn    ScoreFunc
	arity int
}

// Registry maps task names to score functions. Registration happens during
// an explicit load phase before any dispatch; lookups during dispatch are
// read-only, so concurrent readers need no coordination beyond the mutex
// guarding the load phase itself.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registration
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registration)}
}

// Register adds a named function with a fixed arity. Registering an existing
// name fails with ErrDuplicateName rather than silently overwriting.
func (r *Registry) Register(name string, arity int, fn ScoreFunc) error {
	if name == "" {
		return errors.New("core: function name is required")
	}
	if fn == nil {
		return fmt.Errorf("core: function %q is nil", name)
	}
	if arity < 0 {
		return fmt.Errorf("core: function %q has negative arity", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.entries[name] = registration{fn: fn, arity: arity}
	return nil
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (ScoreFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	return entry.fn, ok
}

// Arity returns the parameter count recorded at registration.
func (r *Registry) Arity(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	return entry.arity, ok
}

// Names returns the registered function names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
