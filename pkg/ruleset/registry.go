package ruleset

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/rulecheck/pkg/validator"
)

// Registry maps callback names used in rule documents to functions.
// It is safe for concurrent use. A nil *Registry has no callbacks.
type Registry struct {
	mu        sync.RWMutex
	callbacks map[string]validator.CallbackFunc
}

func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[string]validator.CallbackFunc)}
}

// Register adds fn under name. Names are unique.
func (r *Registry) Register(name string, fn validator.CallbackFunc) error {
	if name == "" {
		return ErrEmptyCallbackName
	}
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrNilCallback, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.callbacks == nil {
		r.callbacks = make(map[string]validator.CallbackFunc)
	}
	if _, exists := r.callbacks[name]; exists {
		return fmt.Errorf("%w: %s", ErrCallbackAlreadyRegistered, name)
	}
	r.callbacks[name] = fn
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fn validator.CallbackFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (validator.CallbackFunc, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.callbacks[name]
	return fn, ok
}

// Names returns the registered callback names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.callbacks))
}
