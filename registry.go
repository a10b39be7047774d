package relay

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Registry maps names to middleware constructors for keyed pipeline
// resolution. Construction is lazy: a constructor runs the first time its
// key is looked up, and the built middleware is cached for later lookups.
// Keys that are never reached during request processing are never
// constructed.
//
// Pattern: Singleton — DefaultRegistry uses sync.OnceValue for safe lazy
// init; explicit registries can be created for testing or per-host wiring.
type Registry struct {
	entries atomic.Pointer[map[string]*registryEntry]
	mu      sync.Mutex
}

// registryEntry holds one constructor and its once-built product.
type registryEntry struct {
	ctor  func() Middleware
	once  sync.Once
	built Middleware
}

//nolint:gochecknoglobals // singleton via sync.OnceValue
var defaultRegistry = sync.OnceValue(NewRegistry)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}

	empty := map[string]*registryEntry{}
	r.entries.Store(&empty)

	return r
}

// DefaultRegistry returns the package-level global registry, creating it on
// first call.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Register associates name with a middleware constructor. Registering the
// same name again replaces the previous constructor and discards anything it
// built. It is safe for concurrent use but intended for initialization only.
func (r *Registry) Register(name string, ctor func() Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := *r.entries.Load()
	// Copy-on-write so concurrent Get calls never see a map mid-mutation.
	updated := make(map[string]*registryEntry, len(old)+1)
	for k, v := range old {
		updated[k] = v
	}
	updated[name] = &registryEntry{ctor: ctor}
	r.entries.Store(&updated)
}

// Get returns the middleware registered under name, constructing it on
// first lookup. Unknown names return an error wrapping [ErrNotRegistered].
func (r *Registry) Get(name string) (Middleware, error) {
	entry, ok := (*r.entries.Load())[name]
	if !ok {
		return nil, fmt.Errorf("relay: %q: %w", name, ErrNotRegistered)
	}

	entry.once.Do(func() {
		entry.built = entry.ctor()
	})

	return entry.built, nil
}

// Names returns the registered keys in unspecified order.
func (r *Registry) Names() []string {
	entries := *r.entries.Load()

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}

	return names
}
