package search

import (
	"sync"
	"time"
)

const registryIdleTTL = 10 * time.Minute

// Registry hands out one Controller per session so concurrent visitors do
// not share debounce state. Idle controllers are pruned lazily; their
// lifetime tracks the page's mount/unmount cycle, not the process.
type Registry struct {
	fetch    FetchFunc
	debounce time.Duration

	mu      sync.Mutex
	entries map[string]*registryEntry
}

type registryEntry struct {
	controller *Controller
	lastSeen   time.Time
}

// NewRegistry builds a registry producing controllers with the given fetch
// and debounce quantum.
func NewRegistry(fetch FetchFunc, debounce time.Duration) *Registry {
	return &Registry{
		fetch:    fetch,
		debounce: debounce,
		entries:  map[string]*registryEntry{},
	}
}

// For returns the controller for the given session, creating it on first
// use.
func (r *Registry) For(sessionID string) *Controller {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.entries {
		if id != sessionID && now.Sub(e.lastSeen) > registryIdleTTL {
			delete(r.entries, id)
		}
	}
	e, ok := r.entries[sessionID]
	if !ok {
		e = &registryEntry{controller: NewController(r.fetch, r.debounce)}
		r.entries[sessionID] = e
	}
	e.lastSeen = now
	return e.controller
}
