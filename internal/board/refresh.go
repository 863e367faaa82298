package board

import (
	"sync"

	"github.com/google/uuid"
)

// scopeGuard implements the "last requested, not last completed" ordering
// rule. Fetches for a scope run concurrently and can be re-triggered while
// older ones are still in flight (e.g. the consumer switches organization);
// a completed fetch only counts if its scope is still the most recently
// requested one.
type scopeGuard struct {
	mu     sync.Mutex
	active uuid.UUID
	seen   bool
}

type ticket struct {
	scope uuid.UUID
}

func newScopeGuard() *scopeGuard {
	return &scopeGuard{}
}

// begin records the scope as the active selection and returns a ticket for
// the freshness check at completion.
func (g *scopeGuard) begin(scope uuid.UUID) ticket {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.active = scope
	g.seen = true

	return ticket{scope: scope}
}

// current reports whether the ticket's scope is still the active selection.
func (g *scopeGuard) current(t ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.seen && g.active == t.scope
}
