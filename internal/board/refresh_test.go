package board

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestScopeGuard(t *testing.T) {
	g := newScopeGuard()

	orgA := uuid.New()
	orgB := uuid.New()

	first := g.begin(orgA)
	assert.True(t, g.current(first), "only request so far is current")

	// Re-requesting the same scope keeps earlier tickets valid: both carry
	// the same selection, so neither result is stale.
	second := g.begin(orgA)
	assert.True(t, g.current(first))
	assert.True(t, g.current(second))

	// Switching scope invalidates everything in flight for the old one.
	third := g.begin(orgB)
	assert.False(t, g.current(first))
	assert.False(t, g.current(second))
	assert.True(t, g.current(third))

	// Switching back revalidates: the selection is what counts, not the
	// request order.
	g.begin(orgA)
	assert.True(t, g.current(first))
	assert.False(t, g.current(third))
}

func TestScopeGuard_ZeroValueTicketNeverCurrent(t *testing.T) {
	g := newScopeGuard()

	assert.False(t, g.current(ticket{}), "no request recorded yet")
}
