package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIsolatesSessions(t *testing.T) {
	r := NewRegistry()

	r.AppendTurn("a", "user", "question about trees")
	r.AppendTurn("a", "model", "an answer")
	r.AppendTurn("b", "user", "unrelated question")

	memA := r.Memory("a")
	memB := r.Memory("b")

	require.Len(t, memA, 2)
	require.Len(t, memB, 1)
	assert.Equal(t, "question about trees", memA[0].Text)
	assert.Equal(t, "unrelated question", memB[0].Text)
}

func TestMemoryUnknownSessionIsEmpty(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Memory("never-seen"))
}

func TestMemoryReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.AppendTurn("a", "user", "original")

	mem := r.Memory("a")
	mem[0].Text = "mutated"

	assert.Equal(t, "original", r.Memory("a")[0].Text)
}

func TestSweepEvictsOnlyExpired(t *testing.T) {
	r := NewRegistry()
	timeout := 30 * time.Minute

	r.Touch("stale")
	r.Touch("fresh")

	// Nothing is older than the timeout yet.
	assert.Zero(t, r.Sweep(time.Now(), timeout))
	assert.Equal(t, 2, r.Len())

	// From a vantage point past the timeout both sessions are stale.
	evicted := r.Sweep(time.Now().Add(timeout+time.Minute), timeout)
	assert.Equal(t, 2, evicted)
	assert.Zero(t, r.Len())
}

func TestSweepBoundaryIsExclusive(t *testing.T) {
	r := NewRegistry()
	timeout := 30 * time.Minute

	r.Touch("s")

	// Exactly at the timeout the session survives; eviction needs strictly
	// older than the cutoff.
	entry := r.entries["s"]
	evicted := r.Sweep(entry.LastActive.Add(timeout), timeout)
	assert.Zero(t, evicted)

	evicted = r.Sweep(entry.LastActive.Add(timeout+time.Nanosecond), timeout)
	assert.Equal(t, 1, evicted)
}

func TestTouchRefreshesActivity(t *testing.T) {
	r := NewRegistry()

	r.Touch("s")
	first := r.entries["s"].LastActive

	r.Touch("s")
	second := r.entries["s"].LastActive

	assert.False(t, second.Before(first))
	assert.Equal(t, 1, r.Len())
}
