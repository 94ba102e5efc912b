// Package testutil provides shared fixtures for rampctl tests
package testutil

import (
	"testing"

	"github.com/metaramp/rampctl/internal/keyslot"
	"github.com/metaramp/rampctl/internal/store"
)

// NewManager creates a keyslot manager over a fresh in-memory store,
// seeded with the reserved endpoint keys.
func NewManager(t *testing.T, cfg keyslot.Config) (*keyslot.Manager, *store.MemStore) {
	t.Helper()

	st := store.NewMemStore()
	m := keyslot.New(st, cfg)
	if err := m.Init(); err != nil {
		t.Fatalf("Failed to seed reserved keys: %v", err)
	}
	return m, st
}

// AddKeys adds one key per position and returns the assigned indices.
func AddKeys(t *testing.T, m *keyslot.Manager, positions ...float64) []int {
	t.Helper()

	indices := make([]int, 0, len(positions))
	for _, pos := range positions {
		idx, err := m.AddKey(pos)
		if err != nil {
			t.Fatalf("AddKey(%v) failed: %v", pos, err)
		}
		indices = append(indices, idx)
	}
	return indices
}

// Indices extracts the index column from a slot list.
func Indices(slots []keyslot.Slot) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = s.Index
	}
	return out
}

// Positions extracts the position column from a slot list.
func Positions(slots []keyslot.Slot) []float64 {
	out := make([]float64, len(slots))
	for i, s := range slots {
		out[i] = s.Position
	}
	return out
}
