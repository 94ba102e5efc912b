package keyslot

import (
	"testing"
)

func TestNextIndex_ReservedOnly(t *testing.T) {
	idx, err := nextIndex([]int{0, 99})
	if err != nil {
		t.Fatalf("nextIndex failed: %v", err)
	}

	if idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}
}

func TestNextIndex_Sequential(t *testing.T) {
	existing := []int{0, 99}

	for i := 0; i < 5; i++ {
		idx, err := nextIndex(existing)
		if err != nil {
			t.Fatalf("nextIndex %d failed: %v", i, err)
		}

		want := i + 1
		if idx != want {
			t.Errorf("iteration %d: index = %d, want %d", i, idx, want)
		}

		existing = append(existing, idx)
	}
}

func TestNextIndex_FillsGapFirst(t *testing.T) {
	// Index 2 is free (gap)
	idx, err := nextIndex([]int{0, 1, 3, 99})
	if err != nil {
		t.Fatalf("nextIndex failed: %v", err)
	}

	if idx != 2 {
		t.Errorf("index = %d, want 2 (first gap)", idx)
	}
}

func TestNextIndex_MultipleGaps(t *testing.T) {
	// Both 1 and 3 are free; the smallest wins
	idx, err := nextIndex([]int{0, 2, 4, 99})
	if err != nil {
		t.Fatalf("nextIndex failed: %v", err)
	}

	if idx != 1 {
		t.Errorf("index = %d, want 1 (smallest gap)", idx)
	}
}

func TestNextIndex_HighStray(t *testing.T) {
	// A stray high interior index does not block gap filling
	idx, err := nextIndex([]int{0, 50, 99})
	if err != nil {
		t.Fatalf("nextIndex failed: %v", err)
	}

	if idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}
}

func TestNextIndex_FullInterior(t *testing.T) {
	// 0..97 plus 99: one interior index left
	existing := make([]int, 0, 99)
	for i := 0; i <= 97; i++ {
		existing = append(existing, i)
	}
	existing = append(existing, 99)

	idx, err := nextIndex(existing)
	if err != nil {
		t.Fatalf("nextIndex failed: %v", err)
	}
	if idx != 98 {
		t.Errorf("index = %d, want 98", idx)
	}
}

func TestNextIndex_Exhausted(t *testing.T) {
	existing := make([]int, 0, MaxSlots)
	for i := 0; i <= 99; i++ {
		existing = append(existing, i)
	}

	if _, err := nextIndex(existing); err == nil {
		t.Error("Expected error when index space exhausted, got nil")
	}
}
