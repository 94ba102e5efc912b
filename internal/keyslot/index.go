package keyslot

import (
	"github.com/metaramp/rampctl/internal/errors"
)

// nextIndex picks the index for a new key given the occupied indices.
//
// The ideal domain is 0..n-1 with the last value forced to MaxIndex,
// where n is one more than the number of occupied slots. The smallest
// domain value not occupied wins, filling gaps low-to-high before the
// interior range grows. MaxIndex is always occupied in practice, so it
// never comes out of the gap scan; the fallback increments past the
// highest ideal interior value.
func nextIndex(existing []int) (int, error) {
	if len(existing) >= MaxSlots {
		return 0, errors.CapacityExceeded()
	}

	ideal := make([]int, len(existing)+1)
	for i := range ideal {
		ideal[i] = i
	}
	ideal[len(ideal)-1] = MaxIndex

	present := make(map[int]bool, len(existing))
	for _, idx := range existing {
		present[idx] = true
	}

	next := -1
	for _, v := range ideal {
		if !present[v] {
			next = v
			break
		}
	}
	if next == -1 {
		next = ideal[len(ideal)-2] + 1
	}

	if next <= MinIndex || next >= MaxIndex {
		return 0, errors.CapacityExceeded()
	}
	return next, nil
}
