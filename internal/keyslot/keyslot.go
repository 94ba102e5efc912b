package keyslot

// Index bounds of the key table. 0 and 99 are structural endpoints of
// the ramp domain: always present, never deletable.
const (
	MinIndex = 0
	MaxIndex = 99
	MaxSlots = MaxIndex - MinIndex + 1
)

// Reserved reports whether index is one of the fixed endpoints.
func Reserved(index int) bool {
	return index == MinIndex || index == MaxIndex
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// DefaultColor is the color assigned to newly created keys:
// mid grey with full alpha.
func DefaultColor() Color {
	return Color{R: 0.5, G: 0.5, B: 0.5, A: 1.0}
}

// Slot is one ramp key: a unique index, a position in [0, 1], a color,
// and the armed state of its delete control.
type Slot struct {
	Index     int
	Position  float64
	Color     Color
	Deletable bool
}

// Key is the tabular form of a slot handed to downstream consumers.
type Key struct {
	Position   float64
	R, G, B, A float64
}

// Config holds the persistent flags governing a key table.
type Config struct {
	// SortOnChange reindexes keys by ascending position after each
	// insertion and enables the explicit sort trigger.
	SortOnChange bool

	// DeleteEnabled arms the delete control of interior keys.
	DeleteEnabled bool
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
