package store

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/metaramp/rampctl/internal/errors"
)

// Kind identifies the shape of a parameter group attached to a key.
type Kind int

const (
	// KindPosition is a single clamped float slider.
	KindPosition Kind = iota
	// KindColor is an RGBA quad.
	KindColor
	// KindDelete is a pulse button with an armed state.
	KindDelete
)

// kindPrefixes are the parameter name prefixes on the host page.
var kindPrefixes = map[Kind]string{
	KindPosition: "Position",
	KindColor:    "Color",
	KindDelete:   "Delete",
}

// Prefix returns the parameter name prefix for the kind.
func (k Kind) Prefix() string {
	return kindPrefixes[k]
}

// Kinds lists all group kinds making up one key, in page order.
var Kinds = []Kind{KindPosition, KindColor, KindDelete}

// Field selects a value within a parameter group.
type Field string

const (
	// FieldValue is the position value for KindPosition and the
	// armed state (0 or 1) for KindDelete.
	FieldValue Field = "value"
	FieldR     Field = "r"
	FieldG     Field = "g"
	FieldB     Field = "b"
	FieldA     Field = "a"
)

// ParameterStore is the capability boundary to the host parameter page.
// A key occupies one group of each kind at the same index; the store
// knows nothing about key semantics beyond named value slots.
type ParameterStore interface {
	// CreateGroup creates the parameter group for kind at index with
	// default values. Creating an existing group is an error.
	CreateGroup(kind Kind, index int) error

	// DestroyGroup removes the parameter group for kind at index.
	DestroyGroup(kind Kind, index int) error

	// Value reads a field of the group at index.
	Value(kind Kind, index int, field Field) (float64, error)

	// SetValue writes a field of the group at index.
	SetValue(kind Kind, index int, field Field, v float64) error

	// ListIndices returns the indices occupied by groups of kind,
	// in ascending order.
	ListIndices(kind Kind) ([]int, error)

	// Reorder rewrites the page order so groups appear in the given
	// index sequence (position, color, delete triple per index).
	Reorder(indices []int) error
}

// GroupName formats the host parameter name for a group.
func GroupName(kind Kind, index int) string {
	return fmt.Sprintf("%s%d", kind.Prefix(), index)
}

var trailingDigits = regexp.MustCompile(`\d+$`)

// ParseIndex extracts the kind and index from a host parameter name.
// A name without a known prefix or trailing digits is a data-integrity
// fault and is rejected rather than guessed at.
func ParseIndex(name string) (Kind, int, error) {
	digits := trailingDigits.FindString(name)
	if digits == "" {
		return 0, 0, errors.ParseError(name)
	}

	prefix := name[:len(name)-len(digits)]
	for kind, p := range kindPrefixes {
		if prefix == p {
			idx, err := strconv.Atoi(digits)
			if err != nil {
				return 0, 0, errors.ParseError(name)
			}
			return kind, idx, nil
		}
	}
	return 0, 0, errors.ParseError(name)
}

// Settings are per-ramp flags persisted alongside the parameter page.
type Settings struct {
	SortOnChange  bool
	DeleteEnabled bool
}
