package store

import (
	"fmt"
	"sort"
)

// group holds the field values of one parameter group.
type group map[Field]float64

// defaultGroup returns the default field values for a kind.
// Colors initialize to mid grey with full alpha; positions to 0.5;
// delete controls start disarmed.
func defaultGroup(kind Kind) group {
	switch kind {
	case KindColor:
		return group{FieldR: 0.5, FieldG: 0.5, FieldB: 0.5, FieldA: 1.0}
	case KindPosition:
		return group{FieldValue: 0.5}
	default:
		return group{FieldValue: 0}
	}
}

// MemStore is an in-memory parameter page. It backs unit tests and
// unsaved editor sessions.
type MemStore struct {
	groups   map[string]group
	order    []string
	settings Settings
}

// NewMemStore creates an empty in-memory parameter page.
func NewMemStore() *MemStore {
	return &MemStore{
		groups: make(map[string]group),
	}
}

// CreateGroup creates the group for kind at index with default values.
func (s *MemStore) CreateGroup(kind Kind, index int) error {
	name := GroupName(kind, index)
	if _, ok := s.groups[name]; ok {
		return fmt.Errorf("group %s already exists", name)
	}
	s.groups[name] = defaultGroup(kind)
	s.order = append(s.order, name)
	return nil
}

// DestroyGroup removes the group for kind at index.
func (s *MemStore) DestroyGroup(kind Kind, index int) error {
	name := GroupName(kind, index)
	if _, ok := s.groups[name]; !ok {
		return fmt.Errorf("no such group %s", name)
	}
	delete(s.groups, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Value reads a field of the group at index.
func (s *MemStore) Value(kind Kind, index int, field Field) (float64, error) {
	name := GroupName(kind, index)
	g, ok := s.groups[name]
	if !ok {
		return 0, fmt.Errorf("no such group %s", name)
	}
	v, ok := g[field]
	if !ok {
		return 0, fmt.Errorf("group %s has no field %q", name, field)
	}
	return v, nil
}

// SetValue writes a field of the group at index.
func (s *MemStore) SetValue(kind Kind, index int, field Field, v float64) error {
	name := GroupName(kind, index)
	g, ok := s.groups[name]
	if !ok {
		return fmt.Errorf("no such group %s", name)
	}
	g[field] = v
	return nil
}

// ListIndices returns the indices occupied by groups of kind, ascending.
func (s *MemStore) ListIndices(kind Kind) ([]int, error) {
	var indices []int
	for name := range s.groups {
		k, idx, err := ParseIndex(name)
		if err != nil {
			return nil, err
		}
		if k == kind {
			indices = append(indices, idx)
		}
	}
	sort.Ints(indices)
	return indices, nil
}

// Reorder rewrites the page order as position/color/delete triples
// following the given index sequence.
func (s *MemStore) Reorder(indices []int) error {
	order := make([]string, 0, len(indices)*len(Kinds))
	for _, idx := range indices {
		for _, kind := range Kinds {
			name := GroupName(kind, idx)
			if _, ok := s.groups[name]; !ok {
				return fmt.Errorf("no such group %s", name)
			}
			order = append(order, name)
		}
	}
	s.order = order
	return nil
}

// PageOrder returns the current page order of group names.
func (s *MemStore) PageOrder() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Settings returns the per-ramp flags held by the session.
func (s *MemStore) Settings() (Settings, error) {
	return s.settings, nil
}

// SetSettings updates the per-ramp flags held by the session.
func (s *MemStore) SetSettings(settings Settings) error {
	s.settings = settings
	return nil
}
