package keyslot

import (
	"sort"

	"github.com/metaramp/rampctl/internal/errors"
	"github.com/metaramp/rampctl/internal/logging"
	"github.com/metaramp/rampctl/internal/store"
)

// Manager owns the key table of one ramp. It derives the slot set from
// its parameter store on every operation: the host owns the table, and
// positions and colors may be edited there between calls. Callers
// serialize operations; the manager is not safe for concurrent use.
type Manager struct {
	store store.ParameterStore
	cfg   Config
}

// New creates a manager over a parameter store.
func New(st store.ParameterStore, cfg Config) *Manager {
	return &Manager{store: st, cfg: cfg}
}

// Config returns the manager's current flags.
func (m *Manager) Config() Config {
	return m.cfg
}

// SetSortOnChange toggles sort-on-change.
func (m *Manager) SetSortOnChange(enabled bool) {
	m.cfg.SortOnChange = enabled
}

// Init seeds the reserved endpoint slots on an empty store: index 0 at
// position 0 and index 99 at position 1, both permanently disarmed.
// A store that already has keys is left untouched.
func (m *Manager) Init() error {
	indices, err := m.store.ListIndices(store.KindPosition)
	if err != nil {
		return err
	}
	if len(indices) > 0 {
		return nil
	}

	for _, seed := range []struct {
		index    int
		position float64
	}{
		{MinIndex, 0.0},
		{MaxIndex, 1.0},
	} {
		if err := m.createKey(seed.index, seed.position); err != nil {
			return err
		}
	}
	return nil
}

// createKey creates the position/color/delete triple for one key.
func (m *Manager) createKey(index int, position float64) error {
	for _, kind := range store.Kinds {
		if err := m.store.CreateGroup(kind, index); err != nil {
			return errors.StoreError("create", err)
		}
	}
	if err := m.store.SetValue(store.KindPosition, index, store.FieldValue, clamp01(position)); err != nil {
		return errors.StoreError("write", err)
	}

	armed := m.cfg.DeleteEnabled && !Reserved(index)
	return m.setArmed(index, armed)
}

func (m *Manager) setArmed(index int, armed bool) error {
	v := 0.0
	if armed {
		v = 1.0
	}
	if err := m.store.SetValue(store.KindDelete, index, store.FieldValue, v); err != nil {
		return errors.StoreError("write", err)
	}
	return nil
}

// loadSlot reads one key back from the store.
func (m *Manager) loadSlot(index int) (Slot, error) {
	slot := Slot{Index: index}

	pos, err := m.store.Value(store.KindPosition, index, store.FieldValue)
	if err != nil {
		return slot, errors.StoreError("read", err)
	}
	slot.Position = pos

	for field, dst := range map[store.Field]*float64{
		store.FieldR: &slot.Color.R,
		store.FieldG: &slot.Color.G,
		store.FieldB: &slot.Color.B,
		store.FieldA: &slot.Color.A,
	} {
		v, err := m.store.Value(store.KindColor, index, field)
		if err != nil {
			return slot, errors.StoreError("read", err)
		}
		*dst = v
	}

	armed, err := m.store.Value(store.KindDelete, index, store.FieldValue)
	if err != nil {
		return slot, errors.StoreError("read", err)
	}
	slot.Deletable = armed != 0 && !Reserved(index)

	return slot, nil
}

// Slots returns all keys ascending by index.
func (m *Manager) Slots() ([]Slot, error) {
	indices, err := m.store.ListIndices(store.KindPosition)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(indices))
	for _, idx := range indices {
		slot, err := m.loadSlot(idx)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// AddKey creates a new key at the given position and returns its index.
// Gaps in the interior index range fill low-to-high before the range
// grows. When sort-on-change is enabled the table is re-sorted after
// the insertion, which may relabel the new key.
func (m *Manager) AddKey(position float64) (int, error) {
	indices, err := m.store.ListIndices(store.KindPosition)
	if err != nil {
		return 0, err
	}

	next, err := nextIndex(indices)
	if err != nil {
		return 0, err
	}

	if err := m.createKey(next, position); err != nil {
		return 0, err
	}
	logging.Debug("key added", "index", next, "position", position)

	if m.cfg.SortOnChange {
		if err := m.sortNow(); err != nil {
			return 0, err
		}
	}
	return next, nil
}

// SetDeleteEnabled arms or disarms the delete control of every interior
// key. Reserved endpoints stay disarmed regardless. Idempotent.
func (m *Manager) SetDeleteEnabled(enabled bool) error {
	m.cfg.DeleteEnabled = enabled

	indices, err := m.store.ListIndices(store.KindDelete)
	if err != nil {
		return err
	}
	for _, idx := range indices {
		if Reserved(idx) {
			continue
		}
		if err := m.setArmed(idx, enabled); err != nil {
			return err
		}
	}
	return nil
}

// DeleteKey removes the key at index. Deleting a reserved endpoint is a
// silent no-op (deleted=false, no error); deleting a missing index is a
// NotFound error. The position/color/delete triple goes away together.
func (m *Manager) DeleteKey(index int) (bool, error) {
	if Reserved(index) {
		logging.Debug("delete ignored for reserved index", "index", index)
		return false, nil
	}

	indices, err := m.store.ListIndices(store.KindPosition)
	if err != nil {
		return false, err
	}
	found := false
	for _, idx := range indices {
		if idx == index {
			found = true
			break
		}
	}
	if !found {
		return false, errors.KeyNotFound(index)
	}

	for _, kind := range store.Kinds {
		if err := m.store.DestroyGroup(kind, index); err != nil {
			return false, errors.StoreError("destroy", err)
		}
	}
	logging.Debug("key deleted", "index", index)
	return true, nil
}

// Sort reindexes the interior keys so ascending index order matches
// ascending position order. No-op while sort-on-change is disabled.
func (m *Manager) Sort() error {
	if !m.cfg.SortOnChange {
		return nil
	}
	return m.sortNow()
}

// sortNow stable-sorts the interior keys by position and relabels them
// 1..k. The endpoints keep their own data; they are not part of the
// sortable range. Each key's position, color and armed state travel
// together to the new index.
func (m *Manager) sortNow() error {
	slots, err := m.Slots()
	if err != nil {
		return err
	}

	var interior []Slot
	for _, slot := range slots {
		if !Reserved(slot.Index) {
			interior = append(interior, slot)
		}
	}
	sort.SliceStable(interior, func(i, j int) bool {
		return interior[i].Position < interior[j].Position
	})

	// Relabel by destroying the interior groups and recreating them at
	// their rank order. The in-memory snapshot carries the attribute
	// tuples so nothing is left paired with the wrong siblings.
	for _, slot := range interior {
		for _, kind := range store.Kinds {
			if err := m.store.DestroyGroup(kind, slot.Index); err != nil {
				return errors.StoreError("destroy", err)
			}
		}
	}

	pageOrder := []int{MinIndex}
	for rank, slot := range interior {
		idx := rank + 1
		if err := m.createKey(idx, slot.Position); err != nil {
			return err
		}
		for field, v := range map[store.Field]float64{
			store.FieldR: slot.Color.R,
			store.FieldG: slot.Color.G,
			store.FieldB: slot.Color.B,
			store.FieldA: slot.Color.A,
		} {
			if err := m.store.SetValue(store.KindColor, idx, field, v); err != nil {
				return errors.StoreError("write", err)
			}
		}
		if err := m.setArmed(idx, slot.Deletable); err != nil {
			return err
		}
		pageOrder = append(pageOrder, idx)
	}
	pageOrder = append(pageOrder, MaxIndex)

	if err := m.store.Reorder(pageOrder); err != nil {
		return errors.StoreError("reorder", err)
	}
	logging.Debug("keys sorted", "interior", len(interior))
	return nil
}

// CollectOrderedKeys returns the key table ascending by index, reserved
// endpoints included, for downstream ramp consumers.
func (m *Manager) CollectOrderedKeys() ([]Key, error) {
	slots, err := m.Slots()
	if err != nil {
		return nil, err
	}

	keys := make([]Key, 0, len(slots))
	for _, slot := range slots {
		keys = append(keys, Key{
			Position: slot.Position,
			R:        slot.Color.R,
			G:        slot.Color.G,
			B:        slot.Color.B,
			A:        slot.Color.A,
		})
	}
	return keys, nil
}

// SetPosition writes a key's position through the store, clamped to
// [0, 1]. This is the external-edit path used by the editor.
func (m *Manager) SetPosition(index int, position float64) error {
	if err := m.store.SetValue(store.KindPosition, index, store.FieldValue, clamp01(position)); err != nil {
		return errors.KeyNotFound(index)
	}
	return nil
}

// SetColor writes a key's color through the store.
func (m *Manager) SetColor(index int, c Color) error {
	for field, v := range map[store.Field]float64{
		store.FieldR: c.R,
		store.FieldG: c.G,
		store.FieldB: c.B,
		store.FieldA: c.A,
	} {
		if err := m.store.SetValue(store.KindColor, index, field, v); err != nil {
			return errors.KeyNotFound(index)
		}
	}
	return nil
}
