package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/metaramp/rampctl/internal/errors"
)

// document is the on-disk shape of a ramp.
type document struct {
	SortOnChange  bool                          `toml:"sort_on_change"`
	DeleteEnabled bool                          `toml:"delete_enabled"`
	PageOrder     []string                      `toml:"page_order"`
	Params        map[string]map[string]float64 `toml:"params"`
}

// DocStore is a parameter page persisted as a TOML ramp document.
// Every operation loads, mutates and rewrites the document; ramps are
// small (at most 100 keys) so this stays cheap.
type DocStore struct {
	path string
}

// RampPath resolves the document path for a ramp name. The name is
// joined under rampsDir with securejoin so it cannot escape the
// documents directory.
func RampPath(rampsDir, name string) (string, error) {
	if name == "" {
		return "", errors.ValidationError("ramp name must not be empty")
	}
	path, err := securejoin.SecureJoin(rampsDir, name+".toml")
	if err != nil {
		return "", errors.ValidationError(fmt.Sprintf("invalid ramp name: %s", name))
	}
	return path, nil
}

// Create initializes a new ramp document with the given settings and an
// empty parameter page. It fails if the document already exists.
func Create(rampsDir, name string, settings Settings) (*DocStore, error) {
	path, err := RampPath(rampsDir, name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		return nil, errors.ValidationError(fmt.Sprintf("ramp already exists: %s", name))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.StoreError("create", err)
	}

	s := &DocStore{path: path}
	doc := &document{
		SortOnChange:  settings.SortOnChange,
		DeleteEnabled: settings.DeleteEnabled,
		Params:        make(map[string]map[string]float64),
	}
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return s, nil
}

// Open opens an existing ramp document.
func Open(rampsDir, name string) (*DocStore, error) {
	path, err := RampPath(rampsDir, name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.RampNotFound(name)
	}
	return &DocStore{path: path}, nil
}

// Exists reports whether a ramp document exists.
func Exists(rampsDir, name string) bool {
	path, err := RampPath(rampsDir, name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// ListRamps returns the names of all ramp documents, sorted.
func ListRamps(rampsDir string) ([]string, error) {
	entries, err := os.ReadDir(rampsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.StoreError("list", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".toml"))
	}
	sort.Strings(names)
	return names, nil
}

// Path returns the document path.
func (s *DocStore) Path() string {
	return s.path
}

func (s *DocStore) load() (*document, error) {
	var doc document
	if _, err := toml.DecodeFile(s.path, &doc); err != nil {
		return nil, errors.StoreError("read", err)
	}
	if doc.Params == nil {
		doc.Params = make(map[string]map[string]float64)
	}
	return &doc, nil
}

func (s *DocStore) save(doc *document) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return errors.StoreError("encode", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return errors.StoreError("write", err)
	}
	return nil
}

// CreateGroup creates the group for kind at index with default values.
func (s *DocStore) CreateGroup(kind Kind, index int) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	name := GroupName(kind, index)
	if _, ok := doc.Params[name]; ok {
		return fmt.Errorf("group %s already exists", name)
	}

	fields := make(map[string]float64)
	for field, v := range defaultGroup(kind) {
		fields[string(field)] = v
	}
	doc.Params[name] = fields
	doc.PageOrder = append(doc.PageOrder, name)
	return s.save(doc)
}

// DestroyGroup removes the group for kind at index.
func (s *DocStore) DestroyGroup(kind Kind, index int) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	name := GroupName(kind, index)
	if _, ok := doc.Params[name]; !ok {
		return fmt.Errorf("no such group %s", name)
	}
	delete(doc.Params, name)
	for i, n := range doc.PageOrder {
		if n == name {
			doc.PageOrder = append(doc.PageOrder[:i], doc.PageOrder[i+1:]...)
			break
		}
	}
	return s.save(doc)
}

// Value reads a field of the group at index.
func (s *DocStore) Value(kind Kind, index int, field Field) (float64, error) {
	doc, err := s.load()
	if err != nil {
		return 0, err
	}
	name := GroupName(kind, index)
	fields, ok := doc.Params[name]
	if !ok {
		return 0, fmt.Errorf("no such group %s", name)
	}
	v, ok := fields[string(field)]
	if !ok {
		return 0, fmt.Errorf("group %s has no field %q", name, field)
	}
	return v, nil
}

// SetValue writes a field of the group at index.
func (s *DocStore) SetValue(kind Kind, index int, field Field, v float64) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	name := GroupName(kind, index)
	fields, ok := doc.Params[name]
	if !ok {
		return fmt.Errorf("no such group %s", name)
	}
	fields[string(field)] = v
	return s.save(doc)
}

// ListIndices returns the indices occupied by groups of kind, ascending.
// A parameter name that does not parse is a data-integrity fault and
// fails the whole listing.
func (s *DocStore) ListIndices(kind Kind) ([]int, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	var indices []int
	for name := range doc.Params {
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
func (s *DocStore) Reorder(indices []int) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	order := make([]string, 0, len(indices)*len(Kinds))
	for _, idx := range indices {
		for _, kind := range Kinds {
			name := GroupName(kind, idx)
			if _, ok := doc.Params[name]; !ok {
				return fmt.Errorf("no such group %s", name)
			}
			order = append(order, name)
		}
	}
	doc.PageOrder = order
	return s.save(doc)
}

// Settings returns the per-ramp flags stored in the document.
func (s *DocStore) Settings() (Settings, error) {
	doc, err := s.load()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		SortOnChange:  doc.SortOnChange,
		DeleteEnabled: doc.DeleteEnabled,
	}, nil
}

// SetSettings updates the per-ramp flags stored in the document.
func (s *DocStore) SetSettings(settings Settings) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.SortOnChange = settings.SortOnChange
	doc.DeleteEnabled = settings.DeleteEnabled
	return s.save(doc)
}
