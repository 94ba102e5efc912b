package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newDocStore(t *testing.T) (*DocStore, string) {
	t.Helper()

	dir := t.TempDir()
	s, err := Create(dir, "test", Settings{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return s, dir
}

func TestDocStore_CreateOpenRoundtrip(t *testing.T) {
	s, dir := newDocStore(t)

	if err := s.CreateGroup(KindPosition, 1); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if err := s.SetValue(KindPosition, 1, FieldValue, 0.25); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	s2, err := Open(dir, "test")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	v, err := s2.Value(KindPosition, 1, FieldValue)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != 0.25 {
		t.Errorf("position = %v, want 0.25", v)
	}
}

func TestDocStore_OpenMissing(t *testing.T) {
	if _, err := Open(t.TempDir(), "nope"); err == nil {
		t.Error("Expected error opening missing ramp, got nil")
	}
}

func TestDocStore_CreateDuplicate(t *testing.T) {
	_, dir := newDocStore(t)

	if _, err := Create(dir, "test", Settings{}); err == nil {
		t.Error("Expected error creating duplicate ramp, got nil")
	}
}

func TestDocStore_SettingsPersist(t *testing.T) {
	s, dir := newDocStore(t)

	if err := s.SetSettings(Settings{SortOnChange: true, DeleteEnabled: true}); err != nil {
		t.Fatalf("SetSettings failed: %v", err)
	}

	s2, err := Open(dir, "test")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	settings, err := s2.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if !settings.SortOnChange || !settings.DeleteEnabled {
		t.Errorf("settings = %+v, want both flags set", settings)
	}
}

func TestDocStore_MalformedNameFailsFast(t *testing.T) {
	s, _ := newDocStore(t)

	// Inject a corrupted parameter name into the document
	content := `
sort_on_change = false
delete_enabled = false

[params.Bogusname]
value = 0.5
`
	if err := os.WriteFile(s.Path(), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to corrupt document: %v", err)
	}

	if _, err := s.ListIndices(KindPosition); err == nil {
		t.Error("Expected parse error for malformed parameter name, got nil")
	}
}

func TestRampPath_StaysUnderRampsDir(t *testing.T) {
	dir := t.TempDir()

	tests := []string{
		"simple",
		"../escape",
		"../../etc/passwd",
		"nested/../still",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			path, err := RampPath(dir, name)
			if err != nil {
				// Rejection is also acceptable containment
				return
			}
			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil || strings.HasPrefix(rel, "..") {
				t.Errorf("RampPath(%q) = %q escapes %q", name, path, dir)
			}
		})
	}
}

func TestRampPath_EmptyName(t *testing.T) {
	if _, err := RampPath(t.TempDir(), ""); err == nil {
		t.Error("Expected error for empty ramp name, got nil")
	}
}

func TestListRamps(t *testing.T) {
	dir := t.TempDir()

	names, err := ListRamps(dir)
	if err != nil {
		t.Fatalf("ListRamps on empty dir failed: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("names = %v, want empty", names)
	}

	for _, name := range []string{"zeta", "alpha"} {
		if _, err := Create(dir, name, Settings{}); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}

	names, err = ListRamps(dir)
	if err != nil {
		t.Fatalf("ListRamps failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("names = %v, want [alpha zeta]", names)
	}
}

func TestListRamps_MissingDir(t *testing.T) {
	names, err := ListRamps(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("ListRamps failed: %v", err)
	}
	if names != nil {
		t.Errorf("names = %v, want nil", names)
	}
}
