package app

import (
	"testing"

	"github.com/metaramp/rampctl/internal/config"
)

func testApp(t *testing.T) *App {
	t.Helper()

	paths := config.DefaultPaths().WithStateDir(t.TempDir())
	paths.ConfigDir = t.TempDir()
	return New(WithPaths(paths), WithConfig(config.Default()))
}

func TestCreateAndOpenRamp(t *testing.T) {
	a := testApp(t)

	m, err := a.CreateRamp("sunset")
	if err != nil {
		t.Fatalf("CreateRamp failed: %v", err)
	}

	slots, err := m.Slots()
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("new ramp has %d slots, want 2 reserved", len(slots))
	}
	if slots[0].Index != 0 || slots[1].Index != 99 {
		t.Errorf("reserved indices = %d, %d, want 0, 99", slots[0].Index, slots[1].Index)
	}

	if !a.RampExists("sunset") {
		t.Error("RampExists should be true after CreateRamp")
	}

	m2, _, err := a.OpenRamp("sunset")
	if err != nil {
		t.Fatalf("OpenRamp failed: %v", err)
	}
	slots2, err := m2.Slots()
	if err != nil {
		t.Fatalf("Slots after reopen failed: %v", err)
	}
	if len(slots2) != 2 {
		t.Errorf("reopened ramp has %d slots, want 2", len(slots2))
	}
}

func TestOpenRamp_Missing(t *testing.T) {
	a := testApp(t)

	if _, _, err := a.OpenRamp("nope"); err == nil {
		t.Error("Expected error opening missing ramp, got nil")
	}
}

func TestCreateRamp_Duplicate(t *testing.T) {
	a := testApp(t)

	if _, err := a.CreateRamp("dup"); err != nil {
		t.Fatalf("first CreateRamp failed: %v", err)
	}
	if _, err := a.CreateRamp("dup"); err == nil {
		t.Error("Expected error creating duplicate ramp, got nil")
	}
}

func TestListRamps(t *testing.T) {
	a := testApp(t)

	names, err := a.ListRamps()
	if err != nil {
		t.Fatalf("ListRamps failed: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("ListRamps = %v, want empty", names)
	}

	for _, name := range []string{"beta", "alpha"} {
		if _, err := a.CreateRamp(name); err != nil {
			t.Fatalf("CreateRamp %s failed: %v", name, err)
		}
	}

	names, err = a.ListRamps()
	if err != nil {
		t.Fatalf("ListRamps failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("ListRamps = %v, want [alpha beta]", names)
	}
}
