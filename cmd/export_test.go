package cmd

import (
	"strings"
	"testing"

	"github.com/metaramp/rampctl/internal/keyslot"
)

func TestBuildExportScript(t *testing.T) {
	slots := []keyslot.Slot{
		{Index: 0, Position: 0, Color: keyslot.DefaultColor()},
		{Index: 1, Position: 0.25, Color: keyslot.Color{R: 1, A: 1}},
		{Index: 2, Position: 0.75, Color: keyslot.DefaultColor()},
		{Index: 99, Position: 1, Color: keyslot.DefaultColor()},
	}
	cfg := keyslot.Config{SortOnChange: true, DeleteEnabled: true}

	lines := buildExportScript("sunset", cfg, slots)
	script := strings.Join(lines, "\n")

	if !strings.Contains(script, "rampctl init sunset") {
		t.Error("script should start by creating the ramp")
	}
	if !strings.Contains(script, "rampctl add sunset --position 0.25 --color '#ff0000'") {
		t.Errorf("missing colored add line, got:\n%s", script)
	}
	if !strings.Contains(script, "rampctl add sunset --position 0.75") {
		t.Errorf("missing second add line, got:\n%s", script)
	}
	if !strings.Contains(script, "rampctl enable-delete sunset on") {
		t.Error("script should arm delete controls")
	}
	if !strings.Contains(script, "rampctl sort sunset --enable") {
		t.Error("script should enable sort-on-change last")
	}

	// Flags come after every add so replay does not reshuffle indices
	addIdx := strings.LastIndex(script, "rampctl add")
	sortIdx := strings.Index(script, "rampctl sort")
	if sortIdx < addIdx {
		t.Error("sort flag line must come after all add lines")
	}
}

func TestBuildExportScript_DefaultEndpointsSkipped(t *testing.T) {
	slots := []keyslot.Slot{
		{Index: 0, Position: 0, Color: keyslot.DefaultColor()},
		{Index: 99, Position: 1, Color: keyslot.DefaultColor()},
	}

	lines := buildExportScript("plain", keyslot.Config{}, slots)
	script := strings.Join(lines, "\n")

	if strings.Contains(script, "rampctl set") {
		t.Errorf("untouched endpoints need no set lines, got:\n%s", script)
	}
	if strings.Contains(script, "enable-delete") || strings.Contains(script, "rampctl sort") {
		t.Errorf("disabled flags need no lines, got:\n%s", script)
	}
}

func TestBuildExportScript_EditedEndpoint(t *testing.T) {
	gold := keyslot.Color{R: 1, G: 0.8, B: 0, A: 1}
	slots := []keyslot.Slot{
		{Index: 0, Position: 0, Color: gold},
		{Index: 99, Position: 1, Color: keyslot.DefaultColor()},
	}

	lines := buildExportScript("golden", keyslot.Config{}, slots)
	script := strings.Join(lines, "\n")

	if !strings.Contains(script, "rampctl set golden 0 --color") {
		t.Errorf("edited endpoint should get a set line, got:\n%s", script)
	}
}

func TestBuildExportScript_ColorsQuoted(t *testing.T) {
	slots := []keyslot.Slot{
		{Index: 0, Position: 0, Color: keyslot.DefaultColor()},
		{Index: 1, Position: 0.5, Color: keyslot.Color{G: 1, A: 1}},
		{Index: 99, Position: 1, Color: keyslot.Color{B: 1, A: 1}},
	}

	lines := buildExportScript("neon", keyslot.Config{}, slots)
	for _, line := range lines {
		if !strings.Contains(line, "--color") {
			continue
		}
		if strings.Contains(line, "--color #") {
			t.Errorf("bare hex after --color starts a shell comment: %q", line)
		}
		if !strings.Contains(line, "--color '#") {
			t.Errorf("color value should be single-quoted: %q", line)
		}
	}
}

func TestBuildExportScript_GappedIndicesKeepOrder(t *testing.T) {
	slots := []keyslot.Slot{
		{Index: 0, Position: 0, Color: keyslot.DefaultColor()},
		{Index: 1, Position: 0.2, Color: keyslot.DefaultColor()},
		{Index: 3, Position: 0.8, Color: keyslot.DefaultColor()},
		{Index: 99, Position: 1, Color: keyslot.DefaultColor()},
	}

	lines := buildExportScript("gapped", keyslot.Config{}, slots)
	script := strings.Join(lines, "\n")

	first := strings.Index(script, "--position 0.2")
	second := strings.Index(script, "--position 0.8")
	if first < 0 || second < 0 {
		t.Fatalf("missing add lines, got:\n%s", script)
	}
	if second < first {
		t.Errorf("adds must keep index order, got:\n%s", script)
	}
}

func TestBuildExportScript_QuotesRampName(t *testing.T) {
	slots := []keyslot.Slot{
		{Index: 0, Position: 0, Color: keyslot.DefaultColor()},
		{Index: 99, Position: 1, Color: keyslot.DefaultColor()},
	}

	lines := buildExportScript("two words", keyslot.Config{}, slots)
	script := strings.Join(lines, "\n")

	if !strings.Contains(script, "'two words'") {
		t.Errorf("ramp name with spaces should be quoted, got:\n%s", script)
	}
}
