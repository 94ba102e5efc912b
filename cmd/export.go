package cmd

import (
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/metaramp/rampctl/internal/keyslot"
	"github.com/metaramp/rampctl/internal/tui"
)

var exportCmd = &cobra.Command{
	Use:   "export <ramp>",
	Short: "Export a ramp as a replay script",
	Long: `Prints a shell script of rampctl commands that rebuilds the ramp:
one add per interior key in index order, set lines for edited endpoints,
and the ramp's flags last so replay does not reshuffle indices.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	name := args[0]

	m, _, err := openRamp(name)
	if err != nil {
		return err
	}

	slots, err := m.Slots()
	if err != nil {
		return err
	}

	for _, line := range buildExportScript(name, m.Config(), slots) {
		fmt.Println(line)
	}
	return nil
}

// buildExportScript renders the replay script for a ramp. Interior keys
// are added in index order, so replay yields the same key set in the
// same order (indices renumber contiguously when the ramp had gaps);
// flags come last so no add triggers a re-sort.
func buildExportScript(name string, cfg keyslot.Config, slots []keyslot.Slot) []string {
	lines := []string{
		"#!/bin/sh",
		fmt.Sprintf("# Rebuilds ramp %q", name),
		"",
		shellquote.Join("rampctl", "init", name),
	}

	endpointDefaults := map[int]float64{
		keyslot.MinIndex: 0.0,
		keyslot.MaxIndex: 1.0,
	}

	for _, slot := range slots {
		hex := tui.ColorHex(slot.Color)

		if keyslot.Reserved(slot.Index) {
			// Endpoints exist after init; only edited ones need a set
			words := []string{"rampctl", "set", name, fmt.Sprintf("%d", slot.Index)}
			edited := false
			if slot.Position != endpointDefaults[slot.Index] {
				words = append(words, "--position", formatPosition(slot.Position))
				edited = true
			}
			line := shellquote.Join(words...)
			if slot.Color != keyslot.DefaultColor() {
				line += " " + colorArg(hex)
				edited = true
			}
			if edited {
				lines = append(lines, line)
			}
			continue
		}

		lines = append(lines, shellquote.Join(
			"rampctl", "add", name,
			"--position", formatPosition(slot.Position),
		)+" "+colorArg(hex))
	}

	if cfg.DeleteEnabled {
		lines = append(lines, shellquote.Join("rampctl", "enable-delete", name, "on"))
	}
	if cfg.SortOnChange {
		lines = append(lines, shellquote.Join("rampctl", "sort", name, "--enable"))
	}
	return lines
}

func formatPosition(p float64) string {
	return fmt.Sprintf("%g", p)
}

// colorArg renders a quoted --color flag. shellquote leaves # bare,
// and sh reads an unquoted #rrggbb word as the start of a comment.
func colorArg(hex string) string {
	return "--color '" + hex + "'"
}
