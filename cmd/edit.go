package cmd

import (
	"github.com/spf13/cobra"

	"github.com/metaramp/rampctl/internal/app"
	"github.com/metaramp/rampctl/internal/keyslot"
	"github.com/metaramp/rampctl/internal/logging"
	"github.com/metaramp/rampctl/internal/store"
	"github.com/metaramp/rampctl/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit [ramp]",
	Short: "Interactive ramp key editor",
	Long: `Opens an interactive TUI for editing a ramp's key table.

Keys:
  a      - Add a key (prompts for position)
  d      - Delete the selected key
  enter  - Edit the selected key's position
  c      - Edit the selected key's color (hex)
  s      - Sort keys by position
  S      - Toggle sort-on-change
  e      - Toggle delete controls
  q/Esc  - Quit

Without a ramp name the editor runs on an unsaved in-memory session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return editSession()
	}
	return editRamp(args[0])
}

// editSession runs the editor on a throwaway in-memory ramp.
func editSession() error {
	logging.Debug("editor started on in-memory session")

	cfg := keyslot.Config{
		SortOnChange:  app.Default.Config.SortOnChange,
		DeleteEnabled: app.Default.Config.DeleteEnabled,
	}
	m := keyslot.New(store.NewMemStore(), cfg)
	if err := m.Init(); err != nil {
		return err
	}

	return tui.RunEditor(m, "", nil)
}

func editRamp(name string) error {
	logging.Debug("editor started", "ramp", name)

	m, st, err := openRamp(name)
	if err != nil {
		return err
	}

	persist := func(cfg keyslot.Config) error {
		return persistFlags(st, cfg)
	}
	return tui.RunEditor(m, name, persist)
}
