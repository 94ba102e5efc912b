package cmd

import (
	"github.com/spf13/cobra"

	"github.com/metaramp/rampctl/internal/app"
	"github.com/metaramp/rampctl/internal/logging"
	"github.com/metaramp/rampctl/internal/tui"
)

var (
	addPosition float64
	addColor    string
)

var addCmd = &cobra.Command{
	Use:   "add <ramp>",
	Short: "Add a key to a ramp",
	Long: `Adds a key at the given position. The new key takes the lowest
free interior index before the range grows; with sort-on-change enabled
the table is re-sorted afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().Float64VarP(&addPosition, "position", "p", 0.5, "Key position in [0,1]")
	addCmd.Flags().StringVarP(&addColor, "color", "c", "", "Key color as #rrggbb hex")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	m, _, err := openRamp(name)
	if err != nil {
		return err
	}

	position := addPosition
	if !cmd.Flags().Changed("position") {
		position = app.Default.Config.DefaultPosition
	}

	// Assign the index and color before any relabeling so the color
	// lands on the right key, then sort once at the end.
	sortOnChange := m.Config().SortOnChange
	m.SetSortOnChange(false)

	index, err := m.AddKey(position)
	if err != nil {
		return err
	}

	if addColor != "" {
		c, err := tui.ParseColor(addColor)
		if err != nil {
			return err
		}
		if err := m.SetColor(index, c); err != nil {
			return err
		}
	}

	m.SetSortOnChange(sortOnChange)
	if err := m.Sort(); err != nil {
		return err
	}

	logging.Debug("key added", "ramp", name, "index", index, "position", position)
	logSuccess("Key %d added at position %.3f", index, position)
	if sortOnChange {
		logInfo("Keys re-sorted by position (sort-on-change is enabled)")
	}
	return nil
}
