package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/metaramp/rampctl/internal/errors"
	"github.com/metaramp/rampctl/internal/tui"
)

var (
	setPosition float64
	setColor    string
)

var setCmd = &cobra.Command{
	Use:   "set <ramp> <index>",
	Short: "Edit a key's position or color",
	Long: `Writes a key's position or color in place. This is the external
edit path: the key keeps its index until the next sort.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	setCmd.Flags().Float64VarP(&setPosition, "position", "p", 0, "New position in [0,1]")
	setCmd.Flags().StringVarP(&setColor, "color", "c", "", "New color as #rrggbb hex")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	name := args[0]

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.ValidationError("index must be an integer")
	}

	if !cmd.Flags().Changed("position") && setColor == "" {
		return errors.ValidationError("nothing to set: pass --position and/or --color")
	}

	m, _, err := openRamp(name)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("position") {
		if err := m.SetPosition(index, setPosition); err != nil {
			return err
		}
	}
	if setColor != "" {
		c, err := tui.ParseColor(setColor)
		if err != nil {
			return err
		}
		if err := m.SetColor(index, c); err != nil {
			return err
		}
	}

	logSuccess("Key %d updated", index)
	return nil
}
