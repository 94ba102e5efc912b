package cmd

import (
	"github.com/spf13/cobra"

	"github.com/metaramp/rampctl/internal/errors"
)

var enableDeleteCmd = &cobra.Command{
	Use:   "enable-delete <ramp> on|off",
	Short: "Arm or disarm key delete controls",
	Long: `Arms or disarms the delete control of every interior key. The
endpoint keys 0 and 99 stay locked regardless.`,
	Args: cobra.ExactArgs(2),
	RunE: runEnableDelete,
}

func init() {
	rootCmd.AddCommand(enableDeleteCmd)
}

func runEnableDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	var enabled bool
	switch args[1] {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return errors.ValidationError("state must be \"on\" or \"off\"")
	}

	m, st, err := openRamp(name)
	if err != nil {
		return err
	}

	if err := m.SetDeleteEnabled(enabled); err != nil {
		return err
	}
	if err := persistFlags(st, m.Config()); err != nil {
		return err
	}

	if enabled {
		logSuccess("Delete controls armed for %s", name)
	} else {
		logSuccess("Delete controls locked for %s", name)
	}
	return nil
}
