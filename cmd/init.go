package cmd

import (
	"github.com/spf13/cobra"

	"github.com/metaramp/rampctl/internal/app"
)

var initCmd = &cobra.Command{
	Use:   "init <ramp>",
	Short: "Create a new ramp",
	Long: `Creates a new ramp document seeded with the two endpoint keys:
key 0 at position 0 and key 99 at position 1. Endpoints always exist
and can never be deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]

	if _, err := app.Default.CreateRamp(name); err != nil {
		return err
	}

	logSuccess("Ramp %s created with endpoint keys 0 and 99", name)
	return nil
}
