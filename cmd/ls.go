package cmd

import (
	"github.com/spf13/cobra"

	"github.com/metaramp/rampctl/internal/app"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List ramps",
	Args:  cobra.NoArgs,
	RunE:  runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	names, err := app.Default.ListRamps()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		logInfo("No ramps found. Create one with: rampctl init <name>")
		return nil
	}

	for _, name := range names {
		logInfo("%s", name)
	}
	return nil
}
