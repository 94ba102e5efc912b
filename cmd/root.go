package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/metaramp/rampctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "rampctl",
	Short: "Gradient ramp key management CLI",
	Long: `rampctl manages the key table of gradient ramps.

Each ramp is a set of up to 100 key slots indexed 0-99:
  - Keys 0 and 99 are fixed endpoints, never deletable
  - Interior keys carry a position, an RGBA color and a delete control
  - New keys fill index gaps low-to-high before the range grows
  - Sort-on-change relabels keys by ascending position`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	_          = logging.UserError // reserved for future use
)
