package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/metaramp/rampctl/internal/errors"
)

var rmCmd = &cobra.Command{
	Use:   "rm <ramp> <index>",
	Short: "Delete a key from a ramp",
	Long: `Deletes the key at the given index. The position, color and delete
control go away together. Endpoint keys 0 and 99 are never deleted;
asking to is reported as a no-op.`,
	Args: cobra.ExactArgs(2),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	name := args[0]

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.ValidationError("index must be an integer")
	}

	m, _, err := openRamp(name)
	if err != nil {
		return err
	}

	deleted, err := m.DeleteKey(index)
	if err != nil {
		return err
	}
	if !deleted {
		logWarning("Key %d is a reserved endpoint; nothing deleted", index)
		return nil
	}

	logSuccess("Key %d deleted", index)
	return nil
}
