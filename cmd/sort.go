package cmd

import (
	"github.com/spf13/cobra"
)

var (
	sortEnable  bool
	sortDisable bool
)

var sortCmd = &cobra.Command{
	Use:   "sort <ramp>",
	Short: "Sort keys by position",
	Long: `Relabels interior keys so ascending index order matches ascending
position order. Keys 0 and 99 stay put as the ramp endpoints.

Sorting only runs while the ramp's sort-on-change flag is enabled; use
--enable or --disable to change the flag first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSort,
}

func init() {
	sortCmd.Flags().BoolVar(&sortEnable, "enable", false, "Enable sort-on-change before sorting")
	sortCmd.Flags().BoolVar(&sortDisable, "disable", false, "Disable sort-on-change and skip sorting")
	sortCmd.MarkFlagsMutuallyExclusive("enable", "disable")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	name := args[0]

	m, st, err := openRamp(name)
	if err != nil {
		return err
	}

	if sortEnable || sortDisable {
		m.SetSortOnChange(sortEnable)
		if err := persistFlags(st, m.Config()); err != nil {
			return err
		}
	}

	if !m.Config().SortOnChange {
		logWarning("Sort-on-change is disabled for %s; nothing sorted (use --enable)", name)
		return nil
	}

	if err := m.Sort(); err != nil {
		return err
	}

	logSuccess("Keys sorted by position")
	return nil
}
