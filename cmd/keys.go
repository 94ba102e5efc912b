package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/metaramp/rampctl/internal/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys <ramp>",
	Short: "List the keys of a ramp",
	Long: `Prints the key table ascending by index: position, color and the
delete control state. With sort-on-change enabled, index order equals
position order.`,
	Args: cobra.ExactArgs(1),
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	name := args[0]

	m, _, err := openRamp(name)
	if err != nil {
		return err
	}

	slots, err := m.Slots()
	if err != nil {
		return err
	}

	cfg := m.Config()
	logInfo("Ramp %s (%d keys, sort-on-change %s, delete %s)",
		name, len(slots), onOff(cfg.SortOnChange), onOff(cfg.DeleteEnabled))

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tPOSITION\tCOLOR\tALPHA\tDELETE")
	for _, slot := range slots {
		hex := tui.ColorHex(slot.Color)
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
		deleteState := "locked"
		if slot.Deletable {
			deleteState = "armed"
		}
		fmt.Fprintf(w, "%d\t%.3f\t%s %s\t%.2f\t%s\n",
			slot.Index, slot.Position, swatch, hex, slot.Color.A, deleteState)
	}
	return w.Flush()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
