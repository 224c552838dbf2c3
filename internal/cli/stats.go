package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ticket statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	e, err := openProtected(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	s, err := e.tickets.Stats(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total:        %d\n", s.Total)
	fmt.Fprintf(out, "Open:         %d (%d%%)\n", s.Open, s.OpenPercentage)
	fmt.Fprintf(out, "In Progress:  %d (%d%%)\n", s.InProgress, s.InProgressPercentage)
	fmt.Fprintf(out, "Closed:       %d (%d%%)\n", s.Closed, s.ClosedPercentage)
	return nil
}
