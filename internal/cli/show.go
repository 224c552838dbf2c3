package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [ticket-id]",
	Short: "Show a ticket",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := openProtected(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	t, err := lookupTicket(cmd.Context(), e, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "#%d %s\n", t.ID, t.Title)
	fmt.Fprintf(out, "  Status:   %s\n", t.Status.Label())
	fmt.Fprintf(out, "  Priority: %s\n", t.Priority)
	fmt.Fprintf(out, "  Created:  %s\n", t.CreatedAt.Format("2006-01-02 15:04:05Z07:00"))
	if t.UpdatedAt != nil {
		fmt.Fprintf(out, "  Updated:  %s\n", t.UpdatedAt.Format("2006-01-02 15:04:05Z07:00"))
	}
	if t.Description != "" {
		fmt.Fprintf(out, "\n%s\n", t.Description)
	}
	return nil
}
