package cli

import (
	"fmt"

	"github.com/existflow/ticketr/internal/model"
	"github.com/spf13/cobra"
)

var closeCmd = &cobra.Command{
	Use:   "close [ticket-id]",
	Short: "Mark a ticket as closed",
	Long: `Mark a ticket as closed.

Examples:
  ticketr close 1718000000000
  ticketr close 1718000000000 --reopen`,
	Args: cobra.ExactArgs(1),
	RunE: runClose,
}

var closeReopen bool

func init() {
	closeCmd.Flags().BoolVar(&closeReopen, "reopen", false, "Mark ticket as open again")
}

func runClose(cmd *cobra.Command, args []string) error {
	e, err := openProtected(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	t, err := lookupTicket(cmd.Context(), e, args[0])
	if err != nil {
		return err
	}

	status := model.StatusClosed
	if closeReopen {
		status = model.StatusOpen
	}

	if _, err := e.tickets.Update(cmd.Context(), t.ID, model.TicketInput{
		Title:       t.Title,
		Description: t.Description,
		Status:      status,
		Priority:    t.Priority,
	}); err != nil {
		return err
	}

	if closeReopen {
		fmt.Fprintf(cmd.OutOrStdout(), "○ Reopened: \"%s\"\n", t.Title)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Closed: \"%s\"\n", t.Title)
	}
	return nil
}
