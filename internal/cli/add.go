package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/ticketr/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a new ticket",
	Long: `Create a new ticket.

Examples:
  ticketr add "Printer on fire"
  ticketr add "Login broken" -p high -d "500 on submit"
  ticketr add "Refund request" --status in_progress`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDescription string
	addStatus      string
	addPriority    string
)

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Ticket description")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", string(model.StatusOpen), "Status (open, in_progress, closed)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", string(model.PriorityMedium), "Priority (low, medium, high)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	e, err := openProtected(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	t, err := e.tickets.Create(cmd.Context(), model.TicketInput{
		Title:       strings.Join(args, " "),
		Description: addDescription,
		Status:      model.Status(addStatus),
		Priority:    model.Priority(addPriority),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Ticket created successfully! #%d \"%s\"\n", t.ID, t.Title)
	return nil
}
