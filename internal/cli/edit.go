package cli

import (
	"fmt"

	"github.com/existflow/ticketr/internal/model"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [ticket-id]",
	Short: "Edit a ticket",
	Long: `Edit a ticket. Fields that are not given keep their current value.

Examples:
  ticketr edit 1718000000000 --title "Printer fixed"
  ticketr edit 1718000000000 -s in_progress -p high`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle       string
	editDescription string
	editStatus      string
	editPriority    string
)

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().StringVarP(&editStatus, "status", "s", "", "New status (open, in_progress, closed)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (low, medium, high)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	e, err := openProtected(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	t, err := lookupTicket(cmd.Context(), e, args[0])
	if err != nil {
		return err
	}

	in := model.TicketInput{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
	}
	if cmd.Flags().Changed("title") {
		in.Title = editTitle
	}
	if cmd.Flags().Changed("description") {
		in.Description = editDescription
	}
	if cmd.Flags().Changed("status") {
		in.Status = model.Status(editStatus)
	}
	if cmd.Flags().Changed("priority") {
		in.Priority = model.Priority(editPriority)
	}

	updated, err := e.tickets.Update(cmd.Context(), t.ID, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Ticket updated successfully! #%d \"%s\"\n", updated.ID, updated.Title)
	return nil
}
