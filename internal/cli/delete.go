package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [ticket-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a ticket",
	Long: `Delete a ticket by its ID.

Examples:
  ticketr delete 1718000000000
  ticketr rm 1718000000000 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	e, err := openProtected(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	t, err := lookupTicket(cmd.Context(), e, args[0])
	if err != nil {
		return err
	}

	if cfg.ConfirmDelete && !deleteForce {
		p := newPrompter(cmd)
		fmt.Fprintf(cmd.OutOrStdout(), "About to delete: \"%s\" (ID: %d)\n", t.Title, t.ID)
		confirm := strings.TrimSpace(p.line("Are you sure? [y/N]: "))
		if confirm != "y" && confirm != "Y" {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := e.tickets.Delete(cmd.Context(), t.ID); err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Ticket deleted successfully! \"%s\"\n", t.Title)
	return nil
}
