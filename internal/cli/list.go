package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/existflow/ticketr/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tickets",
	Long: `List tickets in creation order, optionally filtered by status.

Examples:
  ticketr list
  ticketr list --status open`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listStatus string

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (open, in_progress, closed)")
}

func runList(cmd *cobra.Command, args []string) error {
	if listStatus != "" && !model.Status(listStatus).Valid() {
		return model.Validation("Invalid status. Must be: open, in_progress, or closed")
	}

	e, err := openProtected(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	all, err := e.tickets.All(cmd.Context())
	if err != nil {
		return err
	}

	var shown []model.Ticket
	for _, t := range all {
		if listStatus == "" || t.Status == model.Status(listStatus) {
			shown = append(shown, t)
		}
	}

	out := cmd.OutOrStdout()
	if len(shown) == 0 {
		fmt.Fprintln(out, "No tickets found. Create one with: ticketr add \"Your ticket\"")
		return nil
	}

	fmt.Fprintf(out, "\n🎫 Tickets (%d)\n", len(shown))
	fmt.Fprintln(out, strings.Repeat("─", 72))
	for _, t := range shown {
		printTicket(out, t)
	}
	fmt.Fprintln(out)
	return nil
}

func printTicket(out io.Writer, t model.Ticket) {
	title := t.Title
	if len([]rune(title)) > 40 {
		title = string([]rune(title)[:37]) + "..."
	}

	fmt.Fprintf(out, "  %s  %-13d  %-40s  %-8s  %s\n",
		statusIcon(t.Status), t.ID, title, t.Priority, t.CreatedAt.Local().Format("Jan 2"))
}

func statusIcon(s model.Status) string {
	switch s {
	case model.StatusClosed:
		return "[x]"
	case model.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}
