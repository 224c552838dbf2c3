package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tickets",
	Long: `Remove every ticket from storage.
With --all the current session is ended as well.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().Bool("all", false, "Also log out")
	clearCmd.Flags().BoolP("force", "f", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	force, _ := cmd.Flags().GetBool("force")

	e, err := openProtected(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if !force {
		p := newPrompter(cmd)
		response := p.line("Are you sure you want to clear all tickets? (y/N): ")
		if strings.ToLower(strings.TrimSpace(response)) != "y" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	n, err := e.tickets.Clear(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to clear tickets: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "🧹 Removed %d tickets.\n", n)

	if all {
		if err := e.sessions.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
	}
	return nil
}
