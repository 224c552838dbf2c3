package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/existflow/ticketr/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Start a session",
	Long: `Start a mock session. Any well-formed email and a password of at
least 6 characters are accepted.

Examples:
  ticketr login
  ticketr login --email ada@example.com`,
	RunE: runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and start a session",
	RunE:  runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE:  runWhoami,
}

var loginEmail string

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email to log in with")
}

// prompter reads answers from the command's input, hiding passwords on a terminal
type prompter struct {
	in  *bufio.Reader
	raw io.Reader
	out io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{
		in:  bufio.NewReader(cmd.InOrStdin()),
		raw: cmd.InOrStdin(),
		out: cmd.OutOrStdout(),
	}
}

func (p *prompter) line(label string) string {
	fmt.Fprint(p.out, label)
	s, _ := p.in.ReadString('\n')
	return strings.TrimRight(s, "\r\n")
}

func (p *prompter) password(label string) string {
	if f, ok := p.raw.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(p.out, label)
		b, _ := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		return string(b)
	}
	return p.line(label)
}

func runLogin(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	p := newPrompter(cmd)
	email := loginEmail
	if email == "" {
		email = p.line("Email: ")
	}
	password := p.password("Password: ")

	s, err := e.sessions.Login(cmd.Context(), email, password)
	if err != nil {
		logger.Warn("Login rejected", logger.F("error", err.Error()))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged in as %s <%s>\n", s.Name, s.Email)
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	p := newPrompter(cmd)
	name := p.line("Name: ")
	email := p.line("Email: ")
	password := p.password("Password: ")
	confirm := p.password("Confirm Password: ")

	s, err := e.sessions.Signup(cmd.Context(), name, email, password, confirm)
	if err != nil {
		logger.Warn("Signup rejected", logger.F("error", err.Error()))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Account created, logged in as %s <%s>\n", s.Name, s.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ok, err := e.sessions.IsAuthenticated(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
		return nil
	}

	if err := e.sessions.Logout(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✅ Logged out successfully.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	s, err := e.sessions.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}
	if s == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", s.Name, s.Email)
	return nil
}
