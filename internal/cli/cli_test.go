package cli

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/existflow/ticketr/internal/auth"
	"github.com/existflow/ticketr/internal/clock"
	"github.com/existflow/ticketr/internal/model"
	"github.com/existflow/ticketr/internal/storage"
	"github.com/existflow/ticketr/internal/tickets"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup points the CLI at a fresh in-memory storage and a throwaway home
func setup(t *testing.T) *storage.Memory {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	mem := storage.NewMemory()
	prev := openStorage
	openStorage = func(ctx context.Context, opts storage.Options) (storage.Storage, error) {
		return mem, nil
	}
	t.Cleanup(func() { openStorage = prev })
	return mem
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func login(t *testing.T) {
	t.Helper()
	_, err := run(t, "secret1\n", "login", "--email", "ada@example.com")
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	mem := setup(t)

	out, err := run(t, "ada@example.com\nsecret1\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as ada <ada@example.com>")

	_, ok, err := mem.Get(context.Background(), auth.SessionKey)
	require.NoError(t, err)
	assert.True(t, ok)

	out, err = run(t, "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "ada <ada@example.com>\n", out)
}

func TestLogin_Rejected(t *testing.T) {
	setup(t)

	_, err := run(t, "short\n", "login", "--email", "ada@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrValidation))
	assert.Equal(t, "Password must be at least 6 characters", err.Error())

	out, err := run(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in.")
}

func TestSignup(t *testing.T) {
	setup(t)

	out, err := run(t, "Ada Lovelace\nada@example.com\nsecret1\nsecret1\n", "signup")
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as Ada Lovelace <ada@example.com>")

	_, err = run(t, "Ada\nada@example.com\nsecret1\nsecret2\n", "signup")
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match", err.Error())
}

func TestLogout(t *testing.T) {
	setup(t)

	out, err := run(t, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in.")

	login(t)
	out, err = run(t, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out successfully")

	_, err = run(t, "", "list")
	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestProtectedCommands_RequireSession(t *testing.T) {
	mem := setup(t)

	for _, args := range [][]string{
		{"list"},
		{"add", "Printer"},
		{"show", "1"},
		{"edit", "1", "--title", "x"},
		{"close", "1"},
		{"delete", "1", "--force"},
		{"stats"},
		{"clear", "--force"},
	} {
		_, err := run(t, "", args...)
		assert.ErrorIs(t, err, errNotLoggedIn, "%v", args)
	}

	// refused commands never touch the collection
	_, ok, err := mem.Get(context.Background(), tickets.TicketsKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTicketLifecycle(t *testing.T) {
	mem := setup(t)
	login(t)
	ctx := context.Background()

	out, err := run(t, "", "add", "Printer", "on", "fire", "-p", "high", "-d", "third floor")
	require.NoError(t, err)
	assert.Contains(t, out, "Ticket created successfully!")

	store := tickets.NewStore(mem, clock.Real())
	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	tk := all[0]
	assert.Equal(t, "Printer on fire", tk.Title)
	assert.Equal(t, "third floor", tk.Description)
	assert.Equal(t, model.StatusOpen, tk.Status)
	assert.Equal(t, model.PriorityHigh, tk.Priority)
	id := strconv.FormatInt(tk.ID, 10)

	out, err = run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Printer on fire")
	assert.Contains(t, out, "Tickets (1)")

	out, err = run(t, "", "list", "--status", "closed")
	require.NoError(t, err)
	assert.Contains(t, out, "No tickets found")

	out, err = run(t, "", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Status:   Open")
	assert.Contains(t, out, "third floor")
	assert.NotContains(t, out, "Updated:")

	out, err = run(t, "", "edit", id, "--status", "in_progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Ticket updated successfully!")

	got, err := store.Get(ctx, tk.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.StatusInProgress, got.Status)
	assert.Equal(t, "Printer on fire", got.Title)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.NotNil(t, got.UpdatedAt)

	_, err = run(t, "", "close", id)
	require.NoError(t, err)
	got, err = store.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusClosed, got.Status)

	_, err = run(t, "", "close", id, "--reopen")
	require.NoError(t, err)
	got, err = store.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOpen, got.Status)

	out, err = run(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total:        1")
	assert.Contains(t, out, "Open:         1 (100%)")

	out, err = run(t, "n\n", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	out, err = run(t, "y\n", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Ticket deleted successfully!")

	all, err = store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAdd_InvalidStatus(t *testing.T) {
	setup(t)
	login(t)

	_, err := run(t, "", "add", "Printer", "--status", "pending")
	require.Error(t, err)
	assert.Equal(t, "Invalid status. Must be: open, in_progress, or closed", err.Error())
}

func TestEdit_Validation(t *testing.T) {
	setup(t)
	login(t)

	_, err := run(t, "", "add", "Printer")
	require.NoError(t, err)

	_, err = run(t, "", "edit", "abc", "--title", "x")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = run(t, "", "list", "--status", "pending")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestShow_NotFound(t *testing.T) {
	setup(t)
	login(t)

	_, err := run(t, "", "show", "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, "Ticket not found: 42", err.Error())
}

func TestClear(t *testing.T) {
	mem := setup(t)
	login(t)

	for _, title := range []string{"one", "two"} {
		_, err := run(t, "", "add", title)
		require.NoError(t, err)
	}

	out, err := run(t, "", "clear", "--force", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 2 tickets.")

	raw, _, err := mem.Get(context.Background(), tickets.TicketsKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	_, ok, err := mem.Get(context.Background(), auth.SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
