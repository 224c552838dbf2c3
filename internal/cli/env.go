package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/existflow/ticketr/internal/auth"
	"github.com/existflow/ticketr/internal/clock"
	"github.com/existflow/ticketr/internal/logger"
	"github.com/existflow/ticketr/internal/model"
	"github.com/existflow/ticketr/internal/storage"
	"github.com/existflow/ticketr/internal/tickets"
	"github.com/spf13/cobra"
)

// errNotLoggedIn is returned by commands that need a session
var errNotLoggedIn = errors.New("not logged in, run 'ticketr login' first")

// env bundles the stores a command works with
type env struct {
	storage  storage.Storage
	sessions *auth.SessionStore
	tickets  *tickets.Store
}

// openStorage is swapped out by tests
var openStorage = func(ctx context.Context, opts storage.Options) (storage.Storage, error) {
	return storage.Open(ctx, opts)
}

func openEnv(cmd *cobra.Command) (*env, error) {
	s, err := openStorage(cmd.Context(), storage.Options{
		Driver:      cfg.StorageDriver,
		Path:        cfg.StoragePath,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		logger.Error("Failed to open storage", logger.F("error", err.Error()))
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	clk := clock.Real()
	return &env{
		storage:  s,
		sessions: auth.NewSessionStore(s, clk),
		tickets:  tickets.NewStore(s, clk),
	}, nil
}

func (e *env) Close() {
	if err := e.storage.Close(); err != nil {
		logger.Warn("Failed to close storage", logger.F("error", err.Error()))
	}
}

// openProtected opens the stores and refuses to continue without a session
func openProtected(cmd *cobra.Command) (*env, error) {
	e, err := openEnv(cmd)
	if err != nil {
		return nil, err
	}

	ok, err := e.sessions.IsAuthenticated(cmd.Context())
	if err != nil {
		e.Close()
		return nil, err
	}
	if !ok {
		e.Close()
		return nil, errNotLoggedIn
	}
	return e, nil
}

// lookupTicket resolves a ticket id argument; unknown ids become a not-found error
func lookupTicket(ctx context.Context, e *env, raw string) (*model.Ticket, error) {
	id, ok := model.ParseID(raw)
	if !ok {
		return nil, model.NotFound(fmt.Sprintf("Ticket not found: %s", raw))
	}
	t, err := e.tickets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, model.NotFound(fmt.Sprintf("Ticket not found: %s", raw))
	}
	return t, nil
}
