// Package tickets implements CRUD and statistics over the ticket collection.
//
// The collection is a single JSON array under TicketsKey. Every call reads
// the whole array and every mutation writes the whole array back; the store
// keeps no authoritative copy in memory. Mutations are serialised inside one
// Store, but two processes sharing the same storage still race with
// last-write-wins on the full collection.
package tickets

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/existflow/ticketr/internal/clock"
	"github.com/existflow/ticketr/internal/logger"
	"github.com/existflow/ticketr/internal/model"
	"github.com/existflow/ticketr/internal/storage"
)

// TicketsKey is the storage key of the ticket collection
const TicketsKey = "ticketapp_tickets"

// Store manages the ticket collection
type Store struct {
	storage storage.Storage
	clock   clock.Clock

	mu     sync.Mutex
	lastID int64
}

// NewStore creates a Store over s
func NewStore(s storage.Storage, c clock.Clock) *Store {
	return &Store{storage: s, clock: c}
}

// All returns every ticket in insertion order, initialising an empty
// collection on first access
func (s *Store) All(ctx context.Context) ([]model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the ticket with id, or nil when there is none
func (s *Store) Get(ctx context.Context, id int64) (*model.Ticket, error) {
	tickets, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	if i := indexOf(tickets, id); i >= 0 {
		t := tickets[i]
		return &t, nil
	}
	logger.Debug("Ticket not found", logger.F("id", id))
	return nil, nil
}

// Create validates in, appends a new ticket and persists the collection
func (s *Store) Create(ctx context.Context, in model.TicketInput) (*model.Ticket, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	t := model.Ticket{
		ID:        s.nextID(now.UnixMilli(), tickets),
		CreatedAt: model.Timestamp(now),
	}
	in.Apply(&t)

	tickets = append(tickets, t)
	if err := s.save(ctx, tickets); err != nil {
		return nil, err
	}

	logger.Info("Ticket created",
		logger.F("id", t.ID),
		logger.F("status", t.Status),
		logger.F("priority", t.Priority))
	return &t, nil
}

// Update validates in and overwrites the editable fields of ticket id,
// keeping its id and creation time
func (s *Store) Update(ctx context.Context, id int64, in model.TicketInput) (*model.Ticket, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i := indexOf(tickets, id)
	if i < 0 {
		return nil, model.NotFound("Ticket not found")
	}

	in.Apply(&tickets[i])
	updatedAt := model.Timestamp(s.clock.Now())
	tickets[i].UpdatedAt = &updatedAt

	if err := s.save(ctx, tickets); err != nil {
		return nil, err
	}

	logger.Info("Ticket updated", logger.F("id", id), logger.F("status", tickets[i].Status))
	t := tickets[i]
	return &t, nil
}

// Delete removes ticket id. Unknown ids leave the collection unchanged.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := tickets[:0]
	for _, t := range tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(tickets) - len(kept)

	if err := s.save(ctx, kept); err != nil {
		return err
	}

	logger.Info("Ticket deleted", logger.F("id", id), logger.F("removed", removed))
	return nil
}

// Clear empties the collection and returns how many tickets were dropped
func (s *Store) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.save(ctx, []model.Ticket{}); err != nil {
		return 0, err
	}

	logger.Info("Tickets cleared", logger.F("removed", len(tickets)))
	return len(tickets), nil
}

// Stats counts tickets per status
func (s *Store) Stats(ctx context.Context) (model.Stats, error) {
	tickets, err := s.All(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return model.ComputeStats(tickets), nil
}

// load reads the collection, writing "[]" when the key has never been set.
// Callers must hold s.mu.
func (s *Store) load(ctx context.Context) ([]model.Ticket, error) {
	raw, ok, err := s.storage.Get(ctx, TicketsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read tickets: %w", err)
	}
	if !ok {
		if err := s.storage.Set(ctx, TicketsKey, "[]"); err != nil {
			return nil, fmt.Errorf("failed to initialise tickets: %w", err)
		}
		logger.Debug("Initialised empty ticket collection")
		return []model.Ticket{}, nil
	}

	var tickets []model.Ticket
	if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
		return nil, fmt.Errorf("failed to parse tickets: %w", err)
	}
	if tickets == nil {
		tickets = []model.Ticket{}
	}
	return tickets, nil
}

func (s *Store) save(ctx context.Context, tickets []model.Ticket) error {
	data, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("failed to marshal tickets: %w", err)
	}
	if err := s.storage.Set(ctx, TicketsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save tickets: %w", err)
	}
	return nil
}

// nextID derives an id from the clock, bumped past both the last id this
// store issued and every id already in the collection.
// Callers must hold s.mu.
func (s *Store) nextID(nowMillis int64, existing []model.Ticket) int64 {
	id := nowMillis
	if id <= s.lastID {
		id = s.lastID + 1
	}
	for _, t := range existing {
		if id <= t.ID {
			id = t.ID + 1
		}
	}
	s.lastID = id
	return id
}

func indexOf(tickets []model.Ticket, id int64) int {
	for i, t := range tickets {
		if t.ID == id {
			return i
		}
	}
	return -1
}
