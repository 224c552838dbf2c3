package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/existflow/ticketr/internal/clock"
	"github.com/existflow/ticketr/internal/model"
	"github.com/existflow/ticketr/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

func newStore(t *testing.T) (*Store, *storage.Memory, *clock.Fake) {
	t.Helper()
	mem := storage.NewMemory()
	clk := clock.NewFake(epoch)
	return NewStore(mem, clk), mem, clk
}

func TestAll_BootstrapsEmptyCollection(t *testing.T) {
	s, mem, _ := newStore(t)
	ctx := context.Background()

	_, ok, err := mem.Get(ctx, TicketsKey)
	require.NoError(t, err)
	require.False(t, ok)

	tickets, err := s.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)

	raw, ok, err := mem.Get(ctx, TicketsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", raw)

	// idempotent
	_, err = s.All(ctx)
	require.NoError(t, err)
}

func TestStats_Empty(t *testing.T) {
	s, _, _ := newStore(t)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Stats{}, stats)
}

func TestCreate_Validation(t *testing.T) {
	s, mem, _ := newStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   model.TicketInput
		msg  string
	}{
		{"no title", model.TicketInput{Status: model.StatusOpen}, "Title is required"},
		{"whitespace title", model.TicketInput{Title: "   ", Status: model.StatusOpen}, "Title is required"},
		{"no status", model.TicketInput{Title: "T"}, "Status is required"},
		{"bogus status", model.TicketInput{Title: "T", Status: "bogus"}, "Invalid status. Must be: open, in_progress, or closed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(ctx, tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrValidation))
			assert.EqualError(t, err, tc.msg)
		})
	}

	_, ok, err := mem.Get(ctx, TicketsKey)
	require.NoError(t, err)
	assert.False(t, ok, "failed validation must not touch storage")
}

func TestCreate_BuildsTicket(t *testing.T) {
	s, _, _ := newStore(t)

	got, err := s.Create(context.Background(), model.TicketInput{
		Title:       "  Fix bug  ",
		Description: "  crashes on save ",
		Status:      model.StatusOpen,
	})
	require.NoError(t, err)

	assert.Equal(t, epoch.UnixMilli(), got.ID)
	assert.Equal(t, "Fix bug", got.Title)
	assert.Equal(t, "crashes on save", got.Description)
	assert.Equal(t, model.StatusOpen, got.Status)
	assert.Equal(t, model.PriorityMedium, got.Priority)
	assert.Equal(t, epoch, got.CreatedAt)
	assert.Nil(t, got.UpdatedAt)
}

func TestCreate_KeepsUnknownPriority(t *testing.T) {
	s, _, _ := newStore(t)

	got, err := s.Create(context.Background(), model.TicketInput{Title: "T", Status: model.StatusClosed, Priority: "urgent"})
	require.NoError(t, err)
	assert.Equal(t, model.Priority("urgent"), got.Priority)
}

func TestCreate_RoundTrip(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, model.TicketInput{Title: "Fix bug", Status: model.StatusOpen, Priority: model.PriorityHigh})
	require.NoError(t, err)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_StatsScenario(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, model.TicketInput{Title: "Fix bug", Status: model.StatusOpen})
	require.NoError(t, err)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Stats{
		Total:          1,
		Open:           1,
		OpenPercentage: 100,
	}, stats)
}

func TestCreate_IDsUniqueWithinOneTick(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		tk, err := s.Create(ctx, model.TicketInput{Title: "T", Status: model.StatusOpen})
		require.NoError(t, err)
		assert.False(t, seen[tk.ID], "duplicate id %d", tk.ID)
		seen[tk.ID] = true
	}

	tickets, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 5)
	for i := 1; i < len(tickets); i++ {
		assert.Greater(t, tickets[i].ID, tickets[i-1].ID, "insertion order")
	}
}

func TestCreate_IDsSkipPastExistingCollection(t *testing.T) {
	s, mem, _ := newStore(t)
	ctx := context.Background()

	future := epoch.Add(time.Hour).UnixMilli()
	require.NoError(t, mem.Set(ctx, TicketsKey, `[{"id":`+jsonInt(future)+`,"title":"old","description":"","status":"open","priority":"low","createdAt":"2025-03-14T10:26:53.589Z"}]`))

	tk, err := s.Create(ctx, model.TicketInput{Title: "new", Status: model.StatusOpen})
	require.NoError(t, err)
	assert.Equal(t, future+1, tk.ID)
}

func TestCreate_ConcurrentCallersDoNotLoseWrites(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create(ctx, model.TicketInput{Title: "T", Status: model.StatusOpen})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	tickets, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, tickets, 20)
}

func TestGet_Absent(t *testing.T) {
	s, _, _ := newStore(t)

	got, err := s.Get(context.Background(), 999999999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	s, _, clk := newStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, model.TicketInput{Title: "first", Status: model.StatusOpen})
	require.NoError(t, err)
	clk.Advance(time.Second)
	second, err := s.Create(ctx, model.TicketInput{Title: "second", Status: model.StatusOpen, Priority: model.PriorityLow})
	require.NoError(t, err)

	clk.Advance(time.Minute)
	updated, err := s.Update(ctx, first.ID, model.TicketInput{Title: " renamed ", Status: model.StatusInProgress})
	require.NoError(t, err)

	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "", updated.Description)
	assert.Equal(t, model.StatusInProgress, updated.Status)
	assert.Equal(t, model.PriorityMedium, updated.Priority)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, epoch.Add(time.Second+time.Minute), *updated.UpdatedAt)

	tickets, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, *updated, tickets[0])
	assert.Equal(t, *second, tickets[1])
}

func TestUpdate_ValidatesBeforeLookup(t *testing.T) {
	s, _, _ := newStore(t)

	_, err := s.Update(context.Background(), 999999999, model.TicketInput{Title: "", Status: model.StatusOpen})
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestUpdate_NotFoundLeavesCollectionUnchanged(t *testing.T) {
	s, mem, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, model.TicketInput{Title: "T", Status: model.StatusOpen})
	require.NoError(t, err)
	before, _, err := mem.Get(ctx, TicketsKey)
	require.NoError(t, err)

	_, err = s.Update(ctx, 999999999, model.TicketInput{Title: "X", Status: model.StatusClosed})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.EqualError(t, err, "Ticket not found")

	after, _, err := mem.Get(ctx, TicketsKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDelete_IdempotentAndSilent(t *testing.T) {
	s, _, clk := newStore(t)
	ctx := context.Background()

	a, err := s.Create(ctx, model.TicketInput{Title: "a", Status: model.StatusOpen})
	require.NoError(t, err)
	clk.Advance(time.Millisecond)
	b, err := s.Create(ctx, model.TicketInput{Title: "b", Status: model.StatusClosed})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, a.ID))
	afterFirst, err := s.All(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, a.ID))
	afterSecond, err := s.All(ctx)
	require.NoError(t, err)

	assert.Equal(t, afterFirst, afterSecond)
	assert.Equal(t, []model.Ticket{*b}, afterSecond)

	require.NoError(t, s.Delete(ctx, 424242))
	afterUnknown, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, afterSecond, afterUnknown)
}

func TestStats_Mixed(t *testing.T) {
	s, _, _ := newStore(t)
	ctx := context.Background()

	for _, st := range []model.Status{model.StatusOpen, model.StatusOpen, model.StatusInProgress, model.StatusClosed, model.StatusClosed, model.StatusClosed} {
		_, err := s.Create(ctx, model.TicketInput{Title: "T", Status: st})
		require.NoError(t, err)
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Stats{
		Total:                6,
		Open:                 2,
		InProgress:           1,
		Closed:               3,
		OpenPercentage:       33,
		InProgressPercentage: 17,
		ClosedPercentage:     50,
	}, stats)
}

func TestPersistedLayout(t *testing.T) {
	s, mem, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, model.TicketInput{Title: "Fix bug", Status: model.StatusOpen})
	require.NoError(t, err)

	raw, _, err := mem.Get(ctx, TicketsKey)
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Fix bug", docs[0]["title"])
	assert.Equal(t, "medium", docs[0]["priority"])
	assert.Equal(t, "2025-03-14T09:26:53.589Z", docs[0]["createdAt"])
	assert.NotContains(t, docs[0], "updatedAt")
}

func TestLoad_CorruptCollection(t *testing.T) {
	s, mem, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, TicketsKey, "{oops"))

	_, err := s.All(ctx)
	require.ErrorContains(t, err, "failed to parse tickets")
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestClear(t *testing.T) {
	s, mem, clk := newStore(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b"} {
		_, err := s.Create(ctx, model.TicketInput{Title: title, Status: model.StatusOpen})
		require.NoError(t, err)
		clk.Advance(time.Millisecond)
	}

	n, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	raw, ok, err := mem.Get(ctx, TicketsKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)

	n, err = s.Clear(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
