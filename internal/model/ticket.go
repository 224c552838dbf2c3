package model

import (
	"encoding/json"
	"strings"
	"time"
)

// TimestampLayout always writes milliseconds, e.g. 2025-03-14T09:26:53.000Z
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Status is the workflow state of a ticket
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// Statuses lists every valid status in display order
var Statuses = []Status{StatusOpen, StatusInProgress, StatusClosed}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Label returns a human readable status name
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusInProgress:
		return "In Progress"
	case StatusClosed:
		return "Closed"
	default:
		return string(s)
	}
}

// Priority is a free-form urgency hint. Only the empty value is replaced
// (with PriorityMedium); other strings are stored as given.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the known priorities in display order
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Ticket is a unit of trackable work
type Ticket struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// MarshalJSON writes createdAt and updatedAt with TimestampLayout
func (t Ticket) MarshalJSON() ([]byte, error) {
	type plain Ticket
	out := struct {
		plain
		CreatedAt string  `json:"createdAt"`
		UpdatedAt *string `json:"updatedAt,omitempty"`
	}{
		plain:     plain(t),
		CreatedAt: t.CreatedAt.UTC().Format(TimestampLayout),
	}
	if t.UpdatedAt != nil {
		u := t.UpdatedAt.UTC().Format(TimestampLayout)
		out.UpdatedAt = &u
	}
	return json.Marshal(out)
}

// TicketInput carries the user-editable fields for create and update.
// Empty strings mean "absent".
type TicketInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
}

// Validate checks the input the same way for create and update
func (in TicketInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return Validation("Title is required")
	}
	if in.Status == "" {
		return Validation("Status is required")
	}
	if !in.Status.Valid() {
		return Validation("Invalid status. Must be: open, in_progress, or closed")
	}
	return nil
}

// Apply copies the normalized input fields onto t
func (in TicketInput) Apply(t *Ticket) {
	t.Title = strings.TrimSpace(in.Title)
	t.Description = strings.TrimSpace(in.Description)
	t.Status = in.Status
	t.Priority = in.Priority
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
}

// Timestamp normalizes a time for storage: UTC, millisecond precision
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
