package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/ticketr/internal/auth"
	"github.com/existflow/ticketr/internal/logger"
	"github.com/existflow/ticketr/internal/model"
	"github.com/existflow/ticketr/internal/tickets"
)

// Screen is the page currently shown
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenTickets
)

// Mode represents the current UI mode on the ticket screen
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm
	ModeConfirmDelete
	ModeHelp
)

// form field order in the ticket modal
const (
	fieldTitle = iota
	fieldDescription
	fieldStatus
	fieldPriority
	fieldCount
)

// Model is the main TUI model
type Model struct {
	ctx      context.Context
	sessions *auth.SessionStore
	store    *tickets.Store

	user    *model.Session
	stats   model.Stats
	tickets []model.Ticket

	// UI state
	width  int
	height int
	screen Screen
	mode   Mode
	cursor int

	// Login / signup
	signup     bool
	authInputs []textinput.Model
	authFocus  int
	authErr    string

	// Ticket modal; editingID is only meaningful while editing
	editing      bool
	editingID    int64
	titleInput   textinput.Model
	descInput    textinput.Model
	formStatus   model.Status
	formPriority model.Priority
	formFocus    int
	formErr      string

	// Toast
	toast    string
	toastErr bool
	toastSeq int

	message string
}

// NewModel creates a new TUI model. Without a session it starts on the login
// screen.
func NewModel(ctx context.Context, sessions *auth.SessionStore, store *tickets.Store) Model {
	logger.Info("Initializing TUI model")

	title := textinput.New()
	title.Placeholder = "Enter ticket title"
	title.CharLimit = 256
	title.Width = 50

	desc := textinput.New()
	desc.Placeholder = "Enter ticket description (optional)"
	desc.CharLimit = 1024
	desc.Width = 50

	m := Model{
		ctx:        ctx,
		sessions:   sessions,
		store:      store,
		titleInput: title,
		descInput:  desc,
	}

	user, err := sessions.CurrentUser(ctx)
	if err != nil {
		logger.Error("Failed to read session", logger.F("error", err.Error()))
		m.message = err.Error()
	}

	if user == nil {
		m.showLogin()
	} else {
		m.user = user
		m.screen = ScreenDashboard
		m.loadData()
	}

	logger.Debug("TUI model initialized",
		logger.F("screen", int(m.screen)),
		logger.F("tickets", len(m.tickets)))
	return m
}

func (m *Model) loadData() {
	all, err := m.store.All(m.ctx)
	if err != nil {
		logger.Error("Failed to load tickets", logger.F("error", err.Error()))
		m.message = err.Error()
		return
	}
	m.tickets = all
	m.stats = model.ComputeStats(all)

	if m.cursor >= len(m.tickets) {
		m.cursor = len(m.tickets) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) currentTicket() *model.Ticket {
	if m.cursor < len(m.tickets) {
		return &m.tickets[m.cursor]
	}
	return nil
}

// showLogin resets the auth form for the current login/signup choice
func (m *Model) showLogin() {
	m.screen = ScreenLogin
	m.mode = ModeNormal
	m.authErr = ""
	m.authFocus = 0

	labels := []string{"Email", "Password"}
	if m.signup {
		labels = []string{"Full Name", "Email", "Password", "Confirm Password"}
	}

	m.authInputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 128
		in.Width = 40
		if label == "Password" || label == "Confirm Password" {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		m.authInputs[i] = in
	}
	m.authInputs[0].Focus()
}

// openForm shows the ticket modal, prefilled from t when editing
func (m *Model) openForm(t *model.Ticket) {
	m.mode = ModeForm
	m.formErr = ""
	m.formFocus = fieldTitle

	if t == nil {
		m.editing = false
		m.editingID = 0
		m.titleInput.SetValue("")
		m.descInput.SetValue("")
		m.formStatus = model.StatusOpen
		m.formPriority = model.PriorityMedium
	} else {
		m.editing = true
		m.editingID = t.ID
		m.titleInput.SetValue(t.Title)
		m.descInput.SetValue(t.Description)
		m.formStatus = t.Status
		m.formPriority = t.Priority
		if m.formPriority == "" {
			m.formPriority = model.PriorityMedium
		}
	}

	m.focusFormField()
}

func (m *Model) focusFormField() {
	m.titleInput.Blur()
	m.descInput.Blur()
	switch m.formFocus {
	case fieldTitle:
		m.titleInput.Focus()
		m.titleInput.CursorEnd()
	case fieldDescription:
		m.descInput.Focus()
		m.descInput.CursorEnd()
	}
}

func (m Model) formInput() model.TicketInput {
	return model.TicketInput{
		Title:       m.titleInput.Value(),
		Description: m.descInput.Value(),
		Status:      m.formStatus,
		Priority:    m.formPriority,
	}
}
