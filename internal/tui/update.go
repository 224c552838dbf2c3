package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/ticketr/internal/logger"
	"github.com/existflow/ticketr/internal/model"
)

// toastDuration is how long a toast stays on screen
const toastDuration = 3 * time.Second

// toastExpiredMsg hides the toast with the matching sequence number
type toastExpiredMsg struct {
	seq int
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastExpiredMsg:
		// A newer toast replaces the old one and owns its own timer
		if msg.seq == m.toastSeq {
			m.toast = ""
			m.toastErr = false
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}

		switch m.screen {
		case ScreenLogin:
			return m.updateAuth(msg)
		case ScreenDashboard:
			return m.updateDashboard(msg)
		}

		switch m.mode {
		case ModeForm:
			return m.updateForm(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// showToast displays msg and schedules its removal
func (m *Model) showToast(msg string, isErr bool) tea.Cmd {
	m.toastSeq++
	seq := m.toastSeq
	m.toast = msg
	m.toastErr = isErr
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		return m, tea.Quit

	case key.Matches(msg, keys.ToggleAuth):
		m.signup = !m.signup
		m.showLogin()
		return m, textinput.Blink

	case key.Matches(msg, keys.Enter):
		return m.submitAuth()

	case key.Matches(msg, keys.Tab):
		m.focusAuth(m.authFocus + 1)
		return m, nil

	case key.Matches(msg, keys.ShiftTab):
		m.focusAuth(m.authFocus - 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	if m.authErr != "" {
		m.authErr = ""
	}
	return m, cmd
}

func (m *Model) focusAuth(i int) {
	n := len(m.authInputs)
	m.authFocus = (i + n) % n
	for j := range m.authInputs {
		if j == m.authFocus {
			m.authInputs[j].Focus()
		} else {
			m.authInputs[j].Blur()
		}
	}
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	var (
		user  *model.Session
		err   error
		toast string
	)

	v := func(i int) string { return m.authInputs[i].Value() }
	if m.signup {
		user, err = m.sessions.Signup(m.ctx, v(0), v(1), v(2), v(3))
		toast = "Account created successfully!"
	} else {
		user, err = m.sessions.Login(m.ctx, v(0), v(1))
		toast = "Login successful!"
	}

	if err != nil {
		logger.Debug("Authentication rejected", logger.F("error", err.Error()))
		m.authErr = err.Error()
		return m, nil
	}

	m.user = user
	m.screen = ScreenDashboard
	m.mode = ModeNormal
	m.message = ""
	m.loadData()
	return m, m.showToast(toast, false)
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tickets):
		m.screen = ScreenTickets
		m.mode = ModeNormal
		m.loadData()

	case key.Matches(msg, keys.NewTicket):
		m.screen = ScreenTickets
		m.loadData()
		m.openForm(nil)
		return m, textinput.Blink

	case key.Matches(msg, keys.Logout):
		return m.handleLogout()

	case key.Matches(msg, keys.Refresh):
		m.loadData()
	}

	return m, nil
}

// handleNormalKeys handles key presses on the ticket list
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.tickets)-1 {
			m.cursor++
		}

	case msg.String() == "G":
		if len(m.tickets) > 0 {
			m.cursor = len(m.tickets) - 1
		}

	case msg.String() == "g":
		m.cursor = 0

	case key.Matches(msg, keys.Add):
		m.openForm(nil)
		return m, textinput.Blink

	case key.Matches(msg, keys.Edit):
		if t := m.currentTicket(); t != nil {
			m.openForm(t)
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Delete):
		if m.currentTicket() != nil {
			m.mode = ModeConfirmDelete
		}

	case key.Matches(msg, keys.Back):
		m.screen = ScreenDashboard
		m.loadData()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Logout):
		return m.handleLogout()

	case key.Matches(msg, keys.Refresh):
		m.loadData()
	}

	return m, nil
}

func (m Model) handleLogout() (tea.Model, tea.Cmd) {
	if err := m.sessions.Logout(m.ctx); err != nil {
		logger.Error("Logout failed", logger.F("error", err.Error()))
		return m, m.showToast(err.Error(), true)
	}

	m.user = nil
	m.tickets = nil
	m.stats = model.Stats{}
	m.cursor = 0
	m.signup = false
	m.showLogin()
	m.message = "Logged out successfully"
	return m, textinput.Blink
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.formErr = ""
		return m, nil

	case key.Matches(msg, keys.Enter):
		return m.submitForm()

	case key.Matches(msg, keys.Tab):
		m.formFocus = (m.formFocus + 1) % fieldCount
		m.focusFormField()
		return m, nil

	case key.Matches(msg, keys.ShiftTab):
		m.formFocus = (m.formFocus - 1 + fieldCount) % fieldCount
		m.focusFormField()
		return m, nil
	}

	switch m.formFocus {
	case fieldStatus:
		switch {
		case key.Matches(msg, keys.Right):
			m.formStatus = cycle(model.Statuses, m.formStatus, 1)
		case key.Matches(msg, keys.Left):
			m.formStatus = cycle(model.Statuses, m.formStatus, -1)
		}
		return m, nil

	case fieldPriority:
		switch {
		case key.Matches(msg, keys.Right):
			m.formPriority = cycle(model.Priorities, m.formPriority, 1)
		case key.Matches(msg, keys.Left):
			m.formPriority = cycle(model.Priorities, m.formPriority, -1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.formFocus == fieldTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.formErr = ""
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	in := m.formInput()

	var (
		t     *model.Ticket
		err   error
		toast string
	)
	if !m.editing {
		t, err = m.store.Create(m.ctx, in)
		toast = "Ticket created successfully!"
	} else {
		t, err = m.store.Update(m.ctx, m.editingID, in)
		toast = "Ticket updated successfully!"
	}

	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			m.formErr = err.Error()
			return m, nil
		}
		logger.Error("Failed to save ticket", logger.F("error", err.Error()))
		return m, m.showToast(err.Error(), true)
	}

	m.mode = ModeNormal
	m.loadData()
	for i := range m.tickets {
		if m.tickets[i].ID == t.ID {
			m.cursor = i
			break
		}
	}
	return m, m.showToast(toast, false)
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		t := m.currentTicket()
		m.mode = ModeNormal
		if t == nil {
			return m, nil
		}
		if err := m.store.Delete(m.ctx, t.ID); err != nil {
			logger.Error("Failed to delete ticket", logger.F("error", err.Error()))
			return m, m.showToast(fmt.Sprintf("Error deleting ticket: %v", err), true)
		}
		m.loadData()
		return m, m.showToast("Ticket deleted successfully!", false)

	case key.Matches(msg, keys.Deny):
		m.mode = ModeNormal
	}

	return m, nil
}
