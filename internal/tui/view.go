package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/ticketr/internal/model"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var mainContent string
	switch m.screen {
	case ScreenLogin:
		mainContent = m.renderAuth()
	case ScreenDashboard:
		mainContent = m.renderDashboard()
	default:
		mainContent = m.renderTicketList()
		switch m.mode {
		case ModeForm:
			mainContent = m.place(m.renderForm())
		case ModeConfirmDelete:
			mainContent = m.place(m.renderConfirmDelete())
		case ModeHelp:
			mainContent = m.renderHelp()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), mainContent, m.renderStatusBar())
}

func (m Model) place(modal string) string {
	return lipgloss.Place(
		m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) renderHeader() string {
	left := HeaderStyle.Render("TicketFlow")
	if m.user == nil {
		return left
	}

	right := fmt.Sprintf("Welcome, %s", m.user.Name)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	return left + repeat(" ", gap) + HelpStyle.Render(right)
}

func (m Model) renderAuth() string {
	title := "Login"
	if m.signup {
		title = "Create Account"
	}

	labels := []string{"Email", "Password"}
	if m.signup {
		labels = []string{"Full Name", "Email", "Password", "Confirm Password"}
	}

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	for i, in := range m.authInputs {
		style := LabelStyle
		if i == m.authFocus {
			style = LabelFocusedStyle
		}
		content += style.Render(labels[i]) + "\n" + in.View() + "\n\n"
	}

	if m.authErr != "" {
		content += ErrorStyle.Render(m.authErr) + "\n\n"
	}

	toggle := "ctrl+t: create an account"
	if m.signup {
		toggle = "ctrl+t: back to login"
	}
	content += HelpStyle.Render("Enter:submit  Tab:next field  " + toggle + "  Esc:quit")

	return m.place(ModalStyle.Render(content))
}

func (m Model) renderDashboard() string {
	s := m.stats
	card := func(label string, count, pct int, color lipgloss.Color, showPct bool) string {
		body := lipgloss.NewStyle().Foreground(TextMuted).Render(label) + "\n" +
			lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%d", count))
		if showPct {
			body += HelpStyle.Render(fmt.Sprintf("  %d%%", pct))
		}
		return CardStyle.Render(body)
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Tickets", s.Total, 0, Text, false),
		card("Open", s.Open, s.OpenPercentage, StatusOpen, true),
		card("In Progress", s.InProgress, s.InProgressPercentage, StatusInProgress, true),
		card("Closed", s.Closed, s.ClosedPercentage, StatusClosed, true),
	)

	content := lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("Dashboard") + "\n"
	content += HelpStyle.Render("Overview of your support tickets") + "\n\n"
	content += cards + "\n\n"
	content += HelpStyle.Render("t: manage tickets   n: create new ticket")

	return BodyStyle.Width(m.width).Height(m.height - 4).Render(content)
}

func (m Model) renderTicketList() string {
	width := m.width - 4
	var s string

	header := fmt.Sprintf("Ticket Management (%d)", len(m.tickets))
	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(header) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(repeat("─", width-4)) + "\n\n"

	if len(m.tickets) == 0 {
		s += HelpStyle.Render("  No tickets yet. Press 'a' to create your first ticket.")
	}

	titleWidth := width - 44
	if titleWidth < 10 {
		titleWidth = 10
	}

	for i, t := range m.tickets {
		cursor := "  "
		style := TicketItemStyle
		if i == m.cursor {
			cursor = "❯ "
			style = TicketItemSelectedStyle
		} else if t.Status == model.StatusClosed {
			style = TicketClosedStyle
		}

		status := lipgloss.NewStyle().Width(12).Render(FormatStatus(t.Status))
		title := style.Render(fmt.Sprintf("%s%-*s", cursor, titleWidth, truncate(t.Title, titleWidth)))
		meta := HelpStyle.Render(fmt.Sprintf(" #%d ", t.ID))

		s += title + " " + status + " " + FormatPriority(t.Priority) + meta + "\n"
	}

	return BodyStyle.Width(m.width).Height(m.height - 4).Render(s)
}

func (m Model) renderForm() string {
	title := "Create New Ticket"
	submit := "Create"
	if m.editing {
		title = "Edit Ticket"
		submit = "Update"
	}

	label := func(field int, text string) string {
		if m.formFocus == field {
			return LabelFocusedStyle.Render(text)
		}
		return LabelStyle.Render(text)
	}

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	content += label(fieldTitle, "Title *") + "\n" + m.titleInput.View() + "\n"
	if m.formErr != "" {
		content += ErrorStyle.Render(m.formErr) + "\n"
	}
	content += "\n"
	content += label(fieldDescription, "Description") + "\n" + m.descInput.View() + "\n\n"
	content += label(fieldStatus, "Status *") + "\n" + renderChoice(model.Statuses, m.formStatus, model.Status.Label) + "\n\n"
	content += label(fieldPriority, "Priority") + "\n" + renderChoice(model.Priorities, m.formPriority, func(p model.Priority) string { return string(p) }) + "\n\n"
	content += HelpStyle.Render(fmt.Sprintf("Enter:%s  Tab:next field  ←/→:change  Esc:cancel", strings.ToLower(submit)))

	return ModalStyle.Render(content)
}

// renderChoice shows every option with the current one highlighted
func renderChoice[T comparable](list []T, cur T, label func(T) string) string {
	parts := make([]string, 0, len(list))
	for _, v := range list {
		if v == cur {
			parts = append(parts, LabelFocusedStyle.Render("["+label(v)+"]"))
		} else {
			parts = append(parts, HelpStyle.Render(" "+label(v)+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderConfirmDelete() string {
	t := m.currentTicket()
	if t == nil {
		return ""
	}

	content := lipgloss.NewStyle().Bold(true).Foreground(Danger).Render("Delete Ticket") + "\n\n"
	content += fmt.Sprintf("Are you sure you want to delete \"%s\"?\n", truncate(t.Title, 40))
	content += HelpStyle.Render("This action cannot be undone.") + "\n\n"
	content += HelpStyle.Render("y:delete  n/Esc:cancel")

	return DangerModalStyle.Render(content)
}

func (m Model) renderStatusBar() string {
	var help string
	switch m.screen {
	case ScreenLogin:
		help = "ctrl+c:quit"
	case ScreenDashboard:
		help = "t:tickets  n:new ticket  r:refresh  L:logout  q:quit"
	default:
		help = "a:add  e:edit  d:delete  b:dashboard  ?:help  L:logout  q:quit"
	}
	if m.message != "" {
		help = m.message
	}

	if m.toast != "" {
		style := ToastStyle
		if m.toastErr {
			style = ToastErrorStyle
		}
		toast := style.Render(m.toast)
		avail := m.width - lipgloss.Width(help) - lipgloss.Width(toast) - 2
		if avail > 0 {
			help += strings.Repeat(" ", avail) + toast
		} else {
			help += " " + toast
		}
	}

	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderHelp() string {
	help := `
╭─── Keyboard Shortcuts ───╮
│                          │
│  Navigation              │
│  ──────────              │
│  j/↓    Move down        │
│  k/↑    Move up          │
│  g/G    Top / bottom     │
│  b/Esc  Dashboard        │
│                          │
│  Actions                 │
│  ───────                 │
│  a       Create ticket   │
│  e/Enter Edit ticket     │
│  d       Delete ticket   │
│  r       Refresh         │
│                          │
│  Other                   │
│  ─────                   │
│  L       Logout          │
│  ?       Toggle help     │
│  q       Quit            │
│                          │
╰──────────────────────────╯

     Press any key to close
`
	return m.place(help)
}
