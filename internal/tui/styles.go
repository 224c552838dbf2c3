package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/ticketr/internal/model"
)

// Color palette based on TUI design
var (
	// Status colors
	StatusOpen       = lipgloss.Color("#95E1A3") // Green
	StatusInProgress = lipgloss.Color("#FFB347") // Orange
	StatusClosed     = lipgloss.Color("#6C757D") // Gray

	// Priority colors
	PriorityHigh   = lipgloss.Color("#FF6B6B") // Red
	PriorityMedium = lipgloss.Color("#FFE66D") // Yellow
	PriorityLow    = lipgloss.Color("#4ECDC4") // Blue

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Secondary = lipgloss.Color("#6C757D")
	Surface   = lipgloss.Color("#16213e")
	Text      = lipgloss.Color("#FFFFFF")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
	Success   = lipgloss.Color("#95E1A3")
	Danger    = lipgloss.Color("#FF6B6B")
)

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	// Page body
	BodyStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// Dashboard stat card
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2).
			Width(18)

	// Ticket item
	TicketItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TicketItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	TicketClosedStyle = lipgloss.NewStyle().
				Foreground(TextMuted).
				Padding(0, 1)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	// Input modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	DangerModalStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Danger).
				Padding(1, 2)

	// Form labels and errors
	LabelStyle        = lipgloss.NewStyle().Bold(true)
	LabelFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	ErrorStyle        = lipgloss.NewStyle().Foreground(Danger)

	// Toasts
	ToastStyle      = lipgloss.NewStyle().Foreground(Success).Bold(true).Padding(0, 1)
	ToastErrorStyle = lipgloss.NewStyle().Foreground(Danger).Bold(true).Padding(0, 1)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// GetStatusStyle returns the badge style for a status
func GetStatusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusOpen:
		return lipgloss.NewStyle().Foreground(StatusOpen).Bold(true)
	case model.StatusInProgress:
		return lipgloss.NewStyle().Foreground(StatusInProgress).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(StatusClosed)
	}
}

// FormatStatus returns a colored status label
func FormatStatus(s model.Status) string {
	return GetStatusStyle(s).Render(s.Label())
}

// GetPriorityStyle returns the style for a given priority
func GetPriorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(PriorityHigh).Bold(true)
	case model.PriorityMedium:
		return lipgloss.NewStyle().Foreground(PriorityMedium)
	default:
		return lipgloss.NewStyle().Foreground(PriorityLow)
	}
}

// FormatPriority returns a formatted priority string
func FormatPriority(p model.Priority) string {
	return GetPriorityStyle(p).Render(string(p))
}
