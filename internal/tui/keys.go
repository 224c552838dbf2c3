package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Enter      key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Tickets    key.Binding
	NewTicket  key.Binding
	Back       key.Binding
	Confirm    key.Binding
	Deny       key.Binding
	ToggleAuth key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Escape     key.Binding
	Logout     key.Binding
	Refresh    key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Right:      key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→/l", "next")),
	Tab:        key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	ShiftTab:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/submit")),
	Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add ticket")),
	Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Tickets:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tickets")),
	NewTicket:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new ticket")),
	Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("b", "dashboard")),
	Confirm:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	Deny:       key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
	ToggleAuth: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "login/signup")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Logout:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	Refresh:    key.NewBinding(key.WithKeys("R", "r"), key.WithHelp("r", "refresh")),
}
