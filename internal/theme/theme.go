package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading        *lipgloss.Style
	Item           *lipgloss.Style
	Header         *lipgloss.Style
	Title          *lipgloss.Style
	Rule           *lipgloss.Style
	Message        *lipgloss.Style
	Bad            *lipgloss.Style
	Button         *lipgloss.Style
	ButtonFocused  *lipgloss.Style
	ButtonSelected *lipgloss.Style
	ButtonDisabled *lipgloss.Style
	// ButtonCurrent marks a disabled control that shows the current state,
	// such as "Connect" while already connected.
	ButtonCurrent  *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Warning        *lipgloss.Style
	Footer         *lipgloss.Style
	Search         *lipgloss.Style
	SearchPrompt   *lipgloss.Style
	Placeholder    *lipgloss.Style
	Cursor         *lipgloss.Style
	Overlay        *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true),
	),
	Rule: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Message: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
	),
	Bad: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	ButtonFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	ButtonSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("34")).Padding(0, 1),
	),
	ButtonDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("235")).Padding(0, 1),
	),
	ButtonCurrent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Background(lipgloss.Color("235")).Underline(true).Padding(0, 1),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Search: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Overlay: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(1, 3),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
