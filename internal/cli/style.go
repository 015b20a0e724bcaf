package cli

import "github.com/charmbracelet/lipgloss"

// Status line styling. Colours match the festive red of the generated
// document where it makes sense.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")) // Green
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")) // Yellow
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)
)
