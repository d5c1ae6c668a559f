package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Rule styles
var (
	MatcherIDStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SystemRuleStyle = lipgloss.NewStyle().
			Foreground(SystemRuleColor).
			Italic(true)

	UserRuleStyle = lipgloss.NewStyle().
			Foreground(UserRuleColor)

	HiddenStyle = lipgloss.NewStyle().
			Foreground(HiddenColor).
			Bold(true)
)

// HiddenIndicator marks a field hidden from the graph. It renders on call so
// the active color profile applies.
func HiddenIndicator() string {
	return HiddenStyle.Render("⊘")
}
