package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	sectionStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginTop(1)
	labelStyle      = lipgloss.NewStyle().Width(16).Faint(true)
	placeholderText = lipgloss.NewStyle().Italic(true).Faint(true)
	validationStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("203"))
	serviceErrStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("1")).
			Padding(0, 1)
	successStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("42"))
	cardStyle    = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("63"))
	focusedLabel      = lipgloss.NewStyle().Width(16).Bold(true).Foreground(lipgloss.Color("63"))
)

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func joinDots(parts []string) string {
	return strings.Join(parts, " • ")
}

// serviceError renders a non-blocking banner for a failed request.
func serviceError(action string, err error) string {
	return serviceErrStyle.Render("service error") + " " + action + ": " + err.Error()
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}
