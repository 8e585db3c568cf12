package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	NextItem key.Binding
	PrevItem key.Binding
	Left     key.Binding
	Right    key.Binding

	// Profile page.
	Edit        key.Binding
	ToggleEmail key.Binding
	TogglePhone key.Binding
	Reload      key.Binding
	Save        key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	NextItem: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PrevItem: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next"),
	),
	Edit: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "update profile"),
	),
	ToggleEmail: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "show/hide email"),
	),
	TogglePhone: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "show/hide phone"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Save: key.NewBinding(
		key.WithKeys("enter", "ctrl+s"),
		key.WithHelp("enter", "save"),
	),
}

// hints renders bindings as "key action • key action".
func hints(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return joinDots(parts)
}
