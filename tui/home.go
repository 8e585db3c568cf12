package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"cinema-tui/auth"
)

type menuItem struct {
	title string
	desc  string
	path  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

type homePage struct {
	menu list.Model
}

func newHomePage(session *auth.Holder) *homePage {
	l := newList("Home")
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	l.SetItems(buildMenuItems(session.IsAuthenticated()))
	l.SetSize(60, 12)
	return &homePage{menu: l}
}

func buildMenuItems(authenticated bool) []list.Item {
	items := []list.Item{
		menuItem{title: "Movies", desc: "Browse what is showing", path: PathMovies},
		menuItem{title: "Profile", desc: "Your details and tickets", path: PathProfile},
	}
	if authenticated {
		return append(items, menuItem{title: "Logout", desc: "Forget the stored session"})
	}
	return append(items, menuItem{title: "Login", desc: "Sign in to your account", path: PathLogin})
}

func (h *homePage) Init() tea.Cmd     { return nil }
func (h *homePage) Close()            {}
func (h *homePage) HandlesBack() bool { return false }
func (h *homePage) Hints() string     { return "enter select" }

func (h *homePage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.menu.SetSize(msg.Width, max(6, msg.Height-6))
		return nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Select) {
			item, ok := h.menu.SelectedItem().(menuItem)
			if !ok {
				return nil
			}
			if item.path == "" {
				return func() tea.Msg { return logoutMsg{} }
			}
			return navigate(item.path)
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return cmd
}

func (h *homePage) View() string {
	return h.menu.View()
}
