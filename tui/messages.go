package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"cinema-tui/auth"
)

// NavigateMsg asks the shell to switch to the page at Path.
type NavigateMsg struct {
	Path string
}

// UsernameUpdatedMsg is emitted after a successful profile update so the
// header can show the new name.
type UsernameUpdatedMsg struct {
	Name string
}

type sessionChangedMsg struct {
	session *auth.Session
}

type logoutMsg struct{}

func navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

func usernameUpdated(name string) tea.Cmd {
	return func() tea.Msg {
		return UsernameUpdatedMsg{Name: name}
	}
}

var requestSeq atomic.Uint64

// nextRequestID tags an outgoing request. Pages only apply a result whose id
// matches the latest request they issued.
func nextRequestID() uint64 {
	return requestSeq.Add(1)
}
