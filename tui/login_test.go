package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"cinema-tui/model"
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

func TestLoginPage_PrefillsRecentEmail(t *testing.T) {
	store := &fakeStore{recent: []string{"alice@example.com"}}
	l := newLoginPage(&fakeAPI{}, store, quietLogger())
	l.Init()

	require.Equal(t, "alice@example.com", l.inputs[loginFieldEmail].Value())
	require.Equal(t, loginFieldPassword, l.focus)
}

func TestLoginPage_RequiresBothFields(t *testing.T) {
	api := &fakeAPI{}
	l := newLoginPage(api, &fakeStore{}, quietLogger())
	l.Init()

	l.Update(keyRunes("alice@example.com"))
	require.Nil(t, l.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	require.Contains(t, l.View(), "Email and password are required")
	require.Empty(t, api.logins)
}

func TestLoginPage_SuccessStoresSession(t *testing.T) {
	api := &fakeAPI{account: model.Account{Token: "tok", Expiry: 3600}}
	store := &fakeStore{recent: []string{"alice@example.com"}}
	l := newLoginPage(api, store, quietLogger())
	l.Init()

	l.Update(keyRunes("secret"))
	cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, l.submitting)

	msg := cmd()
	require.Equal(t, []model.Credential{{Email: "alice@example.com", Password: "secret"}}, api.logins)
	require.Len(t, store.saved, 1)
	require.Equal(t, "tok", store.saved[0].Token)

	require.NotNil(t, l.Update(msg))
	require.False(t, l.submitting)
}

func TestLoginPage_FailureIsShown(t *testing.T) {
	api := &fakeAPI{loginErr: errors.New("invalid credentials")}
	store := &fakeStore{recent: []string{"alice@example.com"}}
	l := newLoginPage(api, store, quietLogger())
	l.Init()

	l.Update(keyRunes("wrong"))
	msg := l.Update(tea.KeyMsg{Type: tea.KeyEnter})()
	require.Nil(t, l.Update(msg))
	require.Empty(t, store.saved)
	require.Contains(t, l.View(), "invalid credentials")
}
