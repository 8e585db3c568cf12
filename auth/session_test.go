package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cinema-tui/model"
)

func TestSession_Anonymous(t *testing.T) {
	require.False(t, Anonymous().IsAuthenticated())
	require.Empty(t, Anonymous().Token())

	var nilSession *Session
	require.False(t, nilSession.IsAuthenticated())
}

func TestSession_TokenWithoutExpiry(t *testing.T) {
	s := NewSession(model.Account{Token: "abc"}, time.Now())
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "abc", s.Token())
}

func TestSession_Expiry(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	account := model.Account{
		Token:     "abc",
		Expiry:    3600,
		CreatedAt: created.Format(time.RFC3339),
	}

	s := NewSession(account, time.Time{}).WithClock(func() time.Time { return created.Add(30 * time.Minute) })
	require.True(t, s.IsAuthenticated())

	expired := s.WithClock(func() time.Time { return created.Add(2 * time.Hour) })
	require.False(t, expired.IsAuthenticated())
	require.Empty(t, expired.Token())
}

func TestSession_ExpiryFallsBackToIssuedAt(t *testing.T) {
	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewSession(model.Account{Token: "abc", Expiry: 60, CreatedAt: "not a date"}, issued)
	require.Equal(t, issued.Add(time.Minute), s.ExpiresAt())
}

func TestHolder(t *testing.T) {
	h := NewHolder(nil)
	require.False(t, h.IsAuthenticated())
	require.Empty(t, h.Token())

	h.Set(NewSession(model.Account{Token: "abc"}, time.Now()))
	require.True(t, h.IsAuthenticated())
	require.Equal(t, "abc", h.Token())

	h.Set(Anonymous())
	require.False(t, h.IsAuthenticated())

	var nilHolder *Holder
	require.False(t, nilHolder.IsAuthenticated())
}
