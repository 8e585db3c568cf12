// Package auth holds the login state pages consult before talking to
// endpoints that require a bearer token.
package auth

import (
	"strings"
	"sync/atomic"
	"time"

	"cinema-tui/model"
)

// Session is the read-only view of the current login. The zero value is an
// anonymous session.
type Session struct {
	token     string
	expiresAt time.Time
	now       func() time.Time
}

// NewSession builds a session from a login response. Expiry is the token
// lifetime in seconds counted from CreatedAt; a missing or unparseable
// CreatedAt is treated as issuedAt.
func NewSession(account model.Account, issuedAt time.Time) *Session {
	s := &Session{token: strings.TrimSpace(account.Token), now: time.Now}
	if account.Expiry <= 0 {
		return s
	}
	created := issuedAt
	if t, err := time.Parse(time.RFC3339, account.CreatedAt); err == nil {
		created = t
	}
	s.expiresAt = created.Add(time.Duration(account.Expiry) * time.Second)
	return s
}

// Anonymous returns a session with no token.
func Anonymous() *Session {
	return &Session{now: time.Now}
}

// WithClock replaces the clock used for expiry checks.
func (s *Session) WithClock(now func() time.Time) *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.now = now
	return &c
}

func (s *Session) IsAuthenticated() bool {
	if s == nil || s.token == "" {
		return false
	}
	if s.expiresAt.IsZero() {
		return true
	}
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	return now().Before(s.expiresAt)
}

// Token returns the bearer token, or "" when the session is not authenticated.
func (s *Session) Token() string {
	if !s.IsAuthenticated() {
		return ""
	}
	return s.token
}

func (s *Session) ExpiresAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.expiresAt
}

// Holder is the current session shared by the shell, its pages and the API
// client. Pages only read it; the shell swaps it on login and logout.
type Holder struct {
	current atomic.Pointer[Session]
}

func NewHolder(s *Session) *Holder {
	h := &Holder{}
	h.Set(s)
	return h
}

func (h *Holder) Set(s *Session) {
	if s == nil {
		s = Anonymous()
	}
	h.current.Store(s)
}

func (h *Holder) Session() *Session {
	if h == nil {
		return Anonymous()
	}
	if s := h.current.Load(); s != nil {
		return s
	}
	return Anonymous()
}

func (h *Holder) IsAuthenticated() bool {
	return h.Session().IsAuthenticated()
}

// Token implements service.TokenSource.
func (h *Holder) Token() string {
	return h.Session().Token()
}
