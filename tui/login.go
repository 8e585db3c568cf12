package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"cinema-tui/auth"
	"cinema-tui/model"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
)

type loginPage struct {
	api    API
	store  SessionStore
	logger logrus.FieldLogger
	ctx    context.Context
	cancel context.CancelFunc

	inputs [2]textinput.Model
	focus  int

	req        uint64
	submitting bool
	alert      string
	err        error
}

type loginResultMsg struct {
	req     uint64
	account model.Account
	err     error
}

func newLoginPage(api API, store SessionStore, logger logrus.FieldLogger) *loginPage {
	ctx, cancel := context.WithCancel(context.Background())

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Prompt = ""

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Prompt = ""

	if recent, err := store.LoadRecentLogins(); err == nil && len(recent) > 0 {
		email.SetValue(recent[0])
	}

	return &loginPage{
		api:    api,
		store:  store,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		inputs: [2]textinput.Model{email, password},
	}
}

func (l *loginPage) Init() tea.Cmd {
	if l.inputs[loginFieldEmail].Value() != "" {
		return l.setFocus(loginFieldPassword)
	}
	return l.setFocus(loginFieldEmail)
}

func (l *loginPage) Close()            { l.cancel() }
func (l *loginPage) HandlesBack() bool { return false }
func (l *loginPage) Hints() string     { return "tab next field • enter sign in" }

func (l *loginPage) setFocus(i int) tea.Cmd {
	l.focus = ((i % len(l.inputs)) + len(l.inputs)) % len(l.inputs)
	var cmd tea.Cmd
	for idx := range l.inputs {
		if idx == l.focus {
			cmd = l.inputs[idx].Focus()
		} else {
			l.inputs[idx].Blur()
		}
	}
	return cmd
}

func (l *loginPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.req != l.req {
			return nil
		}
		l.submitting = false
		if msg.err != nil {
			l.err = msg.err
			l.logger.WithError(msg.err).Warn("login failed")
			return nil
		}
		session := auth.NewSession(msg.account, time.Now())
		return tea.Sequence(
			func() tea.Msg { return sessionChangedMsg{session: session} },
			navigate(PathHome),
		)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Select):
			return l.submit()
		case key.Matches(msg, keys.NextItem):
			return l.setFocus(l.focus + 1)
		case key.Matches(msg, keys.PrevItem):
			return l.setFocus(l.focus - 1)
		}
	}
	var cmd tea.Cmd
	l.inputs[l.focus], cmd = l.inputs[l.focus].Update(msg)
	return cmd
}

func (l *loginPage) submit() tea.Cmd {
	if l.submitting {
		return nil
	}
	cred := model.Credential{
		Email:    strings.TrimSpace(l.inputs[loginFieldEmail].Value()),
		Password: l.inputs[loginFieldPassword].Value(),
	}
	if cred.Email == "" || cred.Password == "" {
		l.alert = "Email and password are required"
		return nil
	}
	l.alert = ""
	l.err = nil
	l.submitting = true
	req := nextRequestID()
	l.req = req
	ctx, api, store, logger := l.ctx, l.api, l.store, l.logger
	return func() tea.Msg {
		account, err := api.Login(ctx, cred)
		if err != nil {
			return loginResultMsg{req: req, err: err}
		}
		if err := store.SaveSession(account); err != nil {
			logger.WithError(err).Warn("save session failed")
		}
		if err := store.RememberLogin(cred.Email); err != nil {
			logger.WithError(err).Debug("remember login failed")
		}
		return loginResultMsg{req: req, account: account}
	}
}

func (l *loginPage) View() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Login") + "\n\n")
	if l.alert != "" {
		b.WriteString(validationStyle.Render(l.alert) + "\n\n")
	}
	if l.err != nil {
		b.WriteString(serviceError("login failed", l.err) + "\n\n")
	}
	labels := [2]string{"Email", "Password"}
	for i, in := range l.inputs {
		label := labelStyle.Render(labels[i])
		if i == l.focus {
			label = focusedLabel.Render(labels[i])
		}
		b.WriteString(label + in.View() + "\n")
	}
	if l.submitting {
		b.WriteString("\n" + hint("Signing in..."))
	}
	return b.String()
}
