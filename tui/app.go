package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"cinema-tui/auth"
	"cinema-tui/model"
	"cinema-tui/store"
)

// ProfileAPI is the part of the backend the profile page depends on.
type ProfileAPI interface {
	GetProfile(ctx context.Context) (model.User, error)
	UpdateProfile(ctx context.Context, update model.ProfileUpdate) error
	GetTicketsForUser(ctx context.Context) ([]model.Ticket, error)
}

// API is the full backend surface used by the app.
type API interface {
	ProfileAPI
	Login(ctx context.Context, cred model.Credential) (model.Account, error)
	ListMovies(ctx context.Context) ([]model.Movie, error)
	GetMovie(ctx context.Context, imdbID string) (model.Movie, error)
	GetShow(ctx context.Context, showID string) (model.Show, error)
}

// SessionStore persists the login between runs.
type SessionStore interface {
	SaveSession(account model.Account) error
	ClearSession() error
	RememberLogin(email string) error
	LoadRecentLogins() ([]string, error)
}

// FileSessionStore stores sessions in the user config directory.
type FileSessionStore struct{}

func (FileSessionStore) SaveSession(account model.Account) error { return store.SaveSession(account) }
func (FileSessionStore) ClearSession() error                     { return store.ClearSession() }
func (FileSessionStore) RememberLogin(email string) error        { return store.RememberLogin(email) }
func (FileSessionStore) LoadRecentLogins() ([]string, error)     { return store.LoadRecentLogins() }

type Options struct {
	API           API
	Session       *auth.Holder
	Store         SessionStore
	Logger        logrus.FieldLogger
	RedirectDelay time.Duration
	Now           func() time.Time
	StartPath     string
}

// page is one screen of the app. Close releases in-flight requests.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Hints() string
	Close()
	// HandlesBack reports whether esc is meaningful inside the page right now.
	HandlesBack() bool
}

type appModel struct {
	opts Options

	route   Route
	current page
	history []string

	username  string
	headerReq uint64

	width  int
	height int
}

type headerProfileMsg struct {
	req  uint64
	user model.User
	err  error
}

func New(opts Options) tea.Model {
	if opts.Session == nil {
		opts.Session = auth.NewHolder(nil)
	}
	if opts.Store == nil {
		opts.Store = FileSessionStore{}
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RedirectDelay <= 0 {
		opts.RedirectDelay = 2 * time.Second
	}
	m := &appModel{opts: opts}
	m.route = ParseRoute(opts.StartPath)
	m.current = m.buildPage(m.route)
	return m
}

func (m *appModel) Init() tea.Cmd {
	return tea.Batch(m.current.Init(), m.fetchHeaderProfileCmd())
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.current.Update(msg)

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.current.Close()
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Back) && !m.current.HandlesBack() {
			return m, m.goBack()
		}

	case NavigateMsg:
		return m, m.navigate(msg.Path, true)

	case UsernameUpdatedMsg:
		m.username = msg.Name
		return m, nil

	case headerProfileMsg:
		if msg.req != m.headerReq {
			return m, nil
		}
		if msg.err != nil {
			m.opts.Logger.WithError(msg.err).Warn("header profile fetch failed")
			return m, nil
		}
		m.username = msg.user.Name
		return m, nil

	case sessionChangedMsg:
		m.opts.Session.Set(msg.session)
		m.username = ""
		return m, m.fetchHeaderProfileCmd()

	case logoutMsg:
		if err := m.opts.Store.ClearSession(); err != nil {
			m.opts.Logger.WithError(err).Warn("clear session failed")
		}
		m.opts.Session.Set(auth.Anonymous())
		m.username = ""
		m.headerReq = 0
		m.history = nil
		return m, m.navigate(PathHome, false)
	}

	return m, m.current.Update(msg)
}

func (m *appModel) View() string {
	return m.headerView() + "\n\n" + m.current.View()
}

func (m *appModel) headerView() string {
	title := titleStyle.Render("Cinema TUI")
	meta := []string{m.route.Path()}
	if m.opts.Session.IsAuthenticated() {
		if m.username != "" {
			meta = append(meta, "Signed in as "+m.username)
		} else {
			meta = append(meta, "Signed in")
		}
	} else {
		meta = append(meta, "Not signed in")
	}
	hintLine := "ctrl+c quit • esc back"
	if h := m.current.Hints(); h != "" {
		hintLine += " • " + h
	}
	return title + "\n" + hint(joinDots(meta)) + "\n" + hint(hintLine)
}

func (m *appModel) navigate(path string, push bool) tea.Cmd {
	next := ParseRoute(path)
	if push {
		m.history = append(m.history, m.route.Path())
	}
	m.current.Close()
	m.route = next
	m.current = m.buildPage(next)
	m.opts.Logger.WithField("path", next.Path()).Debug("navigate")

	cmds := []tea.Cmd{m.current.Init()}
	if m.width > 0 && m.height > 0 {
		size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return tea.Batch(cmds...)
}

func (m *appModel) goBack() tea.Cmd {
	if len(m.history) == 0 {
		if m.route.Page == pageHome {
			return nil
		}
		return m.navigate(PathHome, false)
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m.navigate(prev, false)
}

func (m *appModel) buildPage(r Route) page {
	switch r.Page {
	case pageLogin:
		return newLoginPage(m.opts.API, m.opts.Store, m.opts.Logger)
	case pageMovies:
		return newMoviesPage(m.opts.API, m.opts.Logger)
	case pageMovieDetail:
		return newMovieDetailPage(m.opts.API, r.Param, m.opts.Logger)
	case pageShow:
		return newShowPage(m.opts.API, r.Param, m.opts.Logger)
	case pageProfile:
		return newProfilePage(profileDeps{
			api:           m.opts.API,
			session:       m.opts.Session,
			logger:        m.opts.Logger,
			now:           m.opts.Now,
			redirectDelay: m.opts.RedirectDelay,
		})
	default:
		return newHomePage(m.opts.Session)
	}
}

func (m *appModel) fetchHeaderProfileCmd() tea.Cmd {
	if !m.opts.Session.IsAuthenticated() || m.opts.API == nil {
		return nil
	}
	req := nextRequestID()
	m.headerReq = req
	api := m.opts.API
	return func() tea.Msg {
		user, err := api.GetProfile(context.Background())
		return headerProfileMsg{req: req, user: user, err: err}
	}
}
