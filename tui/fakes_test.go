package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"cinema-tui/auth"
	"cinema-tui/model"
)

type fakeAPI struct {
	mu sync.Mutex

	user       model.User
	profileErr error
	tickets    []model.Ticket
	ticketsErr error
	updateErr  error
	updates    []model.ProfileUpdate

	account  model.Account
	loginErr error
	logins   []model.Credential

	movies []model.Movie
	movie  model.Movie
	show   model.Show
}

func (f *fakeAPI) GetProfile(ctx context.Context) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user, f.profileErr
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, update model.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, update)
	if f.updateErr != nil {
		return f.updateErr
	}
	f.user.Name = update.Name
	f.user.Phone = update.Phone
	f.user.DateOfBirth = update.DateOfBirth
	f.user.Gender = update.Gender
	return nil
}

func (f *fakeAPI) GetTicketsForUser(ctx context.Context) ([]model.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickets, f.ticketsErr
}

func (f *fakeAPI) Login(ctx context.Context, cred model.Credential) (model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, cred)
	return f.account, f.loginErr
}

func (f *fakeAPI) ListMovies(ctx context.Context) ([]model.Movie, error) {
	return f.movies, nil
}

func (f *fakeAPI) GetMovie(ctx context.Context, imdbID string) (model.Movie, error) {
	if f.movie.ImdbID != imdbID {
		return model.Movie{}, errors.New("not found")
	}
	return f.movie, nil
}

func (f *fakeAPI) GetShow(ctx context.Context, showID string) (model.Show, error) {
	if f.show.Id.String() != showID {
		return model.Show{}, errors.New("not found")
	}
	return f.show, nil
}

func (f *fakeAPI) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

type fakeStore struct {
	saved   []model.Account
	cleared int
	recent  []string
}

func (s *fakeStore) SaveSession(account model.Account) error {
	s.saved = append(s.saved, account)
	return nil
}

func (s *fakeStore) ClearSession() error {
	s.cleared++
	return nil
}

func (s *fakeStore) RememberLogin(email string) error {
	s.recent = append([]string{email}, s.recent...)
	return nil
}

func (s *fakeStore) LoadRecentLogins() ([]string, error) {
	return s.recent, nil
}

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func signedIn() *auth.Holder {
	return auth.NewHolder(auth.NewSession(model.Account{Token: "token-1"}, testNow))
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collectMsgs runs cmd and any batched commands it expands to. Only use it on
// commands that resolve immediately.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
