package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"cinema-tui/model"
	"cinema-tui/profile"
)

type showPage struct {
	api    API
	showID string
	logger logrus.FieldLogger
	ctx    context.Context
	cancel context.CancelFunc

	show    *model.Show
	req     uint64
	loading bool
	err     error
	spinner spinner.Model
}

type showMsg struct {
	req  uint64
	show model.Show
	err  error
}

func newShowPage(api API, showID string, logger logrus.FieldLogger) *showPage {
	ctx, cancel := context.WithCancel(context.Background())
	return &showPage{api: api, showID: showID, logger: logger, ctx: ctx, cancel: cancel, spinner: newSpinner()}
}

func (s *showPage) Init() tea.Cmd {
	req := nextRequestID()
	s.req = req
	s.loading = true
	ctx, api, id := s.ctx, s.api, s.showID
	return tea.Batch(func() tea.Msg {
		show, err := api.GetShow(ctx, id)
		return showMsg{req: req, show: show, err: err}
	}, s.spinner.Tick)
}

func (s *showPage) Close()            { s.cancel() }
func (s *showPage) HandlesBack() bool { return false }

func (s *showPage) Hints() string {
	if s.show != nil && s.show.Movie != nil && s.show.Movie.ImdbID != "" {
		return "enter movie details"
	}
	return ""
}

func (s *showPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.loading {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	case showMsg:
		if msg.req != s.req {
			return nil
		}
		s.loading = false
		if msg.err != nil {
			s.err = msg.err
			s.logger.WithError(msg.err).WithField("show_id", s.showID).Warn("show fetch failed")
			return nil
		}
		show := msg.show
		s.show = &show
	case tea.KeyMsg:
		if key.Matches(msg, keys.Select) && s.show != nil && s.show.Movie != nil && s.show.Movie.ImdbID != "" {
			return navigate(MoviePath(s.show.Movie.ImdbID))
		}
	}
	return nil
}

func (s *showPage) View() string {
	if s.err != nil {
		return serviceError("could not load show", s.err)
	}
	if s.show == nil {
		return s.spinner.View() + " Loading show"
	}
	show := s.show
	title := "Show " + show.Id.String()
	if show.Movie != nil && show.Movie.Title != "" {
		title = show.Movie.Title
	}
	var b strings.Builder
	b.WriteString(sectionStyle.Render(title) + "\n\n")
	b.WriteString(labelStyle.Render("Cinema") + profile.OrPlaceholder(show.CinemaName()) + "\n")
	b.WriteString(labelStyle.Render("Auditorium") + profile.OrPlaceholder(show.AuditoriumName()) + "\n")
	date := profile.FormatDate(show.Date)
	if date == "" {
		date = show.Date
	}
	b.WriteString(labelStyle.Render("Date") + profile.OrPlaceholder(date) + "\n")
	b.WriteString(labelStyle.Render("Time") + profile.OrPlaceholder(profile.FormatTimeRange(show.StartTime, show.EndTime)) + "\n")
	b.WriteString("\n" + hint("Seat selection is available on the web."))
	return b.String()
}
