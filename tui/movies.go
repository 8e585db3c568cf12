package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"cinema-tui/model"
	"cinema-tui/profile"
)

type movieItem struct {
	movie model.Movie
}

func (m movieItem) Title() string {
	if m.movie.Year > 0 {
		return fmt.Sprintf("%s (%d)", m.movie.Title, m.movie.Year)
	}
	return m.movie.Title
}

func (m movieItem) Description() string {
	parts := []string{}
	if m.movie.Rated != "" {
		parts = append(parts, m.movie.Rated)
	}
	if m.movie.Runtime > 0 {
		parts = append(parts, fmt.Sprintf("%d min", m.movie.Runtime))
	}
	if m.movie.ImdbRating > 0 {
		parts = append(parts, fmt.Sprintf("IMDb %.1f", m.movie.ImdbRating))
	}
	return joinDots(parts)
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{m.movie.Title, m.movie.OriginalTitle, m.movie.Rated}, " "))
}

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

func newSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	return sp
}

type moviesPage struct {
	api    API
	logger logrus.FieldLogger
	ctx    context.Context
	cancel context.CancelFunc

	list    list.Model
	req     uint64
	loading bool
	err     error
	spinner spinner.Model
}

type moviesMsg struct {
	req    uint64
	movies []model.Movie
	err    error
}

func newMoviesPage(api API, logger logrus.FieldLogger) *moviesPage {
	ctx, cancel := context.WithCancel(context.Background())
	return &moviesPage{
		api:     api,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		list:    newList("Movies"),
		spinner: newSpinner(),
	}
}

func (m *moviesPage) Init() tea.Cmd {
	return tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
}

func (m *moviesPage) Close() { m.cancel() }

func (m *moviesPage) HandlesBack() bool {
	return m.list.SettingFilter() || m.list.IsFiltered()
}

func (m *moviesPage) Hints() string { return "type to filter • enter details" }

func (m *moviesPage) fetchMoviesCmd() tea.Cmd {
	req := nextRequestID()
	m.req = req
	m.loading = true
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		movies, err := api.ListMovies(ctx)
		return moviesMsg{req: req, movies: movies, err: err}
	}
}

func (m *moviesPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, max(6, msg.Height-6))
		return nil
	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case moviesMsg:
		if msg.req != m.req {
			return nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.logger.WithError(msg.err).Warn("movie list fetch failed")
			return nil
		}
		m.err = nil
		m.list.SetItems(buildMovieItems(msg.movies))
		return nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Back) {
			m.list.ResetFilter()
			return nil
		}
		if key.Matches(msg, keys.Select) {
			item, ok := m.list.SelectedItem().(movieItem)
			if !ok || item.movie.ImdbID == "" {
				return nil
			}
			return navigate(MoviePath(item.movie.ImdbID))
		}
		if m.handleFilterInput(msg) {
			return nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *moviesPage) handleFilterInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.list.SetFilterText(m.list.FilterValue() + string(msg.Runes))
		return true
	case tea.KeySpace:
		m.list.SetFilterText(m.list.FilterValue() + " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		value := m.list.FilterValue()
		if value == "" {
			return false
		}
		if value = trimLastRune(value); value == "" {
			m.list.ResetFilter()
			return true
		}
		m.list.SetFilterText(value)
		return true
	default:
		return false
	}
}

func (m *moviesPage) View() string {
	if m.loading && len(m.list.Items()) == 0 {
		return fmt.Sprintf("%s Loading movies\n\n%s", m.spinner.View(), hint("Fetching data..."))
	}
	view := m.list.View()
	if filter := m.list.FilterValue(); filter != "" {
		view = hint("Filter: "+filter) + "\n" + view
	}
	if m.err != nil {
		view = serviceError("could not load movies", m.err) + "\n\n" + view
	}
	return view
}

type movieDetailPage struct {
	api    API
	imdbID string
	logger logrus.FieldLogger
	ctx    context.Context
	cancel context.CancelFunc

	movie   *model.Movie
	req     uint64
	loading bool
	err     error
	spinner spinner.Model
}

type movieDetailMsg struct {
	req   uint64
	movie model.Movie
	err   error
}

func newMovieDetailPage(api API, imdbID string, logger logrus.FieldLogger) *movieDetailPage {
	ctx, cancel := context.WithCancel(context.Background())
	return &movieDetailPage{api: api, imdbID: imdbID, logger: logger, ctx: ctx, cancel: cancel, spinner: newSpinner()}
}

func (d *movieDetailPage) Init() tea.Cmd {
	req := nextRequestID()
	d.req = req
	d.loading = true
	ctx, api, id := d.ctx, d.api, d.imdbID
	return tea.Batch(func() tea.Msg {
		movie, err := api.GetMovie(ctx, id)
		return movieDetailMsg{req: req, movie: movie, err: err}
	}, d.spinner.Tick)
}

func (d *movieDetailPage) Close()            { d.cancel() }
func (d *movieDetailPage) HandlesBack() bool { return false }
func (d *movieDetailPage) Hints() string     { return "" }

func (d *movieDetailPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !d.loading {
			return nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return cmd
	case movieDetailMsg:
		if msg.req != d.req {
			return nil
		}
		d.loading = false
		if msg.err != nil {
			d.err = msg.err
			d.logger.WithError(msg.err).WithField("imdb_id", d.imdbID).Warn("movie fetch failed")
			return nil
		}
		movie := msg.movie
		d.movie = &movie
	}
	return nil
}

func (d *movieDetailPage) View() string {
	if d.err != nil {
		return serviceError("could not load movie", d.err)
	}
	if d.movie == nil {
		return d.spinner.View() + " Loading movie"
	}
	m := d.movie
	var b strings.Builder
	title := m.Title
	if m.Year > 0 {
		title = fmt.Sprintf("%s (%d)", m.Title, m.Year)
	}
	b.WriteString(sectionStyle.Render(title) + "\n\n")
	b.WriteString(labelStyle.Render("Rated") + profile.OrPlaceholder(m.Rated) + "\n")
	if m.Runtime > 0 {
		b.WriteString(labelStyle.Render("Runtime") + fmt.Sprintf("%d min", m.Runtime) + "\n")
	}
	if m.ImdbRating > 0 {
		b.WriteString(labelStyle.Render("IMDb") + fmt.Sprintf("%.1f", m.ImdbRating) + "\n")
	}
	if genres := genreNames(m.Genres); genres != "" {
		b.WriteString(labelStyle.Render("Genres") + genres + "\n")
	}
	if m.Poster != "" {
		b.WriteString(labelStyle.Render("Poster") + hint(m.Poster) + "\n")
	}
	if m.Plot != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Width(72).Render(m.Plot) + "\n")
	}
	return b.String()
}

func genreNames(genres []*model.Genre) string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		if g != nil && g.Name != "" {
			names = append(names, g.Name)
		}
	}
	return strings.Join(names, ", ")
}
