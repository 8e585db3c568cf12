package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"cinema-tui/auth"
	"cinema-tui/model"
	"cinema-tui/profile"
)

const (
	flashDuration = 3 * time.Second
	gateNotice    = "You need to login to view this page"
	updateSuccess = "Update successfully"
)

const emptyTicketArt = `  ______________________
 |                      |
 |   ADMIT   ONE    *   |
 |______________________|`

type profileMode int

const (
	modeViewing profileMode = iota
	modeEditing
)

type profileDeps struct {
	api           ProfileAPI
	session       *auth.Holder
	logger        logrus.FieldLogger
	now           func() time.Time
	redirectDelay time.Duration
}

type profilePage struct {
	deps   profileDeps
	ctx    context.Context
	cancel context.CancelFunc

	gated   bool
	gateReq uint64

	user           *model.User
	profileReq     uint64
	profileLoading bool
	profileErr     error

	history        profile.History
	ticketsReq     uint64
	ticketsLoading bool
	ticketsLoaded  bool
	ticketsErr     error
	cursor         int

	emailVis profile.Visibility
	phoneVis profile.Visibility

	mode    profileMode
	form    profileForm
	saveReq uint64
	saving  bool
	saveErr error

	flash   string
	flashID uint64

	spinner spinner.Model
	width   int
}

type profileLoadedMsg struct {
	req  uint64
	user model.User
	err  error
}

type ticketsLoadedMsg struct {
	req     uint64
	tickets []model.Ticket
	err     error
}

type profileSavedMsg struct {
	req    uint64
	update model.ProfileUpdate
	err    error
}

type flashExpiredMsg struct {
	id uint64
}

type gateExpiredMsg struct {
	req uint64
}

func newProfilePage(deps profileDeps) *profilePage {
	if deps.logger == nil {
		deps.logger = logrus.StandardLogger()
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &profilePage{
		deps:    deps,
		ctx:     ctx,
		cancel:  cancel,
		spinner: newSpinner(),
	}
}

func (p *profilePage) Init() tea.Cmd {
	if !p.deps.session.IsAuthenticated() {
		p.gated = true
		p.gateReq = nextRequestID()
		return redirectAfter(p.deps.redirectDelay, p.gateReq)
	}
	return tea.Batch(p.loadProfileCmd(), p.loadTicketsCmd(), p.spinner.Tick)
}

// redirectAfter fires gateExpiredMsg once delay has elapsed.
func redirectAfter(delay time.Duration, req uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return gateExpiredMsg{req: req}
	})
}

func (p *profilePage) Close() {
	p.cancel()
}

func (p *profilePage) HandlesBack() bool {
	return p.mode == modeEditing
}

func (p *profilePage) Hints() string {
	switch {
	case p.gated:
		return ""
	case p.mode == modeEditing:
		return "tab next field • ←/→ gender • enter save • esc cancel"
	}
	return hints(keys.Edit, keys.ToggleEmail, keys.TogglePhone, keys.Reload) + " • j/k tickets • enter open"
}

func (p *profilePage) loading() bool {
	return p.profileLoading || p.ticketsLoading || p.saving
}

func (p *profilePage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		return nil

	case gateExpiredMsg:
		if p.gated && msg.req == p.gateReq {
			return navigate(PathLogin)
		}
		return nil

	case spinner.TickMsg:
		if !p.loading() {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd

	case profileLoadedMsg:
		if msg.req != p.profileReq {
			return nil
		}
		p.profileLoading = false
		if msg.err != nil {
			p.profileErr = msg.err
			p.deps.logger.WithError(msg.err).Warn("profile fetch failed")
			return nil
		}
		user := msg.user
		p.user = &user
		p.profileErr = nil
		return nil

	case ticketsLoadedMsg:
		if msg.req != p.ticketsReq {
			return nil
		}
		p.ticketsLoading = false
		if msg.err != nil {
			p.ticketsErr = msg.err
			p.deps.logger.WithError(msg.err).Warn("ticket history fetch failed")
			return nil
		}
		p.history = profile.DeriveHistory(msg.tickets)
		p.ticketsLoaded = true
		p.ticketsErr = nil
		if p.cursor >= p.history.Len() {
			p.cursor = max(0, p.history.Len()-1)
		}
		return nil

	case profileSavedMsg:
		if msg.req != p.saveReq {
			return nil
		}
		p.saving = false
		if msg.err != nil {
			p.saveErr = msg.err
			p.mode = modeEditing
			p.deps.logger.WithError(msg.err).Error("profile update failed")
			return p.form.setFocus(p.form.focus)
		}
		p.saveErr = nil
		p.form = profileForm{}
		p.flashID = nextRequestID()
		p.flash = updateSuccess
		p.deps.logger.WithField("name", msg.update.Name).Info("profile updated")
		return tea.Batch(
			usernameUpdated(msg.update.Name),
			p.loadProfileCmd(),
			flashAfter(flashDuration, p.flashID),
			p.spinner.Tick,
		)

	case flashExpiredMsg:
		if msg.id == p.flashID {
			p.flash = ""
		}
		return nil

	case tea.KeyMsg:
		if p.gated {
			return nil
		}
		if p.mode == modeEditing {
			return p.updateEditing(msg)
		}
		return p.updateViewing(msg)
	}

	if p.mode == modeEditing {
		return p.form.update(msg, p.deps.now())
	}
	return nil
}

func (p *profilePage) updateViewing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Edit):
		if p.user == nil || p.saving {
			return nil
		}
		p.mode = modeEditing
		p.form = newProfileForm(*p.user)
		p.saveErr = nil
		return p.form.setFocus(fieldName)
	case key.Matches(msg, keys.ToggleEmail):
		p.emailVis = p.emailVis.Toggle()
	case key.Matches(msg, keys.TogglePhone):
		p.phoneVis = p.phoneVis.Toggle()
	case key.Matches(msg, keys.Reload):
		return tea.Batch(p.loadProfileCmd(), p.loadTicketsCmd(), p.spinner.Tick)
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < p.history.Len()-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.Select):
		return p.openSelected()
	}
	return nil
}

func (p *profilePage) openSelected() tea.Cmd {
	if p.history.Empty() {
		if p.ticketsLoaded {
			return navigate(PathHome)
		}
		return nil
	}
	show := p.history.Shows[p.cursor]
	if show.Id == 0 {
		return nil
	}
	return navigate(ShowPath(show.Id.String()))
}

func (p *profilePage) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		p.mode = modeViewing
		p.form = profileForm{}
		return nil
	case key.Matches(msg, keys.Save):
		return p.submit()
	}
	return p.form.update(msg, p.deps.now())
}

// submit validates the form and sends the update. A validation failure stays
// in editing mode and makes no request.
func (p *profilePage) submit() tea.Cmd {
	if p.user == nil || p.saving {
		return nil
	}
	update, err := p.form.prepare(*p.user, p.deps.now())
	if err != nil {
		var vErr *profile.ValidationError
		if errors.As(err, &vErr) {
			p.form.alert = vErr.Message
		} else {
			p.form.alert = err.Error()
		}
		return nil
	}

	p.mode = modeViewing
	p.saving = true
	p.saveErr = nil
	p.flash = ""
	req := nextRequestID()
	p.saveReq = req
	ctx, api := p.ctx, p.deps.api
	return tea.Batch(func() tea.Msg {
		err := api.UpdateProfile(ctx, update)
		return profileSavedMsg{req: req, update: update, err: err}
	}, p.spinner.Tick)
}

func (p *profilePage) loadProfileCmd() tea.Cmd {
	req := nextRequestID()
	p.profileReq = req
	p.profileLoading = true
	ctx, api := p.ctx, p.deps.api
	return func() tea.Msg {
		user, err := api.GetProfile(ctx)
		return profileLoadedMsg{req: req, user: user, err: err}
	}
}

func (p *profilePage) loadTicketsCmd() tea.Cmd {
	req := nextRequestID()
	p.ticketsReq = req
	p.ticketsLoading = true
	ctx, api := p.ctx, p.deps.api
	return func() tea.Msg {
		tickets, err := api.GetTicketsForUser(ctx)
		return ticketsLoadedMsg{req: req, tickets: tickets, err: err}
	}
}

func flashAfter(d time.Duration, id uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

func (p *profilePage) View() string {
	if p.gated {
		return gateNotice + "\n\n" + hint(fmt.Sprintf("Redirecting to %s...", PathLogin))
	}
	return p.userInfoView() + "\n" + p.ticketsView()
}

func (p *profilePage) userInfoView() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Profile"))
	b.WriteString("\n")

	if p.flash != "" {
		b.WriteString(successStyle.Render(p.flash) + "\n")
	}
	if p.saving {
		b.WriteString(p.spinner.View() + " Saving profile\n")
	}
	if p.saveErr != nil {
		b.WriteString(serviceError("update failed", p.saveErr) + "\n")
	}
	if p.profileErr != nil {
		b.WriteString(serviceError("could not load profile", p.profileErr) + " " + hint("(r to retry)") + "\n")
	}

	if p.user == nil {
		if p.profileLoading {
			b.WriteString(p.spinner.View() + " Loading profile\n")
		}
		return b.String()
	}

	if p.mode == modeEditing {
		b.WriteString("\n" + p.form.View())
		return b.String()
	}

	u := p.user
	b.WriteString("\n")
	b.WriteString(profileRow("Username:", u.Name, ""))
	b.WriteString(profileRow("Email:", profile.DisplayEmail(u.Email, p.emailVis), visibilityHint(u.Email, p.emailVis, "e")))
	b.WriteString(profileRow("Phone number:", profile.DisplayPhone(u.Phone, p.phoneVis), visibilityHint(u.Phone, p.phoneVis, "p")))
	b.WriteString(profileRow("Date of birth:", profile.OrPlaceholder(profile.FormatDate(u.DateOfBirth)), ""))
	b.WriteString(profileRow("Gender:", profile.OrPlaceholder(u.Gender), ""))
	return b.String()
}

func profileRow(label string, value string, suffix string) string {
	if value == profile.Placeholder {
		value = placeholderText.Render(value)
	}
	row := labelStyle.Render(label) + value
	if suffix != "" {
		row += "  " + hint(suffix)
	}
	return row + "\n"
}

func visibilityHint(value string, v profile.Visibility, k string) string {
	if value == "" {
		return ""
	}
	if v.Shown() {
		return "[" + k + "] hide"
	}
	return "[" + k + "] show"
}

func (p *profilePage) ticketsView() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Tickets"))
	b.WriteString("\n")

	if p.ticketsErr != nil {
		b.WriteString(serviceError("could not load tickets", p.ticketsErr) + " " + hint("(r to retry)") + "\n")
	}
	if !p.ticketsLoaded {
		if p.ticketsLoading {
			b.WriteString(p.spinner.View() + " Loading tickets\n")
		}
		return b.String()
	}
	if p.history.Empty() {
		b.WriteString(emptyTicketArt + "\n\n")
		b.WriteString(placeholderText.Render("You haven't bought any tickets yet. Maybe start your journey here!"))
		b.WriteString("\n" + hint("enter: start booking") + "\n")
		return b.String()
	}

	for i, row := range p.history.Rows() {
		b.WriteString(ticketCard(row, i == p.cursor, p.width))
		b.WriteString("\n")
	}
	b.WriteString(hint(fmt.Sprintf("%d tickets • total %s", p.history.Len(), profile.FormatPrice(p.history.Total()))))
	b.WriteString("\n")
	return b.String()
}

func ticketCard(row profile.TicketRow, selected bool, width int) string {
	colWidth := 28
	if width > 0 {
		colWidth = max(20, min(36, (width-8)/3))
	}
	col := lipgloss.NewStyle().Width(colWidth)

	movie := []string{titleStyle.Render(orDash(row.Movie.Title))}
	if row.Movie.Rated != "" {
		movie = append(movie, row.Movie.Rated)
	}
	if row.Movie.Poster != "" {
		movie = append(movie, hint(row.Movie.Poster))
	}

	date := profile.FormatDate(row.Show.Date)
	if date == "" {
		date = row.Show.Date
	}
	when := strings.TrimSpace(date + " " + profile.FormatTimeRange(row.Show.StartTime, row.Show.EndTime))
	venue := []string{orDash(row.Show.CinemaName()), orDash(row.Show.AuditoriumName()), orDash(when)}

	purchase := []string{
		fmt.Sprintf("Seat: %d", row.Ticket.SeatNumber),
		"Total: " + profile.FormatPrice(row.Price),
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		col.Render(strings.Join(movie, "\n")),
		col.Render(strings.Join(venue, "\n")),
		col.Render(strings.Join(purchase, "\n")),
	)
	if selected {
		return selectedCardStyle.Render(body)
	}
	return cardStyle.Render(body)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
