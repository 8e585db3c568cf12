package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"cinema-tui/auth"
	"cinema-tui/model"
	"cinema-tui/profile"
)

var errNotLoggedIn = errors.New(`you need to login to view this page (run "cinema-tui login")`)

func newProfileCommand(flags *rootFlags) *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(flags)
			if err != nil {
				return err
			}
			defer e.Close()
			if !e.session.IsAuthenticated() {
				return errNotLoggedIn
			}

			user, err := e.client.GetProfile(context.Background())
			if err != nil {
				e.logger.WithError(err).Warn("profile fetch failed")
				return fmt.Errorf("fetch profile: %w", err)
			}
			renderProfile(cmd.OutOrStdout(), user, e.session.Session(), reveal)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "show email and phone unmasked")
	return cmd
}

func newTicketsCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tickets",
		Short: "List your tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(flags)
			if err != nil {
				return err
			}
			defer e.Close()
			if !e.session.IsAuthenticated() {
				return errNotLoggedIn
			}

			tickets, err := e.client.GetTicketsForUser(context.Background())
			if err != nil {
				e.logger.WithError(err).Warn("ticket history fetch failed")
				return fmt.Errorf("fetch tickets: %w", err)
			}
			renderTickets(cmd.OutOrStdout(), profile.DeriveHistory(tickets))
			return nil
		},
		SilenceUsage: true,
	}
}

func renderProfile(out io.Writer, user model.User, session *auth.Session, reveal bool) {
	var email, phone profile.Visibility
	if reveal {
		email, phone = email.Toggle(), phone.Toggle()
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("Profile")
	t.AppendRows([]table.Row{
		{"Username", profile.OrPlaceholder(user.Name)},
		{"Email", profile.DisplayEmail(user.Email, email)},
		{"Phone number", profile.DisplayPhone(user.Phone, phone)},
		{"Date of birth", profile.OrPlaceholder(profile.FormatDate(user.DateOfBirth))},
		{"Gender", profile.OrPlaceholder(user.Gender)},
	})
	if expires := session.ExpiresAt(); !expires.IsZero() {
		t.AppendSeparator()
		t.AppendRow(table.Row{"Session expires", expires.Local().Format(time.DateTime)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: text.Colors{text.Bold}},
	})
	t.Render()
}

func renderTickets(out io.Writer, history profile.History) {
	if history.Empty() {
		fmt.Fprintln(out, "You haven't bought any tickets yet. Maybe start your journey with \"cinema-tui\"!")
		return
	}

	rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Movie", "Cinema", "Auditorium", "Date", "Time", "Seat", "Total"}, rowConfigAutoMerge)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true, WidthMax: 24},
		{Number: 2, AutoMerge: true},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	for _, row := range history.Rows() {
		date := profile.FormatDate(row.Show.Date)
		if date == "" {
			date = row.Show.Date
		}
		t.AppendRow(table.Row{
			orDash(row.Movie.Title),
			orDash(row.Show.CinemaName()),
			orDash(row.Show.AuditoriumName()),
			orDash(date),
			orDash(profile.FormatTimeRange(row.Show.StartTime, row.Show.EndTime)),
			row.Ticket.SeatNumber,
			profile.FormatPrice(row.Price),
		}, rowConfigAutoMerge)
	}
	t.AppendFooter(table.Row{"", "", "", "", "", fmt.Sprintf("%d tickets", history.Len()), profile.FormatPrice(history.Total())})
	t.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
