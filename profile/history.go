package profile

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"cinema-tui/model"
)

// History is the ticket list derived from one fetch result. Tickets, Shows and
// Movies are index aligned: element i of each describes the same purchase.
type History struct {
	Tickets []model.Ticket
	Shows   []model.Show
	Movies  []model.Movie
}

// TicketRow is one aligned entry of a History.
type TicketRow struct {
	Ticket model.Ticket
	Show   model.Show
	Movie  model.Movie
	Price  decimal.Decimal
}

// DeriveHistory sorts tickets and builds all three sequences in one pass. The
// input slice is not modified.
func DeriveHistory(tickets []model.Ticket) History {
	sorted := SortTickets(tickets)
	h := History{
		Tickets: sorted,
		Shows:   make([]model.Show, len(sorted)),
		Movies:  make([]model.Movie, len(sorted)),
	}
	for i, t := range sorted {
		show := t.ShowOrZero()
		h.Shows[i] = show
		if show.Movie != nil {
			h.Movies[i] = *show.Movie
		}
	}
	return h
}

func (h History) Len() int { return len(h.Tickets) }

func (h History) Empty() bool { return len(h.Tickets) == 0 }

func (h History) Rows() []TicketRow {
	rows := make([]TicketRow, h.Len())
	for i := range h.Tickets {
		rows[i] = TicketRow{
			Ticket: h.Tickets[i],
			Show:   h.Shows[i],
			Movie:  h.Movies[i],
			Price:  TicketPrice,
		}
	}
	return rows
}

// Total is the sum of all ticket prices.
func (h History) Total() decimal.Decimal {
	return TicketPrice.Mul(decimal.NewFromInt(int64(h.Len())))
}

// SortTickets returns a copy ordered by show date, then show id, then seat
// number. Shows with an unparseable date sort after dated ones.
func SortTickets(tickets []model.Ticket) []model.Ticket {
	sorted := slices.Clone(tickets)
	slices.SortStableFunc(sorted, compareTickets)
	return sorted
}

func compareTickets(a, b model.Ticket) int {
	sa, sb := a.ShowOrZero(), b.ShowOrZero()
	if c := compareShowDates(sa.Date, sb.Date); c != 0 {
		return c
	}
	if c := cmp.Compare(sa.Id, sb.Id); c != 0 {
		return c
	}
	return cmp.Compare(a.SeatNumber, b.SeatNumber)
}

func compareShowDates(a, b string) int {
	ta, okA := ParseDate(a, time.UTC)
	tb, okB := ParseDate(b, time.UTC)
	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}
