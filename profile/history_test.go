package profile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cinema-tui/model"
)

func ticket(id string, date string, showID model.NumericID, seat int) model.Ticket {
	return model.Ticket{
		Id:         id,
		SeatNumber: seat,
		Show: &model.Show{
			Id:   showID,
			Date: date,
			Movie: &model.Movie{
				ImdbID: "tt-" + id,
				Title:  "Movie " + id,
			},
		},
	}
}

func TestSortTickets(t *testing.T) {
	tickets := []model.Ticket{
		ticket("a", "2024-05-02", 1, 3),
		ticket("b", "2024-05-01", 2, 1),
		ticket("c", "2024-05-01", 1, 2),
	}

	sorted := SortTickets(tickets)

	ids := []string{sorted[0].Id, sorted[1].Id, sorted[2].Id}
	require.Equal(t, []string{"c", "b", "a"}, ids)
	require.Equal(t, "a", tickets[0].Id, "input must not be reordered")
}

func TestSortTickets_ChronologicalNotLexical(t *testing.T) {
	tickets := []model.Ticket{
		ticket("undated", "soon", 1, 1),
		ticket("utc", "2024-12-01T02:00:00Z", 1, 1),
		ticket("zoned", "2024-12-01T08:00:00+07:00", 1, 1),
	}

	sorted := SortTickets(tickets)
	require.Equal(t, "zoned", sorted[0].Id, "01:00 UTC sorts before 02:00 UTC")
	require.Equal(t, "utc", sorted[1].Id)
	require.Equal(t, "undated", sorted[2].Id)
}

func TestSortTickets_NumericShowIDs(t *testing.T) {
	tickets := []model.Ticket{
		ticket("ten", "2024-05-01", 10, 1),
		ticket("nine", "2024-05-01", 9, 1),
	}
	sorted := SortTickets(tickets)
	require.Equal(t, "nine", sorted[0].Id)
}

func TestDeriveHistory_Aligned(t *testing.T) {
	tickets := []model.Ticket{
		ticket("a", "2024-05-02", 1, 3),
		ticket("b", "2024-05-01", 2, 1),
		{Id: "no-show", SeatNumber: 9},
	}

	h := DeriveHistory(tickets)
	require.Equal(t, 3, h.Len())
	require.Len(t, h.Shows, 3)
	require.Len(t, h.Movies, 3)

	for i, row := range h.Rows() {
		require.Equal(t, h.Tickets[i].Id, row.Ticket.Id)
		if row.Ticket.Show == nil {
			require.Empty(t, row.Movie.Title)
			continue
		}
		require.Equal(t, row.Ticket.Show.Id, row.Show.Id)
		require.Equal(t, "Movie "+row.Ticket.Id, row.Movie.Title)
		require.True(t, row.Price.Equal(TicketPrice))
	}
}

func TestDeriveHistory_RepeatedDerivationIsIdempotent(t *testing.T) {
	tickets := []model.Ticket{ticket("a", "2024-05-02", 1, 3), ticket("b", "2024-05-01", 2, 1)}

	first := DeriveHistory(tickets)
	second := DeriveHistory(tickets)
	require.Equal(t, first, second)
	require.Len(t, second.Movies, 2)
}

func TestDeriveHistory_Empty(t *testing.T) {
	h := DeriveHistory(nil)
	require.True(t, h.Empty())
	require.Empty(t, h.Rows())
	require.True(t, h.Total().IsZero())
}
