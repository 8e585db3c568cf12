package mockapi

import "cinema-tui/model"

// Account is a user the mock backend accepts logins for.
type Account struct {
	Password string
	User     model.User
}

// Fixtures is the in-memory data served by the mock backend. Tickets are
// keyed by user id.
type Fixtures struct {
	Accounts []Account
	Movies   []model.Movie
	Shows    []model.Show
	Tickets  map[string][]model.Ticket
}

// DefaultFixtures returns a small data set for local demos: one user with two
// tickets and one user without any.
func DefaultFixtures() Fixtures {
	downtown := &model.Cinema{Id: "c1", Name: "Downtown Cinema"}
	hall1 := &model.Auditorium{Id: "a1", Name: "Hall 1", Seats: 120, Cinema: downtown}
	hall2 := &model.Auditorium{Id: "a2", Name: "Hall 2", Seats: 80, Cinema: downtown}

	drama := &model.Genre{Id: "g1", Name: "Drama"}
	scifi := &model.Genre{Id: "g2", Name: "Sci-Fi"}
	comedy := &model.Genre{Id: "g3", Name: "Comedy"}

	movies := []model.Movie{
		{
			ImdbID:     "tt15398776",
			Title:      "Oppenheimer",
			Rated:      "R",
			Plot:       "The story of J. Robert Oppenheimer and the Manhattan Project.",
			Runtime:    180,
			Year:       2023,
			ImdbRating: 8.3,
			Genres:     []*model.Genre{drama},
		},
		{
			ImdbID:     "tt1517268",
			Title:      "Barbie",
			Rated:      "PG-13",
			Plot:       "Barbie and Ken leave Barbieland for the real world.",
			Runtime:    114,
			Year:       2023,
			ImdbRating: 6.8,
			Genres:     []*model.Genre{comedy},
		},
		{
			ImdbID:     "tt15239678",
			Title:      "Dune: Part Two",
			Rated:      "PG-13",
			Plot:       "Paul Atreides unites with the Fremen.",
			Runtime:    166,
			Year:       2024,
			ImdbRating: 8.5,
			Genres:     []*model.Genre{scifi, drama},
		},
	}

	shows := []model.Show{
		{Id: 1, Date: "2024-03-02", StartTime: "19:30:00", EndTime: "22:30:00", ImdbID: movies[0].ImdbID, Auditorium: hall1, Movie: &movies[0]},
		{Id: 2, Date: "2024-03-01", StartTime: "18:00:00", EndTime: "19:54:00", ImdbID: movies[1].ImdbID, Auditorium: hall2, Movie: &movies[1]},
		{Id: 3, Date: "2024-03-09", StartTime: "20:00:00", EndTime: "22:46:00", ImdbID: movies[2].ImdbID, Auditorium: hall1, Movie: &movies[2]},
	}

	return Fixtures{
		Accounts: []Account{
			{
				Password: "password",
				User: model.User{
					Id:          "u1",
					Name:        "Demo User",
					Gender:      string(model.GenderOther),
					Email:       "demo@cinema.local",
					DateOfBirth: "1995-08-21",
					Phone:       "0901234567",
					Role:        "user",
					Status:      "active",
				},
			},
			{
				Password: "password",
				User: model.User{
					Id:     "u2",
					Name:   "New User",
					Email:  "new@cinema.local",
					Role:   "user",
					Status: "active",
				},
			},
		},
		Movies: movies,
		Shows:  shows,
		Tickets: map[string][]model.Ticket{
			"u1": {
				{Id: "t2", SeatNumber: 14, Status: "paid", Show: &shows[0]},
				{Id: "t1", SeatNumber: 3, Status: "paid", Show: &shows[1]},
			},
		},
	}
}
