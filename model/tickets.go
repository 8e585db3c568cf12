package model

type Ticket struct {
	Id         string `json:"id"`
	SeatNumber int    `json:"seat_number"`
	Status     string `json:"status"`
	Show       *Show  `json:"show"`
}

// ShowOrZero returns the embedded show, or a zero Show when the API omitted it.
func (t Ticket) ShowOrZero() Show {
	if t.Show == nil {
		return Show{}
	}
	return *t.Show
}

type Movie struct {
	ImdbID        string   `json:"imdbID"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"originalTitle"`
	Poster        string   `json:"poster"`
	Rated         string   `json:"rated"`
	Plot          string   `json:"plot"`
	Runtime       int      `json:"runtime"`
	Year          int      `json:"year"`
	ImdbRating    float64  `json:"imdbRating"`
	Genres        []*Genre `json:"genres"`
}

type Genre struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}
