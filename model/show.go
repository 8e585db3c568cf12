package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type Cinema struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type Auditorium struct {
	Id     string  `json:"id"`
	Name   string  `json:"name"`
	Seats  int     `json:"seats"`
	Cinema *Cinema `json:"cinema"`
}

type Show struct {
	Id         NumericID   `json:"id"`
	Date       string      `json:"date"`
	StartTime  string      `json:"startTime"`
	EndTime    string      `json:"endTime"`
	ImdbID     string      `json:"imdbID"`
	Auditorium *Auditorium `json:"auditorium"`
	Movie      *Movie      `json:"movie"`
}

// CinemaName returns the name of the cinema hosting the show, or "" when the
// auditorium was not embedded.
func (s Show) CinemaName() string {
	if s.Auditorium == nil || s.Auditorium.Cinema == nil {
		return ""
	}
	return s.Auditorium.Cinema.Name
}

func (s Show) AuditoriumName() string {
	if s.Auditorium == nil {
		return ""
	}
	return s.Auditorium.Name
}

// NumericID is a numeric identifier the API may encode either as a JSON
// number or as a decimal string.
type NumericID int64

func (id *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*id = 0
			return nil
		}
		data = []byte(s)
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("numeric id %q: %w", string(data), err)
	}
	*id = NumericID(n)
	return nil
}

func (id NumericID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
