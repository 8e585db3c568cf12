package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"cinema-tui/model"
)

// ListMovies returns the movies currently listed by the API.
func (c *Client) ListMovies(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.getJSON(ctx, "/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovie fetches a movie by its IMDb id.
func (c *Client) GetMovie(ctx context.Context, imdbID string) (model.Movie, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return model.Movie{}, errors.New("imdb id is required")
	}
	var movie model.Movie
	if err := c.getJSON(ctx, fmt.Sprintf("/movies/%s", url.PathEscape(imdbID)), &movie); err != nil {
		return model.Movie{}, err
	}
	if movie.ImdbID == "" {
		movie.ImdbID = imdbID
	}
	return movie, nil
}
