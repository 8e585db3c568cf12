package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"cinema-tui/model"
)

// GetTicketsForUser fetches the ticket history of the authenticated user.
// Each ticket embeds its show, and each show its movie and auditorium.
func (c *Client) GetTicketsForUser(ctx context.Context) ([]model.Ticket, error) {
	var tickets []model.Ticket
	if err := c.getJSON(ctx, "/tickets/user", &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetShow fetches a single show.
func (c *Client) GetShow(ctx context.Context, showID string) (model.Show, error) {
	showID = strings.TrimSpace(showID)
	if showID == "" {
		return model.Show{}, errors.New("show id is required")
	}
	var show model.Show
	if err := c.getJSON(ctx, fmt.Sprintf("/shows/%s", url.PathEscape(showID)), &show); err != nil {
		return model.Show{}, err
	}
	return show, nil
}
