package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"cinema-tui/model"
)

// GetProfile fetches the profile of the authenticated user.
func (c *Client) GetProfile(ctx context.Context) (model.User, error) {
	var user model.User
	if err := c.getJSON(ctx, "/profile", &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// UpdateProfile sends the full four-field profile update.
func (c *Client) UpdateProfile(ctx context.Context, update model.ProfileUpdate) error {
	return c.doJSON(ctx, http.MethodPut, "/profile", update, nil)
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, cred model.Credential) (model.Account, error) {
	if strings.TrimSpace(cred.Email) == "" || cred.Password == "" {
		return model.Account{}, errors.New("email and password are required")
	}
	var account model.Account
	if err := c.doJSON(ctx, http.MethodPost, "/login", cred, &account); err != nil {
		return model.Account{}, err
	}
	if account.Token == "" {
		return model.Account{}, errors.New("login response did not include a token")
	}
	return account, nil
}
