package rest

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/internal/model"
	"github.com/reportrhq/reportr-go/util"
)

// Register creates a new account and returns the assigned user ID.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (int, error) {
	if err := util.ValidateStruct(req); err != nil {
		return 0, errors.Wrap(err, "invalid registration request")
	}

	var resp IDResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Login authenticates and returns the bearer token plus user identity.
func (c *Client) Login(ctx context.Context, username, password string) (model.LoginResponse, error) {
	req := model.LoginRequest{Username: username, Password: password}
	if err := util.ValidateStruct(req); err != nil {
		return model.LoginResponse{}, errors.Wrap(err, "invalid login request")
	}

	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &resp); err != nil {
		return model.LoginResponse{}, err
	}
	return resp, nil
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (model.Profile, error) {
	var profile model.Profile
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, nil, &profile); err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile changes the given profile fields.
func (c *Client) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return errors.Wrap(err, "invalid profile update")
	}
	return c.do(ctx, http.MethodPut, "/api/user/profile", nil, req, nil)
}
