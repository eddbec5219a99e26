package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/internal/model"
	"github.com/reportrhq/reportr-go/util"
)

// ListLocations returns every known location.
func (c *Client) ListLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := c.do(ctx, http.MethodGet, "/api/location/", nil, nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// GetLocation fetches a single location.
func (c *Client) GetLocation(ctx context.Context, locationID int) (model.Location, error) {
	var location model.Location
	path := fmt.Sprintf("/api/location/%d", locationID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &location); err != nil {
		return model.Location{}, err
	}
	return location, nil
}

// CreateLocation registers a new location for use in reports.
func (c *Client) CreateLocation(ctx context.Context, req model.CreateLocationRequest) (int, error) {
	if err := util.ValidateStruct(req); err != nil {
		return 0, errors.Wrap(err, "invalid location")
	}

	var resp IDResponse
	if err := c.do(ctx, http.MethodPost, "/api/location/", nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// UpdateLocation changes fields of an existing location.
func (c *Client) UpdateLocation(ctx context.Context, locationID int, req model.UpdateLocationRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return errors.Wrap(err, "invalid location update")
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/location/%d", locationID), nil, req, nil)
}

// DeleteLocation removes a location.
func (c *Client) DeleteLocation(ctx context.Context, locationID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/location/%d", locationID), nil, nil, nil)
}
