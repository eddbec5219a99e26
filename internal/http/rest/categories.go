package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/internal/model"
	"github.com/reportrhq/reportr-go/util"
)

// ListCategories returns every report category.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/api/category/", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory fetches a single category.
func (c *Client) GetCategory(ctx context.Context, categoryID int) (model.Category, error) {
	var category model.Category
	path := fmt.Sprintf("/api/category/%d", categoryID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

// CreateCategory adds a category (admin only).
func (c *Client) CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (int, error) {
	if err := util.ValidateStruct(req); err != nil {
		return 0, errors.Wrap(err, "invalid category")
	}

	var resp IDResponse
	if err := c.do(ctx, http.MethodPost, "/api/category/", nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// UpdateCategory changes a category (admin only).
func (c *Client) UpdateCategory(ctx context.Context, categoryID int, req model.UpdateCategoryRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/category/%d", categoryID), nil, req, nil)
}

// DeleteCategory removes a category (admin only).
func (c *Client) DeleteCategory(ctx context.Context, categoryID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/category/%d", categoryID), nil, nil, nil)
}
