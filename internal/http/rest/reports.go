package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/internal/model"
	"github.com/reportrhq/reportr-go/util"
)

// SearchReportsParams filters and pages the report search. Zero values
// are omitted from the query string.
type SearchReportsParams struct {
	Query    string `url:"query,omitempty"`
	Category string `url:"category,omitempty"`
	Location string `url:"location,omitempty"`
	DateFrom string `url:"dateFrom,omitempty"` // YYYY-MM-DD
	DateTo   string `url:"dateTo,omitempty"`   // YYYY-MM-DD
	Page     int    `url:"page,omitempty"`
	Limit    int    `url:"limit,omitempty"`
	SortBy   string `url:"sortBy,omitempty"` // createdAt_desc, upvotes_desc, ...
}

// SearchReports returns one page of reports matching the filters.
func (c *Client) SearchReports(ctx context.Context, params SearchReportsParams) (model.ReportPage, error) {
	qs, err := query.Values(params)
	if err != nil {
		return model.ReportPage{}, errors.Wrap(err, "failed to encode search params")
	}

	var page model.ReportPage
	if err := c.do(ctx, http.MethodGet, "/api/report/search", qs, nil, &page); err != nil {
		return model.ReportPage{}, err
	}
	return page, nil
}

// GetReportDetails fetches the full detail view for one report.
func (c *Client) GetReportDetails(ctx context.Context, reportID int) (model.ReportDetail, error) {
	var detail model.ReportDetail
	path := fmt.Sprintf("/api/report/%d/details", reportID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &detail); err != nil {
		return model.ReportDetail{}, err
	}
	return detail, nil
}

// CreateReport submits a new report and returns its ID.
func (c *Client) CreateReport(ctx context.Context, req model.CreateReportRequest) (int, error) {
	if err := util.ValidateStruct(req); err != nil {
		return 0, errors.Wrap(err, "invalid report")
	}

	var resp IDResponse
	if err := c.do(ctx, http.MethodPost, "/api/report/", nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// UpdateReport changes the given fields of an existing report.
func (c *Client) UpdateReport(ctx context.Context, reportID int, req model.UpdateReportRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/report/%d", reportID), nil, req, nil)
}

// DeleteReport removes a report the user owns.
func (c *Client) DeleteReport(ctx context.Context, reportID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/report/%d", reportID), nil, nil, nil)
}
