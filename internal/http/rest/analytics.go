package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/reportrhq/reportr-go/internal/model"
)

// GetReportAnalytics fetches the admin reports dashboard data.
func (c *Client) GetReportAnalytics(ctx context.Context) (model.ReportAnalytics, error) {
	var out model.ReportAnalytics
	if err := c.do(ctx, http.MethodGet, "/api/analytics/reports", nil, nil, &out); err != nil {
		return model.ReportAnalytics{}, err
	}
	return out, nil
}

// GetUserAnalytics fetches the admin users dashboard data.
func (c *Client) GetUserAnalytics(ctx context.Context) (model.UserAnalytics, error) {
	var out model.UserAnalytics
	if err := c.do(ctx, http.MethodGet, "/api/analytics/users", nil, nil, &out); err != nil {
		return model.UserAnalytics{}, err
	}
	return out, nil
}

// CategoryAnalysisParams bounds the category dashboard query. Period is
// one of daily, weekly, monthly, quarterly, yearly; dates are YYYY-MM-DD.
type CategoryAnalysisParams struct {
	Period    string
	StartDate string
	EndDate   string
}

// GetCategoryAnalysis fetches category distribution and trend rows.
func (c *Client) GetCategoryAnalysis(ctx context.Context, params CategoryAnalysisParams) (model.CategoryAnalysis, error) {
	qs := url.Values{}
	if params.Period != "" {
		qs.Set("period", params.Period)
	}
	if params.StartDate != "" {
		qs.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		qs.Set("end_date", params.EndDate)
	}

	var out model.CategoryAnalysis
	if err := c.do(ctx, http.MethodGet, "/api/analytics/category-analysis", qs, nil, &out); err != nil {
		return model.CategoryAnalysis{}, err
	}
	return out, nil
}

// GetLocationInsights fetches the location dashboard data.
func (c *Client) GetLocationInsights(ctx context.Context) (model.LocationInsights, error) {
	var out model.LocationInsights
	if err := c.do(ctx, http.MethodGet, "/api/analytics/location-insights", nil, nil, &out); err != nil {
		return model.LocationInsights{}, err
	}
	return out, nil
}

// GetSystemPerformance fetches the operational metrics dashboard data.
func (c *Client) GetSystemPerformance(ctx context.Context) (model.SystemPerformance, error) {
	var out model.SystemPerformance
	if err := c.do(ctx, http.MethodGet, "/api/analytics/system-performance", nil, nil, &out); err != nil {
		return model.SystemPerformance{}, err
	}
	return out, nil
}
