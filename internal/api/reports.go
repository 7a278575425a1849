package api

import (
	"context"
	"net/url"
)

func (c *Client) ListFinancialReports(ctx context.Context, q url.Values) (Paginated[FinancialReport], error) {
	var page Paginated[FinancialReport]
	err := c.get(ctx, "/api/reports/financial/", q, &page)
	return page, err
}

func (c *Client) DashboardMetrics(ctx context.Context) ([]DashboardMetric, error) {
	var metrics []DashboardMetric
	err := c.get(ctx, "/api/reports/analytics/dashboard/", nil, &metrics)
	return metrics, err
}
