package api

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) ListServices(ctx context.Context, q url.Values) (Paginated[Service], error) {
	var page Paginated[Service]
	err := c.get(ctx, "/api/services/", q, &page)
	return page, err
}

func (c *Client) GetService(ctx context.Context, id int) (Service, error) {
	var service Service
	err := c.get(ctx, fmt.Sprintf("/api/services/%d/", id), nil, &service)
	return service, err
}

func (c *Client) CreateService(ctx context.Context, in Service) (Service, error) {
	var service Service
	err := c.post(ctx, "/api/services/", in, &service)
	return service, err
}

func (c *Client) UpdateService(ctx context.Context, id int, in Service) (Service, error) {
	var service Service
	err := c.put(ctx, fmt.Sprintf("/api/services/%d/", id), in, &service)
	return service, err
}

func (c *Client) DeleteService(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/services/%d/", id))
}
