package api

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) ListClients(ctx context.Context, q url.Values) (Paginated[Customer], error) {
	var page Paginated[Customer]
	err := c.get(ctx, "/api/clients/", q, &page)
	return page, err
}

func (c *Client) GetClient(ctx context.Context, id int) (Customer, error) {
	var customer Customer
	err := c.get(ctx, fmt.Sprintf("/api/clients/%d/", id), nil, &customer)
	return customer, err
}

func (c *Client) CreateClient(ctx context.Context, in Customer) (Customer, error) {
	var customer Customer
	err := c.post(ctx, "/api/clients/", in, &customer)
	return customer, err
}

func (c *Client) UpdateClient(ctx context.Context, id int, in Customer) (Customer, error) {
	var customer Customer
	err := c.put(ctx, fmt.Sprintf("/api/clients/%d/", id), in, &customer)
	return customer, err
}

func (c *Client) DeleteClient(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/clients/%d/", id))
}
