package api

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) ListBarbers(ctx context.Context, q url.Values) (Paginated[Barber], error) {
	var page Paginated[Barber]
	err := c.get(ctx, "/api/barbers/", q, &page)
	return page, err
}

func (c *Client) GetBarber(ctx context.Context, id int) (Barber, error) {
	var barber Barber
	err := c.get(ctx, fmt.Sprintf("/api/barbers/%d/", id), nil, &barber)
	return barber, err
}

func (c *Client) CreateBarber(ctx context.Context, in Barber) (Barber, error) {
	var barber Barber
	err := c.post(ctx, "/api/barbers/", in, &barber)
	return barber, err
}

func (c *Client) UpdateBarber(ctx context.Context, id int, in Barber) (Barber, error) {
	var barber Barber
	err := c.put(ctx, fmt.Sprintf("/api/barbers/%d/", id), in, &barber)
	return barber, err
}

func (c *Client) DeleteBarber(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/barbers/%d/", id))
}
