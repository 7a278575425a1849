package api

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) ListProducts(ctx context.Context, q url.Values) (Paginated[Product], error) {
	var page Paginated[Product]
	err := c.get(ctx, "/api/products/", q, &page)
	return page, err
}

func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	var product Product
	err := c.get(ctx, fmt.Sprintf("/api/products/%d/", id), nil, &product)
	return product, err
}

func (c *Client) CreateProduct(ctx context.Context, in Product) (Product, error) {
	var product Product
	err := c.post(ctx, "/api/products/", in, &product)
	return product, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in Product) (Product, error) {
	var product Product
	err := c.put(ctx, fmt.Sprintf("/api/products/%d/", id), in, &product)
	return product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/products/%d/", id))
}
