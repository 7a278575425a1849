package api

import (
	"context"
	"fmt"
)

func (c *Client) ListTenants(ctx context.Context) (Paginated[Tenant], error) {
	var page Paginated[Tenant]
	err := c.get(ctx, "/api/tenants/", nil, &page)
	return page, err
}

func (c *Client) GetTenant(ctx context.Context, id int) (Tenant, error) {
	var tenant Tenant
	err := c.get(ctx, fmt.Sprintf("/api/tenants/%d/", id), nil, &tenant)
	return tenant, err
}

func (c *Client) CreateTenant(ctx context.Context, in Tenant) (Tenant, error) {
	var tenant Tenant
	err := c.post(ctx, "/api/tenants/", in, &tenant)
	return tenant, err
}

func (c *Client) UpdateTenant(ctx context.Context, id int, in Tenant) (Tenant, error) {
	var tenant Tenant
	err := c.put(ctx, fmt.Sprintf("/api/tenants/%d/", id), in, &tenant)
	return tenant, err
}

// TenantServices lista os serviços oferecidos por uma barbearia.
func (c *Client) TenantServices(ctx context.Context, tenantID int) ([]Service, error) {
	var services []Service
	err := c.get(ctx, fmt.Sprintf("/api/barbershops/%d/services/", tenantID), nil, &services)
	return services, err
}

// TenantBarbers lista os barbeiros de uma barbearia.
func (c *Client) TenantBarbers(ctx context.Context, tenantID int) ([]Barber, error) {
	var barbers []Barber
	err := c.get(ctx, fmt.Sprintf("/api/barbershops/%d/barbers/", tenantID), nil, &barbers)
	return barbers, err
}
