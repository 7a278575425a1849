package api

import (
	"context"
	"fmt"
	"net/url"
)

// CreateAppointmentInput é o corpo enviado pelo assistente de
// agendamento: ids escolhidos mais o timestamp ISO-8601 composto.
type CreateAppointmentInput struct {
	Barbershop int    `json:"barbershop"`
	Service    int    `json:"service"`
	Barber     int    `json:"barber"`
	DateTime   string `json:"date_time"`
}

func (c *Client) ListAppointments(ctx context.Context, q url.Values) (Paginated[Appointment], error) {
	var page Paginated[Appointment]
	err := c.get(ctx, "/api/appointments/", q, &page)
	return page, err
}

func (c *Client) GetAppointment(ctx context.Context, id int) (Appointment, error) {
	var ap Appointment
	err := c.get(ctx, fmt.Sprintf("/api/appointments/%d/", id), nil, &ap)
	return ap, err
}

func (c *Client) CreateAppointment(ctx context.Context, in CreateAppointmentInput) (Appointment, error) {
	var ap Appointment
	err := c.post(ctx, "/api/appointments/", in, &ap)
	return ap, err
}

// UpdateAppointmentStatus pede a transição de status. O backend aceita
// ou rejeita; aqui não há validação.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int, status string) (Appointment, error) {
	var ap Appointment
	err := c.put(ctx, fmt.Sprintf("/api/appointments/%d/", id), map[string]string{"status": status}, &ap)
	return ap, err
}

func (c *Client) DeleteAppointment(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/appointments/%d/", id))
}

func (c *Client) ConfirmAppointment(ctx context.Context, id int) (Appointment, error) {
	var ap Appointment
	err := c.patch(ctx, fmt.Sprintf("/api/appointments/%d/confirm/", id), nil, &ap)
	return ap, err
}

func (c *Client) CancelAppointment(ctx context.Context, id int, reason string) (Appointment, error) {
	var ap Appointment
	err := c.patch(ctx, fmt.Sprintf("/api/appointments/%d/cancel/", id), map[string]string{"reason": reason}, &ap)
	return ap, err
}
