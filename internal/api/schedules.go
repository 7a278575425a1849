package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// AvailableSlots busca os horários livres de um barbeiro numa data.
func (c *Client) AvailableSlots(ctx context.Context, barberID int, date time.Time) ([]TimeSlot, error) {
	q := url.Values{}
	q.Set("date", date.Format("2006-01-02"))

	var slots []TimeSlot
	err := c.get(ctx, fmt.Sprintf("/api/schedules/available/%d/", barberID), q, &slots)
	return slots, err
}
