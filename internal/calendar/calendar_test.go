package calendar

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

func TestGoogleURL(t *testing.T) {
	ap := api.Appointment{
		ID:              42,
		Service:         api.Service{Name: "Corte Clássico"},
		Barber:          api.Barber{Name: "Mário"},
		Duration:        30,
		AppointmentTime: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
	}
	shop := api.Tenant{Name: "Barbearia Central", Address: "Rua da Missão 12, Luanda"}

	raw := GoogleURL(ap, shop)

	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "calendar.google.com", u.Host)
	assert.Equal(t, "/calendar/render", u.Path)

	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Agendamento BarberPro - Corte Clássico", q.Get("text"))
	assert.Equal(t, "20260901T103000Z/20260901T110000Z", q.Get("dates"))
	assert.Contains(t, q.Get("details"), "Barbearia Central")
	assert.Contains(t, q.Get("details"), "Mário")
	assert.Equal(t, "Rua da Missão 12, Luanda", q.Get("location"))
}

func TestGoogleURLEndRespectsDuration(t *testing.T) {
	ap := api.Appointment{
		Service:         api.Service{Name: "Barba"},
		Duration:        45,
		AppointmentTime: time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
	}

	u, err := url.Parse(GoogleURL(ap, api.Tenant{}))
	require.NoError(t, err)

	assert.Equal(t, "20260901T180000Z/20260901T184500Z", u.Query().Get("dates"))
}
