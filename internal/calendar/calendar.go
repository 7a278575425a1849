package calendar

import (
	"fmt"
	"net/url"
	"time"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

const renderURL = "https://calendar.google.com/calendar/render"

const compactTime = "20060102T150405Z"

// GoogleURL monta a URL de hand-off para o Google Calendar a partir de
// um agendamento já buscado. Só construção de URL; o fluxo é
// fire-and-forget, sem callback.
func GoogleURL(ap api.Appointment, shop api.Tenant) string {
	start := ap.AppointmentTime.UTC()
	end := start.Add(time.Duration(ap.Duration) * time.Minute)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", fmt.Sprintf("Agendamento BarberPro - %s", ap.Service.Name))
	q.Set("dates", fmt.Sprintf("%s/%s", start.Format(compactTime), end.Format(compactTime)))
	q.Set("details", fmt.Sprintf("Agendamento na %s com %s", shop.Name, ap.Barber.Name))
	q.Set("location", shop.Address)

	return renderURL + "?" + q.Encode()
}
