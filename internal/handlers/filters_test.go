package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

func sampleAppointments() []api.Appointment {
	return []api.Appointment{
		{
			ID:              1,
			Client:          api.Customer{Name: "João Silva", Phone: "923111222"},
			Barber:          api.Barber{ID: 5, Name: "Mário"},
			Status:          api.StatusScheduled,
			AppointmentTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:              2,
			Client:          api.Customer{Name: "Pedro Costa", Phone: "923333444"},
			Barber:          api.Barber{ID: 6, Name: "Carlos"},
			Status:          api.StatusCompleted,
			AppointmentTime: time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:              3,
			Client:          api.Customer{Name: "Joana Santos", Phone: "923555666"},
			Barber:          api.Barber{ID: 5, Name: "Mário"},
			Status:          api.StatusScheduled,
			AppointmentTime: time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC),
		},
	}
}

func ids(list []api.Appointment) []int {
	out := make([]int, len(list))
	for i, ap := range list {
		out[i] = ap.ID
	}
	return out
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := FilterAppointments(sampleAppointments(), AppointmentFilters{Search: "joão"})
	assert.Equal(t, []int{1}, ids(got))

	got = FilterAppointments(sampleAppointments(), AppointmentFilters{Search: "JOÃO"})
	assert.Equal(t, []int{1}, ids(got))
}

func TestFilterSearchCoversPhoneAndBarber(t *testing.T) {
	got := FilterAppointments(sampleAppointments(), AppointmentFilters{Search: "923333444"})
	assert.Equal(t, []int{2}, ids(got))

	got = FilterAppointments(sampleAppointments(), AppointmentFilters{Search: "mário"})
	assert.Equal(t, []int{1, 3}, ids(got))
}

func TestFiltersComposeWithAnd(t *testing.T) {
	got := FilterAppointments(sampleAppointments(), AppointmentFilters{
		Search: "jo",
		Status: api.StatusScheduled,
		Date:   "2026-09-01",
	})
	assert.Equal(t, []int{1}, ids(got))

	// Mesma busca, outra data: só o outro registro passa.
	got = FilterAppointments(sampleAppointments(), AppointmentFilters{
		Search: "jo",
		Status: api.StatusScheduled,
		Date:   "2026-09-02",
	})
	assert.Equal(t, []int{3}, ids(got))
}

func TestFilterByBarberID(t *testing.T) {
	got := FilterAppointments(sampleAppointments(), AppointmentFilters{Barber: "5"})
	assert.Equal(t, []int{1, 3}, ids(got))
}

func TestEmptyAndAllFiltersPassEverything(t *testing.T) {
	all := sampleAppointments()

	got := FilterAppointments(all, AppointmentFilters{})
	assert.Len(t, got, 3)

	got = FilterAppointments(all, AppointmentFilters{Status: "all", Barber: "all"})
	assert.Len(t, got, 3)
}

func TestFilterOrderIsPreserved(t *testing.T) {
	got := FilterAppointments(sampleAppointments(), AppointmentFilters{Status: api.StatusScheduled})
	assert.Equal(t, []int{1, 3}, ids(got))
}
