package handlers

import (
	"strconv"
	"strings"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

// AppointmentFilters são os critérios da lista de agendamentos. Campos
// vazios (ou "all") não restringem; os preenchidos compõem em E.
type AppointmentFilters struct {
	Search string
	Status string
	Date   string
	Barber string
}

func (f AppointmentFilters) Active() bool {
	return f.Search != "" ||
		(f.Status != "" && f.Status != "all") ||
		f.Date != "" ||
		(f.Barber != "" && f.Barber != "all")
}

// Matches aplica os critérios a um agendamento. A busca textual cobre
// nome do cliente, telefone e nome do barbeiro, sem distinção de caixa.
func (f AppointmentFilters) Matches(ap api.Appointment) bool {
	if f.Search != "" {
		q := strings.ToLower(strings.TrimSpace(f.Search))
		if !strings.Contains(strings.ToLower(ap.Client.Name), q) &&
			!strings.Contains(ap.Client.Phone, strings.TrimSpace(f.Search)) &&
			!strings.Contains(strings.ToLower(ap.Barber.Name), q) {
			return false
		}
	}

	if f.Status != "" && f.Status != "all" && ap.Status != f.Status {
		return false
	}

	if f.Date != "" && ap.AppointmentTime.Format("2006-01-02") != f.Date {
		return false
	}

	if f.Barber != "" && f.Barber != "all" && strconv.Itoa(ap.Barber.ID) != f.Barber {
		return false
	}

	return true
}

// FilterAppointments devolve os agendamentos que passam em todos os
// critérios, preservando a ordem de chegada.
func FilterAppointments(list []api.Appointment, f AppointmentFilters) []api.Appointment {
	if !f.Active() {
		return list
	}

	out := make([]api.Appointment, 0, len(list))
	for _, ap := range list {
		if f.Matches(ap) {
			out = append(out, ap)
		}
	}
	return out
}
