package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

func TestCodePadsToSixDigits(t *testing.T) {
	assert.Equal(t, "#000007", Code(7))
	assert.Equal(t, "#000123", Code(123))
	assert.Equal(t, "#1234567", Code(1234567))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "agendamento-42.txt", Filename(42))
}

func TestRenderIncludesAppointmentData(t *testing.T) {
	ap := api.Appointment{
		ID:              42,
		Client:          api.Customer{Name: "João Silva"},
		Barber:          api.Barber{Name: "Mário", Specialization: "Degradê"},
		Service:         api.Service{Name: "Corte Clássico"},
		Duration:        30,
		ServicePrice:    3000,
		Status:          api.StatusConfirmed,
		AppointmentTime: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
	}
	shop := api.Tenant{Name: "Barbearia Central", Address: "Rua da Missão 12", PhoneNumber: "923000111"}

	out := Render(ap, shop, time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "BARBERPRO - COMPROVANTE DE AGENDAMENTO")
	assert.Contains(t, out, "Cliente: João Silva")
	assert.Contains(t, out, "Barbearia: Barbearia Central")
	assert.Contains(t, out, "Barbeiro: Mário")
	assert.Contains(t, out, "Especialização: Degradê")
	assert.Contains(t, out, "Serviço: Corte Clássico")
	assert.Contains(t, out, "Preço: 3000.00 Kz")
	assert.Contains(t, out, "Data e Hora: 01/09/2026 às 10:30")
	assert.Contains(t, out, "Status: Confirmado")
	assert.Contains(t, out, "Código do Agendamento: #000042")
	assert.Contains(t, out, "Gerado em: 29/08/2026 às 15:00")
}

func TestRenderUnknownStatusFallsBackToRaw(t *testing.T) {
	ap := api.Appointment{ID: 1, Status: "weird_status"}

	out := Render(ap, api.Tenant{}, time.Now())
	assert.Contains(t, out, "Status: weird_status")
}
