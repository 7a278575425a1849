package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

var statusLabels = map[string]string{
	api.StatusScheduled:  "Agendado",
	api.StatusConfirmed:  "Confirmado",
	api.StatusInProgress: "Em Andamento",
	api.StatusCompleted:  "Concluído",
	api.StatusCancelled:  "Cancelado",
	api.StatusNoShow:     "Não Compareceu",
}

// Code devolve o código de exibição do agendamento, com zeros à
// esquerda até seis dígitos.
func Code(id int) string {
	return fmt.Sprintf("#%06d", id)
}

// Filename é o nome sugerido para o download do comprovante.
func Filename(id int) string {
	return fmt.Sprintf("agendamento-%d.txt", id)
}

// Render formata o comprovante em texto puro a partir de um
// agendamento já buscado. Formatação apenas; nada é calculado aqui.
func Render(ap api.Appointment, shop api.Tenant, now time.Time) string {
	status := statusLabels[ap.Status]
	if status == "" {
		status = ap.Status
	}

	var b strings.Builder
	b.WriteString("BARBERPRO - COMPROVANTE DE AGENDAMENTO\n\n")

	fmt.Fprintf(&b, "Cliente: %s\n", ap.Client.Name)
	fmt.Fprintf(&b, "Barbearia: %s\n", shop.Name)
	fmt.Fprintf(&b, "Endereço: %s\n", shop.Address)
	fmt.Fprintf(&b, "Telefone: %s\n\n", shop.PhoneNumber)

	fmt.Fprintf(&b, "Barbeiro: %s\n", ap.Barber.Name)
	if ap.Barber.Specialization != "" {
		fmt.Fprintf(&b, "Especialização: %s\n", ap.Barber.Specialization)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Serviço: %s\n", ap.Service.Name)
	fmt.Fprintf(&b, "Duração: %d minutos\n", ap.Duration)
	fmt.Fprintf(&b, "Preço: %.2f Kz\n\n", ap.ServicePrice)

	fmt.Fprintf(&b, "Data e Hora: %s\n", ap.AppointmentTime.Format("02/01/2006 às 15:04"))
	fmt.Fprintf(&b, "Status: %s\n\n", status)

	fmt.Fprintf(&b, "Código do Agendamento: %s\n\n", Code(ap.ID))
	fmt.Fprintf(&b, "Gerado em: %s\n", now.Format("02/01/2006 às 15:04"))

	return b.String()
}
