package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

// Passos do assistente de agendamento, estritamente lineares:
// serviço → barbeiro → data/hora → confirmação.
type Step int

const (
	StepService Step = iota + 1
	StepBarber
	StepSchedule
	StepConfirm
)

var (
	ErrWrongStep  = errors.New("wizard: action not valid on current step")
	ErrIncomplete = errors.New("wizard: draft incomplete")
)

// Draft acumula a seleção não submetida. Vive só durante a sessão de
// agendamento; é descartado ao sair ou após a submissão.
type Draft struct {
	BarbershopID int
	Service      *api.Service
	Barber       *api.Barber
	Date         time.Time
	Time         string
	Step         Step
}

func NewDraft(barbershopID int) *Draft {
	return &Draft{BarbershopID: barbershopID, Step: StepService}
}

func (d *Draft) SelectService(s api.Service) error {
	if d.Step != StepService {
		return ErrWrongStep
	}
	d.Service = &s
	d.Step = StepBarber
	return nil
}

func (d *Draft) SelectBarber(b api.Barber) error {
	if d.Step != StepBarber {
		return ErrWrongStep
	}
	d.Barber = &b
	d.Step = StepSchedule
	return nil
}

// SelectDate fixa a data mas não avança o passo; trocar a data invalida
// o horário já escolhido.
func (d *Draft) SelectDate(date time.Time) error {
	if d.Step != StepSchedule {
		return ErrWrongStep
	}
	d.Date = date
	d.Time = ""
	return nil
}

// SelectTime exige data já escolhida; só então a confirmação fica
// alcançável.
func (d *Draft) SelectTime(label string) error {
	if d.Step != StepSchedule {
		return ErrWrongStep
	}
	if d.Date.IsZero() {
		return ErrIncomplete
	}
	if _, err := time.Parse("15:04", label); err != nil {
		return fmt.Errorf("wizard: invalid time label %q: %w", label, err)
	}
	d.Time = label
	d.Step = StepConfirm
	return nil
}

// Back recua um passo; devolve false quando o assistente deve ser
// abandonado (back a partir do passo 1).
func (d *Draft) Back() bool {
	if d.Step <= StepService {
		return false
	}
	d.Step--
	return true
}

func (d *Draft) CanConfirm() bool {
	return d.Step == StepConfirm &&
		d.Service != nil && d.Barber != nil &&
		!d.Date.IsZero() && d.Time != ""
}

// StartTime compõe o timestamp do agendamento: data do calendário mais
// hora/minuto do rótulo escolhido, segundos zerados.
func (d *Draft) StartTime(loc *time.Location) (time.Time, error) {
	if d.Date.IsZero() || d.Time == "" {
		return time.Time{}, ErrIncomplete
	}
	t, err := time.Parse("15:04", d.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("wizard: invalid time label %q: %w", d.Time, err)
	}
	return time.Date(
		d.Date.Year(), d.Date.Month(), d.Date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}

// Scheduler busca a disponibilidade de um barbeiro numa data.
type Scheduler interface {
	AvailableSlots(ctx context.Context, barberID int, date time.Time) ([]api.TimeSlot, error)
}

// Booker submete o agendamento final.
type Booker interface {
	CreateAppointment(ctx context.Context, in api.CreateAppointmentInput) (api.Appointment, error)
}

type Flow struct {
	scheduler Scheduler
	booker    Booker
	logger    zerolog.Logger
}

func NewFlow(scheduler Scheduler, booker Booker, logger zerolog.Logger) *Flow {
	return &Flow{scheduler: scheduler, booker: booker, logger: logger}
}

// AvailableTimes busca os horários do barbeiro/data do rascunho. Se a
// busca falhar, todos os slots fixos de meia hora entre 08:00 e 19:30
// são oferecidos como disponíveis (o backend ainda pode rejeitar).
func (f *Flow) AvailableTimes(ctx context.Context, d *Draft) []api.TimeSlot {
	if d.Barber == nil || d.Date.IsZero() {
		return nil
	}

	slots, err := f.scheduler.AvailableSlots(ctx, d.Barber.ID, d.Date)
	if err != nil {
		f.logger.Warn().Err(err).
			Int("barber_id", d.Barber.ID).
			Str("date", d.Date.Format("2006-01-02")).
			Msg("availability fetch failed, offering fallback slots")
		return FallbackSlots()
	}
	return slots
}

// Confirm submete exatamente uma requisição de criação com o rascunho
// completo. Qualquer falha deixa o assistente no passo atual.
func (f *Flow) Confirm(ctx context.Context, d *Draft, loc *time.Location) (api.Appointment, error) {
	if !d.CanConfirm() {
		return api.Appointment{}, ErrIncomplete
	}

	start, err := d.StartTime(loc)
	if err != nil {
		return api.Appointment{}, err
	}

	return f.booker.CreateAppointment(ctx, api.CreateAppointmentInput{
		Barbershop: d.BarbershopID,
		Service:    d.Service.ID,
		Barber:     d.Barber.ID,
		DateTime:   start.Format(time.RFC3339),
	})
}

// FallbackSlots devolve os 24 slots fixos de meia hora, 08:00 a 19:30
// inclusive.
func FallbackSlots() []api.TimeSlot {
	day := time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, 19, 30, 0, 0, time.UTC)

	var slots []api.TimeSlot
	for cur := day; !cur.After(end); cur = cur.Add(30 * time.Minute) {
		slots = append(slots, api.TimeSlot{
			Start: cur.Format("15:04"),
			End:   cur.Add(30 * time.Minute).Format("15:04"),
		})
	}
	return slots
}
