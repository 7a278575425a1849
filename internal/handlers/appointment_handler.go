package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
	"github.com/DelcioCoder/barberpro-frontend/internal/calendar"
	"github.com/DelcioCoder/barberpro-frontend/internal/middleware"
	"github.com/DelcioCoder/barberpro-frontend/internal/receipt"
	"github.com/DelcioCoder/barberpro-frontend/internal/timezone"
)

type AppointmentHandler struct {
	api *api.Client
	tz  string
}

func NewAppointmentHandler(client *api.Client, tz string) *AppointmentHandler {
	return &AppointmentHandler{api: client, tz: tz}
}

// List busca as quatro coleções em paralelo e aplica os filtros em
// memória. Qualquer falha de busca derruba a página inteira; não há
// renderização parcial.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filters := AppointmentFilters{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Date:   c.Query("date"),
		Barber: c.Query("barber"),
	}

	var (
		appointments api.Paginated[api.Appointment]
		clients      api.Paginated[api.Customer]
		barbers      api.Paginated[api.Barber]
		services     api.Paginated[api.Service]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appointments, err = h.api.ListAppointments(gctx, url.Values{})
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = h.api.ListClients(gctx, url.Values{})
		return err
	})
	g.Go(func() error {
		var err error
		barbers, err = h.api.ListBarbers(gctx, url.Values{})
		return err
	})
	g.Go(func() error {
		var err error
		services, err = h.api.ListServices(gctx, url.Values{})
		return err
	})

	if err := g.Wait(); err != nil {
		failPage(c, err, "Não foi possível carregar os agendamentos.")
		return
	}

	filtered := FilterAppointments(appointments.Results, filters)

	c.HTML(http.StatusOK, "appointments.html", gin.H{
		"Session":      middleware.CurrentSession(c),
		"Appointments": filtered,
		"Total":        len(appointments.Results),
		"Clients":      clients.Results,
		"Barbers":      barbers.Results,
		"Services":     services.Results,
		"Filters":      filters,
	})
}

func (h *AppointmentHandler) Detail(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ap, err := h.api.GetAppointment(c.Request.Context(), id)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			c.HTML(http.StatusNotFound, "appointment_detail.html", gin.H{
				"Session":  middleware.CurrentSession(c),
				"NotFound": true,
			})
			return
		}
		failPage(c, err, "Não foi possível carregar o agendamento.")
		return
	}

	c.HTML(http.StatusOK, "appointment_detail.html", gin.H{
		"Session":     middleware.CurrentSession(c),
		"Appointment": ap,
		"Code":        receipt.Code(ap.ID),
	})
}

// UpdateStatus aplica a transição pedida e redireciona de volta ao
// detalhe, que rebusca o registro. Nada é aplicado de forma otimista.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	next := c.PostForm("next_status")

	var err error
	switch next {
	case api.StatusConfirmed:
		_, err = h.api.ConfirmAppointment(ctx, id)
	case api.StatusCancelled:
		_, err = h.api.CancelAppointment(ctx, id, c.PostForm("reason"))
	case api.StatusCompleted, api.StatusInProgress, api.StatusNoShow:
		_, err = h.api.UpdateAppointmentStatus(ctx, id, next)
	default:
		failPage(c, fmt.Errorf("unknown status transition %q", next), "Transição de status inválida.")
		return
	}

	if err != nil {
		failPage(c, err, "Não foi possível atualizar o agendamento.")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/appointments/%d", id))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.api.DeleteAppointment(c.Request.Context(), id); err != nil {
		failPage(c, err, "Não foi possível excluir o agendamento.")
		return
	}

	c.Redirect(http.StatusFound, "/appointments")
}

// Receipt gera o comprovante em texto puro para download.
func (h *AppointmentHandler) Receipt(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ap, err := h.api.GetAppointment(c.Request.Context(), id)
	if err != nil {
		failPage(c, err, "Não foi possível gerar o comprovante.")
		return
	}

	body := receipt.Render(ap, ap.Barbershop, timezone.NowIn(h.tz))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.Filename(ap.ID)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// Calendar redireciona para o Google Calendar pré-preenchido.
// Fire-and-forget: o retorno do usuário não é observado.
func (h *AppointmentHandler) Calendar(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ap, err := h.api.GetAppointment(c.Request.Context(), id)
	if err != nil {
		failPage(c, err, "Não foi possível abrir o calendário.")
		return
	}

	c.Redirect(http.StatusFound, calendar.GoogleURL(ap, ap.Barbershop))
}

func (h *AppointmentHandler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.HTML(http.StatusNotFound, "appointment_detail.html", gin.H{
			"Session":  middleware.CurrentSession(c),
			"NotFound": true,
		})
		return 0, false
	}
	return id, true
}
