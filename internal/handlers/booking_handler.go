package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
	"github.com/DelcioCoder/barberpro-frontend/internal/httperr"
	"github.com/DelcioCoder/barberpro-frontend/internal/httpresp"
	"github.com/DelcioCoder/barberpro-frontend/internal/middleware"
	"github.com/DelcioCoder/barberpro-frontend/internal/session"
	"github.com/DelcioCoder/barberpro-frontend/internal/timezone"
	"github.com/DelcioCoder/barberpro-frontend/internal/wizard"
)

// Rascunhos parados além deste prazo são descartados no próximo acesso
// ao mapa.
const draftTTL = 2 * time.Hour

type draftEntry struct {
	draft   *wizard.Draft
	touched time.Time
}

// BookingHandler conduz o assistente de agendamento. O rascunho vive em
// memória do processo, um por sessão de navegador, e é descartado na
// submissão, ao sair da barbearia ou por inatividade.
type BookingHandler struct {
	api  *api.Client
	flow *wizard.Flow
	tz   string

	mu     sync.Mutex
	drafts map[string]*draftEntry
	now    func() time.Time
}

func NewBookingHandler(client *api.Client, flow *wizard.Flow, tz string) *BookingHandler {
	return &BookingHandler{
		api:    client,
		flow:   flow,
		tz:     tz,
		drafts: make(map[string]*draftEntry),
		now:    time.Now,
	}
}

// draft devolve o rascunho da sessão, criando (ou recriando) um novo
// quando não existe, expirou ou pertence a outra barbearia. O acesso
// também varre entradas paradas há mais que o TTL.
func (h *BookingHandler) draft(sid string, shopID int) *wizard.Draft {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	for key, e := range h.drafts {
		if now.Sub(e.touched) > draftTTL {
			delete(h.drafts, key)
		}
	}

	e, ok := h.drafts[sid]
	if !ok || e.draft.BarbershopID != shopID {
		e = &draftEntry{draft: wizard.NewDraft(shopID)}
		h.drafts[sid] = e
	}
	e.touched = now
	return e.draft
}

func (h *BookingHandler) drop(sid string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.drafts, sid)
}

// Show renderiza o passo atual. Cada passo busca só o que precisa:
// serviços, barbeiros ou horários; o resumo final não busca nada.
func (h *BookingHandler) Show(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sid := session.IDFromContext(ctx)
	d := h.draft(sid, shopID)

	data := gin.H{
		"Session":      middleware.CurrentSession(c),
		"BarbershopID": shopID,
		"Draft":        d,
		"Step":         int(d.Step),
	}

	switch d.Step {
	case wizard.StepService:
		services, err := h.api.TenantServices(ctx, shopID)
		if err != nil {
			failPage(c, err, "Não foi possível carregar os serviços.")
			return
		}
		data["Services"] = services

	case wizard.StepBarber:
		barbers, err := h.api.TenantBarbers(ctx, shopID)
		if err != nil {
			failPage(c, err, "Não foi possível carregar os barbeiros.")
			return
		}
		data["Barbers"] = barbers

	case wizard.StepSchedule:
		if !d.Date.IsZero() {
			data["Slots"] = h.flow.AvailableTimes(ctx, d)
		}

	case wizard.StepConfirm:
		start, err := d.StartTime(timezone.Location(h.tz))
		if err != nil {
			d.Back()
			c.Redirect(http.StatusFound, h.bookingPath(shopID))
			return
		}
		data["StartTime"] = start
	}

	c.HTML(http.StatusOK, "booking.html", data)
}

// SelectService resolve o serviço escolhido contra a lista da barbearia
// antes de gravar no rascunho; ids fora da lista são rejeitados.
func (h *BookingHandler) SelectService(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	d := h.draft(session.IDFromContext(ctx), shopID)

	serviceID, err := strconv.Atoi(c.PostForm("service_id"))
	if err != nil {
		c.Redirect(http.StatusFound, h.bookingPath(shopID))
		return
	}

	services, err := h.api.TenantServices(ctx, shopID)
	if err != nil {
		failPage(c, err, "Não foi possível carregar os serviços.")
		return
	}

	for _, s := range services {
		if s.ID == serviceID {
			if err := d.SelectService(s); err != nil {
				log.Warn().Err(err).Int("service_id", serviceID).Msg("service selection rejected")
			}
			break
		}
	}

	c.Redirect(http.StatusFound, h.bookingPath(shopID))
}

func (h *BookingHandler) SelectBarber(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	d := h.draft(session.IDFromContext(ctx), shopID)

	barberID, err := strconv.Atoi(c.PostForm("barber_id"))
	if err != nil {
		c.Redirect(http.StatusFound, h.bookingPath(shopID))
		return
	}

	barbers, err := h.api.TenantBarbers(ctx, shopID)
	if err != nil {
		failPage(c, err, "Não foi possível carregar os barbeiros.")
		return
	}

	for _, b := range barbers {
		if b.ID == barberID {
			if err := d.SelectBarber(b); err != nil {
				log.Warn().Err(err).Int("barber_id", barberID).Msg("barber selection rejected")
			}
			break
		}
	}

	c.Redirect(http.StatusFound, h.bookingPath(shopID))
}

// SelectDate fixa a data do rascunho; o passo não avança até o horário
// ser escolhido.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}

	d := h.draft(session.IDFromContext(c.Request.Context()), shopID)

	date, err := timezone.ParseDate(h.tz, c.PostForm("date"))
	if err == nil {
		if err := d.SelectDate(date); err != nil {
			log.Warn().Err(err).Msg("date selection rejected")
		}
	}

	c.Redirect(http.StatusFound, h.bookingPath(shopID))
}

func (h *BookingHandler) SelectTime(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}

	d := h.draft(session.IDFromContext(c.Request.Context()), shopID)

	if err := d.SelectTime(c.PostForm("time")); err != nil {
		log.Warn().Err(err).Msg("time selection rejected")
	}

	c.Redirect(http.StatusFound, h.bookingPath(shopID))
}

// Back recua um passo; a partir do primeiro passo o assistente é
// abandonado e o rascunho descartado.
func (h *BookingHandler) Back(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}

	sid := session.IDFromContext(c.Request.Context())
	d := h.draft(sid, shopID)

	if !d.Back() {
		h.drop(sid)
		c.Redirect(http.StatusFound, fmt.Sprintf("/barbershops/%d", shopID))
		return
	}

	c.Redirect(http.StatusFound, h.bookingPath(shopID))
}

// Confirm submete o rascunho completo. Sucesso descarta o rascunho e
// navega para o detalhe criado; falha mantém o assistente no resumo com
// o erro inline.
func (h *BookingHandler) Confirm(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sid := session.IDFromContext(ctx)
	d := h.draft(sid, shopID)

	ap, err := h.flow.Confirm(ctx, d, timezone.Location(h.tz))
	if err != nil {
		if api.IsUnauthorized(err) {
			failPage(c, err, "")
			return
		}

		start, _ := d.StartTime(timezone.Location(h.tz))
		c.HTML(http.StatusOK, "booking.html", gin.H{
			"Session":      middleware.CurrentSession(c),
			"BarbershopID": shopID,
			"Draft":        d,
			"Step":         int(d.Step),
			"StartTime":    start,
			"Error":        userMessage(err, "Não foi possível concluir o agendamento. Tente novamente."),
		})
		return
	}

	h.drop(sid)
	c.Redirect(http.StatusFound, fmt.Sprintf("/appointments/%d", ap.ID))
}

// Slots devolve em JSON os horários do barbeiro/data do rascunho, para
// a troca de data sem recarregar a página. Consulta apenas: a data da
// query vale só para esta resposta e o rascunho não é alterado; fixar a
// data passa pelo POST de data.
func (h *BookingHandler) Slots(c *gin.Context) {
	shopID, err := strconv.Atoi(c.Param("id"))
	if err != nil || shopID <= 0 {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	ctx := c.Request.Context()
	view := *h.draft(session.IDFromContext(ctx), shopID)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := timezone.ParseDate(h.tz, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida, use o formato AAAA-MM-DD")
			return
		}
		view.Date = date
	}

	httpresp.List(c, h.flow.AvailableTimes(ctx, &view))
}

func (h *BookingHandler) shopID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Barbearia não encontrada."})
		return 0, false
	}
	return id, true
}

func (h *BookingHandler) bookingPath(shopID int) string {
	return fmt.Sprintf("/barbershops/%d/booking", shopID)
}
