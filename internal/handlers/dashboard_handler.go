package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
	"github.com/DelcioCoder/barberpro-frontend/internal/middleware"
	"github.com/DelcioCoder/barberpro-frontend/internal/timezone"
)

type DashboardHandler struct {
	api *api.Client
	tz  string
}

func NewDashboardHandler(client *api.Client, tz string) *DashboardHandler {
	return &DashboardHandler{api: client, tz: tz}
}

// Dashboard busca em paralelo os agendamentos de hoje e as métricas do
// dia. Agendamentos são obrigatórios; métricas indisponíveis são
// substituídas por placeholders derivados da própria lista.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	today := timezone.NowIn(h.tz).Format("2006-01-02")

	var (
		appointments api.Paginated[api.Appointment]
		metrics      []api.DashboardMetric
		metricsErr   error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := url.Values{}
		q.Set("date", today)
		var err error
		appointments, err = h.api.ListAppointments(gctx, q)
		return err
	})
	g.Go(func() error {
		metrics, metricsErr = h.api.DashboardMetrics(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		failPage(c, err, "Não foi possível carregar o dashboard.")
		return
	}

	if metricsErr != nil {
		// Um 401 derruba a sessão inteira; só indisponibilidade cai
		// para os placeholders.
		if api.IsUnauthorized(metricsErr) {
			failPage(c, metricsErr, "")
			return
		}
		log.Warn().Err(metricsErr).Msg("dashboard metrics unavailable, using placeholders")
		metrics = placeholderMetrics(appointments.Results)
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Session":      middleware.CurrentSession(c),
		"Today":        today,
		"Appointments": appointments.Results,
		"Metrics":      metrics,
	})
}

// placeholderMetrics sintetiza os cartões do dashboard a partir dos
// agendamentos do dia quando o endpoint de analytics falha.
func placeholderMetrics(appointments []api.Appointment) []api.DashboardMetric {
	var revenue float64
	var completed int
	for _, ap := range appointments {
		if ap.Status == api.StatusCompleted {
			completed++
			revenue += ap.TotalAmount
		}
	}

	return []api.DashboardMetric{
		{
			MetricType:   "appointments_today",
			Name:         "Agendamentos Hoje",
			Value:        float64(len(appointments)),
			Unit:         "count",
			Period:       "daily",
			DisplayOrder: 1,
		},
		{
			MetricType:   "completed_today",
			Name:         "Concluídos Hoje",
			Value:        float64(completed),
			Unit:         "count",
			Period:       "daily",
			DisplayOrder: 2,
		},
		{
			MetricType:   "revenue_today",
			Name:         "Receita de Hoje",
			Value:        revenue,
			Unit:         "currency",
			Period:       "daily",
			DisplayOrder: 3,
		},
	}
}
