package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
	"github.com/DelcioCoder/barberpro-frontend/internal/middleware"
)

var statusLabels = map[string]string{
	api.StatusScheduled:  "Agendado",
	api.StatusConfirmed:  "Confirmado",
	api.StatusInProgress: "Em Andamento",
	api.StatusCompleted:  "Concluído",
	api.StatusCancelled:  "Cancelado",
	api.StatusNoShow:     "Não Compareceu",
}

var paymentLabels = map[string]string{
	api.PaymentPending:  "Pendente",
	api.PaymentPaid:     "Pago",
	api.PaymentPartial:  "Parcial",
	api.PaymentRefunded: "Reembolsado",
}

// TemplateFuncs são os helpers de formatação disponíveis nas views.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"statusLabel": func(s string) string {
			if label, ok := statusLabels[s]; ok {
				return label
			}
			return s
		},
		"paymentLabel": func(s string) string {
			if label, ok := paymentLabels[s]; ok {
				return label
			}
			return s
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f Kz", v)
		},
		"datetime": func(t time.Time) string {
			return t.Format("02/01/2006 15:04")
		},
		"date": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"isFinal":       api.IsFinal,
		"offerConfirm":  api.OfferConfirm,
		"offerComplete": api.OfferComplete,
		"offerCancel":   api.OfferCancel,
	}
}

// failPage é o caminho único de falha das views. Um 401 em qualquer
// chamada derruba a sessão e força a navegação para o login; qualquer
// outro erro vira uma mensagem genérica (ou a mensagem do backend,
// quando existe).
func failPage(c *gin.Context, err error, fallback string) {
	if api.IsUnauthorized(err) {
		middleware.ClearSessionCookie(c)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	msg := fallback
	if m := api.BackendMessage(err); m != "" {
		msg = m
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("view failed")
	c.HTML(http.StatusOK, "error.html", gin.H{"Message": msg})
}

// userMessage resolve a mensagem inline exibida num formulário.
func userMessage(err error, fallback string) string {
	if m := api.BackendMessage(err); m != "" {
		return m
	}
	return fallback
}
