package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
	"github.com/DelcioCoder/barberpro-frontend/internal/config"
	"github.com/DelcioCoder/barberpro-frontend/internal/handlers"
	"github.com/DelcioCoder/barberpro-frontend/internal/httpresp"
	"github.com/DelcioCoder/barberpro-frontend/internal/middleware"
	"github.com/DelcioCoder/barberpro-frontend/internal/session"
	"github.com/DelcioCoder/barberpro-frontend/internal/wizard"
	"github.com/rs/zerolog/log"
)

// RegisterRoutes monta todas as views do front-end. Login e cadastro
// são públicos; todo o resto exige sessão resolvida.
func RegisterRoutes(r *gin.Engine, client *api.Client, sessions *session.Manager, cfg *config.Config) {
	flow := wizard.NewFlow(client, client, log.Logger)

	auth := handlers.NewAuthHandler(sessions, client)
	dashboard := handlers.NewDashboardHandler(client, cfg.DefaultTimezone)
	appointments := handlers.NewAppointmentHandler(client, cfg.DefaultTimezone)
	barbershops := handlers.NewBarbershopHandler(client)
	booking := handlers.NewBookingHandler(client, flow, cfg.DefaultTimezone)

	r.GET("/health", func(c *gin.Context) {
		httpresp.OK(c, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	r.GET("/login", auth.LoginPage)
	r.POST("/login", auth.Login)
	r.GET("/register", auth.RegisterPage)
	r.POST("/register", auth.Register)
	r.POST("/logout", auth.Logout)

	private := r.Group("/")
	private.Use(middleware.RequireSession(sessions))
	{
		private.GET("/dashboard", dashboard.Dashboard)

		private.GET("/appointments", appointments.List)
		private.GET("/appointments/:id", appointments.Detail)
		private.POST("/appointments/:id/status", appointments.UpdateStatus)
		private.POST("/appointments/:id/delete", appointments.Delete)
		private.GET("/appointments/:id/receipt", appointments.Receipt)
		private.GET("/appointments/:id/calendar", appointments.Calendar)

		private.GET("/barbershops", barbershops.List)
		private.GET("/barbershops/:id", barbershops.Detail)

		private.GET("/barbershops/:id/booking", booking.Show)
		private.POST("/barbershops/:id/booking/service", booking.SelectService)
		private.POST("/barbershops/:id/booking/barber", booking.SelectBarber)
		private.POST("/barbershops/:id/booking/date", booking.SelectDate)
		private.POST("/barbershops/:id/booking/time", booking.SelectTime)
		private.POST("/barbershops/:id/booking/back", booking.Back)
		private.POST("/barbershops/:id/booking/confirm", booking.Confirm)
		private.GET("/barbershops/:id/booking/slots", booking.Slots)
	}
}
