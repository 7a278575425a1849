package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
	"github.com/DelcioCoder/barberpro-frontend/internal/middleware"
)

type BarbershopHandler struct {
	api *api.Client
}

func NewBarbershopHandler(client *api.Client) *BarbershopHandler {
	return &BarbershopHandler{api: client}
}

func (h *BarbershopHandler) List(c *gin.Context) {
	shops, err := h.api.ListTenants(c.Request.Context())
	if err != nil {
		failPage(c, err, "Não foi possível carregar as barbearias.")
		return
	}

	c.HTML(http.StatusOK, "barbershops.html", gin.H{
		"Session":     middleware.CurrentSession(c),
		"Barbershops": shops.Results,
	})
}

// Detail busca a barbearia junto com seus serviços e barbeiros, tudo em
// paralelo. É a porta de entrada do assistente de agendamento.
func (h *BarbershopHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Barbearia não encontrada."})
		return
	}

	ctx := c.Request.Context()

	var (
		shop     api.Tenant
		services []api.Service
		barbers  []api.Barber
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shop, err = h.api.GetTenant(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		services, err = h.api.TenantServices(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		barbers, err = h.api.TenantBarbers(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		failPage(c, err, "Não foi possível carregar a barbearia.")
		return
	}

	c.HTML(http.StatusOK, "barbershop_detail.html", gin.H{
		"Session":    middleware.CurrentSession(c),
		"Barbershop": shop,
		"Services":   services,
		"Barbers":    barbers,
	})
}
