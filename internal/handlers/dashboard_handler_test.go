package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
	"github.com/DelcioCoder/barberpro-frontend/internal/session"
)

func newDashboardRouter(t *testing.T, backend http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	client := api.New(srv.URL, store, 5*time.Second, zerolog.Nop())
	h := NewDashboardHandler(client, "Africa/Luanda")

	r := gin.New()
	r.GET("/dashboard", h.Dashboard)
	return r
}

func TestDashboardMetricsUnauthorizedRedirectsToLogin(t *testing.T) {
	r := newDashboardRouter(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/api/appointments/":
			json.NewEncoder(w).Encode(api.Paginated[api.Appointment]{})
		case "/api/reports/analytics/dashboard/":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDashboardAppointmentsUnauthorizedRedirectsToLogin(t *testing.T) {
	r := newDashboardRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPlaceholderMetricsDerivedFromAppointments(t *testing.T) {
	appointments := []api.Appointment{
		{Status: api.StatusCompleted, TotalAmount: 3000},
		{Status: api.StatusCompleted, TotalAmount: 2000},
		{Status: api.StatusScheduled, TotalAmount: 9999},
	}

	metrics := placeholderMetrics(appointments)
	require.Len(t, metrics, 3)

	assert.Equal(t, float64(3), metrics[0].Value)
	assert.Equal(t, float64(2), metrics[1].Value)
	assert.Equal(t, float64(5000), metrics[2].Value)
}
