package middleware

import (
	"context"
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

func newTestRouter(t *testing.T, backend http.HandlerFunc) (*gin.Engine, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	client := api.New(srv.URL, store, 5*time.Second, zerolog.Nop())
	sessions := session.NewManager(client, store, zerolog.Nop())

	r := gin.New()
	r.GET("/private", RequireSession(sessions), func(c *gin.Context) {
		sess := CurrentSession(c)
		require.NotNil(t, sess.User)
		c.String(http.StatusOK, sess.User.Username)
	})
	return r, store
}

func TestRequireSessionWithoutCookieRedirects(t *testing.T) {
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("no backend request expected")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSessionWithoutTokenRedirects(t *testing.T) {
	r, _ := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("no backend request expected")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sid-1"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSessionAuthenticatedPasses(t *testing.T) {
	r, store := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/api/auth/profile/", req.URL.Path)
		json.NewEncoder(w).Encode(api.User{ID: 1, Username: "delcio"})
	})

	ctx := session.WithID(context.Background(), "sid-1")
	require.NoError(t, store.Save(ctx, api.TokenPair{Access: "tok"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sid-1"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "delcio", w.Body.String())
}
