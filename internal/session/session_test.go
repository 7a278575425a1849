package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

func newBackend(t *testing.T, handler http.HandlerFunc) (*api.Client, *MemoryStore, *int64) {
	t.Helper()

	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	store := NewMemoryStore()
	client := api.New(srv.URL, store, 5*time.Second, zerolog.Nop())
	return client, store, &hits
}

func TestResolveWithoutTokenIssuesNoRequests(t *testing.T) {
	client, store, hits := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no backend request expected")
	})

	m := NewManager(client, store, zerolog.Nop())
	ctx := WithID(context.Background(), "sid-1")

	sess := m.Resolve(ctx)

	assert.Equal(t, StateUnauthenticated, sess.State)
	assert.Nil(t, sess.User)
	assert.Zero(t, atomic.LoadInt64(hits))
}

func TestResolveWithTokenFetchesProfile(t *testing.T) {
	client, store, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/profile/", r.URL.Path)
		json.NewEncoder(w).Encode(api.User{ID: 9, Username: "delcio"})
	})

	ctx := WithID(context.Background(), "sid-1")
	require.NoError(t, store.Save(ctx, api.TokenPair{Access: "tok", Refresh: "ref"}))

	m := NewManager(client, store, zerolog.Nop())
	sess := m.Resolve(ctx)

	require.Equal(t, StateAuthenticated, sess.State)
	require.NotNil(t, sess.User)
	assert.Equal(t, "delcio", sess.User.Username)
}

func TestResolveExpiredTokenEndsUnauthenticated(t *testing.T) {
	client, store, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	ctx := WithID(context.Background(), "sid-1")
	require.NoError(t, store.Save(ctx, api.TokenPair{Access: "expired"}))

	m := NewManager(client, store, zerolog.Nop())
	sess := m.Resolve(ctx)

	assert.Equal(t, StateUnauthenticated, sess.State)

	// O 401 descarta as credenciais guardadas.
	access, err := store.Access(ctx)
	require.NoError(t, err)
	assert.Empty(t, access)
}

func TestResolveBackendDownFallsBackToClaims(t *testing.T) {
	client, store, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx := WithID(context.Background(), "sid-1")
	// Claims {"user_id": 7, "username": "delcio"}, sem assinatura válida.
	token := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJ1c2VyX2lkIjo3LCJ1c2VybmFtZSI6ImRlbGNpbyJ9." +
		"aW52YWxpZC1zaWduYXR1cmU"
	require.NoError(t, store.Save(ctx, api.TokenPair{Access: token}))

	m := NewManager(client, store, zerolog.Nop())
	sess := m.Resolve(ctx)

	require.Equal(t, StateAuthenticated, sess.State)
	require.NotNil(t, sess.User)
	assert.Equal(t, 7, sess.User.ID)
	assert.Equal(t, "delcio", sess.User.Username)
}

func TestLoginStoresTokensAndResolvesUser(t *testing.T) {
	client, store, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login/":
			json.NewEncoder(w).Encode(api.TokenPair{Access: "acc", Refresh: "ref"})
		case "/api/auth/profile/":
			json.NewEncoder(w).Encode(api.User{ID: 1, Username: "delcio"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := WithID(context.Background(), "sid-1")
	m := NewManager(client, store, zerolog.Nop())

	sess, err := m.Login(ctx, "delcio", "secret")
	require.NoError(t, err)

	require.Equal(t, StateAuthenticated, sess.State)
	assert.Equal(t, "delcio", sess.User.Username)

	access, err := store.Access(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc", access)
}

func TestLogoutClearsStoredTokens(t *testing.T) {
	client, store, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {})

	ctx := WithID(context.Background(), "sid-1")
	require.NoError(t, store.Save(ctx, api.TokenPair{Access: "acc", Refresh: "ref"}))

	m := NewManager(client, store, zerolog.Nop())
	require.NoError(t, m.Logout(ctx))

	access, err := store.Access(ctx)
	require.NoError(t, err)
	assert.Empty(t, access)
}
