package session

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

// Session é o estado de autenticação resolvido para uma requisição.
// Consumidores devem tratar StateLoading como distinto de
// StateUnauthenticated: só o segundo redireciona para o login.
type Session struct {
	State State
	User  *api.User
}

// Manager é construído uma vez no arranque e passado explicitamente às
// views que precisam dele; não há estado ambiente.
type Manager struct {
	api    *api.Client
	store  api.TokenStore
	logger zerolog.Logger
}

func NewManager(client *api.Client, store api.TokenStore, logger zerolog.Logger) *Manager {
	return &Manager{api: client, store: store, logger: logger}
}

// Resolve deriva o estado da sessão a partir do token guardado.
// Sem token, nenhuma requisição autenticada é emitida. Com token, o
// perfil é buscado no backend antes de declarar a sessão autenticada;
// se o backend estiver indisponível (mas não 401), cai para uma
// identidade sintetizada das claims do próprio token.
func (m *Manager) Resolve(ctx context.Context) Session {
	sess := Session{State: StateLoading}

	access, err := m.store.Access(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("session store unavailable")
		sess.State = StateUnauthenticated
		return sess
	}
	if access == "" {
		sess.State = StateUnauthenticated
		return sess
	}

	user, err := m.api.Profile(ctx)
	if err == nil {
		sess.State = StateAuthenticated
		sess.User = &user
		return sess
	}
	if api.IsUnauthorized(err) {
		// Tokens já descartados pelo client.
		sess.State = StateUnauthenticated
		return sess
	}

	m.logger.Warn().Err(err).Msg("profile fetch failed, falling back to token claims")
	fallback := userFromToken(access)
	sess.State = StateAuthenticated
	sess.User = &fallback
	return sess
}

// Login autentica contra o backend. Em caso de sucesso os tokens ficam
// guardados (dentro do client) e o usuário resolvido; em caso de falha
// o estado permanece não autenticado e o erro sobe para a view.
func (m *Manager) Login(ctx context.Context, username, password string) (Session, error) {
	tokens, err := m.api.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		return Session{State: StateUnauthenticated}, err
	}

	user, err := m.api.Profile(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			return Session{State: StateUnauthenticated}, err
		}
		user = userFromToken(tokens.Access)
	}

	return Session{State: StateAuthenticated, User: &user}, nil
}

// Logout descarta os tokens locais; nenhum endpoint de invalidação é
// chamado no backend.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// userFromToken sintetiza a identidade exibida a partir das claims do
// access token, sem validar assinatura (identidade de exibição apenas).
func userFromToken(access string) api.User {
	user := api.User{Username: "user"}

	token, _, err := jwt.NewParser().ParseUnverified(access, jwt.MapClaims{})
	if err != nil {
		return user
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return user
	}

	if sub, ok := claims["user_id"].(float64); ok {
		user.ID = int(sub)
	} else if sub, ok := claims["sub"].(float64); ok {
		user.ID = int(sub)
	}
	if username, ok := claims["username"].(string); ok && username != "" {
		user.Username = username
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	return user
}
