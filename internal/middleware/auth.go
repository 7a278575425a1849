package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DelcioCoder/barberpro-frontend/internal/session"
)

const (
	SessionCookie  = "barberpro_sid"
	ContextSession = "session"
)

// EnsureSessionID devolve o id da sessão do navegador, criando cookie e
// id novos quando ainda não existem, e anexa o id ao contexto da
// requisição.
func EnsureSessionID(c *gin.Context) string {
	sid, err := c.Cookie(SessionCookie)
	if err != nil || sid == "" {
		sid = uuid.NewString()
		c.SetCookie(SessionCookie, sid, 0, "/", "", false, true)
	}
	c.Request = c.Request.WithContext(session.WithID(c.Request.Context(), sid))
	return sid
}

// ClearSessionCookie derruba o cookie de sessão do navegador.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// RequireSession protege as views autenticadas: resolve a sessão e
// redireciona para o login quando (e só quando) a resolução termina em
// não autenticado.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		ctx := session.WithID(c.Request.Context(), sid)
		c.Request = c.Request.WithContext(ctx)

		sess := sessions.Resolve(ctx)
		if sess.State != session.StateAuthenticated {
			ClearSessionCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// CurrentSession lê a sessão resolvida pelo RequireSession.
func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(ContextSession); ok {
		if sess, ok := v.(session.Session); ok {
			return sess
		}
	}
	return session.Session{State: session.StateUnauthenticated}
}
