package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
	"github.com/DelcioCoder/barberpro-frontend/internal/middleware"
	"github.com/DelcioCoder/barberpro-frontend/internal/session"
)

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

type AuthHandler struct {
	sessions *session.Manager
	api      *api.Client
}

func NewAuthHandler(sessions *session.Manager, client *api.Client) *AuthHandler {
	return &AuthHandler{sessions: sessions, api: client}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	data := gin.H{}
	if c.Query("registered") == "1" {
		data["Notice"] = "Conta criada com sucesso. Faça login para continuar."
	}
	c.HTML(http.StatusOK, "login.html", data)
}

// Login autentica o formulário contra o backend. Falhas ficam inline na
// própria página; sucesso redireciona para o dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Informe usuário e senha.",
		})
		return
	}

	middleware.EnsureSessionID(c)
	ctx := c.Request.Context()

	sess, err := h.sessions.Login(ctx, form.Username, form.Password)
	if err != nil || sess.State != session.StateAuthenticated {
		log.Warn().Err(err).Str("username", form.Username).Msg("login failed")
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error":    userMessage(err, "Credenciais inválidas. Verifique usuário e senha."),
			"Username": form.Username,
		})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": "Preencha todos os campos. A senha precisa de pelo menos 8 caracteres.",
		})
		return
	}

	middleware.EnsureSessionID(c)

	_, err := h.api.Register(c.Request.Context(), api.RegisterInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error":    userMessage(err, "Não foi possível criar a conta. Tente novamente."),
			"Username": form.Username,
			"Email":    form.Email,
		})
		return
	}

	c.Redirect(http.StatusFound, "/login?registered=1")
}

// Logout descarta os tokens locais e o cookie de sessão.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.EnsureSessionID(c)

	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		log.Warn().Err(err).Msg("logout: token store clear failed")
	}

	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login")
}
