package api

import (
	"context"
	"fmt"
)

// --------- Requests ---------

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Auth ---------

// Login troca as credenciais por um par de tokens e o guarda no
// TokenStore da sessão.
func (c *Client) Login(ctx context.Context, creds Credentials) (TokenPair, error) {
	var tokens TokenPair
	if err := c.post(ctx, "/api/auth/login/", creds, &tokens); err != nil {
		return TokenPair{}, err
	}
	if err := c.tokens.Save(ctx, tokens); err != nil {
		return TokenPair{}, fmt.Errorf("api: save tokens: %w", err)
	}
	return tokens, nil
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (User, error) {
	var user User
	err := c.post(ctx, "/api/auth/register/", in, &user)
	return user, err
}

// RefreshToken pede um novo access token. Não é chamado pelo fluxo de
// 401; um 401 derruba a sessão direto.
func (c *Client) RefreshToken(ctx context.Context) (TokenPair, error) {
	refresh, err := c.tokens.Refresh(ctx)
	if err != nil || refresh == "" {
		return TokenPair{}, fmt.Errorf("api: no refresh token")
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := c.post(ctx, "/api/auth/refresh/", map[string]string{"refresh": refresh}, &out); err != nil {
		return TokenPair{}, err
	}

	tokens := TokenPair{Access: out.Access, Refresh: refresh}
	if err := c.tokens.Save(ctx, tokens); err != nil {
		return TokenPair{}, fmt.Errorf("api: save tokens: %w", err)
	}
	return tokens, nil
}

func (c *Client) Profile(ctx context.Context) (User, error) {
	var user User
	err := c.get(ctx, "/api/auth/profile/", nil, &user)
	return user, err
}
