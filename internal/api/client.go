package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 10 * time.Second

// TokenStore guarda o par de credenciais (access, refresh) da sessão do
// navegador. A implementação concreta vive em internal/session.
type TokenStore interface {
	Access(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
	Save(ctx context.Context, tokens TokenPair) error
	Clear(ctx context.Context) error
}

// Client é o único ponto de saída HTTP para o backend BarberPro.
// Cada método faz exatamente uma ida e volta: sem cache, sem
// deduplicação, sem retry.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	logger  zerolog.Logger
}

func New(baseURL string, tokens TokenStore, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		tokens: tokens,
		logger: logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executa uma requisição contra o backend, anexando o bearer token
// quando existe. Um 401 descarta as credenciais guardadas e devolve
// ErrUnauthorized, sem tentativa de refresh.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if token, err := c.tokens.Access(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		classified := classifyRequestError(ctx, err)
		c.logger.Warn().Err(classified).Str("method", method).Str("path", path).Msg("backend request failed")
		return classified
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.Clear(ctx); err != nil {
			c.logger.Warn().Err(err).Msg("failed to clear stored tokens after 401")
		}
		c.logger.Info().Str("method", method).Str("path", path).Msg("backend returned 401, session discarded")
		return ErrUnauthorized
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("api: unmarshal response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
