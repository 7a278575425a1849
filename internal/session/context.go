package session

import "context"

type ctxKey struct{}

// WithID anexa o id da sessão do navegador (cookie) ao contexto; todo
// acesso ao TokenStore resolve as chaves a partir dele.
func WithID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sid)
}

func IDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(ctxKey{}).(string)
	return sid
}
