package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

// Os tokens ficam guardados sob duas chaves por sessão
// (access_token, refresh_token).
const (
	accessKeyFmt  = "session:%s:access_token"
	refreshKeyFmt = "session:%s:refresh_token"
)

// RedisStore guarda o par de tokens por sessão de navegador no Redis.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Access(ctx context.Context) (string, error) {
	return s.read(ctx, accessKeyFmt)
}

func (s *RedisStore) Refresh(ctx context.Context) (string, error) {
	return s.read(ctx, refreshKeyFmt)
}

func (s *RedisStore) read(ctx context.Context, keyFmt string) (string, error) {
	sid := IDFromContext(ctx)
	if sid == "" {
		return "", nil
	}

	val, err := s.rdb.Get(ctx, fmt.Sprintf(keyFmt, sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: read token: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Save(ctx context.Context, tokens api.TokenPair) error {
	sid := IDFromContext(ctx)
	if sid == "" {
		return errors.New("session: missing session id")
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, fmt.Sprintf(accessKeyFmt, sid), tokens.Access, s.ttl)
	pipe.Set(ctx, fmt.Sprintf(refreshKeyFmt, sid), tokens.Refresh, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session: save tokens: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	sid := IDFromContext(ctx)
	if sid == "" {
		return nil
	}

	if err := s.rdb.Del(ctx,
		fmt.Sprintf(accessKeyFmt, sid),
		fmt.Sprintf(refreshKeyFmt, sid),
	).Err(); err != nil {
		return fmt.Errorf("session: clear tokens: %w", err)
	}
	return nil
}

// MemoryStore é a variante em memória usada nos testes.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]api.TokenPair
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]api.TokenPair)}
}

func (s *MemoryStore) Access(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[IDFromContext(ctx)].Access, nil
}

func (s *MemoryStore) Refresh(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[IDFromContext(ctx)].Refresh, nil
}

func (s *MemoryStore) Save(ctx context.Context, tokens api.TokenPair) error {
	sid := IDFromContext(ctx)
	if sid == "" {
		return errors.New("session: missing session id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sid] = tokens
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, IDFromContext(ctx))
	return nil
}
