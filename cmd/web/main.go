package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
	"github.com/DelcioCoder/barberpro-frontend/internal/config"
	"github.com/DelcioCoder/barberpro-frontend/internal/handlers"
	"github.com/DelcioCoder/barberpro-frontend/internal/middleware"
	"github.com/DelcioCoder/barberpro-frontend/internal/routes"
	"github.com/DelcioCoder/barberpro-frontend/internal/session"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REDIS_URL")
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Fatal().Err(err).Msg("redis unreachable")
	}

	store := session.NewRedisStore(rdb, cfg.SessionTTL)
	client := api.New(cfg.BackendAPIURL, store, cfg.RequestTimeout, log.Logger)
	sessions := session.NewManager(client, store, log.Logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery(), middleware.CORSMiddleware())

	r.SetFuncMap(handlers.TemplateFuncs())
	r.LoadHTMLGlob("web/templates/*.html")

	routes.RegisterRoutes(r, client, sessions, cfg)

	log.Info().
		Str("addr", cfg.Addr()).
		Str("backend", cfg.BackendAPIURL).
		Str("env", cfg.Env).
		Msg("BarberPro web frontend listening")

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
