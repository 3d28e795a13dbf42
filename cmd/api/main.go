package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emsinet_landing_backend/internal/catalog"
	"emsinet_landing_backend/internal/contact"
	"emsinet_landing_backend/internal/events"
	"emsinet_landing_backend/internal/geocode"
	apphttp "emsinet_landing_backend/internal/http"
	"emsinet_landing_backend/internal/http/router"
	"emsinet_landing_backend/internal/notification"
	"emsinet_landing_backend/internal/session"
	"emsinet_landing_backend/platform/config"
	"emsinet_landing_backend/platform/logger"
	"emsinet_landing_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

const portalSessionName = "portal"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	redisClient := initRedis(cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	val := validator.New()
	eventBus := events.NewInMemoryBus(log)

	sessions := session.New(redisClient, cfg.GetSessionTTL(), log)
	portalTokens := session.NewTokenSource(sessions, portalSessionName)

	// ========================================================================
	// Domain Modules
	// ========================================================================

	geocodeModule := geocode.NewModule(cfg, log)
	catalogModule := catalog.NewModule(cfg, portalTokens, redisClient, val, log)
	contactModule := contact.NewModule(eventBus, geocode.InServiceRegion, val, log)

	notificationModule := notification.NewModule(cfg, log)
	notificationModule.RegisterHandlers(eventBus)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:         cfg,
		Logger:         log,
		Health:         sessions,
		EventBus:       eventBus,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Modules: []apphttp.Module{
			geocodeModule,
			catalogModule,
			contactModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initRedis(cfg *config.Config, log *logger.Logger) *redis.Client {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; caching and shared sessions disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("invalid REDIS_URL", "error", err)
		return nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unreachable, continuing without it", "error", err)
		_ = client.Close()
		return nil
	}

	log.Info("redis connected")
	return client
}
