//go:generate go get -u github.com/valyala/quicktemplate/qtc
//go:generate qtc -dir=views -skipLineComments

package main

import (
	"context"
	"crypto/rand"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/api"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/config"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/web"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path of the YAML config file, created with defaults if missing")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config_failed", "path", *configPath, "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	data.Location, _ = cfg.Zone()

	store, err := openStore(cfg.Session)
	if err != nil {
		logger.Error("session_store_failed", "backend", cfg.Session.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	scheduler := cron.New(cron.WithSeconds())
	if sweeper, ok := store.(session.Sweeper); ok {
		_, err := scheduler.AddFunc(cfg.Session.Sweep, func() {
			removed, err := sweeper.Sweep(context.Background(), cfg.Session.MaxIdle)
			if err != nil {
				logger.Warn("session_sweep_failed", "error", err)
				return
			}
			logger.Debug("session_sweep", "removed", removed)
		})
		if err != nil {
			logger.Error("session_sweep_schedule", "schedule", cfg.Session.Sweep, "error", err)
			os.Exit(1)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	csrfKey, err := loadCSRFKey(cfg, logger)
	if err != nil {
		logger.Error("csrf_key_failed", "error", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.APIBaseURL, api.Options{
		Timeout:   cfg.APITimeout,
		RateLimit: cfg.APIRateLimit,
		Burst:     cfg.APIBurst,
		Logger:    logger,
	})
	provider := session.NewProvider(store, logger, session.CookieOptions{
		Secure: cfg.Session.SecureCookie,
		MaxAge: int(cfg.Session.MaxIdle / time.Second),
	})
	server := web.New(provider, client, web.Options{
		CSRFKey: csrfKey,
		Secure:  cfg.Session.SecureCookie,
		Logger:  logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.APITimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", cfg.Listen, "api", cfg.APIBaseURL, "sessions", cfg.Session.Backend)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server_failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting_down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown_failed", "error", err)
	}
}

func openStore(cfg config.SessionConfig) (session.Store, error) {
	if cfg.Backend == config.BackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, err
		}
		return session.NewRedisStore(client, cfg.MaxIdle), nil
	}
	store, err := session.OpenBolt(cfg.BoltPath)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func loadCSRFKey(cfg *config.Config, logger *slog.Logger) ([]byte, error) {
	if cfg.CSRFKey != "" {
		return cfg.CSRFKeyBytes()
	}
	logger.Warn("csrf_key_generated", "hint", "set CSRF_KEY to keep forms valid across restarts")
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
