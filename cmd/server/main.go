// @title           Reservas Web API
// @version         1.0
// @description     Gateway for the academic space reservation screens: login, route guard and reservation form.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ucasl/reservas-web/internal/api"
	"github.com/ucasl/reservas-web/internal/api/handler"
	"github.com/ucasl/reservas-web/internal/api/metrics"
	"github.com/ucasl/reservas-web/internal/core/ports"
	"github.com/ucasl/reservas-web/internal/core/service"
	"github.com/ucasl/reservas-web/internal/infrastructure/backend"
	mongostore "github.com/ucasl/reservas-web/internal/infrastructure/db/mongo"
	redisstore "github.com/ucasl/reservas-web/internal/infrastructure/db/redis"
	"github.com/ucasl/reservas-web/internal/pkg/config"
	"github.com/ucasl/reservas-web/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// A missing .env is fine: production reads the real environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(ctx)
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "reservas-web",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return err
	}

	store, closeStore, err := openSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	client := backend.NewClient(backend.Config{
		BaseURL:  cfg.Backend.URL,
		Timeout:  cfg.Backend.Timeout,
		Observer: metrics.ObserveBackend,
	})

	tokens := service.NewSessionTokens(cfg.Session.Secret, cfg.Session.TTL)
	authService := service.NewAuthService(client, store, tokens, log.With().Str("component", "auth").Logger())
	forms := service.NewFormService(client, log.With().Str("component", "form").Logger(), service.WithLocation(loc))

	e := api.NewRouter(api.Dependencies{
		Auth:         authService,
		Forms:        forms,
		SessionStore: store,
		Location:     loc,
		Cookie: handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		Roles: cfg.ReservationRoles,
		Log:   log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.URL).Str("store", cfg.Session.Store).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openSessionStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SessionStore, func(), error) {
	switch cfg.Session.Store {
	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		store := mongostore.NewSessionStore(db)
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("could not create session TTL index")
		}
		return store, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}, nil
	default:
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewSessionStore(client), func() { _ = client.Close() }, nil
	}
}
