package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/ucasl/reservas-web/internal/api/handler"
	"github.com/ucasl/reservas-web/internal/api/middleware"
	"github.com/ucasl/reservas-web/internal/core/ports"

	_ "github.com/ucasl/reservas-web/docs"
)

// Dependencies is everything the HTTP layer needs from the core.
type Dependencies struct {
	Auth         ports.AuthService
	Forms        ports.FormFactory
	SessionStore handler.Pinger
	Location     *time.Location
	Cookie       handler.CookieConfig
	// Roles allowed on the reservation form. Empty means any signed-in user.
	Roles []string
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("reservas"))
	e.Use(middleware.Session(d.Auth, d.Cookie.Name, d.Log))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Cookie)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Reservation form (guarded) ---
	reservations := handler.NewReservationHandler(d.Forms, d.Location)
	g := e.Group("/reservas", middleware.Guard(d.Roles...))
	g.GET("/novo", reservations.New)
	g.GET("/:id/editar", reservations.Edit)
	g.POST("/horario", reservations.CheckTime)
	g.POST("/cancelar", reservations.Cancel)
	g.POST("", reservations.Create)
	g.PUT("/:id", reservations.Update)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(map[string]handler.Pinger{
		"session_store": d.SessionStore,
	})

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Tooling ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
