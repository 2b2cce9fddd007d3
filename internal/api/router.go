package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/webportal/portal-client/internal/api/handler"
	"github.com/webportal/portal-client/internal/api/middleware"
	"github.com/webportal/portal-client/internal/core/domain"
	"github.com/webportal/portal-client/internal/core/ports"
)

// NewRouter builds the mock backend: token-checked directory endpoints,
// health probe, and Prometheus metrics. tokenSecret must match the secret
// the client mints with.
func NewRouter(directory ports.UserDirectory, tokenSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	// Per-instance registry so building several routers (tests) never
	// double-registers collectors.
	promRegistry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "portal_api",
		Registerer: promRegistry,
	}))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: promRegistry,
	}))

	// --- Health probe ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)

	// --- Directory routes ---
	userHandler := handler.NewUserHandler(directory)
	users := e.Group("/users", middleware.Auth(tokenSecret))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	// Deletion is privileged: a signed-in non-admin hitting it gets the
	// 403 the client redirects to /unauthorized on.
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	return e
}
