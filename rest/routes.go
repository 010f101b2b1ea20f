package rest

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"folio/config"
	"folio/di"
	custommiddleware "folio/middleware"
	"folio/utils/logger"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Use(custommiddleware.RequestIDMiddleware())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.TimeoutWithConfig(echomiddleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))
	e.Use(otelecho.Middleware("folio"))
	e.Use(custommiddleware.TraceStatusMiddleware())
	e.Use(custommiddleware.MetricsMiddleware())
	e.Use(custommiddleware.LoggingMiddleware(logger.Logger))

	e.GET("/v1/health", handleHealth())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1", custommiddleware.UserContextMiddleware(cfg.Reading.DefaultWordsPerMinute))

	registerReadingListRoutes(v1, container)
	registerArticleRoutes(v1, container)
	registerTagRoutes(v1, container)
	registerFeedRoutes(v1, container)
}
