package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"folio/config"
	"folio/di"
	"folio/driver/reader_db"
	"folio/rest"
	"folio/utils/logger"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting server")

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}

	pool, err := reader_db.InitDBConnectionPool(context.Background())
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	e := echo.New()
	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("Error starting server", "error", err)
		panic(err)
	}
}
