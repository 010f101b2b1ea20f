package reader_db

import (
	"context"

	"folio/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func InitDBConnectionPool(ctx context.Context) (*pgxpool.Pool, error) {
	// Local development keeps credentials in a .env file; containers
	// rely on real environment variables.
	if err := godotenv.Load(); err != nil {
		logger.SafeInfo("no .env file loaded, using environment variables")
	}

	cfg := NewDatabaseConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.BuildConnectionString())
	if err != nil {
		logger.SafeError("Failed to create database pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.SafeError("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.SafeInfo("Connected to database", "database", cfg.DBName)

	return pool, nil
}
