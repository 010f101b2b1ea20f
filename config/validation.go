package config

import "fmt"

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be positive, got %d", config.Database.MaxConnections)
	}
	if config.Reading.DefaultWordsPerMinute < 1 {
		return fmt.Errorf("default words per minute must be positive, got %d", config.Reading.DefaultWordsPerMinute)
	}
	if config.Reading.MaxBatchSize < 1 {
		return fmt.Errorf("max batch size must be positive, got %d", config.Reading.MaxBatchSize)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", config.Logging.Level)
	}

	return nil
}
