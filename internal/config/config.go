package config

import (
	"fmt"
	"os"
)

type Config struct {
	DBFile      string
	UploadsPath string
	Debug       bool
}

func Load() (*Config, error) {
	cfg := &Config{
		DBFile:      getEnv("PALAVER_DB", "palaver.db"),
		UploadsPath: getEnv("UPLOADS_PATH", "uploads"),
		Debug:       os.Getenv("PALAVER_DEBUG") != "",
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBFile == "" {
		return fmt.Errorf("PALAVER_DB must not be empty")
	}
	if c.UploadsPath == "" {
		return fmt.Errorf("UPLOADS_PATH must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
