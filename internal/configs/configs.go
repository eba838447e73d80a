/*
Package configs loads the application's configuration from environment
variables.

Recognized variables: ENVIRONMENT, PORT, and ALLOWED_ORIGINS (comma
separated). Every value has a development default.
*/
package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig contains all configuration parameters required to run the
// server. All values come from environment variables.
type AppConfig struct {
	// Environment is the deployment environment ("development" or "production").
	Environment string

	// Port is the TCP port the HTTP server listens on.
	Port int

	// AllowedOrigins lists the origins accepted for CORS and WebSocket
	// upgrades outside development.
	AllowedOrigins []string
}

// LoadConfig reads and validates the application configuration from the
// environment.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{}
	}

	return cfg, nil
}
