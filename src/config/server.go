package config

import (
	"net"
	"os"
)

const defaultHealthPort = "8889"

// ServerConfig holds settings for `goaround-icons serve`.
type ServerConfig struct {
	Listen      string `yaml:"listen"`        // address to bind (default: ":8889")
	CacheMaxAge int    `yaml:"cache_max_age"` // Cache-Control max-age for icon responses, seconds
}

// DefaultServerConfig returns the stock server settings.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Listen:      ":" + defaultHealthPort,
		CacheMaxAge: 3600,
	}
}

// HealthURL returns the health endpoint the healthcheck command probes.
// HEALTHCHECK_PORT overrides the port taken from Listen.
func (s ServerConfig) HealthURL() string {
	port := os.Getenv("HEALTHCHECK_PORT")
	if port == "" {
		if _, p, err := net.SplitHostPort(s.Listen); err == nil && p != "" {
			port = p
		} else {
			port = defaultHealthPort
		}
	}
	return "http://localhost:" + port + "/api/health"
}
