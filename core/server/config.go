package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// CorsOrigins is a comma-separated list of origins allowed to call the API.
	CorsOrigins string `mapstructure:"cors_origins" default:"http://localhost:5173"`
}

// AllowedOrigins returns the configured CORS origins trimmed and re-joined
// in the form the CORS middleware expects.
func (c Config) AllowedOrigins() string {
	parts := strings.Split(c.CorsOrigins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ",")
}
