package showcase

import (
	"log/slog"
)

// GatewayOption configures the Gateway.
type GatewayOption func(*Gateway)

// WithLogger sets a structured logger for the gateway and its sessions.
func WithLogger(logger *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithCredentialSource replaces the default environment lookup.
func WithCredentialSource(src CredentialSource) GatewayOption {
	return func(g *Gateway) {
		if src != nil {
			g.credential = src
		}
	}
}

// WithAPIKey uses a fixed credential instead of reading the environment.
func WithAPIKey(apiKey string) GatewayOption {
	return WithCredentialSource(func() (string, error) {
		return apiKey, nil
	})
}
