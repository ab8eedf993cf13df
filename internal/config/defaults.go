package config

import (
	"github.com/giantswarm/oauthrest/pkg/client"
	"github.com/giantswarm/oauthrest/pkg/endpoint"
)

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() Config {
	return Config{
		APIBaseURL:  endpoint.DefaultAPIBase,
		AuthBaseURL: endpoint.DefaultAuthBase,
		Timeout:     client.DefaultHTTPTimeout,
		LogLevel:    "info",
	}
}
