package config

import (
	"time"

	"github.com/giantswarm/oauthrest/pkg/client"
	"github.com/giantswarm/oauthrest/pkg/endpoint"
)

// Config is the CLI configuration.
type Config struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	AccessToken  string `yaml:"access_token"`
	Token        string `yaml:"token"` // legacy alias of access_token
	RedirectURI  string `yaml:"redirect_uri"`

	APIBaseURL  string `yaml:"api_base_url"`
	AuthBaseURL string `yaml:"auth_base_url"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `yaml:"timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ClientConfig returns the construction options of a client.Client.
func (c Config) ClientConfig() client.Config {
	return client.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		AccessToken:  c.AccessToken,
		Token:        c.Token,
		RedirectURI:  c.RedirectURI,
	}
}

// Bases returns the endpoint bases described by the configuration.
func (c Config) Bases() endpoint.Bases {
	return endpoint.NewBases(c.APIBaseURL, c.AuthBaseURL)
}
