package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/giantswarm/oauthrest/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/oauthrest"
	configFileName = "config.yaml"
)

// Environment variables overriding file values.
const (
	EnvClientID     = "OAUTHREST_CLIENT_ID"
	EnvClientSecret = "OAUTHREST_CLIENT_SECRET"
	EnvAccessToken  = "OAUTHREST_ACCESS_TOKEN"
	EnvRedirectURI  = "OAUTHREST_REDIRECT_URI"
)

// osUserHomeDir is swapped in tests.
var osUserHomeDir = os.UserHomeDir

// GetDefaultConfigPath returns ~/.config/oauthrest.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// LoadConfig loads config.yaml from configPath over the defaults and then
// applies environment overrides. A missing file is not an error.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
	case err != nil:
		return Config{}, fmt.Errorf("error reading config from %s: %w", configFilePath, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
		}
		logging.Debug("ConfigLoader", "Loaded configuration from %s", configFilePath)
	}

	applyEnv(&config)

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %s: %w", configFilePath, err)
	}
	return config, nil
}

func applyEnv(config *Config) {
	overrides := []struct {
		name   string
		target *string
	}{
		{EnvClientID, &config.ClientID},
		{EnvClientSecret, &config.ClientSecret},
		{EnvAccessToken, &config.AccessToken},
		{EnvRedirectURI, &config.RedirectURI},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.name); v != "" {
			*o.target = v
		}
	}
}

// Validate checks the base URLs and the timeout.
func (c Config) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"api_base_url", c.APIBaseURL},
		{"auth_base_url", c.AuthBaseURL},
	} {
		if f.value == "" {
			continue
		}
		u, err := url.Parse(f.value)
		if err != nil {
			return ValidationError{Field: f.name, Value: f.value, Message: err.Error()}
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ValidationError{Field: f.name, Value: f.value, Message: "must be an absolute http(s) URL"}
		}
	}
	if c.Timeout < 0 {
		return ValidationError{Field: "timeout", Value: c.Timeout.String(), Message: "must not be negative"}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Value: c.LogLevel, Message: "must be one of debug, info, warn, error"}
	}
	return nil
}
