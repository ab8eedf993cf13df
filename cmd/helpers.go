package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/giantswarm/oauthrest/internal/config"
	"github.com/giantswarm/oauthrest/pkg/client"
	"github.com/giantswarm/oauthrest/pkg/endpoint"
	"github.com/giantswarm/oauthrest/pkg/logging"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// spinnerInterval is the frame interval of the progress spinner.
const spinnerInterval = 100 * time.Millisecond

// loadConfig resolves the configuration: defaults, config.yaml, environment,
// then global flags.
func loadConfig() (config.Config, error) {
	dir := configPath
	if dir == "" {
		var err error
		dir, err = config.GetDefaultConfigPath()
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return config.Config{}, err
	}

	for _, o := range []struct {
		flag   string
		target *string
	}{
		{clientID, &cfg.ClientID},
		{clientSecret, &cfg.ClientSecret},
		{accessToken, &cfg.AccessToken},
		{apiBaseURL, &cfg.APIBaseURL},
		{authBaseURL, &cfg.AuthBaseURL},
	} {
		if o.flag != "" {
			*o.target = o.flag
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setupLogging initializes logging to stderr. --debug wins over logLevel;
// an empty or unknown logLevel means info.
func setupLogging(cmd *cobra.Command, logLevel string) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		level = logging.LevelInfo
	}
	if debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
}

// newClient loads the configuration and builds a client from it. Logging is
// set up from the flags before loading so config loader output honours
// --debug, then again with the configured level.
func newClient(cmd *cobra.Command) (*client.Client, error) {
	setupLogging(cmd, "")
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	setupLogging(cmd, cfg.LogLevel)

	return client.New(cfg.ClientConfig(),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		client.WithLogger(logging.For("Client")),
		client.WithBases(cfg.Bases()),
	), nil
}

// parseParams turns key=value pairs into request parameters.
// A later pair with the same key wins.
func parseParams(pairs []string) (endpoint.Params, error) {
	params := endpoint.Params{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

// withSpinner runs fn while showing a progress spinner on stderr,
// unless --quiet is set or stderr is not the terminal.
func withSpinner(cmd *cobra.Command, message string, fn func() error) error {
	if quiet || cmd.ErrOrStderr() != os.Stderr {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], spinnerInterval, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	defer s.Stop()

	return fn()
}

// printPayload writes the decoded body as indented JSON, or the raw body
// when it could not be decoded.
func printPayload(w io.Writer, p client.Payload) error {
	if !p.OK() {
		if len(p.Raw()) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, string(p.Raw()))
		return err
	}

	out, err := json.MarshalIndent(p.Value(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
