package cmd

import (
	"errors"
	"net/http"
	"os"

	"github.com/giantswarm/oauthrest/pkg/client"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeAuthRequired indicates a resource call was attempted without an access token.
	ExitCodeAuthRequired = 2
	// ExitCodeAuthFailed indicates the service rejected the credentials (401 or 403).
	ExitCodeAuthFailed = 3
)

// Global flags
var (
	configPath   string
	clientID     string
	clientSecret string
	accessToken  string
	apiBaseURL   string
	authBaseURL  string
	debug        bool
	quiet        bool
)

// rootCmd represents the base command for the oauthrest application.
var rootCmd = &cobra.Command{
	Use:   "oauthrest",
	Short: "Call an OAuth2 protected REST API from the command line",
	Long: `oauthrest talks to an OAuth2 protected REST API.

It builds the authorization URL that starts the authorization-code flow,
exchanges the returned code for an access token, and issues authenticated
GET, POST, PUT and DELETE requests with that token.

Credentials come from ~/.config/oauthrest/config.yaml, the OAUTHREST_*
environment variables, or flags, in increasing order of precedence.
Tokens are never written to disk.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	if errors.Is(err, client.ErrMissingCredential) {
		return ExitCodeAuthRequired
	}

	if status, ok := client.StatusCode(err); ok {
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return ExitCodeAuthFailed
		}
	}

	return ExitCodeError
}

func init() {
	rootCmd.SetVersionTemplate(versionTemplate)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Configuration directory (default is $HOME/.config/oauthrest)")
	flags.StringVar(&clientID, "client-id", "", "OAuth client ID")
	flags.StringVar(&clientSecret, "client-secret", "", "OAuth client secret")
	flags.StringVar(&accessToken, "token", "", "Access token to use for resource calls")
	flags.StringVar(&apiBaseURL, "api-base-url", "", "Base URL of the resource API")
	flags.StringVar(&authBaseURL, "auth-base-url", "", "Base URL of the OAuth endpoints")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAuthURLCmd())
	rootCmd.AddCommand(newExchangeCmd())
	rootCmd.AddCommand(newStatusCmd())
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		rootCmd.AddCommand(newRequestCmd(method))
	}
}
