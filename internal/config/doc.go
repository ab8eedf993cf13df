// Package config loads the oauthrest CLI configuration.
//
// Configuration is read from config.yaml in a single directory, by default
// ~/.config/oauthrest, and layered over built-in defaults. Environment
// variables override file values:
//
//	OAUTHREST_CLIENT_ID
//	OAUTHREST_CLIENT_SECRET
//	OAUTHREST_ACCESS_TOKEN
//	OAUTHREST_REDIRECT_URI
//
// Command-line flags override both; that last layer is applied by cmd.
//
// # File Format
//
//	client_id: "1234"
//	client_secret: "..."
//	redirect_uri: "http://localhost:8080/callback"
//	api_base_url: "https://www.strava.com/api/v3/"
//	auth_base_url: "https://www.strava.com/oauth/"
//	timeout: 30s
//	log_level: info
//
// Unknown keys are ignored. The legacy key "token" is accepted as an alias of
// "access_token".
package config
