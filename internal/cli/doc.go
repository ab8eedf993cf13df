// Package cli turns client errors into messages with actionable guidance
// for the oauthrest command line.
//
// The wrapped errors keep the original in their chain, so errors.Is and
// client.StatusCode still see through them.
package cli
