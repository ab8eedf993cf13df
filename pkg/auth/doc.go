// Package auth describes the credential state of a client in a form suited
// for display and JSON output. Secret values never appear in it.
package auth
