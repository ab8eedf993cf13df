package cli

import (
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/giantswarm/oauthrest/pkg/client"
)

// ConnectionErrorType categorizes the type of connection error.
type ConnectionErrorType int

const (
	// ConnectionErrorUnknown indicates an unclassified connection error.
	ConnectionErrorUnknown ConnectionErrorType = iota
	// ConnectionErrorTLS indicates a TLS/certificate verification error.
	ConnectionErrorTLS
	// ConnectionErrorNetwork indicates a network connectivity error (e.g., refused, unreachable).
	ConnectionErrorNetwork
	// ConnectionErrorTimeout indicates a connection timeout.
	ConnectionErrorTimeout
	// ConnectionErrorDNS indicates a DNS resolution failure.
	ConnectionErrorDNS
	// ConnectionErrorCanceled indicates the request was aborted.
	ConnectionErrorCanceled
)

// String returns a human-readable name for the connection error type.
func (t ConnectionErrorType) String() string {
	switch t {
	case ConnectionErrorTLS:
		return "TLS certificate error"
	case ConnectionErrorNetwork:
		return "Network error"
	case ConnectionErrorTimeout:
		return "Connection timeout"
	case ConnectionErrorDNS:
		return "DNS resolution error"
	case ConnectionErrorCanceled:
		return "Request canceled"
	default:
		return "Connection error"
	}
}

// ConnectionError indicates the service could not be reached.
type ConnectionError struct {
	// Endpoint is the base URL that could not be reached.
	Endpoint string
	// Type categorizes the connection error.
	Type ConnectionErrorType
	// Reason is the transport error.
	Reason error
}

// Error returns the category, the endpoint and the transport error. The
// request URL is left out since token requests carry the client secret.
func (e *ConnectionError) Error() string {
	reason := e.Reason
	var urlErr *url.Error
	if errors.As(reason, &urlErr) {
		reason = urlErr.Err
	}
	return fmt.Sprintf("%s reaching %s: %v", e.Type, e.Endpoint, reason)
}

// Unwrap returns the transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Reason
}

// ClassifyConnectionError wraps a transport error in a ConnectionError.
// It returns nil for a nil error.
func ClassifyConnectionError(err error, endpoint string) *ConnectionError {
	if err == nil {
		return nil
	}

	ce := &ConnectionError{Endpoint: endpoint, Type: ConnectionErrorUnknown, Reason: err}

	var dnsErr *net.DNSError
	switch {
	case isTLSError(err):
		ce.Type = ConnectionErrorTLS
	case errors.As(err, &dnsErr):
		ce.Type = ConnectionErrorDNS
	case isTimeoutError(err):
		ce.Type = ConnectionErrorTimeout
	case strings.Contains(err.Error(), "context canceled"):
		ce.Type = ConnectionErrorCanceled
	case isNetworkError(err.Error()):
		ce.Type = ConnectionErrorNetwork
	}
	return ce
}

func isTLSError(err error) bool {
	var certErr *x509.CertificateInvalidError
	var hostErr *x509.HostnameError
	var unknownAuthErr *x509.UnknownAuthorityError

	if errors.As(err, &certErr) || errors.As(err, &hostErr) || errors.As(err, &unknownAuthErr) {
		return true
	}

	errStr := err.Error()
	for _, keyword := range []string{"x509:", "certificate", "tls:", "TLS handshake"} {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

func isNetworkError(errStr string) bool {
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no route to host",
		"dial tcp",
		"connect:",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// AuthRequiredError indicates a resource call was made without an access token.
type AuthRequiredError struct {
	// Reason is the client's missing credential error.
	Reason error
}

// Error returns a user-friendly error message with actionable guidance.
func (e *AuthRequiredError) Error() string {
	return fmt.Sprintf(`%v

To obtain an access token, run:
  oauthrest auth-url --redirect-uri <uri>
  oauthrest exchange <code>

Then pass it with --token or OAUTHREST_ACCESS_TOKEN.`, e.Reason)
}

// Unwrap returns the underlying error.
func (e *AuthRequiredError) Unwrap() error {
	return e.Reason
}

// AuthFailedError indicates the service rejected the credentials.
type AuthFailedError struct {
	// Endpoint is the base URL that rejected the request.
	Endpoint string
	// Reason is the client's unexpected status error.
	Reason error
}

// Error returns a user-friendly error message with actionable guidance.
func (e *AuthFailedError) Error() string {
	return fmt.Sprintf(`Authentication failed for %s: %v

The access token may have expired or lack the required scope.
To check the configured credentials, run:
  oauthrest status`, e.Endpoint, e.Reason)
}

// Unwrap returns the underlying error.
func (e *AuthFailedError) Unwrap() error {
	return e.Reason
}

// Describe wraps err from a call against endpoint with guidance for the
// user. Invalid arguments and other statuses are returned unchanged.
func Describe(err error, endpoint string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, client.ErrMissingCredential) {
		return &AuthRequiredError{Reason: err}
	}

	var clientErr *client.Error
	if !errors.As(err, &clientErr) {
		return ClassifyConnectionError(err, endpoint)
	}

	if status, ok := client.StatusCode(err); ok {
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return &AuthFailedError{Endpoint: endpoint, Reason: err}
		}
	}
	return err
}
