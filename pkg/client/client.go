package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/giantswarm/oauthrest/pkg/endpoint"
	pkgstrings "github.com/giantswarm/oauthrest/pkg/strings"

	"golang.org/x/oauth2"
)

const (
	// DefaultHTTPTimeout is the timeout of the default transport.
	DefaultHTTPTimeout = 30 * time.Second

	// logBodyMaxLen bounds response bodies in debug logs.
	logBodyMaxLen = 200
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the construction options of a Client.
type Config struct {
	// ClientID is the OAuth client identifier.
	ClientID string `yaml:"client_id" json:"client_id"`

	// ClientSecret is the OAuth client secret.
	ClientSecret string `yaml:"client_secret" json:"client_secret"`

	// AccessToken pre-seeds the access token.
	AccessToken string `yaml:"access_token" json:"access_token"`

	// Token is the legacy name of AccessToken, used when AccessToken is empty.
	Token string `yaml:"token" json:"token"`

	// RedirectURI is the default redirect_uri of authorization URLs.
	RedirectURI string `yaml:"redirect_uri" json:"redirect_uri"`
}

// ConfigFromMap builds a Config from loosely typed options. Unknown keys are ignored.
func ConfigFromMap(m map[string]string) Config {
	return Config{
		ClientID:     m["client_id"],
		ClientSecret: m["client_secret"],
		AccessToken:  m["access_token"],
		Token:        m["token"],
		RedirectURI:  m["redirect_uri"],
	}
}

// Client is an OAuth2 aware client for the resource API. It owns one
// CredentialSet and is safe for concurrent use.
type Client struct {
	credentials *CredentialSet
	redirectURI string
	bases       endpoint.Bases
	httpClient  Doer
	logger      *slog.Logger
}

var _ oauth2.TokenSource = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the transport.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.httpClient = d
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBases overrides the base URLs of both endpoint families.
func WithBases(bases endpoint.Bases) Option {
	return func(c *Client) {
		c.bases = bases
	}
}

// New creates a Client holding the credentials from cfg.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		credentials: &CredentialSet{},
		redirectURI: cfg.RedirectURI,
		bases:       endpoint.DefaultBases(),
		httpClient:  &http.Client{Timeout: DefaultHTTPTimeout},
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	token := cfg.AccessToken
	if token == "" {
		token = cfg.Token
	}
	c.credentials.Set(CredentialClientID, cfg.ClientID)
	c.credentials.Set(CredentialClientSecret, cfg.ClientSecret)
	if token != "" {
		c.credentials.Set(CredentialAccessToken, token)
	}

	return c
}

// SetCredential writes one credential. Names other than access_token,
// client_id and client_secret are ignored; the result reports whether the
// name was recognized.
func (c *Client) SetCredential(name, value string) bool {
	return c.credentials.Set(name, value)
}

// Credentials returns a redacted copy of the held credentials.
func (c *Client) Credentials() CredentialSnapshot {
	return c.credentials.Snapshot()
}

// State returns the credential state.
func (c *Client) State() State {
	return c.credentials.State()
}

// Bases returns the base URLs in use.
func (c *Client) Bases() endpoint.Bases {
	return c.bases
}

// Endpoint describes the authorization server for use with golang.org/x/oauth2.
func (c *Client) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:   c.bases.Auth + authorizePath,
		TokenURL:  c.bases.Auth + tokenPath,
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// Token returns the held access token. It implements oauth2.TokenSource.
func (c *Client) Token() (*oauth2.Token, error) {
	accessToken := c.credentials.AccessToken()
	if accessToken == "" {
		return nil, ErrMissingCredential
	}
	return &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}, nil
}

// Get issues an authenticated GET. params may be nil.
func (c *Client) Get(ctx context.Context, path string, params endpoint.Params) (Payload, error) {
	return c.Do(ctx, http.MethodGet, path, params)
}

// Post issues an authenticated POST. params are sent in the query string.
func (c *Client) Post(ctx context.Context, path string, params endpoint.Params) (Payload, error) {
	return c.Do(ctx, http.MethodPost, path, params)
}

// Put issues an authenticated PUT. params are sent in the query string.
func (c *Client) Put(ctx context.Context, path string, params endpoint.Params) (Payload, error) {
	return c.Do(ctx, http.MethodPut, path, params)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path string, params endpoint.Params) (Payload, error) {
	return c.Do(ctx, http.MethodDelete, path, params)
}

// Do issues an authenticated request against the resource API.
//
// Without an access token it returns ErrMissingCredential and sends nothing.
// Transport failures are returned unchanged. A status other than 200 yields
// an UnexpectedStatus error together with the parsed body.
func (c *Client) Do(ctx context.Context, method, path string, params endpoint.Params) (Payload, error) {
	req, err := c.newResourceRequest(ctx, method, path, params)
	if err != nil {
		return Payload{}, err
	}
	return c.send(req, endpoint.API, path)
}

func (c *Client) newResourceRequest(ctx context.Context, method, path string, params endpoint.Params) (*http.Request, error) {
	token, err := c.Token()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.bases.Build(path, params, endpoint.API), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	token.SetAuthHeader(req)
	return req, nil
}

// send performs req and parses the response. path is only used for logging;
// the query string may carry secrets and is never logged.
func (c *Client) send(req *http.Request, family endpoint.Family, path string) (Payload, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Request failed",
			"method", req.Method,
			"family", family.String(),
			"path", path,
			"error", withoutURL(err))
		return Payload{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, err
	}
	payload := parsePayload(body)

	attrs := []any{
		"method", req.Method,
		"family", family.String(),
		"path", path,
		"status", resp.StatusCode,
		"decoded", payload.OK(),
	}
	if family == endpoint.API {
		attrs = append(attrs, "body", pkgstrings.Truncate(string(body), logBodyMaxLen))
	}
	c.logger.Debug("Request completed", attrs...)

	if resp.StatusCode != http.StatusOK {
		return payload, unexpectedStatus(resp.StatusCode)
	}
	return payload, nil
}

// withoutURL strips the request URL, which may carry credentials, from a
// transport error.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
