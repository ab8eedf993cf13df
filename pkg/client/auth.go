package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/giantswarm/oauthrest/pkg/endpoint"
)

const (
	authorizePath = "authorize"
	tokenPath     = "token"

	// ResponseTypeCode is the response_type of the authorization-code flow.
	ResponseTypeCode = "code"
)

// AuthURL returns the URL the resource owner is redirected to in order to
// start the authorization-code flow. It never touches the network.
//
// client_id and response_type=code are added by default, as is the
// configured redirect URI; values in params take precedence. A nil params
// map, or a missing redirect_uri after merging, is an InvalidArgument error.
func (c *Client) AuthURL(params endpoint.Params) (string, error) {
	if params == nil {
		return "", invalidArgument("authorization parameters are required")
	}

	defaults := endpoint.Params{
		CredentialClientID: c.credentials.ClientID(),
		"response_type":    ResponseTypeCode,
	}
	if c.redirectURI != "" {
		defaults["redirect_uri"] = c.redirectURI
	}

	merged := defaults.Merge(params)
	if merged["redirect_uri"] == "" {
		return "", invalidArgument("redirect_uri is required")
	}

	return c.bases.Build(authorizePath, merged, endpoint.Auth), nil
}

// ExchangeToken swaps an authorization code for an access token.
//
// The request is a POST to the token endpoint with code, client_id and
// client_secret in the query string. The body is parsed whatever the status;
// when it is an object carrying access_token, that token becomes the held
// credential before ExchangeToken returns.
func (c *Client) ExchangeToken(ctx context.Context, code string) (Payload, error) {
	req, err := c.newTokenRequest(ctx, code)
	if err != nil {
		return Payload{}, err
	}
	return c.exchange(req)
}

func (c *Client) newTokenRequest(ctx context.Context, code string) (*http.Request, error) {
	if code == "" {
		return nil, invalidArgument("authorization code is required")
	}

	creds := c.credentials.Snapshot()
	params := endpoint.Params{
		"code":                 code,
		CredentialClientID:     creds.ClientID,
		CredentialClientSecret: creds.ClientSecret.Value(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.bases.Build(tokenPath, params, endpoint.Auth), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) exchange(req *http.Request) (Payload, error) {
	payload, err := c.send(req, endpoint.Auth, tokenPath)

	if token, ok := payload.accessToken(); ok {
		c.credentials.Set(CredentialAccessToken, token)
		c.logger.Info("Stored access token from token exchange",
			"access_token", NewSecret(token))
	}

	return payload, err
}
