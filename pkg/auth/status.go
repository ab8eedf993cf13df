package auth

import (
	"github.com/giantswarm/oauthrest/pkg/client"
	pkgstrings "github.com/giantswarm/oauthrest/pkg/strings"
)

// Status values of StatusResponse.State.
const (
	StatusAuthenticated = "authenticated"
	StatusAuthRequired  = "auth_required"
)

// maskKeep is the number of trailing characters shown for masked credentials.
const maskKeep = 4

// StatusResponse represents the structured credential state of a client.
type StatusResponse struct {
	// State is "authenticated" when an access token is held, "auth_required" otherwise.
	State string `json:"state"`

	// ClientID is the configured OAuth client identifier.
	ClientID string `json:"client_id,omitempty"`

	// HasClientSecret reports whether a client secret is configured.
	HasClientSecret bool `json:"has_client_secret"`

	// AccessToken is the masked access token, empty when none is held.
	AccessToken string `json:"access_token,omitempty"`

	// AuthorizeURL is the authorization endpoint of the service.
	AuthorizeURL string `json:"authorize_url"`

	// APIBaseURL is the resource API base.
	APIBaseURL string `json:"api_base_url"`
}

// Authenticated reports whether resource calls can be made.
func (s StatusResponse) Authenticated() bool {
	return s.State == StatusAuthenticated
}

// StatusOf builds the StatusResponse of c.
func StatusOf(c *client.Client) StatusResponse {
	creds := c.Credentials()

	resp := StatusResponse{
		State:           StatusAuthRequired,
		ClientID:        creds.ClientID,
		HasClientSecret: !creds.ClientSecret.IsEmpty(),
		AuthorizeURL:    c.Endpoint().AuthURL,
		APIBaseURL:      c.Bases().API,
	}
	if creds.State() == client.HasToken {
		resp.State = StatusAuthenticated
		resp.AccessToken = pkgstrings.Mask(creds.AccessToken.Value(), maskKeep)
	}
	return resp
}
