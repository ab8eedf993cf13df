// Package client is an OAuth2 authorization-code client for a REST service.
//
// A Client holds one set of credentials: the OAuth client id and secret and,
// once known, an access token. It builds the authorization URL that starts
// the flow, exchanges the returned code for an access token, and issues
// bearer-authenticated GET, POST, PUT and DELETE requests against the
// resource API.
//
// # Credential State
//
// A client starts in NoToken unless an access token is configured. Setting
// the access_token credential, or a successful ExchangeToken, moves it to
// HasToken. Nothing moves it back. Resource calls made in NoToken fail with
// ErrMissingCredential before any request is sent.
//
// # Usage
//
//	c := client.New(client.Config{
//		ClientID:     "1234",
//		ClientSecret: "secret",
//	})
//
//	authURL, err := c.AuthURL(endpoint.Params{"redirect_uri": "https://app.example/cb"})
//	// redirect the user, receive code on the callback
//
//	if _, err := c.ExchangeToken(ctx, code); err != nil {
//		return err
//	}
//
//	activities, err := c.Get(ctx, "athlete/activities", endpoint.Params{"per_page": "10"})
//	if status, ok := client.StatusCode(err); ok {
//		// activities may still hold the decoded error body
//	}
//
// # Response Bodies
//
// Bodies are decoded as JSON whatever the status. A body that is not text or
// not JSON gives a Payload whose OK method returns false. That is not an
// error.
//
// # Asynchronous Calls
//
// Start and StartTokenExchange return a Future that completes exactly once.
// Future.Abort cancels the request.
package client
