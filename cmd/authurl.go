package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAuthURLCmd() *cobra.Command {
	var (
		redirectURI string
		scope       string
		state       string
		params      []string
	)

	cmd := &cobra.Command{
		Use:   "auth-url",
		Short: "Print the authorization URL that starts the OAuth flow",
		Long: `Print the URL the resource owner opens to authorize this client.

The URL carries client_id, response_type=code and redirect_uri. The redirect
URI comes from --redirect-uri or the redirect_uri configuration value. A
random state value is added unless --state is given.

Examples:
  oauthrest auth-url --redirect-uri http://localhost:8080/callback
  oauthrest auth-url --scope read,activity:read_all --param approval_prompt=force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			extra, err := parseParams(params)
			if err != nil {
				return err
			}
			if redirectURI != "" {
				extra["redirect_uri"] = redirectURI
			}
			if scope != "" {
				extra["scope"] = scope
			}
			extra["state"] = state
			if state == "" {
				extra["state"] = uuid.NewString()
			}

			authURL, err := c.AuthURL(extra)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), authURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "Redirect URI registered for the client")
	cmd.Flags().StringVar(&scope, "scope", "", "Requested scopes")
	cmd.Flags().StringVar(&state, "state", "", "State value echoed back on the callback (default is a random UUID)")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Extra query parameter as key=value (repeatable)")

	return cmd
}
