package cmd

import (
	"github.com/giantswarm/oauthrest/internal/cli"
	"github.com/giantswarm/oauthrest/pkg/client"

	"github.com/spf13/cobra"
)

func newExchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange CODE",
		Short: "Exchange an authorization code for an access token",
		Long: `Exchange the code received on the redirect URI for an access token.

The token response is printed to stdout. The access token is not stored;
pass it to later calls with --token or OAUTHREST_ACCESS_TOKEN.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			var payload client.Payload
			err = withSpinner(cmd, "Exchanging authorization code...", func() error {
				var exchangeErr error
				payload, exchangeErr = c.ExchangeToken(cmd.Context(), args[0])
				return exchangeErr
			})
			if printErr := printPayload(cmd.OutOrStdout(), payload); printErr != nil && err == nil {
				err = printErr
			}
			return cli.Describe(err, c.Bases().Auth)
		},
	}
}
