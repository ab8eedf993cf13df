package cmd

import (
	"fmt"
	"strings"

	"github.com/giantswarm/oauthrest/internal/cli"
	"github.com/giantswarm/oauthrest/pkg/client"

	"github.com/spf13/cobra"
)

// newRequestCmd creates the command issuing an authenticated request with
// the given HTTP method.
func newRequestCmd(method string) *cobra.Command {
	var params []string
	name := strings.ToLower(method)

	cmd := &cobra.Command{
		Use:   name + " PATH",
		Short: fmt.Sprintf("Send an authenticated %s request to the API", method),
		Long: fmt.Sprintf(`Send an authenticated %s request to PATH under the API base URL.

Parameters are sent in the query string. The response body is printed
whatever the status code; a status other than 200 also fails the command.

Examples:
  oauthrest %s athlete
  oauthrest %s athlete/activities --param per_page=10`, method, name, name),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}

			query, err := parseParams(params)
			if err != nil {
				return err
			}

			var payload client.Payload
			err = withSpinner(cmd, fmt.Sprintf("%s %s...", method, args[0]), func() error {
				var doErr error
				payload, doErr = c.Do(cmd.Context(), method, args[0], query)
				return doErr
			})
			if printErr := printPayload(cmd.OutOrStdout(), payload); printErr != nil && err == nil {
				err = printErr
			}
			return cli.Describe(err, c.Bases().API)
		},
	}

	cmd.Flags().StringArrayVar(&params, "param", nil, "Query parameter as key=value (repeatable)")
	return cmd
}
