package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/giantswarm/oauthrest/pkg/auth"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// Output formats of the status command.
const (
	outputTable = "table"
	outputJSON  = "json"
)

func newStatusCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the configured credentials",
		Long: `Show the client id, whether a secret is configured, and the
credential state. Secrets are never printed; the access token is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			status := auth.StatusOf(c)

			switch output {
			case outputJSON:
				data, err := json.MarshalIndent(status, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format status: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			case outputTable:
				printStatusTable(cmd, status)
				return nil
			default:
				return fmt.Errorf("unsupported output format %q (use %s or %s)", output, outputTable, outputJSON)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table, json)")
	return cmd
}

func printStatusTable(cmd *cobra.Command, status auth.StatusResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{text.FgHiCyan.Sprint("FIELD"), text.FgHiCyan.Sprint("VALUE")})

	state := text.FgYellow.Sprint(status.State)
	if status.Authenticated() {
		state = text.FgGreen.Sprint(status.State)
	}

	secret := "not set"
	if status.HasClientSecret {
		secret = "set"
	}

	token := status.AccessToken
	if token == "" {
		token = "-"
	}

	t.AppendRows([]table.Row{
		{"State", state},
		{"Client ID", valueOrDash(status.ClientID)},
		{"Client Secret", secret},
		{"Access Token", token},
		{"Authorize URL", status.AuthorizeURL},
		{"API Base URL", status.APIBaseURL},
	})
	t.Render()
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
