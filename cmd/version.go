package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// versionTemplate renders --version the same way as the version command.
const versionTemplate = `{{printf "oauthrest version %s\n" .Version}}`

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of oauthrest",
		Long: `Print the version of oauthrest and the Go runtime it was built with.
Use --short to print the version alone, for scripts.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := GetVersion()
			if v == "" {
				v = "dev"
			}
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "oauthrest version %s\n", v)
			fmt.Fprintf(cmd.OutOrStdout(), "go %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version")
	return cmd
}
