package cli

import (
	"github.com/spf13/cobra"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

func libraryCmd(opts *rootOptions) *cobra.Command {
	var queryExpr string

	cmd := &cobra.Command{
		Use:   "library",
		Short: "List the sounds available on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, opts, domain.CommandLibrary, "", queryExpr)
		},
	}
	cmd.Flags().StringVarP(&queryExpr, "query", "q", "", "JSONPath expression applied to the response body (e.g. $.sounds)")

	return cmd
}
