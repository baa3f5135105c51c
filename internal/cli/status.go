package cli

import (
	"github.com/spf13/cobra"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

func statusCmd(opts *rootOptions) *cobra.Command {
	var queryExpr string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current playback status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, opts, domain.CommandStatus, "", queryExpr)
		},
	}
	cmd.Flags().StringVarP(&queryExpr, "query", "q", "", "JSONPath expression applied to the response body (e.g. $.playing)")

	return cmd
}
