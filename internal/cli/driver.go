package cli

import (
	"github.com/spf13/cobra"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

func driversCmd(opts *rootOptions) *cobra.Command {
	var queryExpr string

	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "List the audio drivers the server can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, opts, domain.CommandDrivers, "", queryExpr)
		},
	}
	cmd.Flags().StringVarP(&queryExpr, "query", "q", "", "JSONPath expression applied to the response body")

	return cmd
}

func driverCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "driver",
		Short: "Show or switch the active audio driver",
	}
	cmd.AddCommand(driverGetCmd(opts), driverSetCmd(opts))

	return cmd
}

func driverGetCmd(opts *rootOptions) *cobra.Command {
	var queryExpr string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the active audio driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, opts, domain.CommandDriverGet, "", queryExpr)
		},
	}
	cmd.Flags().StringVarP(&queryExpr, "query", "q", "", "JSONPath expression applied to the response body")

	return cmd
}

func driverSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id>",
		Short: "Switch to the driver with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts, domain.CommandDriverSet, args[0], "")
		},
	}
}
