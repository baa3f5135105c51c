package cli

import (
	"github.com/spf13/cobra"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

func volumeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "volume <value>",
		Short: "Set the master volume (0.0 to 1.0)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts, domain.CommandVolume, args[0], "")
		},
	}
}
