package cli

import (
	"github.com/spf13/cobra"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

func triggerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trigger <sound>",
		Short: "Toggle a triggered sound by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts, domain.CommandTrigger, args[0], "")
		},
	}
}

func previewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <sound>",
		Short: "Play a sound once, outside the running theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts, domain.CommandPreview, args[0], "")
		},
	}
}
