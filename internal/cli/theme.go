package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ghtyrant/sinfonia-server/internal/usecase"
)

func themeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the theme loaded on the server",
	}
	cmd.AddCommand(themeUploadCmd(opts))

	return cmd
}

func themeUploadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload [file]",
		Short: "Upload a theme file and make it the active theme",
		Long: `Upload a theme file and make it the active theme.

Without an argument the theme file configured under theme.file in
sinfoniactl.yaml is uploaded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			uc := usecase.NewInvoke(app.cfg, app.runner, app.log)
			res, err := uc.ExecuteUpload(cmd.Context(), path)
			if err != nil {
				return err
			}

			return printCall(os.Stdout, res, app.cfg.Output.Format, "")
		},
	}
}
