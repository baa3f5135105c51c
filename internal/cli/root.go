package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ghtyrant/sinfonia-server/internal/infra/logger"
	"github.com/ghtyrant/sinfonia-server/internal/ui/tui"
	"github.com/ghtyrant/sinfonia-server/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	config    string
	url       string
	token     string
	timeoutMS int
	format    string
	debug     bool
	noHistory bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "sinfoniactl",
		Short:        "Remote control for a Sinfonia audio server",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Bare invocation opens the interactive sound board.
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			deps := tui.Deps{
				Invoker:   usecase.NewInvoke(app.cfg, app.runner, app.log),
				Logger:    logger.L(),
				ServerURL: app.cfg.Server.BaseURL,
			}
			return tui.Run(deps)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.config, "config", "", "Path to sinfoniactl.yaml (optional; autodetected if omitted)")
	pf.StringVar(&opts.url, "url", "", "Server base URL (overrides config)")
	pf.StringVar(&opts.token, "token", "", "Bearer token (overrides config)")
	pf.IntVar(&opts.timeoutMS, "timeout-ms", 0, "Request timeout in milliseconds (overrides config)")
	pf.StringVar(&opts.format, "format", "", "Output format: pretty|json (overrides config)")
	pf.BoolVar(&opts.debug, "debug", false, "enable verbose logging to .sinfoniactl/logs/sinfoniactl.log")
	pf.BoolVar(&opts.noHistory, "no-history", false, "Do not record this call in the history file")

	cmd.AddCommand(
		playCmd(opts),
		pauseCmd(opts),
		reloadCmd(opts),
		statusCmd(opts),
		libraryCmd(opts),
		driversCmd(opts),
		driverCmd(opts),
		volumeCmd(opts),
		triggerCmd(opts),
		previewCmd(opts),
		themeCmd(opts),
		historyCmd(opts),
		initCmd(),
		versionCmd(),
	)

	return cmd
}
