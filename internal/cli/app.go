package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
	"github.com/ghtyrant/sinfonia-server/internal/infra/calllog"
	"github.com/ghtyrant/sinfonia-server/internal/infra/config"
	"github.com/ghtyrant/sinfonia-server/internal/infra/httpclient"
	"github.com/ghtyrant/sinfonia-server/internal/infra/httprunner"
	"github.com/ghtyrant/sinfonia-server/internal/infra/logger"
	"github.com/ghtyrant/sinfonia-server/internal/ports"
	"github.com/ghtyrant/sinfonia-server/internal/usecase"
)

type appCtx struct {
	root string
	cfg  domain.Config

	runner ports.CommandRunner
	log    ports.CallLog

	cleanup func() error
}

func (a *appCtx) Close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}

func loadApp(opts *rootOptions) (*appCtx, error) {
	root, cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: opts.debug})

	exec := httpclient.NewExecutor(
		httpclient.WithTimeout(time.Duration(cfg.Server.TimeoutMS) * time.Millisecond),
	)
	runner := httprunner.New(httprunner.WithExecutor(exec))

	var log ports.CallLog
	if !opts.noHistory {
		log = calllog.NewJSONLog(root)
	}

	return &appCtx{
		root:    root,
		cfg:     cfg,
		runner:  runner,
		log:     log,
		cleanup: cleanup,
	}, nil
}

// resolveConfig layers configuration: file < environment < flags.
func resolveConfig(opts *rootOptions) (string, domain.Config, error) {
	var (
		root string
		cfg  domain.Config
		err  error
	)

	if strings.TrimSpace(opts.config) != "" {
		abs, aerr := filepath.Abs(opts.config)
		if aerr != nil {
			return "", domain.Config{}, fmt.Errorf("invalid config path: %w", aerr)
		}
		cfg, err = config.LoadFile(abs)
		if err != nil {
			return "", domain.Config{}, err
		}
		root = filepath.Dir(abs)
	} else {
		wd, werr := os.Getwd()
		if werr != nil {
			return "", domain.Config{}, fmt.Errorf("get working directory: %w", werr)
		}
		root = wd
		if found, ferr := config.NewFinder().FindRoot(wd); ferr == nil {
			root = found
		}
		cfg, err = config.Load(root)
		if err != nil {
			return "", domain.Config{}, err
		}
	}

	cfg = config.ApplyEnv(cfg)

	if opts.url != "" {
		cfg.Server.BaseURL = opts.url
	}
	if opts.token != "" {
		cfg.Server.Token = opts.token
	}
	if opts.timeoutMS > 0 {
		cfg.Server.TimeoutMS = opts.timeoutMS
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}

	return root, cfg, nil
}

// runCommand is the shared body of the one-shot command wrappers.
func runCommand(cmd *cobra.Command, opts *rootOptions, c domain.Command, arg, queryExpr string) error {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	uc := usecase.NewInvoke(app.cfg, app.runner, app.log)
	res, err := uc.Execute(cmd.Context(), c, arg)
	if err != nil {
		return err
	}

	return printCall(os.Stdout, res, app.cfg.Output.Format, queryExpr)
}
