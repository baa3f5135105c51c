package usecase

import (
	"context"
	"os"
	"time"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
	"github.com/ghtyrant/sinfonia-server/internal/infra/logger"
	"github.com/ghtyrant/sinfonia-server/internal/ports"
)

// Invoke dispatches a single control command against the server.
type Invoke struct {
	cfg    domain.Config
	runner ports.CommandRunner
	log    ports.CallLog // optional; nil disables history
}

func NewInvoke(cfg domain.Config, runner ports.CommandRunner, log ports.CallLog) *Invoke {
	return &Invoke{
		cfg:    cfg,
		runner: runner,
		log:    log,
	}
}

// Execute resolves cmd through the dispatch table, issues the single
// request it maps to, and records the outcome in the call history.
func (uc *Invoke) Execute(ctx context.Context, cmd domain.Command, arg string) (domain.CallResult, error) {
	spec, err := domain.BuildRequest(uc.cfg, cmd, arg)
	if err != nil {
		return domain.CallResult{}, err
	}

	result, err := uc.runner.Run(ctx, spec)
	if err != nil {
		return domain.CallResult{}, err
	}
	result.Command = cmd

	uc.record(result)
	return result, nil
}

// ExecuteUpload reads the theme document from path and uploads it.
// An empty path falls back to the configured theme file.
func (uc *Invoke) ExecuteUpload(ctx context.Context, path string) (domain.CallResult, error) {
	if path == "" {
		path = uc.cfg.Theme.File
	}

	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return domain.CallResult{}, &domain.OpError{
			Op:   "usecase.upload",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	return uc.Execute(ctx, domain.CommandUpload, string(b))
}

// record appends to the history best-effort; a broken history file must
// not fail the call itself.
func (uc *Invoke) record(res domain.CallResult) {
	if uc.log == nil {
		return
	}

	rec := domain.CallRecord{
		At:         time.Now().UTC(),
		Command:    res.Command,
		Method:     res.Method,
		URL:        res.URL,
		StatusCode: res.StatusCode,
		LatencyMS:  res.LatencyMS,
	}
	if res.Error != nil {
		rec.ErrorKind = string(res.Error.Kind)
	}

	if err := uc.log.Append(rec); err != nil {
		logger.L().Warn("calllog.append_failed", "err", err)
	}
}
