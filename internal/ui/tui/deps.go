package tui

import (
	"context"
	"log/slog"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

// Invoker dispatches a single control command against the server.
// *usecase.Invoke satisfies it.
type Invoker interface {
	Execute(ctx context.Context, cmd domain.Command, arg string) (domain.CallResult, error)
}

type Deps struct {
	Invoker Invoker

	Logger    *slog.Logger
	ServerURL string
}
