package ports

import (
	"context"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

// CommandRunner executes a single prepared request against the server.
type CommandRunner interface {
	Run(ctx context.Context, req domain.RequestSpec) (domain.CallResult, error)
}
