package httprunner

import (
	"context"
	"net/http"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
	"github.com/ghtyrant/sinfonia-server/internal/infra/httpclient"
	"github.com/ghtyrant/sinfonia-server/internal/ports"
)

// Runner dispatches single requests and maps outcomes into CallResults.
type Runner struct {
	exec *httpclient.Executor
}

type Option func(*Runner)

// WithExecutor replaces the default executor.
func WithExecutor(e *httpclient.Executor) Option {
	return func(r *Runner) { r.exec = e }
}

func New(opts ...Option) *Runner {
	r := &Runner{
		exec: httpclient.NewExecutor(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.CommandRunner = (*Runner)(nil)

// Run issues one request. Transport failures are folded into the result
// (classified, with latency preserved); only request building fails outright.
func (r *Runner) Run(ctx context.Context, spec domain.RequestSpec) (domain.CallResult, error) {
	result := domain.CallResult{
		Method: spec.Method,
		URL:    spec.URL,
		Response: domain.ResponseSnapshot{
			Headers: map[string][]string{},
		},
	}

	req, err := httpclient.BuildRequest(ctx, spec)
	if err != nil {
		return domain.CallResult{}, err
	}

	resp, err := r.exec.Do(ctx, req)
	result.LatencyMS = resp.Duration.Milliseconds()
	if err != nil {
		result.Error = domain.NewRunError(err)
		return result, nil
	}

	result.StatusCode = resp.Status
	result.Response = domain.ResponseSnapshot{
		Headers:   cloneHeaders(resp.Headers),
		Body:      resp.Body,
		Truncated: resp.Truncated,
	}
	return result, nil
}

func cloneHeaders(h http.Header) map[string][]string {
	out := make(map[string][]string, len(h))
	for k, v := range h {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}
