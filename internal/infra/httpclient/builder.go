package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

// BuildRequest builds an HTTP request from a domain RequestSpec.
func BuildRequest(ctx context.Context, spec domain.RequestSpec) (*http.Request, error) {
	if strings.TrimSpace(spec.URL) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidRequest,
			Err:  domain.ErrInvalidRequest,
		}
	}

	var bodyReader *bytes.Reader
	contentType := ""

	switch spec.Body.Type {
	case domain.BodyNone, "":
		bodyReader = bytes.NewReader(nil)
	case domain.BodyJSON:
		if spec.Body.JSON != nil {
			payload, err := json.Marshal(spec.Body.JSON)
			if err != nil {
				return nil, &domain.OpError{
					Op:   "httpclient.build",
					Kind: domain.KindInvalidRequest,
					Err:  err,
				}
			}
			bodyReader = bytes.NewReader(payload)
			contentType = "application/json"
		} else {
			bodyReader = bytes.NewReader(nil)
		}
	case domain.BodyRaw:
		// Raw payloads are sent byte for byte; no trimming.
		bodyReader = bytes.NewReader([]byte(spec.Body.Raw))
		contentType = spec.Body.ContentType
	default:
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidRequest,
			Err:  domain.ErrInvalidRequest,
		}
	}

	req, err := http.NewRequestWithContext(ctx, string(spec.Method), spec.URL, bodyReader)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidRequest,
			Err:  err,
		}
	}

	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}

	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}
