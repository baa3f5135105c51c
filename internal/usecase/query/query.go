// Package query projects values out of JSON response bodies using JSONPath.
package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

// Project applies a JSONPath expression to a JSON body and renders the
// matched value: scalars as plain text, everything else as compact JSON.
func Project(body []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", &domain.OpError{
			Op:   "query.project",
			Kind: domain.KindInvalidRequest,
			Err:  fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidRequest),
		}
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", &domain.OpError{
			Op:   "query.project",
			Kind: domain.KindInvalidRequest,
			Err:  fmt.Errorf("response body is not valid JSON: %w", err),
		}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", &domain.OpError{
			Op:   "query.project",
			Kind: domain.KindInvalidRequest,
			Err:  fmt.Errorf("jsonpath %q: %w", expr, err),
		}
	}

	return render(val)
}

func render(val any) (string, error) {
	switch v := val.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
