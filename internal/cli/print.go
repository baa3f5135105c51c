package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
	"github.com/ghtyrant/sinfonia-server/internal/usecase/query"
)

// printCall renders the result and converts failures into an error so the
// process exit code reflects the call outcome.
func printCall(w io.Writer, res domain.CallResult, format, queryExpr string) error {
	switch {
	case queryExpr != "" && res.Error == nil:
		out, err := query.Project(res.Response.Body, queryExpr)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	case format == "json":
		if err := printJSONCall(w, res); err != nil {
			return err
		}
	case format == "pretty" || format == "":
		printPrettyCall(w, res)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}

	return callError(res)
}

func callError(res domain.CallResult) error {
	if res.Error != nil {
		return fmt.Errorf("%s failed: %s (%s)", res.Command, res.Error.Message, res.Error.Kind)
	}
	if !res.Success() {
		return fmt.Errorf("%s failed: server returned %d", res.Command, res.StatusCode)
	}
	return nil
}

func printJSONCall(w io.Writer, res domain.CallResult) error {
	payload := map[string]any{
		"command":    res.Command,
		"method":     res.Method,
		"url":        res.URL,
		"latency_ms": res.LatencyMS,
	}
	if res.Error != nil {
		payload["error"] = map[string]string{
			"kind":    string(res.Error.Kind),
			"message": res.Error.Message,
		}
	} else {
		payload["status"] = res.StatusCode
		if len(res.Response.Body) > 0 {
			if json.Valid(res.Response.Body) {
				payload["body"] = json.RawMessage(res.Response.Body)
			} else {
				payload["body"] = string(res.Response.Body)
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func printPrettyCall(w io.Writer, res domain.CallResult) {
	fmt.Fprintf(w, "Command:  %s\n", res.Command)
	fmt.Fprintf(w, "Request:  %s %s\n", res.Method, res.URL)

	if res.Error != nil {
		fmt.Fprintf(w, "Error:    %s (%s)\n", res.Error.Message, res.Error.Kind)
		return
	}

	fmt.Fprintf(w, "Status:   %d\n", res.StatusCode)
	fmt.Fprintf(w, "Latency:  %dms\n", res.LatencyMS)

	if len(res.Response.Body) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, formatBody(res.Response.Body))
	if res.Response.Truncated {
		fmt.Fprintln(w, "(body truncated)")
	}
}

func formatBody(body []byte) string {
	if json.Valid(body) {
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err == nil {
			return buf.String()
		}
	}
	return string(body)
}
