package domain

import (
	"context"
	"errors"
	"net"
	"net/url"
	"syscall"
	"testing"
)

func TestNewRunErrorNil(t *testing.T) {
	if NewRunError(nil) != nil {
		t.Error("expected nil for nil error")
	}
}

func TestNewRunErrorClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want RunErrorKind
	}{
		{"deadline", context.DeadlineExceeded, RunErrorTimeout},
		{"wrapped deadline", &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded}, RunErrorTimeout},
		{"dns", &net.DNSError{Err: "no such host", Name: "nowhere.invalid"}, RunErrorDNS},
		{"refused", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, RunErrorConn},
		{"wrapped refused", &url.Error{Op: "Post", URL: "http://x", Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}}, RunErrorConn},
		{"plain", errors.New("boom"), RunErrorUnknown},
	}

	for _, c := range cases {
		got := NewRunError(c.err)
		if got == nil {
			t.Fatalf("%s: got nil", c.name)
		}
		if got.Kind != c.want {
			t.Errorf("%s: kind = %s, want %s", c.name, got.Kind, c.want)
		}
		if got.Message == "" {
			t.Errorf("%s: empty message", c.name)
		}
	}
}

func TestCallResultSuccess(t *testing.T) {
	cases := []struct {
		name string
		res  CallResult
		want bool
	}{
		{"ok", CallResult{StatusCode: 200}, true},
		{"created", CallResult{StatusCode: 201}, true},
		{"unauthorized", CallResult{StatusCode: 401}, false},
		{"server error", CallResult{StatusCode: 500}, false},
		{"transport error", CallResult{StatusCode: 200, Error: &RunError{Kind: RunErrorConn}}, false},
		{"zero", CallResult{}, false},
	}

	for _, c := range cases {
		if got := c.res.Success(); got != c.want {
			t.Errorf("%s: Success() = %v, want %v", c.name, got, c.want)
		}
	}
}
