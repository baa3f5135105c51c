package domain

import (
	"context"
	"errors"
	"net"
	"time"
)

// RunErrorKind is a high-level classification of transport errors.
type RunErrorKind string

const (
	RunErrorUnknown RunErrorKind = "unknown"
	RunErrorTimeout RunErrorKind = "timeout"
	RunErrorDNS     RunErrorKind = "dns"
	RunErrorConn    RunErrorKind = "connection"
)

// RunError represents a structured error produced by a runner.
type RunError struct {
	Kind    RunErrorKind
	Message string
}

// NewRunError classifies err into a RunError. Returns nil for nil errors.
func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}

	kind := RunErrorUnknown

	var netErr net.Error
	var dnsErr *net.DNSError
	var opErr *net.OpError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = RunErrorTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = RunErrorTimeout
	case errors.As(err, &dnsErr):
		kind = RunErrorDNS
	case errors.As(err, &opErr):
		kind = RunErrorConn
	}

	return &RunError{Kind: kind, Message: err.Error()}
}

// ResponseSnapshot stores a bounded view of the response.
// Keep it generic so the domain does not depend on net/http types.
type ResponseSnapshot struct {
	Headers   map[string][]string
	Body      []byte
	Truncated bool
}

// CallResult represents the outcome of dispatching a single command.
type CallResult struct {
	Command Command
	Method  HTTPMethod
	URL     string

	StatusCode int
	LatencyMS  int64

	Response ResponseSnapshot
	Error    *RunError
}

// Success reports whether the call reached the server and got a 2xx back.
func (r CallResult) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// CallRecord is one persisted call-history entry.
type CallRecord struct {
	At         time.Time  `json:"at"`
	Command    Command    `json:"command"`
	Method     HTTPMethod `json:"method"`
	URL        string     `json:"url"`
	StatusCode int        `json:"status_code,omitempty"`
	LatencyMS  int64      `json:"latency_ms"`
	ErrorKind  string     `json:"error_kind,omitempty"`
}
