package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
	"github.com/ghtyrant/sinfonia-server/internal/infra/httprunner"
)

type fakeRunner struct {
	spec   domain.RequestSpec
	called int
	result domain.CallResult
	err    error
}

func (f *fakeRunner) Run(_ context.Context, spec domain.RequestSpec) (domain.CallResult, error) {
	f.called++
	f.spec = spec
	if f.err != nil {
		return domain.CallResult{}, f.err
	}
	res := f.result
	res.Method = spec.Method
	res.URL = spec.URL
	return res, nil
}

type fakeLog struct {
	recs []domain.CallRecord
	err  error
}

func (f *fakeLog) Append(rec domain.CallRecord) error {
	if f.err != nil {
		return f.err
	}
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeLog) List(int) ([]domain.CallRecord, error) { return f.recs, nil }

func cfgFor(url string) domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Server.BaseURL = url
	cfg.Server.Token = "abc123"
	return cfg
}

func TestExecuteDispatchesAndRecords(t *testing.T) {
	runner := &fakeRunner{result: domain.CallResult{StatusCode: 200}}
	log := &fakeLog{}
	uc := NewInvoke(cfgFor("http://example:9090"), runner, log)

	res, err := uc.Execute(context.Background(), domain.CommandTrigger, "thunder")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if runner.called != 1 {
		t.Fatalf("runner called %d times, want 1", runner.called)
	}
	if runner.spec.URL != "http://example:9090/trigger" {
		t.Errorf("url = %s", runner.spec.URL)
	}
	if runner.spec.Headers["Authorization"] != "Bearer abc123" {
		t.Errorf("Authorization = %q", runner.spec.Headers["Authorization"])
	}
	if res.Command != domain.CommandTrigger {
		t.Errorf("command = %s", res.Command)
	}

	if len(log.recs) != 1 {
		t.Fatalf("history has %d records, want 1", len(log.recs))
	}
	if log.recs[0].Command != domain.CommandTrigger || log.recs[0].StatusCode != 200 {
		t.Errorf("record = %+v", log.recs[0])
	}
}

func TestExecuteUnknownCommandIssuesNoRequest(t *testing.T) {
	runner := &fakeRunner{}
	log := &fakeLog{}
	uc := NewInvoke(cfgFor("http://example:9090"), runner, log)

	_, err := uc.Execute(context.Background(), domain.Command("explode"), "")
	if !errors.Is(err, domain.ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
	if runner.called != 0 {
		t.Errorf("runner called %d times, want 0", runner.called)
	}
	if len(log.recs) != 0 {
		t.Errorf("history has %d records, want 0", len(log.recs))
	}
}

func TestExecuteHistoryFailureDoesNotFailCall(t *testing.T) {
	runner := &fakeRunner{result: domain.CallResult{StatusCode: 200}}
	log := &fakeLog{err: errors.New("disk full")}
	uc := NewInvoke(cfgFor("http://example:9090"), runner, log)

	res, err := uc.Execute(context.Background(), domain.CommandPlay, "")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !res.Success() {
		t.Errorf("result = %+v", res)
	}
}

func TestExecuteUploadReadsFile(t *testing.T) {
	doc := `{"name":"tavern","room":"main","sounds":[]}`
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{result: domain.CallResult{StatusCode: 200}}
	uc := NewInvoke(cfgFor("http://example:9090"), runner, nil)

	if _, err := uc.ExecuteUpload(context.Background(), path); err != nil {
		t.Fatalf("ExecuteUpload: %v", err)
	}
	if runner.spec.Body.Type != domain.BodyRaw {
		t.Fatalf("body type = %s", runner.spec.Body.Type)
	}
	if runner.spec.Body.Raw != doc {
		t.Errorf("body = %q", runner.spec.Body.Raw)
	}
}

func TestExecuteUploadMissingFile(t *testing.T) {
	uc := NewInvoke(cfgFor("http://example:9090"), &fakeRunner{}, nil)

	_, err := uc.ExecuteUpload(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Errorf("expected KindNotFound, got %v", err)
	}
}

// TestDispatchTable drives every command through a real runner against a
// test server and checks the request each one produces on the wire.
func TestDispatchTable(t *testing.T) {
	type seen struct {
		method string
		path   string
		auth   string
		body   []byte
	}

	var mu sync.Mutex
	var calls []seen

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, seen{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			body:   body,
		})
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	themeDoc := `{"name":"t","room":"r","sounds":[]}`
	themePath := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(themePath, []byte(themeDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	uc := NewInvoke(cfgFor(server.URL), httprunner.New(), nil)

	cases := []struct {
		cmd    domain.Command
		arg    string
		method string
		path   string
		body   string
	}{
		{domain.CommandPlay, "", "POST", "/play", ""},
		{domain.CommandPause, "", "POST", "/pause", ""},
		{domain.CommandReload, "", "POST", "/reload", ""},
		{domain.CommandStatus, "", "GET", "/status", ""},
		{domain.CommandLibrary, "", "GET", "/library", ""},
		{domain.CommandDrivers, "", "GET", "/driver/list", ""},
		{domain.CommandDriverGet, "", "GET", "/driver", ""},
		{domain.CommandDriverSet, "2", "POST", "/driver", `{"id":2}`},
		{domain.CommandVolume, "0.5", "POST", "/volume", `{"value":0.5}`},
		{domain.CommandTrigger, "foo", "POST", "/trigger", `{"name":"foo"}`},
		{domain.CommandPreview, "foo", "POST", "/preview", `{"name":"foo"}`},
	}

	for _, c := range cases {
		before := len(calls)
		res, err := uc.Execute(context.Background(), c.cmd, c.arg)
		if err != nil {
			t.Fatalf("%s: %v", c.cmd, err)
		}
		if !res.Success() {
			t.Fatalf("%s: result = %+v", c.cmd, res)
		}

		mu.Lock()
		got := calls[len(calls)-1]
		count := len(calls) - before
		mu.Unlock()

		if count != 1 {
			t.Errorf("%s: issued %d requests, want exactly 1", c.cmd, count)
		}
		if got.method != c.method || got.path != c.path {
			t.Errorf("%s: %s %s, want %s %s", c.cmd, got.method, got.path, c.method, c.path)
		}
		if got.auth != "Bearer abc123" {
			t.Errorf("%s: Authorization = %q", c.cmd, got.auth)
		}
		if string(got.body) != c.body {
			t.Errorf("%s: body = %q, want %q", c.cmd, got.body, c.body)
		}
	}

	// Upload sends the theme file bytes verbatim.
	res, err := uc.ExecuteUpload(context.Background(), themePath)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !res.Success() {
		t.Fatalf("upload: result = %+v", res)
	}

	mu.Lock()
	got := calls[len(calls)-1]
	mu.Unlock()

	if got.method != "POST" || got.path != "/theme" {
		t.Errorf("upload: %s %s", got.method, got.path)
	}
	if string(got.body) != themeDoc {
		t.Errorf("upload body = %q, want file bytes %q", got.body, themeDoc)
	}
}
