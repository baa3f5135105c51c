package calllog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

func record(cmd domain.Command, status int) domain.CallRecord {
	return domain.CallRecord{
		At:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Command:    cmd,
		Method:     domain.MethodPost,
		URL:        "http://example:9090/" + string(cmd),
		StatusCode: status,
		LatencyMS:  12,
	}
}

func TestAppendAndList(t *testing.T) {
	log := NewJSONLog(t.TempDir())

	if err := log.Append(record(domain.CommandPlay, 200)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Append(record(domain.CommandPause, 200)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	recs, err := log.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].Command != domain.CommandPause {
		t.Errorf("expected newest first, got %s", recs[0].Command)
	}
	if recs[1].Command != domain.CommandPlay {
		t.Errorf("recs[1] = %s", recs[1].Command)
	}
}

func TestListLimit(t *testing.T) {
	log := NewJSONLog(t.TempDir())
	for _, cmd := range []domain.Command{domain.CommandPlay, domain.CommandPause, domain.CommandReload} {
		if err := log.Append(record(cmd, 200)); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := log.List(1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("len = %d, want 1", len(recs))
	}
	if recs[0].Command != domain.CommandReload {
		t.Errorf("recs[0] = %s", recs[0].Command)
	}
}

func TestListMissingFile(t *testing.T) {
	recs, err := NewJSONLog(t.TempDir()).List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("len = %d, want 0", len(recs))
	}
}

func TestListSkipsMalformedLines(t *testing.T) {
	root := t.TempDir()
	log := NewJSONLog(root)

	if err := log.Append(record(domain.CommandPlay, 200)); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(root, ".sinfoniactl", defaultFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{garbage\n"); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	if err := log.Append(record(domain.CommandPause, 200)); err != nil {
		t.Fatal(err)
	}

	recs, err := log.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("len = %d, want 2 (malformed line skipped)", len(recs))
	}
}
