package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

func TestFindRootFromNestedDir(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "server:\n  token: x\n")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if got != root {
		t.Errorf("root = %s, want %s", got, root)
	}
}

func TestFindRootNotFound(t *testing.T) {
	_, err := NewFinder().FindRoot(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Errorf("expected KindNotFound, got %v", err)
	}
}

func TestFindRootEmptyStartDir(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Errorf("expected KindInvalidConfig, got %v", err)
	}
}

func TestFindRootFromFilePath(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "server:\n  token: x\n")

	got, err := NewFinder().FindRoot(path)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if got != root {
		t.Errorf("root = %s, want %s", got, root)
	}
}
