package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestUnknownSubcommandRejected(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"explode"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
}

func TestCommandTreeComplete(t *testing.T) {
	cmd := newRootCmd()

	want := []string{
		"play", "pause", "reload",
		"status", "library",
		"drivers", "driver",
		"volume", "trigger", "preview",
		"theme", "history", "init", "version",
	}

	have := map[string]bool{}
	for _, sub := range cmd.Commands() {
		have[sub.Name()] = true
	}

	for _, name := range want {
		if !have[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), "sinfoniactl") {
		t.Errorf("output = %q", out.String())
	}
}

func TestPrintHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printHistory(&buf, nil, "pretty"); err != nil {
		t.Fatalf("printHistory: %v", err)
	}
	if !strings.Contains(buf.String(), "No calls recorded") {
		t.Errorf("output = %q", buf.String())
	}
}
