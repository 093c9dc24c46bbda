package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kk-code-lab/bf/internal/handoff"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSetupPrintsFunctionForRequestedShell(t *testing.T) {
	handoffFile := filepath.Join(t.TempDir(), "handoff")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--setup=fish", "--handoff", handoffFile}, "function bf"},
		{[]string{"--setup", "fish", "--handoff", handoffFile}, "function bf"},
		{[]string{"-s", "pwsh", "--handoff", handoffFile}, "function bf {"},
		{[]string{"--setup=zsh", "--handoff", handoffFile}, "bf() {"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !strings.HasPrefix(out, tt.want) {
				t.Fatalf("output does not start with %q:\n%s", tt.want, out)
			}
			if !strings.Contains(out, handoffFile) && !strings.Contains(out, strings.ReplaceAll(handoffFile, `\`, `\\`)) {
				t.Fatalf("output does not mention the handoff file:\n%s", out)
			}
		})
	}
}

func TestSetupUsesHandoffFromEnvironment(t *testing.T) {
	t.Setenv("BF_HANDOFF", "/tmp/bf-handoff")

	out, err := execute(t, "--setup=bash")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `bf_handoff="/tmp/bf-handoff"`) {
		t.Fatalf("expected env handoff path in output:\n%s", out)
	}
}

func TestLastPrintsMostRecentDirectory(t *testing.T) {
	handoffFile := filepath.Join(t.TempDir(), "handoff")
	for _, dir := range []string{"/one", "/two"} {
		if err := handoff.Append(handoffFile, dir); err != nil {
			t.Fatal(err)
		}
	}

	out, err := execute(t, "--last", "--handoff", handoffFile)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "/two\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestLastWithoutHistory(t *testing.T) {
	_, err := execute(t, "--last", "--handoff", filepath.Join(t.TempDir(), "none"))
	if !errors.Is(err, handoff.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestRejectsStrayArguments(t *testing.T) {
	if _, err := execute(t, "somewhere", "--handoff", "/tmp/h"); err == nil {
		t.Fatal("expected error for positional argument without --setup")
	}
	if _, err := execute(t, "a", "b"); err == nil {
		t.Fatal("expected error for two positional arguments")
	}
}

func TestUsageListsEnvironmentVariables(t *testing.T) {
	cmd := NewCLI()
	usage := cmd.UsageString()
	for _, name := range []string{"BF_DEBUG", "BF_HANDOFF", "BF_HIDE_HIDDEN", "BF_LOG"} {
		if !strings.Contains(usage, name) {
			t.Fatalf("usage does not document %s:\n%s", name, usage)
		}
	}
	if strings.Index(usage, "BF_DEBUG") > strings.Index(usage, "BF_LOG") {
		t.Fatalf("environment variables should be sorted:\n%s", usage)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Fatalf("version output = %q", out)
	}
}
