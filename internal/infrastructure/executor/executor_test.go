package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecuteCapturesStdout(t *testing.T) {
	local := NewLocal("/bin/sh")
	result, err := local.Execute(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.ExitCode != 0 {
		t.Fatalf("ExitCode = %d", result.ExitCode)
	}
	if strings.TrimSpace(result.Stdout) != "hello" {
		t.Fatalf("Stdout = %q", result.Stdout)
	}
}

func TestExecuteNonZeroExitIsNotASpawnError(t *testing.T) {
	local := NewLocal("/bin/sh")
	result, err := local.Execute(context.Background(), "echo oops >&2; exit 3")
	if err != nil {
		t.Fatalf("launched command must not return an error, got %v", err)
	}
	if result.ExitCode != 3 {
		t.Fatalf("ExitCode = %d, want 3", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "oops") {
		t.Fatalf("Stderr = %q", result.Stderr)
	}
}

func TestExecuteMissingShellIsSpawnError(t *testing.T) {
	local := NewLocal("/no/such/shell")
	_, err := local.Execute(context.Background(), "echo hi")
	if err == nil {
		t.Fatal("expected spawn error for missing shell")
	}
}

func TestSyntaxValidate(t *testing.T) {
	v := NewSyntax()
	if err := v.Validate("du -sh * | sort -h"); err != nil {
		t.Fatalf("valid command rejected: %v", err)
	}
	if err := v.Validate("echo 'unclosed"); err == nil {
		t.Fatal("expected parse error for unclosed quote")
	}
}
