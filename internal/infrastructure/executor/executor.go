// Package executor runs proposed commands through the user's shell.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/doeshing/ask-go/internal/domain"
	"github.com/doeshing/ask-go/internal/ports"
)

// Local runs commands on the host shell, inheriting the caller's working
// directory and environment.
type Local struct {
	shell string
}

// NewLocal builds an executor; shell defaults to $SHELL, then /bin/sh.
func NewLocal(shell string) *Local {
	if shell == "" || shell == "auto" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &Local{shell: shell}
}

// Shell returns the resolved shell binary.
func (e *Local) Shell() string {
	return e.shell
}

// Execute implements ports.CommandExecutor. A non-nil error means the
// command never launched; a launched command that exited non-zero is
// reported through the result with a nil error.
func (e *Local) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	c := exec.CommandContext(ctx, e.shell, "-c", command)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: time.Since(start).Milliseconds(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
		return result, nil
	}
	if err != nil {
		// Spawn-level fault: shell unavailable, context canceled before start.
		return domain.ExecutionResult{}, err
	}
	return result, nil
}

var _ ports.CommandExecutor = (*Local)(nil)
