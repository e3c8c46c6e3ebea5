// Package ports defines the interfaces between the application core and
// external adapters. The session service depends on these abstractions
// only; infrastructure supplies the concrete HTTP client, stores, shell
// executor, and prompter.
package ports

import (
	"context"

	"github.com/doeshing/ask-go/internal/domain"
)

// ConfigProvider loads configuration from persistent storage.
// Implementations typically read from ~/.ask/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CompletionClient sends a transcript snapshot to a chat-completion
// endpoint and returns the single raw reply. Stateless aside from
// connection configuration; never retries internally.
type CompletionClient interface {
	Complete(context.Context, domain.CompletionRequest) (string, error)
}

// TranscriptStore persists a session transcript between invocations.
// Save overwrites the stored form; there is no merging, and concurrent
// processes sharing one file get last-writer-wins.
type TranscriptStore interface {
	Load() (*domain.Transcript, error)
	Save(*domain.Transcript) error
	Clear() error
	Path() string
}

// CommandExecutor runs a shell command, inheriting the caller's working
// directory and environment. The returned error is a spawn-level fault
// only; a command that launched and exited non-zero is reported through
// the result, not the error.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// CommandValidator checks that a proposed command parses as shell syntax.
// Purely advisory; validation failures never block execution.
type CommandValidator interface {
	Validate(command string) error
}

// ConfirmationPrompter asks the user whether a proposed command may run.
// Injected into the execution gate so tests can script the answer.
type ConfirmationPrompter interface {
	Confirm(command string) (bool, error)
	Enabled() bool
}

// HistoryRepository records command-producing turns for later inspection.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	Path() string
}

// Clipboard copies a generated command without manual selection.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Logger provides structured logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
