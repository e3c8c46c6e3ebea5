// Package session orchestrates one query turn: transcript bookkeeping,
// the completion call, reply interpretation, and consent-gated execution.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/ask-go/internal/domain"
	"github.com/doeshing/ask-go/internal/ports"
)

// Service owns the transcript for the lifetime of one process and drives
// a single turn at a time. Turns are strictly sequential; nothing here is
// safe for concurrent use and nothing needs to be.
type Service struct {
	Client      ports.CompletionClient
	Store       ports.TranscriptStore
	History     ports.HistoryRepository
	Validator   ports.CommandValidator
	Gate        *Gate
	Logger      ports.Logger
	Transcript  *domain.Transcript
	Model       string
	Temperature float64
	// Persist enables session mode: the transcript is saved after each
	// completed turn and reloaded on the next invocation.
	Persist      bool
	SystemPrompt string
}

// RunTurn processes one query through to its rendered outcome. On an
// upstream failure the turn aborts with the transcript exactly as it was
// before the turn started; nothing is persisted for aborted turns.
func (s *Service) RunTurn(ctx context.Context, query string) (domain.TurnResult, error) {
	if s.Client == nil || s.Gate == nil || s.Logger == nil || s.Transcript == nil {
		return domain.TurnResult{}, errors.New("session.Service dependencies not satisfied")
	}

	s.Transcript.EnsureSystemPrompt(s.SystemPrompt)
	mark := s.Transcript.Len()
	s.Transcript.Append(domain.RoleUser, query)

	raw, err := s.Client.Complete(ctx, domain.CompletionRequest{
		Messages:    s.Transcript.Messages(),
		Model:       s.Model,
		Temperature: s.Temperature,
	})
	if err != nil {
		s.Transcript.Truncate(mark)
		return domain.TurnResult{Query: query}, fmt.Errorf("complete: %w", err)
	}

	// The transcript always records the untouched reply; interpretation
	// must not rewrite conversational history.
	s.Transcript.Append(domain.RoleAssistant, raw)

	result := domain.TurnResult{
		Query:       query,
		Reply:       raw,
		Interpreted: domain.InterpretReply(raw),
	}

	if result.Interpreted.Kind == domain.ReplyCommand {
		command := result.Interpreted.Text
		if s.Validator != nil {
			if err := s.Validator.Validate(command); err != nil {
				result.SyntaxWarning = err.Error()
			}
		}
		result.Outcome = s.Gate.Run(ctx, command)
		s.recordHistory(query, command, result.Outcome)
		if result.Outcome.Ran() {
			// Tell the model what happened so follow-up turns can
			// reason about the output.
			s.Transcript.Append(domain.RoleUser, executionReport(result.Outcome.Result))
		}
	}

	if s.Persist && s.Store != nil {
		if err := s.Store.Save(s.Transcript); err != nil {
			s.Logger.Warn("session save failed", map[string]interface{}{"error": err.Error()})
			result.PersistWarning = err.Error()
		}
	}
	return result, nil
}

func (s *Service) recordHistory(prompt, command string, outcome domain.ExecutionOutcome) {
	if s.History == nil {
		return
	}
	rec := domain.HistoryRecord{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Prompt:    prompt,
		Command:   command,
		Model:     s.Model,
		Decision:  outcome.Decision.String(),
	}
	if outcome.Result != nil {
		rec.ExitCode = outcome.Result.ExitCode
		rec.DurationMS = outcome.Result.DurationMS
	}
	if err := s.History.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}

func executionReport(result *domain.ExecutionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The command returned exit code %d.\n", result.ExitCode)
	fmt.Fprintf(&b, "STDOUT:\n%s\n", result.Stdout)
	fmt.Fprintf(&b, "STDERR:\n%s", result.Stderr)
	return b.String()
}
