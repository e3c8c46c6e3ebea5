package session

import (
	"context"

	"github.com/doeshing/ask-go/internal/domain"
	"github.com/doeshing/ask-go/internal/ports"
)

// Gate is the state machine that decides whether a proposed command may
// execute. It is the only path in the program that spawns a subprocess:
// a command runs only after passing through exactly one of AutoRun or an
// explicit user confirmation, regardless of what upstream components do.
type Gate struct {
	Policy   domain.RunPolicy
	Executor ports.CommandExecutor
	Prompter ports.ConfirmationPrompter
	Logger   ports.Logger
}

// Run drives the gate for one proposed command and returns the outcome.
// It never returns an error: spawn faults and non-zero exits are terminal
// outcomes rendered to the user, not failures of the host loop.
func (g *Gate) Run(ctx context.Context, command string) domain.ExecutionOutcome {
	if !g.Policy.Run {
		return domain.ExecutionOutcome{Decision: domain.DecisionNotOffered}
	}

	authorization := domain.DecisionAutoRun
	if !g.Policy.Yes {
		if g.Prompter == nil || !g.Prompter.Enabled() {
			// No one to ask, so no consent. Never run silently.
			return domain.ExecutionOutcome{Decision: domain.DecisionDeclinedByUser}
		}
		confirmed, err := g.Prompter.Confirm(command)
		if err != nil || !confirmed {
			return domain.ExecutionOutcome{Decision: domain.DecisionDeclinedByUser}
		}
		authorization = domain.DecisionConfirmedAndRun
	}

	result, err := g.Executor.Execute(ctx, command)
	if err != nil {
		if g.Logger != nil {
			g.Logger.Error("command spawn failed", err, map[string]interface{}{"command": command})
		}
		return domain.ExecutionOutcome{
			Decision:      domain.DecisionRunFailed,
			Authorization: authorization,
			Err:           err,
		}
	}

	decision := domain.DecisionRunSucceeded
	if result.ExitCode != 0 {
		decision = domain.DecisionRunFailed
	}
	return domain.ExecutionOutcome{
		Decision:      decision,
		Authorization: authorization,
		Result:        &result,
	}
}
