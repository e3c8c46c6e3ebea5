package domain

// RunPolicy is the resolved pair of flags governing whether and how a
// proposed command may execute. It is read-only after flag parsing.
type RunPolicy struct {
	// Run enables offering execution at all. When false a command is
	// only displayed, never run.
	Run bool
	// Yes skips the confirmation prompt when Run is true.
	Yes bool
}

// ExecutionDecision records how a proposed command was handled during a turn.
type ExecutionDecision int

const (
	// DecisionNotOffered means the policy disabled execution entirely.
	DecisionNotOffered ExecutionDecision = iota
	// DecisionDeclinedByUser means the user answered no at the prompt.
	DecisionDeclinedByUser
	// DecisionConfirmedAndRun authorizes a run after an explicit yes.
	DecisionConfirmedAndRun
	// DecisionAutoRun authorizes a run without prompting (--yes).
	DecisionAutoRun
	// DecisionRunFailed means the command could not be spawned, exited
	// non-zero, or was interrupted.
	DecisionRunFailed
	// DecisionRunSucceeded means the command ran and exited zero.
	DecisionRunSucceeded
)

func (d ExecutionDecision) String() string {
	switch d {
	case DecisionNotOffered:
		return "not_offered"
	case DecisionDeclinedByUser:
		return "declined"
	case DecisionConfirmedAndRun:
		return "confirmed"
	case DecisionAutoRun:
		return "auto_run"
	case DecisionRunFailed:
		return "run_failed"
	case DecisionRunSucceeded:
		return "run_succeeded"
	default:
		return "unknown"
	}
}

// ExecutionResult wraps details captured from a spawned command.
type ExecutionResult struct {
	ExitCode   int
	Stdout     string
	Stderr     string
	DurationMS int64
	Err        error
}

// ExecutionOutcome is the gate's verdict for one proposed command.
// Result is non-nil only when a subprocess actually launched; Err carries
// a spawn-level fault (shell missing and the like).
type ExecutionOutcome struct {
	Decision      ExecutionDecision
	Authorization ExecutionDecision // DecisionConfirmedAndRun or DecisionAutoRun when a run was authorized
	Result        *ExecutionResult
	Err           error
}

// Ran reports whether a subprocess launched and produced a result.
func (o ExecutionOutcome) Ran() bool {
	return o.Result != nil
}

// TurnResult is the canonical outcome of one query turn.
type TurnResult struct {
	Query       string
	Reply       string // raw assistant reply, exactly as recorded in the transcript
	Interpreted InterpretedReply
	Outcome     ExecutionOutcome
	// SyntaxWarning is set when the proposed command does not parse as
	// POSIX shell; it never blocks execution, only informs the user.
	SyntaxWarning string
	// PersistWarning is set when the transcript could not be saved; the
	// in-memory transcript is unaffected, only durability suffered.
	PersistWarning string
}

// CompletionRequest is the value object sent to the completion client,
// built fresh per call from a transcript snapshot.
type CompletionRequest struct {
	Messages    []Message
	Model       string
	Temperature float64
}
