package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/ask-go/internal/domain"
)

// RenderTurn prints a turn result in a friendly, ASCII-only format.
func RenderTurn(w io.Writer, result domain.TurnResult) {
	if result.Interpreted.Kind == domain.ReplyAnswer {
		text := result.Interpreted.Text
		if text == "" {
			text = "(the model returned an empty reply)"
		}
		fmt.Fprintln(w, text)
		renderWarnings(w, result)
		return
	}

	fmt.Fprintln(w, "Proposed command:")
	fmt.Fprintf(w, "  %s\n", result.Interpreted.Text)
	if result.SyntaxWarning != "" {
		fmt.Fprintf(w, "Warning: command does not parse as shell: %s\n", result.SyntaxWarning)
	}

	outcome := result.Outcome
	switch outcome.Decision {
	case domain.DecisionNotOffered:
		fmt.Fprintln(w, "\nNot executed. Re-run with --run to offer execution.")
	case domain.DecisionDeclinedByUser:
		fmt.Fprintln(w, "\nNot executed.")
	case domain.DecisionRunFailed:
		if outcome.Err != nil {
			fmt.Fprintf(w, "\nCommand could not be started: %v\n", outcome.Err)
		} else {
			fmt.Fprintf(w, "\nCommand failed with exit code %d.\n", outcome.Result.ExitCode)
		}
	case domain.DecisionRunSucceeded:
		fmt.Fprintln(w, "\nCommand succeeded.")
	}

	if outcome.Ran() {
		if out := strings.TrimRight(outcome.Result.Stdout, "\n"); out != "" {
			fmt.Fprintln(w, "\nstdout:")
			fmt.Fprintln(w, out)
		}
		if errOut := strings.TrimRight(outcome.Result.Stderr, "\n"); errOut != "" {
			fmt.Fprintln(w, "\nstderr:")
			fmt.Fprintln(w, errOut)
		}
	}
	renderWarnings(w, result)
}

func renderWarnings(w io.Writer, result domain.TurnResult) {
	if result.PersistWarning != "" {
		fmt.Fprintf(w, "Warning: session not saved: %s\n", result.PersistWarning)
	}
}
