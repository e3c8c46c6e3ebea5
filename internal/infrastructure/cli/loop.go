package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/ask-go/internal/application/session"
	"github.com/doeshing/ask-go/internal/domain"
)

// Loop reads queries and drives the session service. In interactive mode
// every failure is rendered and the loop continues to the next query; no
// error from a single turn terminates it.
type Loop struct {
	Service   *session.Service
	In        io.Reader
	Out       io.Writer
	Clipboard *Clipboard
}

// RunOnce processes a single query and renders the result.
func (l *Loop) RunOnce(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		fmt.Fprintln(l.Out, "No request provided.")
		return nil
	}

	spinner := l.spinner()
	spinner.Start("asking the model")
	result, err := l.Service.RunTurn(ctx, query)
	spinner.Stop()
	if err != nil {
		return err
	}
	l.render(result)
	return nil
}

// Run is the interactive loop: one query per line, exit/quit/EOF ends.
func (l *Loop) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(l.In)
	for {
		fmt.Fprint(l.Out, "ask> ")
		if !scanner.Scan() {
			fmt.Fprintln(l.Out)
			return scanner.Err()
		}
		query := strings.TrimSpace(scanner.Text())
		switch query {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := l.RunOnce(ctx, query); err != nil {
			fmt.Fprintf(l.Out, "error: %v\n", err)
		}
	}
}

func (l *Loop) render(result domain.TurnResult) {
	RenderTurn(l.Out, result)
	if l.Clipboard != nil && result.Interpreted.Kind == domain.ReplyCommand && l.Clipboard.Enabled() {
		if err := l.Clipboard.Copy(result.Interpreted.Text); err != nil {
			fmt.Fprintf(l.Out, "clipboard: %v\n", err)
		} else {
			fmt.Fprintln(l.Out, "Command copied to clipboard.")
		}
	}
}

func (l *Loop) spinner() *Spinner {
	if f, ok := l.Out.(*os.File); ok {
		return NewSpinner(f)
	}
	// Spinner noise does not belong in captured output.
	return NewSpinner(io.Discard)
}
