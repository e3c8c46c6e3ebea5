package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/doeshing/ask-go/internal/ports"
)

// Prompter implements ports.ConfirmationPrompter over stdio. When stdin
// is not a terminal the prompter reports itself disabled, so a piped
// invocation with --run but without --yes declines instead of hanging.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPrompter constructs a prompter; nil arguments default to stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	interactive := true
	if in == nil {
		in = os.Stdin
		interactive = isatty.IsTerminal(os.Stdin.Fd())
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Enabled reports whether the prompter can actually reach a human.
func (p *Prompter) Enabled() bool {
	return p.interactive
}

// Confirm asks whether the proposed command may run.
func (p *Prompter) Confirm(command string) (bool, error) {
	fmt.Fprintf(p.out, "\nCommand:\n  %s\n", command)
	fmt.Fprint(p.out, "Run this? [y/N]: ")
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
