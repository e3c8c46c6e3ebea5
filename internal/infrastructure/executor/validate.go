package executor

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/doeshing/ask-go/internal/ports"
)

// Syntax validates proposed commands against the shell grammar before
// they are offered for execution. Advisory only.
type Syntax struct{}

// NewSyntax builds the validator.
func NewSyntax() *Syntax {
	return &Syntax{}
}

// Validate implements ports.CommandValidator.
func (Syntax) Validate(command string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	_, err := parser.Parse(strings.NewReader(command), "")
	return err
}

var _ ports.CommandValidator = (*Syntax)(nil)
