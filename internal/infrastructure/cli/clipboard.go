package cli

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/doeshing/ask-go/internal/ports"
)

// Clipboard copies proposed commands via the platform clipboard tool.
type Clipboard struct{}

// NewClipboard builds the clipboard helper.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) Enabled() bool {
	return c.tool() != nil
}

// Copy pipes text into the resolved clipboard tool.
func (c *Clipboard) Copy(text string) error {
	tool := c.tool()
	if tool == nil {
		return fmt.Errorf("no clipboard tool available on %s", runtime.GOOS)
	}
	cmd := exec.Command(tool[0], tool[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

func (c *Clipboard) tool() []string {
	candidates := [][]string{
		{"pbcopy"},
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
	}
	for _, candidate := range candidates {
		if _, err := exec.LookPath(candidate[0]); err == nil {
			return candidate
		}
	}
	return nil
}

var _ ports.Clipboard = (*Clipboard)(nil)
