package domain

import "strings"

// ReplyKind distinguishes the two possible readings of a model reply.
type ReplyKind int

const (
	// ReplyAnswer is a plain prose answer, nothing to execute.
	ReplyAnswer ReplyKind = iota
	// ReplyCommand carries a literal shell command proposed by the model.
	ReplyCommand
)

// InterpretedReply is the classification of one raw model reply.
// Exactly one kind applies; Text holds either the verbatim command or
// the answer prose.
type InterpretedReply struct {
	Kind ReplyKind
	Text string
}

// shellTags are fence info strings treated as markers of a command block.
var shellTags = map[string]bool{
	"sh": true, "bash": true, "zsh": true, "shell": true,
}

// InterpretReply classifies a raw model reply as either a proposed shell
// command or a plain answer. The system prompt instructs the model to wrap
// a proposed command in a single fenced code block; the first complete
// fence wins and any trailing prose is discarded from the command (the raw
// reply itself is what the transcript records, so nothing is lost).
//
// The command text between the fences is preserved verbatim apart from
// surrounding whitespace, since it is handed to a shell as-is. A reply
// with no complete fence, or whose fenced content is empty, is an answer.
// Interpretation is a pure function and never fails.
func InterpretReply(raw string) InterpretedReply {
	stripped := strings.TrimSpace(raw)
	answer := InterpretedReply{Kind: ReplyAnswer, Text: stripped}

	start := strings.Index(stripped, "```")
	if start == -1 {
		return answer
	}
	rest := stripped[start+3:]
	end := strings.Index(rest, "```")
	if end == -1 {
		// Unterminated fence, treat the whole reply as prose.
		return answer
	}

	command := strings.TrimSpace(stripFenceTag(rest[:end]))
	if command == "" {
		return answer
	}
	return InterpretedReply{Kind: ReplyCommand, Text: command}
}

// stripFenceTag removes the fence info string ("sh", "bash", ...) when the
// block's first line is one. A first line that is itself part of the
// command is kept untouched.
func stripFenceTag(block string) string {
	head, tail, found := strings.Cut(block, "\n")
	if !found {
		return block
	}
	if shellTags[strings.TrimSpace(head)] {
		return tail
	}
	return block
}
