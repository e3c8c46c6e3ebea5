// Package domain defines core entities and value objects for ask.
//
// The domain layer is independent of infrastructure concerns: transcripts,
// reply interpretation, and execution decisions are pure data and pure
// functions over text.
package domain

// Roles recognized in a chat transcript.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role/content pair exchanged with the model.
// Messages are immutable once appended to a transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered conversation history for one session.
// It is owned by exactly one session service per process and is mutated
// only by append (plus Truncate, used to roll back an aborted turn).
type Transcript struct {
	messages []Message
}

// NewTranscript builds a transcript seeded with the given messages.
func NewTranscript(messages ...Message) *Transcript {
	t := &Transcript{}
	t.messages = append(t.messages, messages...)
	return t
}

// EnsureSystemPrompt guarantees the first message is the system prompt.
// If a system message is already present it is left untouched, so the
// prompt is set exactly once per transcript lifetime.
func (t *Transcript) EnsureSystemPrompt(content string) {
	if len(t.messages) > 0 && t.messages[0].Role == RoleSystem {
		return
	}
	t.messages = append([]Message{{Role: RoleSystem, Content: content}}, t.messages...)
}

// Append adds a message at the end of the transcript.
func (t *Transcript) Append(role, content string) {
	t.messages = append(t.messages, Message{Role: role, Content: content})
}

// Truncate drops messages appended after length n. The session service
// uses it to restore the pre-turn state when an upstream call fails.
func (t *Transcript) Truncate(n int) {
	if n < 0 || n >= len(t.messages) {
		return
	}
	t.messages = t.messages[:n]
}

// Len reports the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Messages returns a copy of the message sequence, safe to hand to a
// completion request without aliasing the transcript's own slice.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}
