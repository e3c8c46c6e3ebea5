package domain

import "testing"

func TestTranscriptSystemPromptSetOnce(t *testing.T) {
	tr := NewTranscript()
	tr.EnsureSystemPrompt("first")
	tr.Append(RoleUser, "hello")
	tr.EnsureSystemPrompt("second")

	msgs := tr.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}
	if msgs[0].Role != RoleSystem || msgs[0].Content != "first" {
		t.Fatalf("first message = %+v, want original system prompt", msgs[0])
	}
}

func TestTranscriptSystemPromptPrependedToLoadedSession(t *testing.T) {
	tr := NewTranscript(Message{Role: RoleUser, Content: "old question"})
	tr.EnsureSystemPrompt("prompt")

	msgs := tr.Messages()
	if msgs[0].Role != RoleSystem {
		t.Fatalf("first role = %q, want system", msgs[0].Role)
	}
	if msgs[1].Content != "old question" {
		t.Fatalf("loaded message lost: %+v", msgs)
	}
}

func TestTranscriptTruncateRollsBack(t *testing.T) {
	tr := NewTranscript()
	tr.Append(RoleUser, "one")
	mark := tr.Len()
	tr.Append(RoleUser, "two")
	tr.Append(RoleAssistant, "three")

	tr.Truncate(mark)
	if tr.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tr.Len())
	}

	// Truncate never grows the transcript.
	tr.Truncate(10)
	if tr.Len() != 1 {
		t.Fatalf("Len after oversized truncate = %d, want 1", tr.Len())
	}
}

func TestTranscriptMessagesIsACopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append(RoleUser, "hello")
	snapshot := tr.Messages()
	snapshot[0].Content = "mutated"

	if tr.Messages()[0].Content != "hello" {
		t.Fatal("snapshot mutation leaked into the transcript")
	}
}
