package transcript

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/ask-go/internal/domain"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.jsonl"))

	original := domain.NewTranscript()
	original.Append(domain.RoleSystem, "you are helpful")
	original.Append(domain.RoleUser, "hello \"quoted\" text\nwith newline")
	original.Append(domain.RoleAssistant, "```\nls -la\n```")

	if err := store.Save(original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(original.Messages(), loaded.Messages()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.jsonl"))
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 0 {
		t.Fatalf("Len = %d, want 0", loaded.Len())
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	if err := os.WriteFile(path, []byte("{\"role\":\"user\",\"content\":\"ok\"}\nnot json\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path)
	loaded, err := store.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}
	if loaded.Len() != 0 {
		t.Fatalf("corrupt load must yield a fresh transcript, got %d messages", loaded.Len())
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.jsonl"))

	first := domain.NewTranscript()
	first.Append(domain.RoleUser, "one")
	first.Append(domain.RoleUser, "two")
	if err := store.Save(first); err != nil {
		t.Fatal(err)
	}

	second := domain.NewTranscript()
	second.Append(domain.RoleUser, "only")
	if err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("Len = %d, want overwrite semantics", loaded.Len())
	}
}

func TestFileStoreClear(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.jsonl"))
	tr := domain.NewTranscript()
	tr.Append(domain.RoleUser, "hello")
	if err := store.Save(tr); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	// Clearing an already-missing file is not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
}
