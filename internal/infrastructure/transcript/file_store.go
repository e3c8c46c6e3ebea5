// Package transcript persists session transcripts as line-delimited JSON,
// one {role, content} record per line, human-inspectable with any pager.
package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/doeshing/ask-go/internal/domain"
	"github.com/doeshing/ask-go/internal/pkg/filesystem"
	"github.com/doeshing/ask-go/internal/ports"
)

// ErrCorrupt signals that the persisted session file did not parse.
// Callers recover by starting a fresh transcript.
var ErrCorrupt = errors.New("session file is corrupt")

// FileStore reads and overwrites ~/.ask/session.jsonl.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store at path, defaulting to ~/.ask/session.jsonl.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".ask", "session.jsonl")
	}
	return &FileStore{path: path}
}

// Load reads the persisted transcript. A missing file yields an empty
// transcript; a file with an unparseable line yields an empty transcript
// and ErrCorrupt so the caller can warn without failing the invocation.
func (f *FileStore) Load() (*domain.Transcript, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewTranscript(), nil
		}
		return domain.NewTranscript(), err
	}

	t := domain.NewTranscript()
	for _, line := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var msg domain.Message
		if err := json.Unmarshal(line, &msg); err != nil {
			return domain.NewTranscript(), fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		t.Append(msg.Role, msg.Content)
	}
	return t, nil
}

// Save overwrites the stored transcript with the in-memory one. The write
// goes through a temp file and rename so a crash mid-save cannot leave a
// half-written session behind.
func (f *FileStore) Save(t *domain.Transcript) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, msg := range t.Messages() {
		data, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Clear removes the persisted session.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

var _ ports.TranscriptStore = (*FileStore)(nil)
