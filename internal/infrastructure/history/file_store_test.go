package history

import (
	"testing"
	"time"

	"github.com/doeshing/ask-go/internal/domain"
)

func TestFileStoreSaveAndQuery(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := NewFileStore()

	base := time.Now().Add(-time.Hour)
	for i, rec := range []domain.HistoryRecord{
		{ID: "a", Prompt: "list files", Command: "ls -la", Decision: "not_offered"},
		{ID: "b", Prompt: "disk usage", Command: "du -sh *", Decision: "run_succeeded"},
		{ID: "c", Prompt: "largest files", Command: "du -a | sort -n", Decision: "declined"},
	} {
		rec.Timestamp = base.Add(time.Duration(i) * time.Minute)
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	if records[0].ID != "c" {
		t.Fatalf("first record = %+v, want newest first", records[0])
	}

	records, err = store.Records(0, "du")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("search matched %d records, want 2", len(records))
	}

	records, err = store.Records(1, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ID != "c" {
		t.Fatalf("limit 1 returned %+v", records)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err = store.Records(0, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("after clear: %d records", len(records))
	}
}
