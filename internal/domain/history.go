package domain

import "time"

// HistoryRecord captures the metadata of one command-producing turn.
type HistoryRecord struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Prompt     string    `json:"prompt"`
	Command    string    `json:"command"`
	Model      string    `json:"model"`
	Decision   string    `json:"decision"`
	ExitCode   int       `json:"exit_code"`
	DurationMS int64     `json:"duration_ms"`
}
