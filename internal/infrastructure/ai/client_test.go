package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/doeshing/ask-go/internal/domain"
)

func TestCompleteReturnsReplyText(t *testing.T) {
	var gotBody chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "hello there"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "/v1/chat/completions", 5*time.Second)
	reply, err := client.Complete(context.Background(), domain.CompletionRequest{
		Messages: []domain.Message{
			{Role: domain.RoleSystem, Content: "sys"},
			{Role: domain.RoleUser, Content: "hi"},
		},
		Model:       "test-model",
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "hello there" {
		t.Fatalf("reply = %q", reply)
	}
	if gotBody.Model != "test-model" || len(gotBody.Messages) != 2 {
		t.Fatalf("request body = %+v", gotBody)
	}
	if gotBody.Temperature != 0.2 {
		t.Fatalf("temperature = %v, want 0.2", gotBody.Temperature)
	}
}

func TestCompleteBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "/v1/chat/completions", 5*time.Second)
	_, err := client.Complete(context.Background(), domain.CompletionRequest{Model: "m"})

	var upErr *UpstreamError
	if !errors.As(err, &upErr) || upErr.Kind != KindBadStatus || upErr.Status != http.StatusInternalServerError {
		t.Fatalf("err = %v, want BadStatus(500)", err)
	}
}

func TestCompleteMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "/v1/chat/completions", 5*time.Second)
	_, err := client.Complete(context.Background(), domain.CompletionRequest{Model: "m"})

	var upErr *UpstreamError
	if !errors.As(err, &upErr) || upErr.Kind != KindMalformedResponse {
		t.Fatalf("err = %v, want MalformedResponse", err)
	}
}

func TestCompleteEmptyChoicesIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "/v1/chat/completions", 5*time.Second)
	_, err := client.Complete(context.Background(), domain.CompletionRequest{Model: "m"})

	var upErr *UpstreamError
	if !errors.As(err, &upErr) || upErr.Kind != KindMalformedResponse {
		t.Fatalf("err = %v, want MalformedResponse for missing choices", err)
	}
}

func TestCompleteConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewClient(server.URL, "/v1/chat/completions", time.Second)
	_, err := client.Complete(context.Background(), domain.CompletionRequest{Model: "m"})

	var upErr *UpstreamError
	if !errors.As(err, &upErr) || upErr.Kind != KindConnectionRefused {
		t.Fatalf("err = %v, want ConnectionRefused", err)
	}
}
