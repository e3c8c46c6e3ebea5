// Package ai implements the chat-completion client for OpenAI-compatible
// local endpoints such as LM Studio.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/doeshing/ask-go/internal/domain"
	"github.com/doeshing/ask-go/internal/ports"
)

// Client talks to a single configured chat-completion endpoint.
type Client struct {
	baseURL    string
	endpoint   string
	httpClient *http.Client
}

// NewClient builds a client for {baseURL}{endpoint}.
func NewClient(baseURL, endpoint string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Complete implements ports.CompletionClient. It sends the transcript
// snapshot and returns the assistant's raw reply text.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	messages := make([]chatMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, chatMessage{Role: msg.Role, Content: msg.Content})
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &UpstreamError{Kind: transportKind(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", &UpstreamError{Kind: KindBadStatus, Status: resp.StatusCode}
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &UpstreamError{Kind: KindMalformedResponse, Err: err}
	}
	content, err := parsed.firstMessage()
	if err != nil {
		return "", &UpstreamError{Kind: KindMalformedResponse, Err: err}
	}
	return content, nil
}

func transportKind(err error) UpstreamErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindConnectionRefused
}

var _ ports.CompletionClient = (*Client)(nil)
