package ai

import "errors"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

var errNoChoices = errors.New("response contains no choices")

// firstMessage extracts choices[0].message.content. Anything short of
// that exact shape is treated as malformed rather than best-effort.
func (c chatCompletionResponse) firstMessage() (string, error) {
	if len(c.Choices) == 0 {
		return "", errNoChoices
	}
	return c.Choices[0].Message.Content, nil
}
