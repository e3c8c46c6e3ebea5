package ai

import "fmt"

// UpstreamErrorKind classifies failures of the completion endpoint.
type UpstreamErrorKind string

const (
	KindConnectionRefused UpstreamErrorKind = "connection_refused"
	KindTimeout           UpstreamErrorKind = "timeout"
	KindBadStatus         UpstreamErrorKind = "bad_status"
	KindMalformedResponse UpstreamErrorKind = "malformed_response"
)

// UpstreamError is any failure talking to the chat-completion endpoint.
// The session service aborts the turn when it sees one; there is no
// automatic retry against a possibly misconfigured endpoint.
type UpstreamError struct {
	Kind   UpstreamErrorKind
	Status int // HTTP status for KindBadStatus
	Err    error
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case KindBadStatus:
		return fmt.Sprintf("upstream returned status %d", e.Status)
	case KindTimeout:
		return fmt.Sprintf("upstream timed out: %v", e.Err)
	case KindMalformedResponse:
		return fmt.Sprintf("upstream response malformed: %v", e.Err)
	default:
		return fmt.Sprintf("upstream unreachable: %v", e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
