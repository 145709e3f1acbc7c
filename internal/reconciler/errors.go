package reconciler

import "fmt"

// ProviderError indicates the LLM provider was unreachable or returned an
// error response. It is surfaced to callers as a bad-gateway class failure.
type ProviderError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm provider error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("llm provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// MalformedResponseError indicates the LLM returned text that does not
// decode into the expected reconciliation JSON shape.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed llm response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
