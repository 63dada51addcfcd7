package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// APIError is a non-2xx response from the provider. The message is taken
// from the provider's embedded error object when present, else from the
// HTTP status text.
type APIError struct {
	StatusCode int
	Code       string
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" || e.Type != "" {
		return fmt.Sprintf("api error: %d: %s: %s: %s", e.StatusCode, e.Code, e.Type, e.Message)
	}
	return fmt.Sprintf("api error: %d: %s", e.StatusCode, e.Message)
}

// TimeoutError means the transport exceeded its configured deadline. It is
// never retried automatically; the message tells the caller what to adjust.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out: %v (raise the HTTP client timeout, lower max_output_tokens, or pick a faster model)", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// newAPIError decodes the provider's error envelope from a non-2xx response
// body, falling back to the HTTP status text when the body is not one.
func newAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	if json.Unmarshal(body, &envelope) == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
		apiErr.Type = envelope.Error.Type
		apiErr.Code = envelope.Error.Code
	}

	return apiErr
}

// wrapTransportError classifies a transport failure, surfacing deadline
// overruns as [TimeoutError].
func wrapTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{Err: err}
	}
	return fmt.Errorf("HTTP request error: %w", err)
}
