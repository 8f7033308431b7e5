package http

import (
	"errors"
	"fmt"
	nethttp "net/http"
)

// Error kinds produced by the transport. Every failure returned by Client.Do
// matches exactly one of the broad kinds below through errors.Is, so callers
// can decide whether to fail over without inspecting status codes.
var (
	// ErrAPI matches every *StatusError, whatever the status code.
	ErrAPI = errors.New("api error")

	// ErrConnectionFailure is returned when no HTTP response was received at
	// all: DNS failures, refused connections, resets and timeouts.
	ErrConnectionFailure = errors.New("connection failure")

	// ErrRateLimited is returned on HTTP 429 and, without sending anything, for
	// every call made while the provider's backoff window is open.
	ErrRateLimited = errors.New("rate limited")

	// ErrServerFault matches every 5xx status.
	ErrServerFault = errors.New("server fault")

	// ErrInternalServerError matches HTTP 500.
	ErrInternalServerError = errors.New("internal server error")

	// ErrBadGateway matches HTTP 502.
	ErrBadGateway = errors.New("bad gateway")

	// ErrGatewayTimeout matches HTTP 504.
	ErrGatewayTimeout = errors.New("gateway timeout")

	// ErrForbidden matches HTTP 403, usually an invalid or revoked API key.
	ErrForbidden = errors.New("forbidden")

	// ErrPaymentRequired matches HTTP 402, usually an exhausted API plan.
	ErrPaymentRequired = errors.New("payment required")

	// ErrClientRejected matches any other non-2xx status.
	ErrClientRejected = errors.New("client rejected")

	// ErrMalformedResponse is returned when a 2xx body is not valid JSON.
	ErrMalformedResponse = errors.New("malformed response")
)

// maxErrorBodyLength bounds how much of an error body is kept on a StatusError.
const maxErrorBodyLength = 512

// StatusError describes a non-2xx answer from a provider. It carries the status
// code and the (truncated) body, and matches the sentinel kinds of its code.
type StatusError struct {
	Provider   string // name of the provider that answered
	StatusCode int    // HTTP status code
	Body       string // response body, truncated to maxErrorBodyLength bytes
}

// newStatusError builds a StatusError, truncating body if needed.
func newStatusError(provider string, statusCode int, body []byte) *StatusError {
	if len(body) > maxErrorBodyLength {
		body = body[:maxErrorBodyLength]
	}

	return &StatusError{
		Provider:   provider,
		StatusCode: statusCode,
		Body:       string(body),
	}
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Is reports whether target is ErrAPI or one of the kinds of e's status code.
func (e *StatusError) Is(target error) bool {
	if target == ErrAPI {
		return true
	}

	for _, kind := range statusKinds(e.StatusCode) {
		if target == kind {
			return true
		}
	}

	return false
}

// statusKinds maps an HTTP status code to the error kinds it belongs to.
func statusKinds(code int) []error {
	switch {
	case code == nethttp.StatusInternalServerError:
		return []error{ErrInternalServerError, ErrServerFault}
	case code == nethttp.StatusBadGateway:
		return []error{ErrBadGateway, ErrServerFault}
	case code == nethttp.StatusGatewayTimeout:
		return []error{ErrGatewayTimeout, ErrServerFault}
	case code >= 500:
		return []error{ErrServerFault}
	case code == nethttp.StatusForbidden:
		return []error{ErrForbidden}
	case code == nethttp.StatusPaymentRequired:
		return []error{ErrPaymentRequired}
	case code == nethttp.StatusTooManyRequests:
		return []error{ErrRateLimited}
	default:
		return []error{ErrClientRejected}
	}
}
