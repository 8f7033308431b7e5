package explorer

import (
	"context"
	"errors"

	"github.com/gabapcia/blockexplorer/internal/pkg/transport/graphql"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/http"
	"github.com/gabapcia/blockexplorer/internal/pkg/transport/jsonrpc"
)

// shouldFailover reports whether err means "this provider could not answer".
// Every transport failure qualifies, as do errors the upstream API reported
// in a well-formed answer. Unit conversion, parser and validation errors do
// not: they are programming or configuration errors and must surface.
func (e *Explorer) shouldFailover(err error) bool {
	switch {
	case errors.Is(err, http.ErrConnectionFailure),
		errors.Is(err, http.ErrRateLimited),
		errors.Is(err, http.ErrAPI),
		errors.Is(err, jsonrpc.ErrProviderReturnedError),
		errors.Is(err, jsonrpc.ErrMissingResponse),
		errors.Is(err, graphql.ErrQueryFailed),
		errors.Is(err, ErrResultTruncated),
		errors.Is(err, context.DeadlineExceeded):
		return true
	case errors.Is(err, http.ErrMalformedResponse):
		return e.cfg.failoverOnMalformed
	default:
		return false
	}
}

// isOperatorAlert reports whether err points at a configuration problem, an
// invalid API key or an exhausted plan, rather than upstream trouble.
func isOperatorAlert(err error) bool {
	return errors.Is(err, http.ErrForbidden) || errors.Is(err, http.ErrPaymentRequired)
}

// errorKind labels err for metrics and logs.
func errorKind(err error) string {
	switch {
	case errors.Is(err, http.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, http.ErrForbidden):
		return "forbidden"
	case errors.Is(err, http.ErrPaymentRequired):
		return "payment_required"
	case errors.Is(err, http.ErrServerFault):
		return "server_fault"
	case errors.Is(err, http.ErrClientRejected):
		return "client_rejected"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, http.ErrConnectionFailure):
		return "connection"
	case errors.Is(err, jsonrpc.ErrProviderReturnedError),
		errors.Is(err, jsonrpc.ErrMissingResponse),
		errors.Is(err, graphql.ErrQueryFailed):
		return "provider_error"
	case errors.Is(err, http.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, ErrResultTruncated):
		return "truncated"
	default:
		return "unknown"
	}
}
