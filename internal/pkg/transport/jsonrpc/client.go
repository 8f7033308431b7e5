// Package jsonrpc provides a JSON-RPC 2.0 client built on top of the provider
// HTTP transport. It supports single calls and batches, and reports server-side
// errors as ErrProviderReturnedError so callers can fail over on them.
package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/blockexplorer/internal/pkg/transport/http"

	"github.com/google/uuid"
)

// Operation is the endpoint operation name JSON-RPC requests are sent to.
// The HTTP client of a JSON-RPC provider must map it, usually to "".
const Operation = "jsonrpc"

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrMissingResponse indicates that a batch answer had no response for one of the calls.
	ErrMissingResponse = errors.New("missing response")

	// ErrUnsupported indicates that the underlying HTTP client has no JSON-RPC endpoint.
	ErrUnsupported = errors.New("json-rpc not supported by provider")
)

// ProviderError is the error object of a JSON-RPC 2.0 response. It matches
// ErrProviderReturnedError with errors.Is.
type ProviderError struct {
	Code    int    `json:"code"`    // Error code defined by the JSON-RPC spec or custom server logic
	Message string `json:"message"` // Human-readable error message
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

// Is reports whether target is ErrProviderReturnedError.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderReturnedError
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"` // JSON-RPC protocol version (usually "2.0")
	ID      json.RawMessage `json:"id"`      // Echo of the request id
	Error   *ProviderError  `json:"error"`   // Set when the call failed
	Result  json.RawMessage `json:"result"`  // Raw result payload returned by the server
}

// Err returns the error object of the response as a *ProviderError, or nil.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// id decodes the response id, which this client always sends as a string.
func (r response) id() string {
	var id string
	if err := json.Unmarshal(r.ID, &id); err != nil {
		return string(r.ID)
	}

	return id
}

// request is a JSON-RPC 2.0 request object.
type request struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// Call is one entry of a batch.
type Call struct {
	Method string
	Params []any
}

// Result is the answer to one Call of a batch. Exactly one of Result and Err is set.
type Result struct {
	Result json.RawMessage
	Err    error
}

// Client defines the interface for a JSON-RPC client.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)

	// BatchFetch sends calls as a single JSON-RPC batch. Answers are matched to
	// calls by id and returned in the order of calls. A failure of the whole
	// exchange is returned as the error; per-call failures are set on each Result.
	BatchFetch(ctx context.Context, calls []Call) ([]Result, error)
}

// Doer sends a logical request through a provider transport.
type Doer interface {
	Do(ctx context.Context, req http.Request) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	transport Doer
	newID     func() string
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// NewClient returns a Client sending its requests through transport.
func NewClient(transport Doer) *client {
	return &client{
		transport: transport,
		newID:     uuid.NewString,
	}
}

// post sends body and returns the raw answer.
func (c *client) post(ctx context.Context, body any) (json.RawMessage, error) {
	raw, err := c.transport.Do(ctx, http.Request{
		Operation: Operation,
		Body:      body,
	})
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, ErrUnsupported
	}

	return raw, nil
}

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// It returns the raw result as a json.RawMessage or an error if the request or server fails.
// The `id` field in the request is generated as a UUID string.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	raw, err := c.post(ctx, request{
		JsonRPC: "2.0",
		ID:      c.newID(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	var data response
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", http.ErrMalformedResponse, err)
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// BatchFetch implements the Client interface.
func (c *client) BatchFetch(ctx context.Context, calls []Call) ([]Result, error) {
	if len(calls) == 0 {
		return nil, nil
	}

	ids := make([]string, len(calls))
	batch := make([]request, len(calls))
	for i, call := range calls {
		params := call.Params
		if params == nil {
			params = []any{}
		}

		ids[i] = c.newID()
		batch[i] = request{
			JsonRPC: "2.0",
			ID:      ids[i],
			Method:  call.Method,
			Params:  params,
		}
	}

	raw, err := c.post(ctx, batch)
	if err != nil {
		return nil, err
	}

	var answers []response
	if err := json.Unmarshal(raw, &answers); err != nil {
		// Some nodes answer a rejected batch with a single error object.
		var single response
		if json.Unmarshal(raw, &single) == nil && single.Error != nil {
			return nil, single.Err()
		}

		return nil, fmt.Errorf("%w: %w", http.ErrMalformedResponse, err)
	}

	byID := make(map[string]response, len(answers))
	for _, answer := range answers {
		byID[answer.id()] = answer
	}

	results := make([]Result, len(calls))
	for i, id := range ids {
		answer, ok := byID[id]
		switch {
		case !ok:
			results[i].Err = fmt.Errorf("%w: %s", ErrMissingResponse, calls[i].Method)
		case answer.Error != nil:
			results[i].Err = answer.Err()
		default:
			results[i].Result = answer.Result
		}
	}

	return results, nil
}
