// Package graphql sends GraphQL queries through the provider HTTP transport.
package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/blockexplorer/internal/pkg/transport/http"
)

// ErrQueryFailed indicates that the server answered with a non-empty errors array.
var ErrQueryFailed = errors.New("graphql query failed")

// request is the body of a GraphQL POST.
type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// queryError is one entry of the errors array of a GraphQL answer.
type queryError struct {
	Message string `json:"message"`
}

// response is the envelope of a GraphQL answer.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []queryError    `json:"errors"`
}

// Client defines the interface for a GraphQL client.
type Client interface {
	// Query posts query with variables to the endpoint of operation and
	// returns the raw "data" member of the answer. When the provider has no
	// endpoint for operation, Query returns (nil, nil).
	Query(ctx context.Context, operation, query string, variables map[string]any) (json.RawMessage, error)
}

// Doer sends a logical request through a provider transport.
type Doer interface {
	Do(ctx context.Context, req http.Request) (json.RawMessage, error)
}

type client struct {
	transport Doer
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// NewClient returns a Client sending its queries through transport.
func NewClient(transport Doer) *client {
	return &client{transport: transport}
}

// Query implements the Client interface.
func (c *client) Query(ctx context.Context, operation, query string, variables map[string]any) (json.RawMessage, error) {
	raw, err := c.transport.Do(ctx, http.Request{
		Operation: operation,
		Body: request{
			Query:     query,
			Variables: variables,
		},
	})
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, nil
	}

	var data response
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", http.ErrMalformedResponse, err)
	}

	if len(data.Errors) > 0 {
		messages := make([]string, len(data.Errors))
		for i, e := range data.Errors {
			messages[i] = e.Message
		}
		return nil, fmt.Errorf("%w: %s", ErrQueryFailed, strings.Join(messages, "; "))
	}

	return data.Data, nil
}
