package http

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Request describes one logical call to a provider.
type Request struct {
	// Operation selects the endpoint template. A client without a template for
	// the operation does not support it.
	Operation string

	// Params fill the {name} placeholders of the template.
	Params map[string]string

	// Body, when set, is JSON encoded and sent with POST.
	Body any

	// ForcePost sends a POST even when Body is nil.
	ForcePost bool

	// Headers are added to the client's default headers for this call only.
	Headers map[string]string

	// Timeout overrides the client's default timeout when positive.
	Timeout time.Duration
}

// Do sends req and returns the raw JSON body of a successful answer.
//
// When the client has no endpoint for req.Operation, Do returns (nil, nil)
// without sending anything: the provider does not support the operation.
//
// While a post-429 backoff window is open, Do returns ErrRateLimited without
// contacting the provider. Otherwise the call waits for the pacing limiter,
// then any failure is reported as one of the error kinds of this package.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	endpoint, ok := c.resolve(req.Operation, req.Params)
	if !ok {
		return nil, nil
	}

	if c.retry == nil {
		return c.send(ctx, endpoint, req)
	}

	var data json.RawMessage
	err := c.retry.Execute(ctx, func() error {
		var err error
		data, err = c.send(ctx, endpoint, req)
		return err
	})

	return data, err
}

// Supports reports whether the client has an endpoint for operation.
func (c *Client) Supports(operation string) bool {
	_, ok := c.endpoints[operation]
	return ok
}

// resolve fills the endpoint template of operation.
func (c *Client) resolve(operation string, params map[string]string) (string, bool) {
	template, ok := c.endpoints[operation]
	if !ok {
		return "", false
	}

	pairs := make([]string, 0, 2*len(params)+2)
	pairs = append(pairs, "{apikey}", url.QueryEscape(c.apiKey))
	for key, value := range params {
		pairs = append(pairs, "{"+key+"}", url.QueryEscape(value))
	}
	filled := strings.NewReplacer(pairs...).Replace(template)

	switch {
	case filled == "":
		return c.baseURL, true
	case strings.HasPrefix(filled, "http://"), strings.HasPrefix(filled, "https://"):
		return filled, true
	}

	return strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(filled, "/"), true
}

// send performs a single HTTP exchange.
func (c *Client) send(ctx context.Context, endpoint string, req Request) (json.RawMessage, error) {
	if until := c.backoffUntil.Load(); until != 0 && c.now().UnixNano() < until {
		return nil, fmt.Errorf("%w: %s is backing off until %s", ErrRateLimited, c.name, time.Unix(0, until).UTC().Format(time.RFC3339))
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRateLimited, c.name, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, cmp.Or(req.Timeout, c.timeout))
	defer cancel()

	httpReq, err := c.newRequest(ctx, endpoint, req)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConnectionFailure, c.name, err)
	}
	defer res.Body.Close()

	c.lastResponseAt.Store(c.now().UnixNano())

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading body: %w", ErrConnectionFailure, c.name, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		if res.StatusCode == nethttp.StatusTooManyRequests {
			c.backoffUntil.Store(c.now().Add(c.backoff).UnixNano())
		}
		return nil, newStatusError(c.name, res.StatusCode, body)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s: body is not valid JSON", ErrMalformedResponse, c.name)
	}

	return body, nil
}

// newRequest builds the retryablehttp request of req.
func (c *Client) newRequest(ctx context.Context, endpoint string, req Request) (*retryablehttp.Request, error) {
	method := nethttp.MethodGet
	var body any
	if req.Body != nil || req.ForcePost {
		method = nethttp.MethodPost
	}
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = payload
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if method == nethttp.MethodPost {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}
