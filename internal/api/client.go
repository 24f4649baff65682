// Package api talks to the remote to-do endpoint.
package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Makepad-fr/tada-remote/internal/model"
)

// DefaultBaseURL is the public test API the client targets when nothing else is configured.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Remote is the set of operations the list view-model needs.
type Remote interface {
	List(ctx context.Context) ([]model.Item, error)
	Create(ctx context.Context, draft model.Draft) (model.Item, error)
	Remove(ctx context.Context, id int) error
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	header     http.Header
}

var _ Remote = (*Client)(nil)

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)

	httpClient := opts.HTTPClient
	if opts.RateLimit > 0 {
		// Copy so a caller-provided client is not mutated.
		throttled := *httpClient
		throttled.Transport = newThrottleTransport(httpClient.Transport, opts.RateLimit, opts.RateBurst)
		httpClient = &throttled
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		header:     opts.Header,
	}
}

// BaseURL returns the endpoint the client sends requests to.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}
