package api

import (
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

type Options struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	Header     http.Header
	RateLimit  rate.Limit
	RateBurst  int
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) OptionFunc {
	return func(opts *Options) {
		opts.Header.Add(key, value)
	}
}

// WithRateLimit throttles outgoing requests to limit per second.
// A zero limit disables throttling.
func WithRateLimit(limit rate.Limit, burst int) OptionFunc {
	return func(opts *Options) {
		opts.RateLimit = limit
		opts.RateBurst = burst
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	base, _ := url.Parse(DefaultBaseURL)
	opts := &Options{
		BaseURL: base,
		// No timeout: requests end when the server answers or the context is done.
		HTTPClient: &http.Client{},
		Header: http.Header{
			"Accept": []string{"application/json"},
		},
		RateBurst: 1,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	if opts.RateBurst < 1 {
		opts.RateBurst = 1
	}
	return opts
}
