package api

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// throttleTransport waits for a token before each request. It never retries.
type throttleTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func newThrottleTransport(base http.RoundTripper, limit rate.Limit, burst int) *throttleTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &throttleTransport{
		base:    base,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (t *throttleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, errors.Wrap(err, "rate limiter")
	}
	return t.base.RoundTrip(req)
}
