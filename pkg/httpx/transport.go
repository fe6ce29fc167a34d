// Package httpx provides the outbound HTTP transport used by the SDK.
//
// Transport is an http.RoundTripper that decorates every request with the
// headers BuildingLink expects (User-Agent, X-Correlation-Id) and optionally
// throttles outbound calls so a polling integration cannot hammer the
// provider.
package httpx

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/aussiebroadwan/buildinglink/pkg/idx"
	"github.com/aussiebroadwan/buildinglink/pkg/slogx"
)

// CorrelationHeader carries the per-request ULID correlation ID.
const CorrelationHeader = "X-Correlation-Id"

// RateLimitConfig defines outbound throttling parameters.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
}

// Limiter converts the config into a token-bucket limiter.
// Returns nil for a zero config, meaning no throttling.
func (c RateLimitConfig) Limiter() *rate.Limiter {
	if c.RequestsPerWindow <= 0 || c.Window <= 0 {
		return nil
	}

	burst := c.Burst
	if burst <= 0 {
		burst = c.RequestsPerWindow
	}

	every := c.Window / time.Duration(c.RequestsPerWindow)
	return rate.NewLimiter(rate.Every(every), burst)
}

// Transport decorates an http.RoundTripper with BuildingLink request
// conventions. The zero value is not usable; construct with NewTransport.
type Transport struct {
	base      http.RoundTripper
	userAgent string
	limiter   *rate.Limiter
}

// NewTransport wraps base (http.DefaultTransport when nil). A nil limiter
// disables throttling.
func NewTransport(base http.RoundTripper, userAgent string, limiter *rate.Limiter) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &Transport{
		base:      base,
		userAgent: userAgent,
		limiter:   limiter,
	}
}

// RoundTrip implements http.RoundTripper. It blocks on the rate limiter
// (honouring request context cancellation), then forwards a clone of the
// request with the User-Agent and a fresh correlation ID attached.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	// Per RoundTripper contract the original request must not be mutated.
	out := req.Clone(req.Context())

	if t.userAgent != "" && out.Header.Get("User-Agent") == "" {
		out.Header.Set("User-Agent", t.userAgent)
	}

	if out.Header.Get(CorrelationHeader) == "" {
		id := idx.New()
		out.Header.Set(CorrelationHeader, id.String())

		slogx.FromContext(req.Context()).Debug("outbound request",
			"method", out.Method,
			"host", out.URL.Host,
			"path", out.URL.Path,
			"correlation_id", id.String(),
		)
	}

	return t.base.RoundTrip(out)
}
