package client

import (
	"net/http"
	"time"
)

// HeaderRoundTripper sets fixed headers on every outgoing request.
type HeaderRoundTripper struct {
	Transport http.RoundTripper
	Headers   map[string]string
}

// RoundTrip implements the http.RoundTripper interface.
func (t *HeaderRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrip must not modify the caller's request.
	req = req.Clone(req.Context())
	for k, v := range t.Headers {
		req.Header.Set(k, v)
	}

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return transport.RoundTrip(req)
}

// NewHTTPClient builds the client shared by the upstream clients.
// A zero timeout leaves requests unbounded apart from their context.
func NewHTTPClient(timeout time.Duration, userAgent string) *http.Client {
	headers := map[string]string{"Accept": "application/json"}
	if userAgent != "" {
		headers["User-Agent"] = userAgent
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &HeaderRoundTripper{
			Transport: http.DefaultTransport,
			Headers:   headers,
		},
	}
}
