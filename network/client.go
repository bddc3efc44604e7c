// Package network provides pre-configured HTTP clients for communication with the media host.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/ytmux-cli/ytmux/constant"
	"github.com/ytmux-cli/ytmux/key"
)

// Client is the singleton HTTP client shared across the application for efficient resource utilization.
// It deliberately carries no overall timeout: stream retrievals block until completion,
// and only header-level timeouts guard against unresponsive servers.
var Client = &http.Client{
	Transport: &browserHeaders{next: newTransport()},
}

// spoofed is the Chrome-fingerprint client, constructed lazily (see tls.go).
var spoofed = &http.Client{
	Transport: &browserHeaders{next: &spoofedTransport{}},
}

// browserHeaders stamps a browser User-Agent on requests that carry none,
// matching the TLS fingerprint the spoofed transport presents.
type browserHeaders struct {
	next http.RoundTripper
}

func (t *browserHeaders) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	return t.next.RoundTrip(req)
}

// Session returns the HTTP client to use against the media host,
// honoring the network.tls_spoof configuration toggle.
func Session() *http.Client {
	if viper.GetBool(key.NetworkTLSSpoof) {
		return spoofed
	}
	return Client
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
