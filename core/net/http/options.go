package http

import (
	"maps"
	"net/http"

	"github.com/kochabx/restkit/log"
)

// Option configures a Dispatcher at construction time
type Option func(*Dispatcher)

// WithClient sets the http.Client used for round trips. The client is
// copied and never follows redirects, so 3xx responses reach the caller.
func WithClient(client *http.Client) Option {
	return func(d *Dispatcher) {
		if client != nil {
			d.doer = noRedirect(client)
		}
	}
}

// WithDoer sets an arbitrary round trip executor, replacing the http.Client
func WithDoer(doer Doer) Option {
	return func(d *Dispatcher) {
		if doer != nil {
			d.doer = doer
		}
	}
}

// WithUserAgent replaces DefaultUserAgent. Empty values are ignored.
// The value is still applied after caller headers on every request.
func WithUserAgent(ua string) Option {
	return func(d *Dispatcher) {
		if ua != "" {
			d.userAgent = ua
		}
	}
}

// WithDefaultHeaders sets headers sent with every request.
// They sit between the default Content-Type and per-call headers.
func WithDefaultHeaders(header map[string]string) Option {
	return func(d *Dispatcher) {
		if len(header) == 0 {
			return
		}
		if d.header == nil {
			d.header = make(map[string]string, len(header))
		}
		maps.Copy(d.header, header)
	}
}

// WithLogger enables a debug event per dispatch
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithTracing wraps the http.Client transport with OpenTelemetry instrumentation.
// It has no effect when a custom Doer that is not an *http.Client is configured.
func WithTracing() Option {
	return func(d *Dispatcher) {
		d.tracing = true
	}
}

// RequestOption holds options for an individual dispatch
type RequestOption struct {
	header map[string]string
}

// WithHeader merges headers into the request, overriding defaults on collision
func WithHeader(header map[string]string) func(*RequestOption) {
	return func(opt *RequestOption) {
		maps.Copy(opt.header, header)
	}
}

// WithHeaderValue sets a single request header
func WithHeaderValue(key, value string) func(*RequestOption) {
	return func(opt *RequestOption) {
		opt.header[key] = value
	}
}

// reset clears the option for reuse
func (opt *RequestOption) reset() {
	clear(opt.header)
}
