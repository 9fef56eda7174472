package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kochabx/restkit/errors"
	"github.com/kochabx/restkit/log"
)

const (
	// Buffer pool constants
	defaultBufferSize = 4096
	maxBufferSize     = 1024 * 1024 // 1MB
)

// ErrUnsupportedMethod is returned by Do for methods other than GET, POST, PUT and DELETE
var ErrUnsupportedMethod = errors.New("unsupported method")

// Dispatcher sends JSON requests to paths below a fixed base URL and
// classifies responses by status code. It keeps no per-call state and is
// safe for concurrent use.
type Dispatcher struct {
	baseURL   string
	doer      Doer
	userAgent string
	header    map[string]string
	logger    *log.Logger
	tracing   bool

	requestOptPool sync.Pool
	bufferPool     sync.Pool
}

// RequestSpec describes one logical dispatch
type RequestSpec struct {
	Method string
	// Path is relative to the base URL and may carry a query string
	Path string
	// Body is JSON-encoded when non-nil, zero values included ("" is sent
	// as ""); only a nil interface sends no payload. An io.Reader is sent as is
	Body   any
	Header map[string]string
}

// New creates a dispatcher rooted at baseURL. The base URL is stored
// verbatim: it is neither validated nor normalized.
func New(baseURL string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		baseURL:   baseURL,
		doer:      noRedirect(&http.Client{}),
		userAgent: DefaultUserAgent,
		logger:    log.Nop(),
		requestOptPool: sync.Pool{
			New: func() any {
				return &RequestOption{
					header: make(map[string]string, 8),
				}
			},
		},
		bufferPool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, defaultBufferSize))
			},
		},
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.tracing {
		d.instrument()
	}

	return d
}

// noRedirect returns a copy of client that hands 3xx responses back
// instead of following them
func noRedirect(client *http.Client) *http.Client {
	c := *client
	c.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &c
}

// instrument swaps the client transport for an otelhttp one
func (d *Dispatcher) instrument() {
	client, ok := d.doer.(*http.Client)
	if !ok {
		return
	}

	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	traced := *client
	traced.Transport = otelhttp.NewTransport(base)
	d.doer = &traced
}

// BaseURL returns the prefix all paths are joined to
func (d *Dispatcher) BaseURL() string {
	return d.baseURL
}

// UserAgent returns the identifying User-Agent sent with every request
func (d *Dispatcher) UserAgent() string {
	return d.userAgent
}

// Do performs one round trip for rs and decodes a 2xx JSON body into out.
// A nil out discards the body after it has been validated as JSON.
func (d *Dispatcher) Do(ctx context.Context, rs RequestSpec, out any) error {
	if !validMethod(rs.Method) {
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, rs.Method)
	}

	reqBuf := d.getBuffer()
	defer d.putBuffer(reqBuf)

	req, err := d.createRequest(ctx, rs, reqBuf)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := d.doer.Do(req)
	if err != nil {
		d.logger.Debug().Err(err).
			Str("method", rs.Method).
			Str("url", req.URL.String()).
			Dur("elapsed", time.Since(start)).
			Msg("dispatch failed")
		return errors.Transport(err)
	}
	defer resp.Body.Close()

	d.logger.Debug().
		Str("method", rs.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("dispatch")

	return d.processResponse(resp, out)
}

// url joins the base URL and path with a single literal slash
func (d *Dispatcher) url(path string) string {
	return d.baseURL + "/" + path
}

// createRequest builds the outbound request, encoding the body into buf
func (d *Dispatcher) createRequest(ctx context.Context, rs RequestSpec, buf *bytes.Buffer) (*http.Request, error) {
	var body io.Reader = http.NoBody
	switch v := rs.Body.(type) {
	case nil:
	case io.Reader:
		body = v
	default:
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return nil, errors.Encode(err)
		}
		// Encoder terminates each value with a newline
		buf.Truncate(buf.Len() - 1)
		body = bytes.NewReader(buf.Bytes())
	}

	req, err := http.NewRequestWithContext(ctx, rs.Method, d.url(rs.Path), body)
	if err != nil {
		return nil, errors.Transport(err)
	}

	d.setRequestHeaders(req, rs.Header)
	return req, nil
}

// setRequestHeaders layers the default Content-Type, the dispatcher headers,
// the caller headers and finally the fixed User-Agent. Keys within a layer
// are applied in sorted order, so when two keys canonicalize to the same
// header the lexically greater one (e.g. "content-type" over "Content-Type") wins.
func (d *Dispatcher) setRequestHeaders(req *http.Request, header map[string]string) {
	req.Header.Set(HeaderContentType, ContentTypeJSON)
	for _, k := range slices.Sorted(maps.Keys(d.header)) {
		req.Header.Set(k, d.header[k])
	}
	for _, k := range slices.Sorted(maps.Keys(header)) {
		req.Header.Set(k, header[k])
	}
	req.Header.Set(HeaderUserAgent, d.userAgent)
}

// processResponse validates the body as JSON, then classifies by status.
// An empty body is a decode error except on 204 No Content, which succeeds
// and leaves out untouched.
func (d *Dispatcher) processResponse(resp *http.Response, out any) error {
	buf := d.getBuffer()
	defer d.putBuffer(buf)

	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return errors.Transport(err)
	}

	raw := bytes.TrimSpace(buf.Bytes())
	if len(raw) == 0 && resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if !json.Valid(raw) {
		var v any
		return errors.Decode(json.Unmarshal(raw, &v))
	}

	if !successful(resp.StatusCode) {
		compact := new(bytes.Buffer)
		// raw is valid JSON, Compact cannot fail. Token text is kept as sent.
		_ = json.Compact(compact, raw)
		return errors.Status(resp.StatusCode, compact.String())
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Decode(err)
	}
	return nil
}

// successful reports whether the status code's first digit is 2
func successful(code int) bool {
	return code >= 200 && code < 300
}

// getRequestOption retrieves a RequestOption from the pool
func (d *Dispatcher) getRequestOption() *RequestOption {
	opt := d.requestOptPool.Get().(*RequestOption)
	opt.reset()
	return opt
}

// putRequestOption returns a RequestOption to the pool
func (d *Dispatcher) putRequestOption(opt *RequestOption) {
	d.requestOptPool.Put(opt)
}

// getBuffer retrieves a buffer from the pool
func (d *Dispatcher) getBuffer() *bytes.Buffer {
	buf := d.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer returns a buffer to the pool unless it grew past maxBufferSize
func (d *Dispatcher) putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxBufferSize {
		d.bufferPool.Put(buf)
	}
}
