package http

import (
	"context"
	"net/url"
)

// Get performs a GET request. No body is sent.
func (d *Dispatcher) Get(ctx context.Context, path string, out any, opts ...func(*RequestOption)) error {
	return d.dispatch(ctx, MethodGet, path, nil, out, opts)
}

// Post performs a POST request with body encoded as JSON; a nil body sends no payload
func (d *Dispatcher) Post(ctx context.Context, path string, body, out any, opts ...func(*RequestOption)) error {
	return d.dispatch(ctx, MethodPost, path, body, out, opts)
}

// Put performs a PUT request with body encoded as JSON; a nil body sends no payload
func (d *Dispatcher) Put(ctx context.Context, path string, body, out any, opts ...func(*RequestOption)) error {
	return d.dispatch(ctx, MethodPut, path, body, out, opts)
}

// Delete performs a DELETE request. Non-empty params are appended to path as
// a query string. No body is sent.
func (d *Dispatcher) Delete(ctx context.Context, path string, params url.Values, out any, opts ...func(*RequestOption)) error {
	return d.dispatch(ctx, MethodDelete, WithQuery(path, params), nil, out, opts)
}

func (d *Dispatcher) dispatch(ctx context.Context, method, path string, body, out any, opts []func(*RequestOption)) error {
	opt := d.getRequestOption()
	defer d.putRequestOption(opt)

	for _, o := range opts {
		o(opt)
	}

	return d.Do(ctx, RequestSpec{
		Method: method,
		Path:   path,
		Body:   body,
		Header: opt.header,
	}, out)
}

// Typed helpers. Methods cannot take type parameters, so these wrap the
// Dispatcher methods and decode into a fresh T.

// Get performs a GET request and decodes the response into T
func Get[T any](ctx context.Context, d *Dispatcher, path string, opts ...func(*RequestOption)) (T, error) {
	var out T
	if err := d.Get(ctx, path, &out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Post performs a POST request and decodes the response into T
func Post[T any](ctx context.Context, d *Dispatcher, path string, body any, opts ...func(*RequestOption)) (T, error) {
	var out T
	if err := d.Post(ctx, path, body, &out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Put performs a PUT request and decodes the response into T
func Put[T any](ctx context.Context, d *Dispatcher, path string, body any, opts ...func(*RequestOption)) (T, error) {
	var out T
	if err := d.Put(ctx, path, body, &out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Delete performs a DELETE request and decodes the response into T
func Delete[T any](ctx context.Context, d *Dispatcher, path string, params url.Values, opts ...func(*RequestOption)) (T, error) {
	var out T
	if err := d.Delete(ctx, path, params, &out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
