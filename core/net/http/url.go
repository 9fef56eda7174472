package http

import (
	"fmt"
	"net/url"
)

// WithQuery appends the encoded params to path. Keys are sorted, values are
// percent-encoded and repeated keys keep their value order. Empty params
// leave path unchanged.
func WithQuery(path string, params url.Values) string {
	encoded := params.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// Query builds url.Values from a flat map
func Query(params map[string]string) url.Values {
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}
	return values
}

// QueryAny builds url.Values from arbitrary values, formatting each with %v.
// Slices are not expanded.
func QueryAny(params map[string]any) url.Values {
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, fmt.Sprint(v))
	}
	return values
}
