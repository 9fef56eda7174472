package http

import (
	"github.com/kochabx/restkit/config"
)

// NewFromConfig builds a Dispatcher from a loaded DispatcherConfig.
// opts are applied after the configured ones and may override them.
func NewFromConfig(c *config.DispatcherConfig, opts ...Option) (*Dispatcher, error) {
	logger, err := c.Log.Logger()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithUserAgent(c.UserAgent),
		WithDefaultHeaders(c.Headers),
		WithLogger(logger),
	}
	if c.Tracing {
		base = append(base, WithTracing())
	}

	return New(c.BaseURL, append(base, opts...)...), nil
}
