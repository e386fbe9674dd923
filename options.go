package twitchdata

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"errors"
	"time"

	"github.com/streamsight/twitchdata/internal/types"
)

// Option configures a Client during construction in New.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the total per-request timeout used by the client
// (connection, TLS handshake, and reading the response). Prefer per-request
// context deadlines where possible; this is a coarse safety net. The value
// must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return &types.Error{Kind: types.KindInvalidConfiguration, Err: errors.New("http timeout must be > 0")}
		}
		c.rest.SetTimeout(d)
		return nil
	}
}

// WithBaseURL overrides the service base URL. Intended for tests that point
// the client at a local mock server; production use keeps the default.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return &types.Error{Kind: types.KindInvalidConfiguration, Err: errors.New("base URL cannot be empty")}
		}
		c.rest.SetBaseURL(u)
		return nil
	}
}

// WithDebugLogging logs each request/response through zerolog when enabled.
// Not for production use; logs include method, URL, status and timing.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			installDebugHooks(c.rest)
		}
		return nil
	}
}
