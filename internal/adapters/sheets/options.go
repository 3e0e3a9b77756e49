package sheets

import (
	"time"

	"github.com/okian/ohbehave/pkg/logger"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithSpreadsheet sets the spreadsheet id and A1 range to read.
func WithSpreadsheet(id, readRange string) Option {
	return func(c *Client) {
		if id != "" {
			c.spreadsheetID = id
		}
		if readRange != "" {
			c.readRange = readRange
		}
	}
}

// WithCredentialsFile points at the service-account credentials JSON.
func WithCredentialsFile(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.credentialsPath = path
		}
	}
}

// WithCache configures the on-disk cache location and how stale its
// newest row may be before a live fetch replaces it.
func WithCache(path string, maxAge time.Duration) Option {
	return func(c *Client) {
		if path != "" {
			c.cachePath = path
		}
		if maxAge > 0 {
			c.cacheMaxAge = maxAge
		}
	}
}

// WithIgnoreCache forces a live fetch regardless of cache freshness.
func WithIgnoreCache(ignore bool) Option {
	return func(c *Client) { c.ignoreCache = ignore }
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock overrides the wall clock used for cache freshness, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}
