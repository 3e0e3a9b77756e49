package frame

import "errors"

// Sentinel kinds for frame errors.
var (
	// ErrEmptyLog: zero events, so there is no first/last date to anchor
	// the daily range. The only fatal condition in the pipeline.
	ErrEmptyLog = errors.New("empty event log")
)
