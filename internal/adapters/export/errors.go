package export

import "errors"

// Sentinel kinds for export errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
