package sheets

import "errors"

// Sentinel kinds for acquisition errors.
var (
	ErrNoData      = errors.New("sheet returned no data rows")
	ErrFetch       = errors.New("sheet fetch failed")
	ErrCredentials = errors.New("credentials unavailable")
)
