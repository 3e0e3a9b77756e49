package normalize

import "errors"

// Sentinel kinds for retro resolution failures. Both are recovered
// locally by dropping the offending event; they exist so callers and
// tests can tell the two drop reasons apart.
var (
	// ErrUnresolvedRetro: the retro fields carry too little information
	// to place the event on a calendar date.
	ErrUnresolvedRetro = errors.New("retro event unresolved")

	// ErrUnclassifiedRetroCase: the decision table reached the branch
	// assumed unreachable for future-leaning reports. A hit signals a
	// defect in the operational assumption, not in the caller's data.
	ErrUnclassifiedRetroCase = errors.New("unclassified retro case")
)
