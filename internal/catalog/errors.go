package catalog

import "errors"

// Catalog construction errors. These are fatal to the session being
// built: callers surface them and do not retry.
var (
	// ErrNoWords means the requested category has no words at all.
	ErrNoWords = errors.New("no words available")

	// ErrNotEnoughWords means the catalog is too small to build the
	// requested material (e.g. fewer than four words for a quiz).
	ErrNotEnoughWords = errors.New("not enough words")

	// ErrBadOptions means an option set does not contain exactly one
	// correct entry.
	ErrBadOptions = errors.New("option set must have exactly one correct entry")
)
