package installer

import "errors"

// Sentinel errors distinguishing the non-fatal failure classes a strategy
// can produce. All of them drive the fallback chain: the pipeline logs a
// warning and moves on to the next strategy.

// ErrNotFound reports that a lookup produced nothing, typically a release
// page with no asset matching the configured pattern.
var ErrNotFound = errors.New("no match found")

// ErrDeclined reports that the user answered no to a destructive
// confirmation. The declined target is left untouched and the tool simply
// remains unresolved; this is not an I/O failure.
var ErrDeclined = errors.New("declined by user")
