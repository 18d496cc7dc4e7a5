package ports

import "errors"

// ErrNotFound is returned when no record matches a lookup key. Services also
// collapse repository query failures into it, so callers only ever observe
// found or not-found; the underlying cause is logged, never propagated.
var ErrNotFound = errors.New("record not found")
