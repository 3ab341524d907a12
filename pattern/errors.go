package pattern

import "errors"

// ErrPatternNotFound is returned when no embedding exists at or beyond
// the requested skip count.
var ErrPatternNotFound = errors.New("pattern: no embedding found")
