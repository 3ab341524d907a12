package rewrite

import "errors"

// ErrNotImplemented is returned when before and after differ in shape
// (state count or alphabet size); only same-shape rewrites are supported.
var ErrNotImplemented = errors.New("rewrite: pattern pair shapes differ")
