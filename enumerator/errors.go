package enumerator

import "errors"

// ErrExhausted is returned by Next once every distinct k-tuple over
// {0, …, M} has been produced.
var ErrExhausted = errors.New("enumerator: exhausted")
