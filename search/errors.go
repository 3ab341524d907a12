package search

import "errors"

// ErrNoPatterns is returned if Search is invoked with an empty pattern
// list: there is nothing to enumerate at any level.
var ErrNoPatterns = errors.New("search: pattern list is empty")
