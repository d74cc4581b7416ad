package swc

import "errors"

var (
	// The tree cannot be decomposed: a cycle, a dangling parent reference
	// or not exactly one root. Loading of the offending file is aborted;
	// the session carries on.
	ErrMalformedTree = errors.New("swc: malformed tree")
)
