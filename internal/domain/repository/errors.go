package repository

import "errors"

// ErrNotFound is returned by lookups when no row matches. Absence is a
// normal outcome for several workflows (e.g. "not submitted yet"), so
// callers are expected to branch on it rather than treat it as a fault.
var ErrNotFound = errors.New("not found")
