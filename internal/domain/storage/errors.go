// Package storage holds failure sentinels shared by repository
// implementations regardless of backend.
package storage

import "errors"

// ErrUnavailable marks errors caused by the backing store being
// unreachable, as opposed to a statement that failed against a healthy
// store. Repository implementations wrap connection-level failures with
// it so callers can abort work that would fail identically.
var ErrUnavailable = errors.New("store unavailable")
