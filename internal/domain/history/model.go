package history

import (
	"errors"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
)

// ErrMultipleOpen signals a corrupted ledger: more than one entry without an
// exit date for the same player. Surfaced, never silently repaired.
var ErrMultipleOpen = errors.New("multiple open category history entries")

// Entry is one time-bounded category membership period. Entries for a player
// are append-only and never overlap; the entry with a nil ExitDate is the
// current one.
type Entry struct {
	ID               string
	PlayerID         string
	Category         category.Category
	PointsInCategory int
	EntryDate        time.Time
	ExitDate         *time.Time
	ExitReason       *category.ExitReason
}

func (e Entry) Open() bool {
	return e.ExitDate == nil
}
