package history

import (
	"time"

	"context"

	"github.com/openliga/liga-ranking/internal/domain/category"
)

// Close identifies the open entry to terminate during a transition.
type Close struct {
	EntryID    string
	ExitDate   time.Time
	ExitReason category.ExitReason
}

type Repository interface {
	// FindOpen returns the player's current membership period. It returns
	// ErrMultipleOpen when the at-most-one-open invariant is broken.
	FindOpen(ctx context.Context, playerID string) (Entry, bool, error)
	// Transition closes the given entry and opens the new one atomically.
	Transition(ctx context.Context, close Close, open Entry) error
	// Insert opens a first-ever membership period.
	Insert(ctx context.Context, entry Entry) error
	ListByPlayer(ctx context.Context, playerID string) ([]Entry, error)
}
