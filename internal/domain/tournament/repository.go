package tournament

import (
	"context"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	// ListByDateRange returns tournaments dated in [start, end). A nil end
	// leaves the window open-ended.
	ListByDateRange(ctx context.Context, start time.Time, end *time.Time) ([]Tournament, error)
}
