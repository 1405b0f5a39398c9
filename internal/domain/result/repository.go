package result

import (
	"context"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, resultID string) (Result, bool, error)
	// ListByPlayer joins each result with its tournament's category, in
	// recorded order.
	ListByPlayer(ctx context.Context, playerID string) ([]PlayerResult, error)
	// ListByDateRange returns joined results whose tournament date falls in
	// [start, end). A nil end leaves the window open-ended.
	ListByDateRange(ctx context.Context, start time.Time, end *time.Time) ([]PlayerResult, error)
	Insert(ctx context.Context, r Result) error
	Delete(ctx context.Context, resultID string) error
}
