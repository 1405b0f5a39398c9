package player

import (
	"context"

	"github.com/openliga/liga-ranking/internal/domain/category"
)

// Filter narrows player listings. Nil fields are ignored.
type Filter struct {
	Category *category.Category
	Gender   *Gender
}

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	// UpdateCategory refreshes the denormalized category field only.
	UpdateCategory(ctx context.Context, playerID string, cat category.Category) error
	// ApplyResultTotals bumps cumulative points and the tournaments-played count.
	ApplyResultTotals(ctx context.Context, playerID string, points int) error
	// RevertResultTotals undoes ApplyResultTotals after an admin correction.
	RevertResultTotals(ctx context.Context, playerID string, points int) error
}
