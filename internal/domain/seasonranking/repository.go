package seasonranking

import (
	"context"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
)

// Filter narrows season ranking listings. Nil fields are ignored.
type Filter struct {
	Category *category.Category
	Gender   *player.Gender
}

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string, filter Filter) ([]Row, error)
	// ReplaceBySeason swaps the season's snapshot for the given rows in one
	// transaction.
	ReplaceBySeason(ctx context.Context, seasonID string, rows []Row) error
}
