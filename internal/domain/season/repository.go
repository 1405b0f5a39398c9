package season

import "context"

type Repository interface {
	GetByID(ctx context.Context, seasonID string) (Season, bool, error)
	// GetActive resolves the single season flagged ativa.
	GetActive(ctx context.Context) (Season, bool, error)
	List(ctx context.Context) ([]Season, error)
}
