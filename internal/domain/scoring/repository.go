package scoring

import "context"

type Repository interface {
	GetActive(ctx context.Context) (Config, bool, error)
	GetBySeason(ctx context.Context, seasonID string) (Config, bool, error)
}
