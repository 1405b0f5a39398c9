package memory

import (
	"context"
	"sync"

	"github.com/openliga/liga-ranking/internal/domain/season"
)

type SeasonRepository struct {
	mu     sync.RWMutex
	items  map[string]season.Season
	orders []string
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	items := make(map[string]season.Season, len(seasons))
	orders := make([]string, 0, len(seasons))

	for _, s := range seasons {
		items[s.ID] = s
		orders = append(orders, s.ID)
	}

	return &SeasonRepository{
		items:  items,
		orders: orders,
	}
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[seasonID]
	if !ok {
		return season.Season{}, false, nil
	}

	return s, true, nil
}

func (r *SeasonRepository) GetActive(_ context.Context) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		s := r.items[id]
		if s.Active {
			return s, true, nil
		}
	}

	return season.Season{}, false, nil
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}
