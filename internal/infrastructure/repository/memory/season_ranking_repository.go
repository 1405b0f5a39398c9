package memory

import (
	"context"
	"sync"

	"github.com/openliga/liga-ranking/internal/domain/seasonranking"
)

type SeasonRankingRepository struct {
	mu       sync.RWMutex
	bySeason map[string][]seasonranking.Row
}

func NewSeasonRankingRepository() *SeasonRankingRepository {
	return &SeasonRankingRepository{
		bySeason: make(map[string][]seasonranking.Row),
	}
}

func (r *SeasonRankingRepository) ListBySeason(_ context.Context, seasonID string, filter seasonranking.Filter) ([]seasonranking.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]seasonranking.Row, 0)
	for _, row := range r.bySeason[seasonID] {
		if filter.Category != nil && row.Category != *filter.Category {
			continue
		}
		if filter.Gender != nil && row.Gender != *filter.Gender {
			continue
		}
		out = append(out, row)
	}

	return out, nil
}

func (r *SeasonRankingRepository) ReplaceBySeason(_ context.Context, seasonID string, rows []seasonranking.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]seasonranking.Row, len(rows))
	copy(snapshot, rows)
	r.bySeason[seasonID] = snapshot

	return nil
}
