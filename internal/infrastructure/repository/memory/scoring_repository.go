package memory

import (
	"context"
	"sync"

	"github.com/openliga/liga-ranking/internal/domain/scoring"
)

type ScoringRepository struct {
	mu      sync.RWMutex
	configs []scoring.Config
}

func NewScoringRepository(configs []scoring.Config) *ScoringRepository {
	return &ScoringRepository{configs: configs}
}

func (r *ScoringRepository) GetActive(_ context.Context) (scoring.Config, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cfg := range r.configs {
		if cfg.Ativo {
			return cfg, true, nil
		}
	}

	return scoring.Config{}, false, nil
}

func (r *ScoringRepository) GetBySeason(_ context.Context, seasonID string) (scoring.Config, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cfg := range r.configs {
		if cfg.SeasonID == seasonID {
			return cfg, true, nil
		}
	}

	return scoring.Config{}, false, nil
}
