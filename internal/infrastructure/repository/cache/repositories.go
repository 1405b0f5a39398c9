// Package cache decorates repositories with a read-through TTL cache. Only
// slow-moving reference data is cached here; player rows change on every
// recorded result and are always read from the store of record.
package cache

import (
	"context"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/scoring"
	"github.com/openliga/liga-ranking/internal/domain/season"
	"github.com/openliga/liga-ranking/internal/domain/seasonranking"
	"github.com/openliga/liga-ranking/internal/domain/tournament"
	basecache "github.com/openliga/liga-ranking/internal/platform/cache"
)

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	key := "season:id:" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cached.value, cached.exists, nil
}

func (r *SeasonRepository) GetActive(ctx context.Context) (season.Season, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "season:active", func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetActive(ctx)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cached.value, cached.exists, nil
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	v, err := r.cache.GetOrLoad(ctx, "season:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]season.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]season.Season)
	return append([]season.Season(nil), items...), nil
}

type cachedSeason struct {
	value  season.Season
	exists bool
}

type ScoringRepository struct {
	next  scoring.Repository
	cache *basecache.Store
}

func NewScoringRepository(next scoring.Repository, cache *basecache.Store) *ScoringRepository {
	return &ScoringRepository{next: next, cache: cache}
}

func (r *ScoringRepository) GetActive(ctx context.Context) (scoring.Config, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "scoring:active", func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetActive(ctx)
		if err != nil {
			return nil, err
		}
		return cachedScoringConfig{value: item, exists: exists}, nil
	})
	if err != nil {
		return scoring.Config{}, false, err
	}

	cached, _ := v.(cachedScoringConfig)
	return cached.value, cached.exists, nil
}

func (r *ScoringRepository) GetBySeason(ctx context.Context, seasonID string) (scoring.Config, bool, error) {
	key := "scoring:season:" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return cachedScoringConfig{value: item, exists: exists}, nil
	})
	if err != nil {
		return scoring.Config{}, false, err
	}

	cached, _ := v.(cachedScoringConfig)
	return cached.value, cached.exists, nil
}

type cachedScoringConfig struct {
	value  scoring.Config
	exists bool
}

type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	key := "tournament:id:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return cachedTournament{value: item, exists: exists}, nil
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	cached, _ := v.(cachedTournament)
	return cached.value, cached.exists, nil
}

// ListByDateRange is not cached: the windows vary per season refresh and a
// stale listing would leak into recomputed standings.
func (r *TournamentRepository) ListByDateRange(ctx context.Context, start time.Time, end *time.Time) ([]tournament.Tournament, error) {
	return r.next.ListByDateRange(ctx, start, end)
}

type cachedTournament struct {
	value  tournament.Tournament
	exists bool
}

type SeasonRankingRepository struct {
	next  seasonranking.Repository
	cache *basecache.Store
}

func NewSeasonRankingRepository(next seasonranking.Repository, cache *basecache.Store) *SeasonRankingRepository {
	return &SeasonRankingRepository{next: next, cache: cache}
}

func (r *SeasonRankingRepository) ListBySeason(ctx context.Context, seasonID string, filter seasonranking.Filter) ([]seasonranking.Row, error) {
	key := seasonRankingKey(seasonID, filter)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID, filter)
		if err != nil {
			return nil, err
		}
		return append([]seasonranking.Row(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]seasonranking.Row)
	return append([]seasonranking.Row(nil), items...), nil
}

func (r *SeasonRankingRepository) ReplaceBySeason(ctx context.Context, seasonID string, rows []seasonranking.Row) error {
	if err := r.next.ReplaceBySeason(ctx, seasonID, rows); err != nil {
		return err
	}
	r.cache.InvalidatePrefix(ctx, "seasonranking:"+seasonID+":")
	return nil
}

func seasonRankingKey(seasonID string, filter seasonranking.Filter) string {
	key := "seasonranking:" + seasonID + ":"
	if filter.Category != nil {
		key += filter.Category.String()
	}
	key += ":"
	if filter.Gender != nil {
		key += string(*filter.Gender)
	}
	return key
}
