package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openliga/liga-ranking/internal/domain/season"
	"github.com/openliga/liga-ranking/internal/domain/seasonranking"
	basecache "github.com/openliga/liga-ranking/internal/platform/cache"
)

type countingSeasonRepository struct {
	calls   int
	seasons []season.Season
}

func (r *countingSeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.calls++
	for _, s := range r.seasons {
		if s.ID == seasonID {
			return s, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (r *countingSeasonRepository) GetActive(_ context.Context) (season.Season, bool, error) {
	r.calls++
	for _, s := range r.seasons {
		if s.Active {
			return s, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (r *countingSeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.calls++
	return append([]season.Season(nil), r.seasons...), nil
}

type countingRankingRepository struct {
	listCalls int
	rows      []seasonranking.Row
}

func (r *countingRankingRepository) ListBySeason(_ context.Context, _ string, _ seasonranking.Filter) ([]seasonranking.Row, error) {
	r.listCalls++
	return append([]seasonranking.Row(nil), r.rows...), nil
}

func (r *countingRankingRepository) ReplaceBySeason(_ context.Context, _ string, rows []seasonranking.Row) error {
	r.rows = append([]seasonranking.Row(nil), rows...)
	return nil
}

func TestSeasonRepository_CachesReads(t *testing.T) {
	t.Parallel()

	inner := &countingSeasonRepository{
		seasons: []season.Season{{ID: "s-2025", Year: 2025, Active: true}},
	}
	repo := NewSeasonRepository(inner, basecache.NewStore(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, found, err := repo.GetByID(ctx, "s-2025")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, 2025, got.Year)
	}
	require.Equal(t, 1, inner.calls)
}

func TestSeasonRepository_CachesMisses(t *testing.T) {
	t.Parallel()

	inner := &countingSeasonRepository{}
	repo := NewSeasonRepository(inner, basecache.NewStore(time.Minute))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, found, err := repo.GetByID(ctx, "missing")
		require.NoError(t, err)
		require.False(t, found)
	}
	require.Equal(t, 1, inner.calls)
}

func TestSeasonRankingRepository_ReplaceInvalidatesSeason(t *testing.T) {
	t.Parallel()

	inner := &countingRankingRepository{
		rows: []seasonranking.Row{{SeasonID: "s-2025", PlayerID: "p1", Position: 1}},
	}
	repo := NewSeasonRankingRepository(inner, basecache.NewStore(time.Minute))
	ctx := context.Background()

	first, err := repo.ListBySeason(ctx, "s-2025", seasonranking.Filter{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = repo.ListBySeason(ctx, "s-2025", seasonranking.Filter{})
	require.NoError(t, err)
	require.Equal(t, 1, inner.listCalls)

	require.NoError(t, repo.ReplaceBySeason(ctx, "s-2025", []seasonranking.Row{
		{SeasonID: "s-2025", PlayerID: "p1", Position: 1},
		{SeasonID: "s-2025", PlayerID: "p2", Position: 2},
	}))

	refreshed, err := repo.ListBySeason(ctx, "s-2025", seasonranking.Filter{})
	require.NoError(t, err)
	require.Len(t, refreshed, 2)
	require.Equal(t, 2, inner.listCalls)
}
