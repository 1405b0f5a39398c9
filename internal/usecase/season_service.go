package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/result"
	"github.com/openliga/liga-ranking/internal/domain/season"
	"github.com/openliga/liga-ranking/internal/domain/seasonranking"
	"github.com/openliga/liga-ranking/internal/platform/resilience"
)

// SeasonService scopes standings to a season window. The season is always an
// explicit parameter; the ativa flag is resolved once at the edge via
// ActiveSeason, never read ambiently during computation.
type SeasonService struct {
	seasonRepo  season.Repository
	resultRepo  result.Repository
	playerRepo  player.Repository
	rankingRepo seasonranking.Repository
	refresh     resilience.SingleFlight
	now         func() time.Time
}

func NewSeasonService(
	seasonRepo season.Repository,
	resultRepo result.Repository,
	playerRepo player.Repository,
	rankingRepo seasonranking.Repository,
) *SeasonService {
	return &SeasonService{
		seasonRepo:  seasonRepo,
		resultRepo:  resultRepo,
		playerRepo:  playerRepo,
		rankingRepo: rankingRepo,
		now:         time.Now,
	}
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return seasons, nil
}

func (s *SeasonService) ActiveSeason(ctx context.Context) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ActiveSeason")
	defer span.End()

	active, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: no active season", ErrNotFound)
	}
	return active, nil
}

// RefreshSeasonRankings rebuilds the season's denormalized standings from
// scratch: results in [start, end) aggregated per player, partitioned by
// (category, gender), ranked per partition, and swapped in transactionally.
// Concurrent refreshes for the same season share one run. Returns the number
// of ranking rows written.
func (s *SeasonService) RefreshSeasonRankings(ctx context.Context, seasonID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.RefreshSeasonRankings")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return 0, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	v, err, _ := s.refresh.Do("season-rankings:"+seasonID, func() (any, error) {
		return s.refreshOnce(ctx, seasonID)
	})
	if err != nil {
		return 0, err
	}
	count, _ := v.(int)
	return count, nil
}

func (s *SeasonService) refreshOnce(ctx context.Context, seasonID string) (int, error) {
	current, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	results, err := s.resultRepo.ListByDateRange(ctx, current.StartDate, current.EndDate)
	if err != nil {
		return 0, fmt.Errorf("list season results: %w", err)
	}

	players, err := s.playerRepo.List(ctx, player.Filter{})
	if err != nil {
		return 0, fmt.Errorf("list players for season rankings: %w", err)
	}
	playerByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
	}

	totals := aggregateSeasonTotals(results)

	partitions := make(map[partitionKey][]seasonranking.Row)
	order := make([]partitionKey, 0)
	now := s.now().UTC()
	for _, playerID := range totals.order {
		agg := totals.byPlayer[playerID]
		p, known := playerByID[playerID]
		if !known {
			// Result rows can outlive a removed player; they carry no
			// category/gender to rank under.
			continue
		}
		key := partitionKey{category: p.Category, gender: p.Gender}
		if _, seen := partitions[key]; !seen {
			order = append(order, key)
		}
		partitions[key] = append(partitions[key], seasonranking.Row{
			SeasonID:          seasonID,
			PlayerID:          p.ID,
			PlayerName:        p.Name,
			Category:          p.Category,
			Gender:            p.Gender,
			Points:            agg.points,
			TournamentsPlayed: agg.tournaments,
			BestResult:        agg.best,
			CalculatedAt:      now,
		})
	}

	var mu sync.Mutex
	rows := make([]seasonranking.Row, 0, len(totals.byPlayer))
	ranker := pool.New().WithErrors().WithContext(ctx)
	for _, key := range order {
		key := key
		ranker.Go(func(ctx context.Context) error {
			ranked := rankSeasonPartition(partitions[key])
			mu.Lock()
			rows = append(rows, ranked...)
			mu.Unlock()
			return nil
		})
	}
	if err := ranker.Wait(); err != nil {
		return 0, fmt.Errorf("rank season partitions: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category.Ordinal() > rows[j].Category.Ordinal()
		}
		if rows[i].Gender != rows[j].Gender {
			return rows[i].Gender < rows[j].Gender
		}
		return rows[i].Position < rows[j].Position
	})

	if err := s.rankingRepo.ReplaceBySeason(ctx, seasonID, rows); err != nil {
		return 0, fmt.Errorf("replace season rankings: %w", err)
	}

	return len(rows), nil
}

// ListSeasonRankings returns the stored snapshot for the season.
func (s *SeasonService) ListSeasonRankings(ctx context.Context, seasonID string, filter seasonranking.Filter) ([]seasonranking.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListSeasonRankings")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid category %q", ErrInvalidInput, *filter.Category)
	}
	if filter.Gender != nil && !filter.Gender.Valid() {
		return nil, fmt.Errorf("%w: invalid gender %q", ErrInvalidInput, *filter.Gender)
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	rows, err := s.rankingRepo.ListBySeason(ctx, seasonID, filter)
	if err != nil {
		return nil, fmt.Errorf("list season rankings: %w", err)
	}
	return rows, nil
}

type partitionKey struct {
	category category.Category
	gender   player.Gender
}

type seasonAggregate struct {
	points      int
	tournaments int
	best        result.Placement
}

type seasonTotals struct {
	byPlayer map[string]seasonAggregate
	order    []string
}

func aggregateSeasonTotals(results []result.PlayerResult) seasonTotals {
	totals := seasonTotals{byPlayer: make(map[string]seasonAggregate)}
	for _, row := range results {
		agg, seen := totals.byPlayer[row.PlayerID]
		if !seen {
			totals.order = append(totals.order, row.PlayerID)
		}
		agg.points += row.PointsEarned
		agg.tournaments++
		if row.Placement.BetterThan(agg.best) {
			agg.best = row.Placement
		}
		totals.byPlayer[row.PlayerID] = agg
	}
	return totals
}

func rankSeasonPartition(rows []seasonranking.Row) []seasonranking.Row {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].TournamentsPlayed != rows[j].TournamentsPlayed {
			return rows[i].TournamentsPlayed > rows[j].TournamentsPlayed
		}
		return rows[i].PlayerName < rows[j].PlayerName
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}
