package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
)

const (
	recalcStatusChanged   = "changed"
	recalcStatusUnchanged = "unchanged"
	recalcStatusFailed    = "failed"

	defaultRecalcWorkers = 4
)

// RecalcPlayerResult captures the outcome for one player in a batch.
type RecalcPlayerResult struct {
	PlayerID     string `json:"player_id"`
	Status       string `json:"status"`
	FromCategory string `json:"from_category,omitempty"`
	ToCategory   string `json:"to_category,omitempty"`
	Message      string `json:"message,omitempty"`
	DurationMs   int64  `json:"duration_ms"`

	storeUnavailable bool
}

type RecalcResult struct {
	ProcessedCount int                  `json:"processed_count"`
	ChangedCount   int                  `json:"changed_count"`
	UnchangedCount int                  `json:"unchanged_count"`
	FailedCount    int                  `json:"failed_count"`
	WorkerCount    int                  `json:"worker_count"`
	Players        []RecalcPlayerResult `json:"players"`
}

// RecalculationService re-derives principal categories in bulk. Work runs on
// a bounded pool; each player appears at most once per batch, so no two
// category transitions for the same player ever run concurrently.
type RecalculationService struct {
	playerRepo  player.Repository
	categorySvc *CategoryService
	historySvc  *CategoryHistoryService
	maxWorkers  int
}

func NewRecalculationService(
	playerRepo player.Repository,
	categorySvc *CategoryService,
	historySvc *CategoryHistoryService,
	maxWorkers int,
) *RecalculationService {
	if maxWorkers <= 0 {
		maxWorkers = defaultRecalcWorkers
	}
	return &RecalculationService{
		playerRepo:  playerRepo,
		categorySvc: categorySvc,
		historySvc:  historySvc,
		maxWorkers:  maxWorkers,
	}
}

// RecalculateAll reprocesses every player. Individual failures are captured
// per player and do not stop the batch; a store outage cancels the remaining
// work since later items would fail identically.
func (s *RecalculationService) RecalculateAll(ctx context.Context) (RecalcResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecalculationService.RecalculateAll")
	defer span.End()

	players, err := s.playerRepo.List(ctx, player.Filter{})
	if err != nil {
		return RecalcResult{}, MapStoreError(fmt.Errorf("list players for recalculation: %w", err))
	}

	ids := make([]string, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}

	return s.run(ctx, ids)
}

// RecalculateBatch reprocesses an explicit set of players; duplicate IDs are
// collapsed.
func (s *RecalculationService) RecalculateBatch(ctx context.Context, playerIDs []string) (RecalcResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecalculationService.RecalculateBatch")
	defer span.End()

	if len(playerIDs) == 0 {
		return RecalcResult{}, fmt.Errorf("%w: player ids are required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(playerIDs))
	ids := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return RecalcResult{}, fmt.Errorf("%w: player ids are required", ErrInvalidInput)
	}

	return s.run(ctx, ids)
}

func (s *RecalculationService) run(ctx context.Context, playerIDs []string) (RecalcResult, error) {
	result := RecalcResult{WorkerCount: s.maxWorkers}
	if len(playerIDs) == 0 {
		return result, nil
	}
	if result.WorkerCount > len(playerIDs) {
		result.WorkerCount = len(playerIDs)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	rows := make(chan RecalcPlayerResult, len(playerIDs))

	var changedCount atomic.Int32
	var unchangedCount atomic.Int32
	var failedCount atomic.Int32
	var storeDown atomic.Bool

	pool, err := ants.NewPool(result.WorkerCount)
	if err != nil {
		return RecalcResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, playerID := range playerIDs {
		playerID := playerID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RecalcPlayerResult{PlayerID: playerID}

			if runCtx.Err() != nil {
				row.Status = recalcStatusFailed
				row.Message = "cancelled"
				row.DurationMs = time.Since(start).Milliseconds()
				rows <- row
				failedCount.Add(1)
				return
			}

			row = s.recalculateOne(runCtx, playerID)
			row.DurationMs = time.Since(start).Milliseconds()
			rows <- row

			switch row.Status {
			case recalcStatusChanged:
				changedCount.Add(1)
			case recalcStatusUnchanged:
				unchangedCount.Add(1)
			default:
				failedCount.Add(1)
				if row.storeUnavailable {
					storeDown.Store(true)
					cancel()
				}
			}
		}); err != nil {
			workers.Done()
			cancel()
			return RecalcResult{}, fmt.Errorf("submit player to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Players = append(result.Players, row)
	}
	sort.SliceStable(result.Players, func(i, j int) bool {
		return result.Players[i].PlayerID < result.Players[j].PlayerID
	})

	result.ChangedCount = int(changedCount.Load())
	result.UnchangedCount = int(unchangedCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.ProcessedCount = len(result.Players)

	if storeDown.Load() {
		return result, fmt.Errorf("%w: recalculation aborted", ErrDependencyUnavailable)
	}
	return result, nil
}

func (s *RecalculationService) recalculateOne(ctx context.Context, playerID string) RecalcPlayerResult {
	row := RecalcPlayerResult{PlayerID: playerID}

	current, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return failedRow(row, err)
	}
	if !exists {
		row.Status = recalcStatusFailed
		row.Message = "player not found"
		return row
	}
	row.FromCategory = current.Category.String()

	principal, err := s.categorySvc.ComputePrincipalCategory(ctx, playerID)
	if err != nil {
		return failedRow(row, err)
	}
	row.ToCategory = principal.String()

	if principal == current.Category {
		row.Status = recalcStatusUnchanged
		return row
	}

	reason := category.DirectionReason(current.Category, principal)
	if err := s.historySvc.ApplyCategoryChange(ctx, playerID, principal, reason); err != nil {
		return failedRow(row, err)
	}

	row.Status = recalcStatusChanged
	return row
}

func failedRow(row RecalcPlayerResult, err error) RecalcPlayerResult {
	err = MapStoreError(err)
	row.Status = recalcStatusFailed
	row.Message = err.Error()
	row.storeUnavailable = errors.Is(err, ErrDependencyUnavailable)
	return row
}
