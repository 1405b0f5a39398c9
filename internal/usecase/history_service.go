package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/history"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/platform/id"
)

// CategoryHistoryService owns the append-only category membership ledger.
// The ledger is the source of truth; the player's category field is a cache
// this service keeps in lockstep.
type CategoryHistoryService struct {
	historyRepo history.Repository
	playerRepo  player.Repository
	idGenerator id.Generator
	now         func() time.Time
}

func NewCategoryHistoryService(
	historyRepo history.Repository,
	playerRepo player.Repository,
	idGenerator id.Generator,
) *CategoryHistoryService {
	return &CategoryHistoryService{
		historyRepo: historyRepo,
		playerRepo:  playerRepo,
		idGenerator: idGenerator,
		now:         time.Now,
	}
}

// ApplyCategoryChange closes the player's open membership period and opens a
// new one for newCategory. Calling it with the player's current category is a
// no-op. The close/open pair is applied atomically by the repository.
func (s *CategoryHistoryService) ApplyCategoryChange(
	ctx context.Context,
	playerID string,
	newCategory category.Category,
	reason category.ExitReason,
) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryHistoryService.ApplyCategoryChange")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if !newCategory.Valid() {
		return fmt.Errorf("%w: invalid category %q", ErrInvalidInput, newCategory)
	}

	open, exists, err := s.historyRepo.FindOpen(ctx, playerID)
	if err != nil {
		if errors.Is(err, history.ErrMultipleOpen) {
			return fmt.Errorf("%w: player=%s: %v", ErrInvariantViolation, playerID, err)
		}
		return fmt.Errorf("find open category history: %w", err)
	}

	if exists && open.Category == newCategory {
		return nil
	}

	now := s.now().UTC()
	entryID, err := s.idGenerator.NewID()
	if err != nil {
		return fmt.Errorf("generate history entry id: %w", err)
	}
	next := history.Entry{
		ID:               entryID,
		PlayerID:         playerID,
		Category:         newCategory,
		PointsInCategory: 0,
		EntryDate:        now,
	}

	if !exists {
		if err := s.historyRepo.Insert(ctx, next); err != nil {
			return fmt.Errorf("insert first category history entry: %w", err)
		}
	} else {
		close := history.Close{
			EntryID:    open.ID,
			ExitDate:   now,
			ExitReason: reason,
		}
		if err := s.historyRepo.Transition(ctx, close, next); err != nil {
			return fmt.Errorf("transition category history player=%s: %w", playerID, err)
		}
	}

	if err := s.playerRepo.UpdateCategory(ctx, playerID, newCategory); err != nil {
		return fmt.Errorf("update player category cache player=%s: %w", playerID, err)
	}

	return nil
}

// ApplyAdminOverride is the manual assignment path; the closed period is
// marked with the admin exit reason.
func (s *CategoryHistoryService) ApplyAdminOverride(ctx context.Context, playerID string, newCategory category.Category) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryHistoryService.ApplyAdminOverride")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return s.ApplyCategoryChange(ctx, playerID, newCategory, category.ExitAdmin)
}

func (s *CategoryHistoryService) ListByPlayer(ctx context.Context, playerID string) ([]history.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryHistoryService.ListByPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	entries, err := s.historyRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list category history: %w", err)
	}

	return entries, nil
}
