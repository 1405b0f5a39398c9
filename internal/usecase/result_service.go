package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/result"
	"github.com/openliga/liga-ranking/internal/domain/scoring"
	"github.com/openliga/liga-ranking/internal/domain/tournament"
	"github.com/openliga/liga-ranking/internal/platform/id"
)

// ResultService ingests final tournament results. Recording a result bumps
// the player's denormalized totals and re-derives their principal category.
type ResultService struct {
	playerRepo     player.Repository
	tournamentRepo tournament.Repository
	scoringRepo    scoring.Repository
	resultRepo     result.Repository
	categorySvc    *CategoryService
	historySvc     *CategoryHistoryService
	idGenerator    id.Generator
	now            func() time.Time
}

func NewResultService(
	playerRepo player.Repository,
	tournamentRepo tournament.Repository,
	scoringRepo scoring.Repository,
	resultRepo result.Repository,
	categorySvc *CategoryService,
	historySvc *CategoryHistoryService,
	idGenerator id.Generator,
) *ResultService {
	return &ResultService{
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		scoringRepo:    scoringRepo,
		resultRepo:     resultRepo,
		categorySvc:    categorySvc,
		historySvc:     historySvc,
		idGenerator:    idGenerator,
		now:            time.Now,
	}
}

type RecordResultInput struct {
	PlayerID       string
	TournamentID   string
	Placement      result.Placement
	CategoryPlayed *category.Category
}

func (s *ResultService) RecordResult(ctx context.Context, input RecordResultInput) (result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.RecordResult")
	defer span.End()

	playerID := strings.TrimSpace(input.PlayerID)
	tournamentID := strings.TrimSpace(input.TournamentID)
	if playerID == "" || tournamentID == "" {
		return result.Result{}, fmt.Errorf("%w: player id and tournament id are required", ErrInvalidInput)
	}
	if !input.Placement.Valid() {
		return result.Result{}, fmt.Errorf("%w: invalid placement %q", ErrInvalidInput, input.Placement)
	}
	if input.CategoryPlayed != nil && !input.CategoryPlayed.Valid() {
		return result.Result{}, fmt.Errorf("%w: invalid category played %q", ErrInvalidInput, *input.CategoryPlayed)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return result.Result{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return result.Result{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	trn, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return result.Result{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return result.Result{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	points, err := s.pointsForPlacement(ctx, trn, input.Placement)
	if err != nil {
		return result.Result{}, err
	}

	resultID, err := s.idGenerator.NewID()
	if err != nil {
		return result.Result{}, fmt.Errorf("generate result id: %w", err)
	}

	row := result.Result{
		ID:             resultID,
		PlayerID:       playerID,
		TournamentID:   tournamentID,
		Placement:      input.Placement,
		PointsEarned:   points,
		CategoryPlayed: input.CategoryPlayed,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.resultRepo.Insert(ctx, row); err != nil {
		return result.Result{}, fmt.Errorf("insert result: %w", err)
	}
	if err := s.playerRepo.ApplyResultTotals(ctx, playerID, points); err != nil {
		return result.Result{}, fmt.Errorf("apply result totals player=%s: %w", playerID, err)
	}

	if err := s.reprincipal(ctx, playerID); err != nil {
		return result.Result{}, err
	}

	return row, nil
}

// DeleteResult is the admin correction path: the result row disappears, the
// player's totals are reverted and any cached category derivation is
// recomputed from the remaining results.
func (s *ResultService) DeleteResult(ctx context.Context, resultID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.DeleteResult")
	defer span.End()

	resultID = strings.TrimSpace(resultID)
	if resultID == "" {
		return fmt.Errorf("%w: result id is required", ErrInvalidInput)
	}

	row, exists, err := s.resultRepo.GetByID(ctx, resultID)
	if err != nil {
		return fmt.Errorf("get result: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: result=%s", ErrNotFound, resultID)
	}

	if err := s.resultRepo.Delete(ctx, resultID); err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	if err := s.playerRepo.RevertResultTotals(ctx, row.PlayerID, row.PointsEarned); err != nil {
		return fmt.Errorf("revert result totals player=%s: %w", row.PlayerID, err)
	}

	return s.reprincipal(ctx, row.PlayerID)
}

func (s *ResultService) ListByPlayer(ctx context.Context, playerID string) ([]result.PlayerResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ListByPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	rows, err := s.resultRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list results by player: %w", err)
	}
	return rows, nil
}

// pointsForPlacement resolves the tournament's custom override first, then
// the active scoring table, then zero.
func (s *ResultService) pointsForPlacement(ctx context.Context, trn tournament.Tournament, placement result.Placement) (int, error) {
	if points, ok := trn.PointsOverride(placement); ok {
		return points, nil
	}

	cfg, exists, err := s.scoringRepo.GetActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("get active scoring config: %w", err)
	}
	if !exists {
		return 0, nil
	}
	return cfg.PointsFor(placement), nil
}

// reprincipal recomputes the principal category and records the transition
// when it moved.
func (s *ResultService) reprincipal(ctx context.Context, playerID string) error {
	current, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player for category recompute: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	principal, err := s.categorySvc.ComputePrincipalCategory(ctx, playerID)
	if err != nil {
		return err
	}
	if principal == current.Category {
		return nil
	}

	reason := category.DirectionReason(current.Category, principal)
	if err := s.historySvc.ApplyCategoryChange(ctx, playerID, principal, reason); err != nil {
		return fmt.Errorf("apply recomputed category player=%s: %w", playerID, err)
	}
	return nil
}
