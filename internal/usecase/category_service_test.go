package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/result"
)

func TestCategoryService_ComputePrincipalCategory_NoResults(t *testing.T) {
	t.Parallel()

	repo := &stubResultRepository{byPlayer: map[string][]result.PlayerResult{}}
	service := NewCategoryService(repo)

	got, err := service.ComputePrincipalCategory(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ComputePrincipalCategory error: %v", err)
	}
	if got != category.FUN {
		t.Fatalf("expected FUN for a player without results, got %s", got)
	}
}

func TestCategoryService_ComputePrincipalCategory_Majority(t *testing.T) {
	t.Parallel()

	repo := &stubResultRepository{
		byPlayer: map[string][]result.PlayerResult{
			"p1": {
				playedResult("p1", category.C),
				playedResult("p1", category.B),
				playedResult("p1", category.B),
			},
		},
	}
	service := NewCategoryService(repo)

	got, err := service.ComputePrincipalCategory(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ComputePrincipalCategory error: %v", err)
	}
	if got != category.B {
		t.Fatalf("expected B, got %s", got)
	}
}

func TestCategoryService_ComputePrincipalCategory_TieKeepsFirstSeen(t *testing.T) {
	t.Parallel()

	repo := &stubResultRepository{
		byPlayer: map[string][]result.PlayerResult{
			"p1": {
				playedResult("p1", category.C),
				playedResult("p1", category.B),
				playedResult("p1", category.B),
				playedResult("p1", category.C),
			},
		},
	}
	service := NewCategoryService(repo)

	got, err := service.ComputePrincipalCategory(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ComputePrincipalCategory error: %v", err)
	}
	if got != category.C {
		t.Fatalf("expected the first category to reach the max to win the tie, got %s", got)
	}
}

func TestCategoryService_ComputePrincipalCategory_CategoryPlayedWins(t *testing.T) {
	t.Parallel()

	override := playedResult("p1", category.D)
	override.CategoryPlayed = categoryPtr(category.A)

	repo := &stubResultRepository{
		byPlayer: map[string][]result.PlayerResult{
			"p1": {override},
		},
	}
	service := NewCategoryService(repo)

	got, err := service.ComputePrincipalCategory(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ComputePrincipalCategory error: %v", err)
	}
	if got != category.A {
		t.Fatalf("expected the explicit category played to count, got %s", got)
	}
}

func TestCategoryService_ComputePrincipalCategory_MissingTournamentFallsBack(t *testing.T) {
	t.Parallel()

	orphan := result.PlayerResult{
		Result:          result.Result{ID: "r1", PlayerID: "p1", Placement: result.PlacementVice},
		TournamentFound: false,
	}
	repo := &stubResultRepository{
		byPlayer: map[string][]result.PlayerResult{
			"p1": {orphan},
		},
	}
	service := NewCategoryService(repo)

	got, err := service.ComputePrincipalCategory(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ComputePrincipalCategory error: %v", err)
	}
	if got != category.Default {
		t.Fatalf("expected the default tier for an orphaned result, got %s", got)
	}
}

func TestCategoryService_ComputePrincipalCategory_EmptyPlayerID(t *testing.T) {
	t.Parallel()

	service := NewCategoryService(&stubResultRepository{})

	_, err := service.ComputePrincipalCategory(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
