package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/result"
	"github.com/openliga/liga-ranking/internal/domain/season"
	"github.com/openliga/liga-ranking/internal/domain/seasonranking"
)

func seasonResult(playerID string, date time.Time, placement result.Placement, points int) result.PlayerResult {
	return result.PlayerResult{
		Result: result.Result{
			ID:           playerID + "-" + date.Format("2006-01-02"),
			PlayerID:     playerID,
			Placement:    placement,
			PointsEarned: points,
		},
		TournamentDate:  date,
		TournamentFound: true,
	}
}

func TestSeasonService_RefreshSeasonRankings(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	seasonRepo := &stubSeasonRepository{byID: map[string]season.Season{
		"s2025": {ID: "s2025", Year: 2025, StartDate: start, EndDate: &end},
	}}

	inWindow := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	resultRepo := &stubResultRepository{ranged: []result.PlayerResult{
		seasonResult("p1", inWindow, result.PlacementVice, 70),
		seasonResult("p2", inWindow, result.PlacementCampeao, 100),
		seasonResult("p1", inWindow.AddDate(0, 1, 0), result.PlacementCampeao, 100),
		seasonResult("p3", inWindow, result.PlacementTerceiro, 50),
		// Outside the window: the exclusive end bound drops this row.
		seasonResult("p1", end, result.PlacementCampeao, 100),
		// Before the start: previous season leftovers.
		seasonResult("p2", start.AddDate(0, -1, 0), result.PlacementCampeao, 100),
	}}

	playerRepo := &stubPlayerRepository{byID: map[string]player.Player{
		"p1": {ID: "p1", Name: "Ana", Category: category.C, Gender: player.GenderFeminino},
		"p2": {ID: "p2", Name: "Bruna", Category: category.C, Gender: player.GenderFeminino},
		"p3": {ID: "p3", Name: "Caio", Category: category.B, Gender: player.GenderMasculino},
	}}

	rankingRepo := &stubSeasonRankingRepository{}
	service := NewSeasonService(seasonRepo, resultRepo, playerRepo, rankingRepo)
	service.now = fixedTime

	count, err := service.RefreshSeasonRankings(context.Background(), "s2025")
	if err != nil {
		t.Fatalf("RefreshSeasonRankings error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 ranking rows, got %d", count)
	}

	rows := rankingRepo.replaced["s2025"]
	if len(rows) != 3 {
		t.Fatalf("expected 3 replaced rows, got %d", len(rows))
	}

	byPlayer := make(map[string]seasonranking.Row, len(rows))
	for _, row := range rows {
		byPlayer[row.PlayerID] = row
	}

	p1 := byPlayer["p1"]
	if p1.Points != 170 || p1.TournamentsPlayed != 2 {
		t.Fatalf("unexpected p1 aggregate: %+v", p1)
	}
	if p1.BestResult != result.PlacementCampeao {
		t.Fatalf("expected p1 best result campeao, got %s", p1.BestResult)
	}
	if p1.Position != 1 {
		t.Fatalf("expected p1 first in the C/feminino partition, got %d", p1.Position)
	}

	p2 := byPlayer["p2"]
	if p2.Points != 100 || p2.TournamentsPlayed != 1 || p2.Position != 2 {
		t.Fatalf("unexpected p2 aggregate: %+v", p2)
	}

	// p3 sits alone in its own partition and must still be position 1.
	p3 := byPlayer["p3"]
	if p3.Position != 1 || p3.Category != category.B {
		t.Fatalf("unexpected p3 row: %+v", p3)
	}
	if !p3.CalculatedAt.Equal(fixedTime()) {
		t.Fatalf("unexpected calculated-at: %v", p3.CalculatedAt)
	}
}

func TestSeasonService_RefreshSeasonRankings_SkipsRemovedPlayers(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	seasonRepo := &stubSeasonRepository{byID: map[string]season.Season{
		"s2025": {ID: "s2025", StartDate: start},
	}}
	resultRepo := &stubResultRepository{ranged: []result.PlayerResult{
		seasonResult("gone", start.AddDate(0, 1, 0), result.PlacementCampeao, 100),
	}}
	playerRepo := &stubPlayerRepository{byID: map[string]player.Player{}}
	rankingRepo := &stubSeasonRankingRepository{}

	service := NewSeasonService(seasonRepo, resultRepo, playerRepo, rankingRepo)
	service.now = fixedTime

	count, err := service.RefreshSeasonRankings(context.Background(), "s2025")
	if err != nil {
		t.Fatalf("RefreshSeasonRankings error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 rows for orphaned results, got %d", count)
	}
}

func TestSeasonService_RefreshSeasonRankings_UnknownSeason(t *testing.T) {
	t.Parallel()

	service := NewSeasonService(&stubSeasonRepository{}, &stubResultRepository{}, &stubPlayerRepository{}, &stubSeasonRankingRepository{})

	_, err := service.RefreshSeasonRankings(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSeasonService_ListSeasonRankings_Filter(t *testing.T) {
	t.Parallel()

	seasonRepo := &stubSeasonRepository{byID: map[string]season.Season{
		"s2025": {ID: "s2025"},
	}}
	rankingRepo := &stubSeasonRankingRepository{bySeason: map[string][]seasonranking.Row{
		"s2025": {
			{SeasonID: "s2025", PlayerID: "p1", Category: category.C, Gender: player.GenderFeminino, Position: 1},
			{SeasonID: "s2025", PlayerID: "p2", Category: category.B, Gender: player.GenderMasculino, Position: 1},
		},
	}}
	service := NewSeasonService(seasonRepo, &stubResultRepository{}, &stubPlayerRepository{}, rankingRepo)

	got, err := service.ListSeasonRankings(context.Background(), "s2025", seasonranking.Filter{
		Category: categoryPtr(category.C),
	})
	if err != nil {
		t.Fatalf("ListSeasonRankings error: %v", err)
	}
	if len(got) != 1 || got[0].PlayerID != "p1" {
		t.Fatalf("unexpected filtered rows: %+v", got)
	}
}

func TestSeasonService_ActiveSeason(t *testing.T) {
	t.Parallel()

	active := season.Season{ID: "s2025", Active: true}
	service := NewSeasonService(&stubSeasonRepository{active: &active}, &stubResultRepository{}, &stubPlayerRepository{}, &stubSeasonRankingRepository{})

	got, err := service.ActiveSeason(context.Background())
	if err != nil {
		t.Fatalf("ActiveSeason error: %v", err)
	}
	if got.ID != "s2025" {
		t.Fatalf("unexpected active season: %+v", got)
	}

	empty := NewSeasonService(&stubSeasonRepository{}, &stubResultRepository{}, &stubPlayerRepository{}, &stubSeasonRankingRepository{})
	if _, err := empty.ActiveSeason(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound without an active season, got %v", err)
	}
}
