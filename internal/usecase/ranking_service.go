package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/openliga/liga-ranking/internal/domain/player"
)

// RankedPlayer is a player with an assigned standings position.
type RankedPlayer struct {
	player.Player
	Position int
}

// RankingService produces positioned standings for the all-time totals.
type RankingService struct {
	playerRepo player.Repository
}

func NewRankingService(playerRepo player.Repository) *RankingService {
	return &RankingService{playerRepo: playerRepo}
}

// Rank assigns positions by sequence index only. The input must already be
// sorted by the caller; ties keep whatever relative order the input provided.
// Pure transform, empty input yields an empty ranking.
func Rank(players []player.Player) []RankedPlayer {
	out := make([]RankedPlayer, 0, len(players))
	for i, p := range players {
		out = append(out, RankedPlayer{Player: p, Position: i + 1})
	}
	return out
}

// ListRanking loads the filtered players, pre-sorts them by points desc with
// tournaments played and name as deterministic tie-breaks, and ranks them.
func (s *RankingService) ListRanking(ctx context.Context, filter player.Filter) ([]RankedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.ListRanking")
	defer span.End()

	if filter.Category != nil && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid category %q", ErrInvalidInput, *filter.Category)
	}
	if filter.Gender != nil && !filter.Gender.Valid() {
		return nil, fmt.Errorf("%w: invalid gender %q", ErrInvalidInput, *filter.Gender)
	}

	players, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players for ranking: %w", err)
	}

	sortPlayersForRanking(players)
	return Rank(players), nil
}

func sortPlayersForRanking(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Points != players[j].Points {
			return players[i].Points > players[j].Points
		}
		if players[i].TournamentsPlayed != players[j].TournamentsPlayed {
			return players[i].TournamentsPlayed > players[j].TournamentsPlayed
		}
		return players[i].Name < players[j].Name
	})
}
