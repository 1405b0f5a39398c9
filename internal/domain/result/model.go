package result

import (
	"fmt"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
)

// Placement is the coded final standing a player achieved in a tournament.
type Placement string

const (
	PlacementCampeao      Placement = "campeao"
	PlacementVice         Placement = "vice"
	PlacementTerceiro     Placement = "terceiro"
	PlacementQuartas      Placement = "quartas"
	PlacementOitavas      Placement = "oitavas"
	PlacementParticipacao Placement = "participacao"
)

// placementOrder ranks placements best-first for "best result" aggregation.
var placementOrder = map[Placement]int{
	PlacementCampeao:      0,
	PlacementVice:         1,
	PlacementTerceiro:     2,
	PlacementQuartas:      3,
	PlacementOitavas:      4,
	PlacementParticipacao: 5,
}

func ParsePlacement(raw string) (Placement, error) {
	p := Placement(raw)
	if _, ok := placementOrder[p]; !ok {
		return "", fmt.Errorf("unknown placement %q", raw)
	}
	return p, nil
}

func (p Placement) Valid() bool {
	_, ok := placementOrder[p]
	return ok
}

// BetterThan reports whether p is a strictly better placement than other.
func (p Placement) BetterThan(other Placement) bool {
	if other == "" {
		return true
	}
	return placementOrder[p] < placementOrder[other]
}

// Result links one player to one tournament. Immutable once recorded except
// by admin correction.
type Result struct {
	ID            string
	PlayerID      string
	TournamentID  string
	Placement     Placement
	PointsEarned  int
	// CategoryPlayed is set when the player competed outside their current
	// category; it takes precedence over the tournament's nominal category.
	CategoryPlayed *category.Category
	CreatedAt      time.Time
}

// PlayerResult is a result joined with its tournament's nominal category.
// TournamentFound is false when the tournament row no longer exists.
type PlayerResult struct {
	Result
	TournamentCategory category.Category
	TournamentDate     time.Time
	TournamentFound    bool
}

// CountedCategory resolves the category this result counts toward:
// the explicit category played, else the tournament's nominal category,
// else the default tier when the tournament reference is gone.
func (r PlayerResult) CountedCategory() category.Category {
	if r.CategoryPlayed != nil && r.CategoryPlayed.Valid() {
		return *r.CategoryPlayed
	}
	if !r.TournamentFound {
		return category.Default
	}
	return r.TournamentCategory
}
