package seasonranking

import (
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/result"
)

// Row is a denormalized per-season standings snapshot, rebuilt on demand.
type Row struct {
	SeasonID          string
	PlayerID          string
	PlayerName        string
	Category          category.Category
	Gender            player.Gender
	Points            int
	TournamentsPlayed int
	Position          int
	BestResult        result.Placement
	CalculatedAt      time.Time
}
