package scoring

import (
	"time"

	"github.com/openliga/liga-ranking/internal/domain/result"
)

// Config maps placements to point values. One config per season; the ativo
// flag marks the league-wide active table.
type Config struct {
	ID                string
	SeasonID          string
	PointsByPlacement map[result.Placement]int
	Ativo             bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (c Config) PointsFor(placement result.Placement) int {
	return c.PointsByPlacement[placement]
}
