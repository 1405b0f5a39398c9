package tournament

import (
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/result"
)

type Status string

const (
	StatusConfirmado  Status = "confirmado"
	StatusEmAndamento Status = "em_andamento"
	StatusRealizado   Status = "realizado"
)

type Tournament struct {
	ID       string
	Name     string
	Date     time.Time
	Location string
	Category category.Category
	Status   Status
	SeasonID string
	// CustomPoints overrides the season scoring table for specific placements,
	// for this tournament only.
	CustomPoints map[result.Placement]int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PointsOverride reports the custom point value for a placement, if any.
func (t Tournament) PointsOverride(placement result.Placement) (int, bool) {
	if len(t.CustomPoints) == 0 {
		return 0, false
	}
	points, ok := t.CustomPoints[placement]
	return points, ok
}
