package player

import (
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
)

type Gender string

const (
	GenderMasculino Gender = "masculino"
	GenderFeminino  Gender = "feminino"
)

func (g Gender) Valid() bool {
	return g == GenderMasculino || g == GenderFeminino
}

// Player carries the denormalized ranking totals. Category mirrors the open
// category history entry and is mutated only through the history service.
type Player struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	Gender            Gender
	Category          category.Category
	Points            int
	TournamentsPlayed int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
