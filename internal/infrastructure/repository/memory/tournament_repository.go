package memory

import (
	"context"
	"sync"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/tournament"
)

type TournamentRepository struct {
	mu     sync.RWMutex
	items  map[string]tournament.Tournament
	orders []string
}

func NewTournamentRepository(tournaments []tournament.Tournament) *TournamentRepository {
	items := make(map[string]tournament.Tournament, len(tournaments))
	orders := make([]string, 0, len(tournaments))

	for _, t := range tournaments {
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TournamentRepository{
		items:  items,
		orders: orders,
	}
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[tournamentID]
	if !ok {
		return tournament.Tournament{}, false, nil
	}

	return t, true, nil
}

func (r *TournamentRepository) ListByDateRange(_ context.Context, start time.Time, end *time.Time) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.orders))
	for _, id := range r.orders {
		t := r.items[id]
		if t.Date.Before(start) {
			continue
		}
		if end != nil && !t.Date.Before(*end) {
			continue
		}
		out = append(out, t)
	}

	return out, nil
}
