package memory

import (
	"context"
	"sync"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Player
	orders []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	orders := make([]string, 0, len(players))

	for _, p := range players {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PlayerRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		p := r.items[id]
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.Gender != nil && p.Gender != *filter.Gender {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) UpdateCategory(_ context.Context, playerID string, cat category.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok {
		return nil
	}
	p.Category = cat
	r.items[playerID] = p

	return nil
}

func (r *PlayerRepository) ApplyResultTotals(_ context.Context, playerID string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok {
		return nil
	}
	p.Points += points
	p.TournamentsPlayed++
	r.items[playerID] = p

	return nil
}

func (r *PlayerRepository) RevertResultTotals(_ context.Context, playerID string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok {
		return nil
	}
	p.Points -= points
	if p.TournamentsPlayed > 0 {
		p.TournamentsPlayed--
	}
	r.items[playerID] = p

	return nil
}
