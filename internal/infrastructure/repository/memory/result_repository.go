package memory

import (
	"context"
	"sync"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/result"
)

// ResultRepository joins results against the tournament store at read time,
// mirroring the SQL join the persistent implementation performs.
type ResultRepository struct {
	mu          sync.RWMutex
	items       map[string]result.Result
	orders      []string
	tournaments *TournamentRepository
}

func NewResultRepository(results []result.Result, tournaments *TournamentRepository) *ResultRepository {
	items := make(map[string]result.Result, len(results))
	orders := make([]string, 0, len(results))

	for _, res := range results {
		items[res.ID] = res
		orders = append(orders, res.ID)
	}

	return &ResultRepository{
		items:       items,
		orders:      orders,
		tournaments: tournaments,
	}
}

func (r *ResultRepository) GetByID(_ context.Context, resultID string) (result.Result, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.items[resultID]
	if !ok {
		return result.Result{}, false, nil
	}

	return res, true, nil
}

func (r *ResultRepository) ListByPlayer(ctx context.Context, playerID string) ([]result.PlayerResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.PlayerResult, 0)
	for _, id := range r.orders {
		res := r.items[id]
		if res.PlayerID != playerID {
			continue
		}
		out = append(out, r.join(ctx, res))
	}

	return out, nil
}

func (r *ResultRepository) ListByDateRange(ctx context.Context, start time.Time, end *time.Time) ([]result.PlayerResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.PlayerResult, 0)
	for _, id := range r.orders {
		joined := r.join(ctx, r.items[id])
		if !joined.TournamentFound {
			continue
		}
		if joined.TournamentDate.Before(start) {
			continue
		}
		if end != nil && !joined.TournamentDate.Before(*end) {
			continue
		}
		out = append(out, joined)
	}

	return out, nil
}

func (r *ResultRepository) Insert(_ context.Context, res result.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[res.ID]; !exists {
		r.orders = append(r.orders, res.ID)
	}
	r.items[res.ID] = res

	return nil
}

func (r *ResultRepository) Delete(_ context.Context, resultID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[resultID]; !exists {
		return nil
	}
	delete(r.items, resultID)
	for i, id := range r.orders {
		if id == resultID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

func (r *ResultRepository) join(ctx context.Context, res result.Result) result.PlayerResult {
	joined := result.PlayerResult{Result: res}
	trn, found, err := r.tournaments.GetByID(ctx, res.TournamentID)
	if err != nil || !found {
		return joined
	}
	joined.TournamentCategory = trn.Category
	joined.TournamentDate = trn.Date
	joined.TournamentFound = true
	return joined
}
