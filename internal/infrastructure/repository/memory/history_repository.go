package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/openliga/liga-ranking/internal/domain/history"
)

type HistoryRepository struct {
	mu     sync.RWMutex
	items  map[string]history.Entry
	orders []string
}

func NewHistoryRepository(entries []history.Entry) *HistoryRepository {
	items := make(map[string]history.Entry, len(entries))
	orders := make([]string, 0, len(entries))

	for _, e := range entries {
		items[e.ID] = e
		orders = append(orders, e.ID)
	}

	return &HistoryRepository{
		items:  items,
		orders: orders,
	}
}

func (r *HistoryRepository) FindOpen(_ context.Context, playerID string) (history.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var open history.Entry
	found := false
	for _, id := range r.orders {
		e := r.items[id]
		if e.PlayerID != playerID || !e.Open() {
			continue
		}
		if found {
			return history.Entry{}, false, fmt.Errorf("player %s: %w", playerID, history.ErrMultipleOpen)
		}
		open = e
		found = true
	}

	return open, found, nil
}

// Transition closes the identified entry and opens the new one under one
// lock acquisition, so no reader observes the half-applied state.
func (r *HistoryRepository) Transition(_ context.Context, close history.Close, open history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[close.EntryID]
	if !ok {
		return fmt.Errorf("history entry %s not found", close.EntryID)
	}
	exitDate := close.ExitDate
	exitReason := close.ExitReason
	current.ExitDate = &exitDate
	current.ExitReason = &exitReason
	r.items[close.EntryID] = current

	if _, exists := r.items[open.ID]; !exists {
		r.orders = append(r.orders, open.ID)
	}
	r.items[open.ID] = open

	return nil
}

func (r *HistoryRepository) Insert(_ context.Context, entry history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[entry.ID]; !exists {
		r.orders = append(r.orders, entry.ID)
	}
	r.items[entry.ID] = entry

	return nil
}

func (r *HistoryRepository) ListByPlayer(_ context.Context, playerID string) ([]history.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]history.Entry, 0)
	for _, id := range r.orders {
		e := r.items[id]
		if e.PlayerID != playerID {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}
