package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/request"
)

type RequestRepository struct {
	mu     sync.RWMutex
	items  map[string]request.Request
	orders []string
}

func NewRequestRepository(requests []request.Request) *RequestRepository {
	items := make(map[string]request.Request, len(requests))
	orders := make([]string, 0, len(requests))

	for _, req := range requests {
		items[req.ID] = req
		orders = append(orders, req.ID)
	}

	return &RequestRepository{
		items:  items,
		orders: orders,
	}
}

func (r *RequestRepository) GetByID(_ context.Context, requestID string) (request.Request, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.items[requestID]
	if !ok {
		return request.Request{}, false, nil
	}

	return req, true, nil
}

func (r *RequestRepository) FindPending(_ context.Context, playerID string) (request.Request, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, found := r.findPendingLocked(playerID)
	return req, found, nil
}

// Insert holds the write lock across the pending check and the store, which
// is what makes the one-pendente-per-player rule race-free here.
func (r *RequestRepository) Insert(_ context.Context, req request.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.findPendingLocked(req.PlayerID); exists {
		return fmt.Errorf("player %s: %w", req.PlayerID, request.ErrPendingExists)
	}

	if _, exists := r.items[req.ID]; !exists {
		r.orders = append(r.orders, req.ID)
	}
	r.items[req.ID] = req

	return nil
}

func (r *RequestRepository) UpdateStatus(
	_ context.Context,
	requestID string,
	status request.Status,
	adminResponse, adminID string,
	responseDate time.Time,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.items[requestID]
	if !ok {
		return fmt.Errorf("change request %s not found", requestID)
	}
	req.Status = status
	req.AdminResponse = &adminResponse
	req.AdminID = &adminID
	req.ResponseDate = &responseDate
	r.items[requestID] = req

	return nil
}

func (r *RequestRepository) ListByStatus(_ context.Context, status request.Status) ([]request.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]request.Request, 0)
	for _, id := range r.orders {
		req := r.items[id]
		if req.Status != status {
			continue
		}
		out = append(out, req)
	}

	return out, nil
}

func (r *RequestRepository) findPendingLocked(playerID string) (request.Request, bool) {
	for _, id := range r.orders {
		req := r.items[id]
		if req.PlayerID == playerID && req.Status == request.StatusPendente {
			return req, true
		}
	}
	return request.Request{}, false
}
