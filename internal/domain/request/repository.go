package request

import (
	"context"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, requestID string) (Request, bool, error)
	FindPending(ctx context.Context, playerID string) (Request, bool, error)
	// Insert stores a new pendente request. It returns ErrPendingExists when
	// the player already has one; the check and insert are a single atomic
	// step per player.
	Insert(ctx context.Context, r Request) error
	UpdateStatus(ctx context.Context, requestID string, status Status, adminResponse, adminID string, responseDate time.Time) error
	ListByStatus(ctx context.Context, status Status) ([]Request, error)
}
