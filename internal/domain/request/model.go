package request

import (
	"errors"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
)

// ErrPendingExists signals that the player already has a pendente request.
// Repositories must detect this atomically with the insert.
var ErrPendingExists = errors.New("player already has a pending category change request")

type Status string

const (
	StatusPendente  Status = "pendente"
	StatusAprovada  Status = "aprovada"
	StatusRejeitada Status = "rejeitada"
)

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPendente, StatusAprovada, StatusRejeitada:
		return Status(raw), nil
	default:
		return "", errors.New("unknown request status " + raw)
	}
}

// Terminal reports whether the request can no longer change.
func (s Status) Terminal() bool {
	return s == StatusAprovada || s == StatusRejeitada
}

// Request is a player-initiated, admin-adjudicated category move petition.
type Request struct {
	ID                string
	PlayerID          string
	CurrentCategory   category.Category
	RequestedCategory category.Category
	ChangeType        category.ChangeType
	Motivo            string
	Status            Status
	RequestDate       time.Time
	ResponseDate      *time.Time
	AdminResponse     *string
	AdminID           *string
}
