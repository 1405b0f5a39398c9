package usecase

import (
	"errors"
	"fmt"

	"github.com/openliga/liga-ranking/internal/domain/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidTransition covers category moves inconsistent with their
	// declared direction and actions on terminal change requests.
	ErrInvalidTransition = errors.New("invalid category transition")
	// ErrConflictingRequest is returned when a player already has a pendente
	// change request outstanding.
	ErrConflictingRequest = errors.New("conflicting category change request")
	// ErrInvariantViolation marks ledger corruption (more than one open
	// history entry); it is surfaced, never repaired in place.
	ErrInvariantViolation    = errors.New("category history invariant violated")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// MapStoreError rewraps storage outages as ErrDependencyUnavailable so
// callers can react without knowing which repository backend produced
// the error. Errors that are not outages pass through unchanged.
func MapStoreError(err error) error {
	if err == nil || errors.Is(err, ErrDependencyUnavailable) || !errors.Is(err, storage.ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
}
