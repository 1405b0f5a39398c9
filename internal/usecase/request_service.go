package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/request"
	"github.com/openliga/liga-ranking/internal/platform/id"
)

// ChangeRequestService runs the pendente → aprovada|rejeitada workflow for
// player-submitted category moves.
type ChangeRequestService struct {
	playerRepo  player.Repository
	requestRepo request.Repository
	historySvc  *CategoryHistoryService
	idGenerator id.Generator
	now         func() time.Time
}

func NewChangeRequestService(
	playerRepo player.Repository,
	requestRepo request.Repository,
	historySvc *CategoryHistoryService,
	idGenerator id.Generator,
) *ChangeRequestService {
	return &ChangeRequestService{
		playerRepo:  playerRepo,
		requestRepo: requestRepo,
		historySvc:  historySvc,
		idGenerator: idGenerator,
		now:         time.Now,
	}
}

type SubmitChangeRequestInput struct {
	PlayerID          string
	RequestedCategory category.Category
	ChangeType        category.ChangeType
	Motivo            string
}

// Submit validates the move's direction against the ordinal category order
// and stores the pendente request. The pending-uniqueness check is atomic
// with the insert at the repository level.
func (s *ChangeRequestService) Submit(ctx context.Context, input SubmitChangeRequestInput) (request.Request, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangeRequestService.Submit")
	defer span.End()

	playerID := strings.TrimSpace(input.PlayerID)
	if playerID == "" {
		return request.Request{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if !input.RequestedCategory.Valid() {
		return request.Request{}, fmt.Errorf("%w: invalid requested category %q", ErrInvalidInput, input.RequestedCategory)
	}

	current, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return request.Request{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return request.Request{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if err := validateChangeDirection(current.Category, input.RequestedCategory, input.ChangeType); err != nil {
		return request.Request{}, err
	}

	requestID, err := s.idGenerator.NewID()
	if err != nil {
		return request.Request{}, fmt.Errorf("generate request id: %w", err)
	}

	row := request.Request{
		ID:                requestID,
		PlayerID:          playerID,
		CurrentCategory:   current.Category,
		RequestedCategory: input.RequestedCategory,
		ChangeType:        input.ChangeType,
		Motivo:            strings.TrimSpace(input.Motivo),
		Status:            request.StatusPendente,
		RequestDate:       s.now().UTC(),
	}

	if err := s.requestRepo.Insert(ctx, row); err != nil {
		if errors.Is(err, request.ErrPendingExists) {
			return request.Request{}, fmt.Errorf("%w: player=%s", ErrConflictingRequest, playerID)
		}
		return request.Request{}, fmt.Errorf("insert change request: %w", err)
	}

	return row, nil
}

// Approve finalizes a pendente request: the category transition is applied
// with the direction-matching exit reason, then the request is sealed. If
// sealing fails the category stays moved and the request stays pendente;
// retrying Approve recovers, since ApplyCategoryChange is a no-op when the
// player already sits in the requested category.
func (s *ChangeRequestService) Approve(ctx context.Context, requestID, adminID, adminResponse string) (request.Request, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangeRequestService.Approve")
	defer span.End()

	row, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return request.Request{}, err
	}
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return request.Request{}, fmt.Errorf("%w: admin id is required", ErrInvalidInput)
	}

	reason := category.ExitReasonFor(row.ChangeType)
	if err := s.historySvc.ApplyCategoryChange(ctx, row.PlayerID, row.RequestedCategory, reason); err != nil {
		return request.Request{}, fmt.Errorf("apply approved category change: %w", err)
	}

	now := s.now().UTC()
	if err := s.requestRepo.UpdateStatus(ctx, row.ID, request.StatusAprovada, adminResponse, adminID, now); err != nil {
		return request.Request{}, fmt.Errorf("update request status: %w", err)
	}

	row.Status = request.StatusAprovada
	row.ResponseDate = &now
	row.AdminResponse = &adminResponse
	row.AdminID = &adminID
	return row, nil
}

// Reject seals a pendente request without touching the player's category or
// history.
func (s *ChangeRequestService) Reject(ctx context.Context, requestID, adminID, adminResponse string) (request.Request, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangeRequestService.Reject")
	defer span.End()

	row, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return request.Request{}, err
	}
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return request.Request{}, fmt.Errorf("%w: admin id is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	if err := s.requestRepo.UpdateStatus(ctx, row.ID, request.StatusRejeitada, adminResponse, adminID, now); err != nil {
		return request.Request{}, fmt.Errorf("update request status: %w", err)
	}

	row.Status = request.StatusRejeitada
	row.ResponseDate = &now
	row.AdminResponse = &adminResponse
	row.AdminID = &adminID
	return row, nil
}

func (s *ChangeRequestService) GetByID(ctx context.Context, requestID string) (request.Request, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangeRequestService.GetByID")
	defer span.End()

	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return request.Request{}, fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}

	row, exists, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return request.Request{}, fmt.Errorf("get change request: %w", err)
	}
	if !exists {
		return request.Request{}, fmt.Errorf("%w: request=%s", ErrNotFound, requestID)
	}
	return row, nil
}

func (s *ChangeRequestService) ListByStatus(ctx context.Context, status request.Status) ([]request.Request, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangeRequestService.ListByStatus")
	defer span.End()

	rows, err := s.requestRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list change requests: %w", err)
	}
	return rows, nil
}

func (s *ChangeRequestService) pendingRequest(ctx context.Context, requestID string) (request.Request, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return request.Request{}, fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}

	row, exists, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return request.Request{}, fmt.Errorf("get change request: %w", err)
	}
	if !exists {
		return request.Request{}, fmt.Errorf("%w: request=%s", ErrNotFound, requestID)
	}
	if row.Status.Terminal() {
		return request.Request{}, fmt.Errorf("%w: request %s is already %s", ErrInvalidTransition, requestID, row.Status)
	}
	return row, nil
}

// validateChangeDirection enforces that subida moves strictly up and descida
// strictly down the FUN < D < C < B < A order.
func validateChangeDirection(current, requested category.Category, changeType category.ChangeType) error {
	switch changeType {
	case category.ChangeSubida:
		if !requested.Above(current) {
			return fmt.Errorf("%w: subida requires a category above %s, got %s", ErrInvalidTransition, current, requested)
		}
	case category.ChangeDescida:
		if !requested.Below(current) {
			return fmt.Errorf("%w: descida requires a category below %s, got %s", ErrInvalidTransition, current, requested)
		}
	default:
		return fmt.Errorf("%w: unknown change type %q", ErrInvalidInput, changeType)
	}
	return nil
}
