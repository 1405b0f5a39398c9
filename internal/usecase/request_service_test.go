package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/history"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/request"
)

type requestFixture struct {
	service     *ChangeRequestService
	playerRepo  *stubPlayerRepository
	requestRepo *stubRequestRepository
	historyRepo *stubHistoryRepository
}

func newRequestFixture(players map[string]player.Player) requestFixture {
	playerRepo := &stubPlayerRepository{byID: players}
	requestRepo := &stubRequestRepository{}
	historyRepo := &stubHistoryRepository{open: map[string]history.Entry{}}
	for id, p := range players {
		historyRepo.open[id] = history.Entry{ID: "h-" + id, PlayerID: id, Category: p.Category}
	}

	historySvc := NewCategoryHistoryService(historyRepo, playerRepo, &sequenceIDGenerator{})
	historySvc.now = fixedTime

	service := NewChangeRequestService(playerRepo, requestRepo, historySvc, &sequenceIDGenerator{})
	service.now = fixedTime

	return requestFixture{
		service:     service,
		playerRepo:  playerRepo,
		requestRepo: requestRepo,
		historyRepo: historyRepo,
	}
}

func TestChangeRequestService_Submit(t *testing.T) {
	t.Parallel()

	fx := newRequestFixture(map[string]player.Player{
		"p1": {ID: "p1", Category: category.C},
	})

	got, err := fx.service.Submit(context.Background(), SubmitChangeRequestInput{
		PlayerID:          "p1",
		RequestedCategory: category.B,
		ChangeType:        category.ChangeSubida,
		Motivo:            "venci os ultimos torneios",
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	if got.Status != request.StatusPendente {
		t.Fatalf("expected pendente status, got %s", got.Status)
	}
	if got.CurrentCategory != category.C || got.RequestedCategory != category.B {
		t.Fatalf("unexpected categories on request: %+v", got)
	}
	if !got.RequestDate.Equal(fixedTime()) {
		t.Fatalf("unexpected request date: %v", got.RequestDate)
	}
	if len(fx.requestRepo.inserted) != 1 {
		t.Fatalf("expected 1 inserted request, got %d", len(fx.requestRepo.inserted))
	}
}

func TestChangeRequestService_Submit_WrongDirection(t *testing.T) {
	t.Parallel()

	fx := newRequestFixture(map[string]player.Player{
		"p1": {ID: "p1", Category: category.C},
	})

	_, err := fx.service.Submit(context.Background(), SubmitChangeRequestInput{
		PlayerID:          "p1",
		RequestedCategory: category.D,
		ChangeType:        category.ChangeSubida,
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for a subida to a lower category, got %v", err)
	}

	_, err = fx.service.Submit(context.Background(), SubmitChangeRequestInput{
		PlayerID:          "p1",
		RequestedCategory: category.B,
		ChangeType:        category.ChangeDescida,
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for a descida to a higher category, got %v", err)
	}
}

func TestChangeRequestService_Submit_SameCategory(t *testing.T) {
	t.Parallel()

	fx := newRequestFixture(map[string]player.Player{
		"p1": {ID: "p1", Category: category.C},
	})

	_, err := fx.service.Submit(context.Background(), SubmitChangeRequestInput{
		PlayerID:          "p1",
		RequestedCategory: category.C,
		ChangeType:        category.ChangeSubida,
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for a same-category request, got %v", err)
	}
}

func TestChangeRequestService_Submit_SecondPendingConflicts(t *testing.T) {
	t.Parallel()

	fx := newRequestFixture(map[string]player.Player{
		"p1": {ID: "p1", Category: category.C},
	})

	first := SubmitChangeRequestInput{
		PlayerID:          "p1",
		RequestedCategory: category.B,
		ChangeType:        category.ChangeSubida,
	}
	if _, err := fx.service.Submit(context.Background(), first); err != nil {
		t.Fatalf("first Submit error: %v", err)
	}

	_, err := fx.service.Submit(context.Background(), first)
	if !errors.Is(err, ErrConflictingRequest) {
		t.Fatalf("expected ErrConflictingRequest, got %v", err)
	}
	if len(fx.requestRepo.inserted) != 1 {
		t.Fatalf("the conflicting submit must not insert, got %d rows", len(fx.requestRepo.inserted))
	}
}

func TestChangeRequestService_Approve(t *testing.T) {
	t.Parallel()

	fx := newRequestFixture(map[string]player.Player{
		"p1": {ID: "p1", Category: category.C},
	})

	submitted, err := fx.service.Submit(context.Background(), SubmitChangeRequestInput{
		PlayerID:          "p1",
		RequestedCategory: category.B,
		ChangeType:        category.ChangeSubida,
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	got, err := fx.service.Approve(context.Background(), submitted.ID, "admin-1", "aprovado")
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}

	if got.Status != request.StatusAprovada {
		t.Fatalf("expected aprovada, got %s", got.Status)
	}
	if got.AdminID == nil || *got.AdminID != "admin-1" {
		t.Fatalf("unexpected admin id: %+v", got.AdminID)
	}
	if len(fx.historyRepo.transitions) != 1 {
		t.Fatalf("approval must close and open one history pair, got %d", len(fx.historyRepo.transitions))
	}
	tr := fx.historyRepo.transitions[0]
	if tr.close.ExitReason != category.ExitSubiu {
		t.Fatalf("subida approval must close with subiu, got %s", tr.close.ExitReason)
	}
	if tr.open.Category != category.B {
		t.Fatalf("expected new open period in B, got %s", tr.open.Category)
	}
	if fx.playerRepo.updated["p1"] != category.B {
		t.Fatalf("expected the player category cache to follow, got %s", fx.playerRepo.updated["p1"])
	}
}

func TestChangeRequestService_Approve_DescidaClosesWithDesceu(t *testing.T) {
	t.Parallel()

	fx := newRequestFixture(map[string]player.Player{
		"p1": {ID: "p1", Category: category.B},
	})

	submitted, err := fx.service.Submit(context.Background(), SubmitChangeRequestInput{
		PlayerID:          "p1",
		RequestedCategory: category.C,
		ChangeType:        category.ChangeDescida,
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	if _, err := fx.service.Approve(context.Background(), submitted.ID, "admin-1", ""); err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if fx.historyRepo.transitions[0].close.ExitReason != category.ExitDesceu {
		t.Fatalf("descida approval must close with desceu, got %s", fx.historyRepo.transitions[0].close.ExitReason)
	}
}

func TestChangeRequestService_Approve_RetriesAfterSealFailure(t *testing.T) {
	t.Parallel()

	fx := newRequestFixture(map[string]player.Player{
		"p1": {ID: "p1", Category: category.C},
	})

	submitted, err := fx.service.Submit(context.Background(), SubmitChangeRequestInput{
		PlayerID:          "p1",
		RequestedCategory: category.B,
		ChangeType:        category.ChangeSubida,
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	fx.requestRepo.updateErr = errStubStore
	if _, err := fx.service.Approve(context.Background(), submitted.ID, "admin-1", "aprovado"); !errors.Is(err, errStubStore) {
		t.Fatalf("expected seal failure to surface, got %v", err)
	}

	if fx.playerRepo.updated["p1"] != category.B {
		t.Fatalf("category must already be moved when sealing fails, got %s", fx.playerRepo.updated["p1"])
	}
	if fx.requestRepo.byID[submitted.ID].Status != request.StatusPendente {
		t.Fatalf("request must stay pendente after seal failure")
	}

	fx.requestRepo.updateErr = nil
	got, err := fx.service.Approve(context.Background(), submitted.ID, "admin-1", "aprovado")
	if err != nil {
		t.Fatalf("retried Approve error: %v", err)
	}

	if got.Status != request.StatusAprovada {
		t.Fatalf("expected aprovada after retry, got %s", got.Status)
	}
	if len(fx.historyRepo.transitions) != 1 {
		t.Fatalf("retry must not repeat the category transition, got %d", len(fx.historyRepo.transitions))
	}
}

func TestChangeRequestService_Reject_LeavesPlayerUntouched(t *testing.T) {
	t.Parallel()

	fx := newRequestFixture(map[string]player.Player{
		"p1": {ID: "p1", Category: category.C},
	})

	submitted, err := fx.service.Submit(context.Background(), SubmitChangeRequestInput{
		PlayerID:          "p1",
		RequestedCategory: category.B,
		ChangeType:        category.ChangeSubida,
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	got, err := fx.service.Reject(context.Background(), submitted.ID, "admin-1", "sem resultados suficientes")
	if err != nil {
		t.Fatalf("Reject error: %v", err)
	}

	if got.Status != request.StatusRejeitada {
		t.Fatalf("expected rejeitada, got %s", got.Status)
	}
	if len(fx.historyRepo.transitions) != 0 || len(fx.historyRepo.inserted) != 0 {
		t.Fatalf("rejection must not touch the category ledger")
	}
	if len(fx.playerRepo.updated) != 0 {
		t.Fatalf("rejection must not touch the player row")
	}
}

func TestChangeRequestService_TerminalRequestsAreSealed(t *testing.T) {
	t.Parallel()

	fx := newRequestFixture(map[string]player.Player{
		"p1": {ID: "p1", Category: category.C},
	})

	submitted, err := fx.service.Submit(context.Background(), SubmitChangeRequestInput{
		PlayerID:          "p1",
		RequestedCategory: category.B,
		ChangeType:        category.ChangeSubida,
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if _, err := fx.service.Reject(context.Background(), submitted.ID, "admin-1", ""); err != nil {
		t.Fatalf("Reject error: %v", err)
	}

	if _, err := fx.service.Approve(context.Background(), submitted.ID, "admin-1", ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition approving a sealed request, got %v", err)
	}
	if _, err := fx.service.Reject(context.Background(), submitted.ID, "admin-1", ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition rejecting a sealed request, got %v", err)
	}
}

func TestChangeRequestService_Approve_UnknownRequest(t *testing.T) {
	t.Parallel()

	fx := newRequestFixture(map[string]player.Player{})

	_, err := fx.service.Approve(context.Background(), "missing", "admin-1", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
