package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/request"
	"github.com/openliga/liga-ranking/internal/usecase"
)

type changeRequestDTO struct {
	ID                string     `json:"id"`
	PlayerID          string     `json:"player_id"`
	CurrentCategory   string     `json:"current_category"`
	RequestedCategory string     `json:"requested_category"`
	ChangeType        string     `json:"change_type"`
	Motivo            string     `json:"motivo,omitempty"`
	Status            string     `json:"status"`
	RequestDate       time.Time  `json:"request_date"`
	ResponseDate      *time.Time `json:"response_date,omitempty"`
	AdminResponse     *string    `json:"admin_response,omitempty"`
	AdminID           *string    `json:"admin_id,omitempty"`
}

type submitChangeRequestRequest struct {
	RequestedCategory string `json:"requested_category" validate:"required"`
	ChangeType        string `json:"change_type" validate:"required,oneof=subida descida"`
	Motivo            string `json:"motivo"`
}

func (h *Handler) SubmitChangeRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitChangeRequest")
	defer span.End()

	playerID := r.PathValue("playerID")

	var req submitChangeRequestRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	requested, err := category.Parse(req.RequestedCategory)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}
	changeType, err := category.ParseChangeType(req.ChangeType)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	submitted, err := h.requestService.Submit(ctx, usecase.SubmitChangeRequestInput{
		PlayerID:          playerID,
		RequestedCategory: requested,
		ChangeType:        changeType,
		Motivo:            req.Motivo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit change request failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "change request submitted",
		"request_id", submitted.ID,
		"player_id", submitted.PlayerID,
		"change_type", string(submitted.ChangeType),
	)
	writeSuccess(ctx, w, http.StatusCreated, changeRequestToDTO(submitted))
}

func (h *Handler) GetChangeRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChangeRequest")
	defer span.End()

	requestID := r.PathValue("requestID")
	row, err := h.requestService.GetByID(ctx, requestID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, changeRequestToDTO(row))
}

func (h *Handler) ListChangeRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChangeRequests")
	defer span.End()

	raw := strings.TrimSpace(r.URL.Query().Get("status"))
	if raw == "" {
		raw = string(request.StatusPendente)
	}
	status, err := request.ParseStatus(raw)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	rows, err := h.requestService.ListByStatus(ctx, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list change requests failed", "status", raw, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]changeRequestDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, changeRequestToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type adjudicateChangeRequestRequest struct {
	AdminID       string `json:"admin_id" validate:"required"`
	AdminResponse string `json:"admin_response"`
}

func (h *Handler) ApproveChangeRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveChangeRequest")
	defer span.End()

	requestID := r.PathValue("requestID")

	var req adjudicateChangeRequestRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	row, err := h.requestService.Approve(ctx, requestID, req.AdminID, req.AdminResponse)
	if err != nil {
		h.logger.WarnContext(ctx, "approve change request failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "change request approved",
		"request_id", row.ID,
		"player_id", row.PlayerID,
		"requested_category", row.RequestedCategory.String(),
	)
	writeSuccess(ctx, w, http.StatusOK, changeRequestToDTO(row))
}

func (h *Handler) RejectChangeRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RejectChangeRequest")
	defer span.End()

	requestID := r.PathValue("requestID")

	var req adjudicateChangeRequestRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	row, err := h.requestService.Reject(ctx, requestID, req.AdminID, req.AdminResponse)
	if err != nil {
		h.logger.WarnContext(ctx, "reject change request failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "change request rejected", "request_id", row.ID, "player_id", row.PlayerID)
	writeSuccess(ctx, w, http.StatusOK, changeRequestToDTO(row))
}

func changeRequestToDTO(row request.Request) changeRequestDTO {
	return changeRequestDTO{
		ID:                row.ID,
		PlayerID:          row.PlayerID,
		CurrentCategory:   row.CurrentCategory.String(),
		RequestedCategory: row.RequestedCategory.String(),
		ChangeType:        string(row.ChangeType),
		Motivo:            row.Motivo,
		Status:            string(row.Status),
		RequestDate:       row.RequestDate,
		ResponseDate:      row.ResponseDate,
		AdminResponse:     row.AdminResponse,
		AdminID:           row.AdminID,
	}
}
