package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/history"
	"github.com/openliga/liga-ranking/internal/usecase"
)

type principalCategoryDTO struct {
	PlayerID string `json:"player_id"`
	Category string `json:"category"`
}

func (h *Handler) GetPrincipalCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPrincipalCategory")
	defer span.End()

	playerID := r.PathValue("playerID")
	principal, err := h.categoryService.ComputePrincipalCategory(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "compute principal category failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, principalCategoryDTO{
		PlayerID: playerID,
		Category: principal.String(),
	})
}

type historyEntryDTO struct {
	ID               string     `json:"id"`
	PlayerID         string     `json:"player_id"`
	Category         string     `json:"category"`
	PointsInCategory int        `json:"points_in_category"`
	EntryDate        time.Time  `json:"entry_date"`
	ExitDate         *time.Time `json:"exit_date,omitempty"`
	ExitReason       *string    `json:"exit_reason,omitempty"`
	Open             bool       `json:"open"`
}

func (h *Handler) ListCategoryHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCategoryHistory")
	defer span.End()

	playerID := r.PathValue("playerID")
	entries, err := h.historyService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list category history failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, historyEntryToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type adminCategoryOverrideRequest struct {
	Category string `json:"category" validate:"required"`
}

func (h *Handler) OverridePlayerCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OverridePlayerCategory")
	defer span.End()

	playerID := r.PathValue("playerID")

	var req adminCategoryOverrideRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	newCategory, err := category.Parse(req.Category)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.historyService.ApplyAdminOverride(ctx, playerID, newCategory); err != nil {
		h.logger.ErrorContext(ctx, "admin category override failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "admin category override applied", "player_id", playerID, "category", newCategory.String())
	writeSuccess(ctx, w, http.StatusOK, principalCategoryDTO{
		PlayerID: playerID,
		Category: newCategory.String(),
	})
}

func historyEntryToDTO(entry history.Entry) historyEntryDTO {
	dto := historyEntryDTO{
		ID:               entry.ID,
		PlayerID:         entry.PlayerID,
		Category:         entry.Category.String(),
		PointsInCategory: entry.PointsInCategory,
		EntryDate:        entry.EntryDate,
		ExitDate:         entry.ExitDate,
		Open:             entry.Open(),
	}
	if entry.ExitReason != nil {
		reason := string(*entry.ExitReason)
		dto.ExitReason = &reason
	}
	return dto
}
