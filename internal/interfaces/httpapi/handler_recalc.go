package httpapi

import (
	"net/http"

	"github.com/openliga/liga-ranking/internal/usecase"
)

type recalcRequest struct {
	// PlayerIDs empty means every player.
	PlayerIDs []string `json:"player_ids"`
}

func (h *Handler) RunRecalculation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecalculation")
	defer span.End()

	var req recalcRequest
	if r.ContentLength > 0 {
		if err := h.decodeRequest(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	var out usecase.RecalcResult
	var err error
	if len(req.PlayerIDs) == 0 {
		out, err = h.recalcService.RecalculateAll(ctx)
	} else {
		out, err = h.recalcService.RecalculateBatch(ctx, req.PlayerIDs)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "recalculation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "recalculation finished",
		"processed", out.ProcessedCount,
		"changed", out.ChangedCount,
		"failed", out.FailedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, out)
}
