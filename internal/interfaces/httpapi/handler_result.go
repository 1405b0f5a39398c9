package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/result"
	"github.com/openliga/liga-ranking/internal/usecase"
)

type resultDTO struct {
	ID             string    `json:"id"`
	PlayerID       string    `json:"player_id"`
	TournamentID   string    `json:"tournament_id"`
	Placement      string    `json:"placement"`
	PointsEarned   int       `json:"points_earned"`
	CategoryPlayed *string   `json:"category_played,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type playerResultDTO struct {
	resultDTO
	TournamentCategory string     `json:"tournament_category,omitempty"`
	TournamentDate     *time.Time `json:"tournament_date,omitempty"`
	CountedCategory    string     `json:"counted_category"`
}

type recordResultRequest struct {
	PlayerID       string `json:"player_id" validate:"required"`
	TournamentID   string `json:"tournament_id" validate:"required"`
	Placement      string `json:"placement" validate:"required"`
	CategoryPlayed string `json:"category_played"`
}

func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordResult")
	defer span.End()

	var req recordResultRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	placement, err := result.ParsePlacement(req.Placement)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	input := usecase.RecordResultInput{
		PlayerID:     req.PlayerID,
		TournamentID: req.TournamentID,
		Placement:    placement,
	}
	if req.CategoryPlayed != "" {
		played, err := category.Parse(req.CategoryPlayed)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
			return
		}
		input.CategoryPlayed = &played
	}

	recorded, err := h.resultService.RecordResult(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "record result failed",
			"player_id", req.PlayerID,
			"tournament_id", req.TournamentID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "result recorded",
		"result_id", recorded.ID,
		"player_id", recorded.PlayerID,
		"points", recorded.PointsEarned,
	)
	writeSuccess(ctx, w, http.StatusCreated, resultToDTO(recorded))
}

func (h *Handler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteResult")
	defer span.End()

	resultID := r.PathValue("resultID")
	if err := h.resultService.DeleteResult(ctx, resultID); err != nil {
		h.logger.WarnContext(ctx, "delete result failed", "result_id", resultID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "result deleted", "result_id", resultID)
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": resultID, "status": "deleted"})
}

func (h *Handler) ListResultsByPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResultsByPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	rows, err := h.resultService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list results failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerResultDTO, 0, len(rows))
	for _, row := range rows {
		dto := playerResultDTO{
			resultDTO:       resultToDTO(row.Result),
			CountedCategory: row.CountedCategory().String(),
		}
		if row.TournamentFound {
			dto.TournamentCategory = row.TournamentCategory.String()
			date := row.TournamentDate
			dto.TournamentDate = &date
		}
		items = append(items, dto)
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func resultToDTO(row result.Result) resultDTO {
	dto := resultDTO{
		ID:           row.ID,
		PlayerID:     row.PlayerID,
		TournamentID: row.TournamentID,
		Placement:    string(row.Placement),
		PointsEarned: row.PointsEarned,
		CreatedAt:    row.CreatedAt,
	}
	if row.CategoryPlayed != nil {
		played := row.CategoryPlayed.String()
		dto.CategoryPlayed = &played
	}
	return dto
}
