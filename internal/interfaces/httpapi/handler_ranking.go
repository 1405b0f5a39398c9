package httpapi

import (
	"net/http"
	"time"
)

type rankedPlayerDTO struct {
	Position          int    `json:"position"`
	PlayerID          string `json:"player_id"`
	Name              string `json:"name"`
	Gender            string `json:"gender"`
	Category          string `json:"category"`
	Points            int    `json:"points"`
	TournamentsPlayed int    `json:"tournaments_played"`
}

func (h *Handler) ListRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRanking")
	defer span.End()

	filter, err := playerFilterFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	ranked, err := h.rankingService.ListRanking(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list ranking failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankedPlayerDTO, 0, len(ranked))
	for _, row := range ranked {
		items = append(items, rankedPlayerDTO{
			Position:          row.Position,
			PlayerID:          row.ID,
			Name:              row.Name,
			Gender:            string(row.Gender),
			Category:          row.Category.String(),
			Points:            row.Points,
			TournamentsPlayed: row.TournamentsPlayed,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type seasonRankingRowDTO struct {
	Position          int       `json:"position"`
	PlayerID          string    `json:"player_id"`
	PlayerName        string    `json:"player_name"`
	Category          string    `json:"category"`
	Gender            string    `json:"gender"`
	Points            int       `json:"points"`
	TournamentsPlayed int       `json:"tournaments_played"`
	BestResult        string    `json:"best_result,omitempty"`
	CalculatedAt      time.Time `json:"calculated_at"`
}

func (h *Handler) ListSeasonRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonRankings")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	filter, err := seasonRankingFilterFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.seasonService.ListSeasonRankings(ctx, seasonID, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list season rankings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonRankingRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, seasonRankingRowDTO{
			Position:          row.Position,
			PlayerID:          row.PlayerID,
			PlayerName:        row.PlayerName,
			Category:          row.Category.String(),
			Gender:            string(row.Gender),
			Points:            row.Points,
			TournamentsPlayed: row.TournamentsPlayed,
			BestResult:        string(row.BestResult),
			CalculatedAt:      row.CalculatedAt,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type refreshSeasonRankingsDTO struct {
	SeasonID  string `json:"season_id"`
	RowsCount int    `json:"rows_count"`
}

func (h *Handler) RefreshSeasonRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshSeasonRankings")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	count, err := h.seasonService.RefreshSeasonRankings(ctx, seasonID)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh season rankings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "season rankings refreshed", "season_id", seasonID, "rows", count)
	writeSuccess(ctx, w, http.StatusOK, refreshSeasonRankingsDTO{
		SeasonID:  seasonID,
		RowsCount: count,
	})
}
