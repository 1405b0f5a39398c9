package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/domain/season"
	"github.com/openliga/liga-ranking/internal/domain/seasonranking"
	"github.com/openliga/liga-ranking/internal/usecase"
)

type seasonDTO struct {
	ID          string     `json:"id"`
	Year        int        `json:"year"`
	Name        string     `json:"name"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Active      bool       `json:"active"`
	Description string     `json:"description,omitempty"`
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.seasonService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetActiveSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveSeason")
	defer span.End()

	active, err := h.seasonService.ActiveSeason(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(active))
}

func seasonToDTO(s season.Season) seasonDTO {
	return seasonDTO{
		ID:          s.ID,
		Year:        s.Year,
		Name:        s.Name,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		Active:      s.Active,
		Description: s.Description,
	}
}

func seasonRankingFilterFromQuery(r *http.Request) (seasonranking.Filter, error) {
	filter := seasonranking.Filter{}

	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		cat, err := category.Parse(raw)
		if err != nil {
			return seasonranking.Filter{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		filter.Category = &cat
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("gender")); raw != "" {
		gender := player.Gender(raw)
		if !gender.Valid() {
			return seasonranking.Filter{}, fmt.Errorf("%w: unknown gender %q", usecase.ErrInvalidInput, raw)
		}
		filter.Gender = &gender
	}

	return filter, nil
}
