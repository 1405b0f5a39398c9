package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/openliga/liga-ranking/internal/domain/category"
	"github.com/openliga/liga-ranking/internal/domain/player"
	"github.com/openliga/liga-ranking/internal/platform/logging"
	"github.com/openliga/liga-ranking/internal/usecase"
)

type Handler struct {
	categoryService *usecase.CategoryService
	historyService  *usecase.CategoryHistoryService
	requestService  *usecase.ChangeRequestService
	rankingService  *usecase.RankingService
	recalcService   *usecase.RecalculationService
	seasonService   *usecase.SeasonService
	resultService   *usecase.ResultService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	categoryService *usecase.CategoryService,
	historyService *usecase.CategoryHistoryService,
	requestService *usecase.ChangeRequestService,
	rankingService *usecase.RankingService,
	recalcService *usecase.RecalculationService,
	seasonService *usecase.SeasonService,
	resultService *usecase.ResultService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		categoryService: categoryService,
		historyService:  historyService,
		requestService:  requestService,
		rankingService:  rankingService,
		recalcService:   recalcService,
		seasonService:   seasonService,
		resultService:   resultService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(r *http.Request, into any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(into); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.Struct(into); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// playerFilterFromQuery reads the optional category/gender query parameters
// shared by the ranking listings.
func playerFilterFromQuery(r *http.Request) (player.Filter, error) {
	filter := player.Filter{}

	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		cat, err := category.Parse(raw)
		if err != nil {
			return player.Filter{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		filter.Category = &cat
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("gender")); raw != "" {
		gender := player.Gender(raw)
		if !gender.Valid() {
			return player.Filter{}, fmt.Errorf("%w: unknown gender %q", usecase.ErrInvalidInput, raw)
		}
		filter.Gender = &gender
	}

	return filter, nil
}
