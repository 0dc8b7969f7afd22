package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/scorebets/scorebets/internal/platform/logging"
	"github.com/scorebets/scorebets/internal/usecase"
)

type Handler struct {
	matchService     *usecase.MatchService
	betService       *usecase.BetService
	rankingService   *usecase.RankingService
	historyService   *usecase.HistoryService
	friendService    *usecase.FriendService
	dashboardService *usecase.DashboardService
	reconcileService *usecase.ReconcileService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	betService *usecase.BetService,
	rankingService *usecase.RankingService,
	historyService *usecase.HistoryService,
	friendService *usecase.FriendService,
	dashboardService *usecase.DashboardService,
	reconcileService *usecase.ReconcileService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:     matchService,
		betService:       betService,
		rankingService:   rankingService,
		historyService:   historyService,
		friendService:    friendService,
		dashboardService: dashboardService,
		reconcileService: reconcileService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}

	return id, nil
}

// viewerID reads the optional ?viewer= query parameter. Zero means an
// anonymous viewer.
func viewerID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("viewer")
	if raw == "" {
		return 0, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: viewer must be a positive integer", usecase.ErrInvalidInput)
	}

	return id, nil
}
