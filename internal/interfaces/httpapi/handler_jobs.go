package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/scorebets/scorebets/internal/usecase"
)

func (h *Handler) RunReconcileTeamsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunReconcileTeamsJob")
	defer span.End()

	updates, err := h.reconcileService.ReconcileTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reconcile teams job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]sideUpdateDTO, 0, len(updates))
	for _, update := range updates {
		items = append(items, sideUpdateDTO{
			MatchID: update.MatchID,
			Side:    string(update.Side),
			TeamID:  update.TeamID,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"updated_sides": items,
	})
}

type recordResultRequest struct {
	GoalsHome *int `json:"goals_home" validate:"required,min=0"`
	GoalsAway *int `json:"goals_away" validate:"required,min=0"`
}

func (h *Handler) RecordMatchResultJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResultJob")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordResultRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.RecordResult(ctx, matchID, *req.GoalsHome, *req.GoalsAway); err != nil {
		h.logger.ErrorContext(ctx, "record match result job failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"match_id":   matchID,
		"goals_home": *req.GoalsHome,
		"goals_away": *req.GoalsAway,
	})
}
