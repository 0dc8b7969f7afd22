package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/scorebets/scorebets/internal/usecase"
)

type submitBetRequest struct {
	MatchID   int64 `json:"match_id" validate:"required,gt=0"`
	GoalsHome *int  `json:"goals_home" validate:"required,min=0,max=20"`
	GoalsAway *int  `json:"goals_away" validate:"required,min=0,max=20"`
}

func (h *Handler) SubmitBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitBet")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req submitBetRequest
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

	placed, err := h.betService.SubmitBet(ctx, userID, req.MatchID, *req.GoalsHome, *req.GoalsAway)
	if err != nil {
		h.logger.WarnContext(ctx, "submit bet failed", "user_id", userID, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, betToDTO(placed))
}
