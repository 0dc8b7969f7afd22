package httpapi

import "net/http"

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	counters, err := h.dashboardService.Counters(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get dashboard failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardDTO{
		UpcomingWithoutBet:    counters.UpcomingWithoutBet,
		UpcomingWithoutBetIDs: counters.UpcomingWithoutBetIDs,
		LiveMatches:           counters.LiveMatches,
		UnseenResults:         counters.UnseenResults,
	})
}

func (h *Handler) MarkResultsSeen(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkResultsSeen")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.dashboardService.MarkResultsSeen(ctx, userID); err != nil {
		h.logger.WarnContext(ctx, "mark results seen failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
