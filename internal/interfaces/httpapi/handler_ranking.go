package httpapi

import "net/http"

func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRanking")
	defer span.End()

	ranked, err := h.rankingService.Global(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get ranking failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingToDTOs(ranked))
}

func (h *Handler) GetUserMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserMatches")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	viewer, err := viewerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.rankingService.UserMatches(ctx, viewer, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get user matches failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	entry, err := h.rankingService.ForUser(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get user ranking entry failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]userMatchDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, userMatchToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"ranking": rankingEntryDTO{
			UserID: entry.UserID,
			Name:   entry.Name,
			Score:  entry.Score,
			Rank:   entry.Rank,
		},
		"matches": items,
	})
}

func (h *Handler) GetUserScoreSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserScoreSeries")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	series, err := h.rankingService.ScoreSeries(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get score series failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreSeriesDTO{
		Labels: series.Labels,
		Scores: series.Scores,
	})
}

func (h *Handler) GetUserRankHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserRankHistory")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	snapshots, err := h.historyService.RankHistory(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get rank history failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotsToDTOs(snapshots))
}
