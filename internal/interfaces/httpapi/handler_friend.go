package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/scorebets/scorebets/internal/usecase"
)

type addFriendRequest struct {
	FriendID int64 `json:"friend_id" validate:"required,gt=0"`
}

func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddFriend")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addFriendRequest
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

	if err := h.friendService.Add(ctx, userID, req.FriendID); err != nil {
		h.logger.WarnContext(ctx, "add friend failed", "user_id", userID, "friend_id", req.FriendID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{"friend_id": req.FriendID})
}

func (h *Handler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveFriend")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	friendID, err := pathID(r, "friendID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.friendService.Remove(ctx, userID, friendID); err != nil {
		h.logger.WarnContext(ctx, "remove friend failed", "user_id", userID, "friend_id", friendID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"friend_id": friendID})
}

func (h *Handler) GetFriendsRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFriendsRanking")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	ranked, err := h.rankingService.Friends(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get friends ranking failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingToDTOs(ranked))
}

func (h *Handler) GetFriendsSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFriendsSeries")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	series, err := h.rankingService.FriendsSeries(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get friends series failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := friendsSeriesDTO{Labels: series.Labels}
	for _, line := range series.Data {
		out.Data = append(out.Data, userSeriesDTO{
			UserID: line.UserID,
			Name:   line.Name,
			Scores: line.Scores,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
