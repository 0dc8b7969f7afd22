package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/ranking", handler.GetRanking)
	mux.HandleFunc("GET /api/users/{userID}", handler.GetUserMatches)
	mux.HandleFunc("GET /api/users/{userID}/scores", handler.GetUserScoreSeries)
	mux.HandleFunc("GET /api/users/{userID}/history", handler.GetUserRankHistory)
	mux.HandleFunc("GET /api/users/{userID}/dashboard", handler.GetDashboard)
	mux.HandleFunc("POST /api/users/{userID}/results-seen", handler.MarkResultsSeen)
	mux.HandleFunc("POST /api/users/{userID}/bets", handler.SubmitBet)
	mux.HandleFunc("GET /api/users/{userID}/friends/ranking", handler.GetFriendsRanking)
	mux.HandleFunc("GET /api/users/{userID}/friends/history", handler.GetFriendsSeries)
	mux.HandleFunc("POST /api/users/{userID}/friends", handler.AddFriend)
	mux.HandleFunc("DELETE /api/users/{userID}/friends/{friendID}", handler.RemoveFriend)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /internal/jobs/reconcile-teams", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunReconcileTeamsJob)))
	mux.Handle("POST /internal/jobs/matches/{matchID}/result", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RecordMatchResultJob)))
}
