package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics *Metrics) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
	if metrics == nil {
		return
	}

	mux.Handle("GET /metrics", metrics.Handler())
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /players", handler.ListPlayers)
	mux.HandleFunc("GET /nba-stats", handler.SearchPlayers)
	// Literal segments win over {name}, so compare and the mutation routes
	// never reach the detail handlers.
	mux.HandleFunc("GET /players/compare", handler.ComparePlayers)
	mux.HandleFunc("GET /players/{name}", handler.GetPlayer)
	mux.HandleFunc("GET /players/{name}/stats", handler.GetPlayerStats)
	mux.HandleFunc("POST /players/retrieve", handler.RetrievePlayers)
	mux.HandleFunc("POST /players/create", handler.CreatePlayer)
	mux.HandleFunc("PUT /players/update", handler.UpdatePlayers)
	mux.HandleFunc("DELETE /players/delete", handler.DeletePlayers)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /teams", handler.ListTeams)
	mux.HandleFunc("GET /teams/compare", handler.CompareTeams)
	mux.HandleFunc("GET /teams/{abbreviation}", handler.GetTeam)
	mux.HandleFunc("GET /teams/{abbreviation}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /teams/{abbreviation}/performance", handler.GetTeamPerformance)
	mux.HandleFunc("POST /teams/retrieve", handler.RetrieveTeams)
	mux.HandleFunc("POST /teams/create", handler.CreateTeam)
	mux.HandleFunc("PUT /teams/update", handler.UpdateTeams)
	mux.HandleFunc("DELETE /teams/delete", handler.DeleteTeams)
}

func registerFranchiseRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /franchises", handler.ListFranchiseRecords)
	mux.HandleFunc("GET /franchises/{name}", handler.GetFranchiseRecords)
}
