package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/nba-stats/internal/domain/retrieval"
	"github.com/riskibarqy/nba-stats/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	search := r.URL.Query().Get("search")
	limit, err := queryLimit(r, "limit")
	if err != nil {
		h.fail(ctx, w, "list players failed", err)
		return
	}

	items, err := h.playerService.ListPlayers(ctx, search, limit)
	if err != nil {
		h.fail(ctx, w, "list players failed", err, "search", search)
		return
	}

	out := make([]playerSummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerSummaryDTO{
			PlayerName:        item.Name,
			TeamAbbreviations: nonNilStrings(item.TeamAbbreviations),
			Seasons:           nonNilStrings(item.Seasons),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

// SearchPlayers backs the search box: a prefix match on player name or team
// abbreviation, one row per player and team.
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	query := r.URL.Query().Get("query")
	limit, err := queryLimit(r, "limit")
	if err != nil {
		h.fail(ctx, w, "search players failed", err)
		return
	}

	items, err := h.playerService.SearchPlayers(ctx, query, limit)
	if err != nil {
		h.fail(ctx, w, "search players failed", err, "query", query)
		return
	}

	out := make([]playerSearchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerSearchDTO{
			PlayerName:       item.Name,
			TeamAbbreviation: item.TeamAbbreviation,
			Seasons:          nonNilStrings(item.Seasons),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	ids := usecase.SplitIDs(r.URL.Query().Get("ids"))
	items, err := h.playerService.ComparePlayers(ctx, ids)
	if err != nil {
		h.fail(ctx, w, "compare players failed", err, "ids", ids)
		return
	}

	out := make([]playerComparisonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerComparisonDTO{
			PlayerName:        item.Name,
			TeamAbbreviations: nonNilStrings(item.TeamAbbreviations),
			Pts:               item.Pts,
			Reb:               item.Reb,
			Ast:               item.Ast,
			NetRating:         item.NetRating,
			Seasons:           nonNilStrings(item.Seasons),
			DraftYear:         item.DraftYear,
			DraftRound:        item.DraftRound,
			DraftNumber:       item.DraftNumber,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	item, err := h.playerService.GetPlayer(ctx, name)
	if err != nil {
		h.fail(ctx, w, "get player failed", err, "player_name", name)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailToDTO(item))
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	items, err := h.playerService.GetPlayerStats(ctx, name)
	if err != nil {
		h.fail(ctx, w, "get player stats failed", err, "player_name", name)
		return
	}

	out := make([]playerStatDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerStatDTO{
			Season:    item.Season,
			Pts:       item.Pts,
			Reb:       item.Reb,
			Ast:       item.Ast,
			NetRating: item.NetRating,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RetrievePlayers(w http.ResponseWriter, r *http.Request) {
	h.retrieve(w, r, retrieval.EntityPlayer, "httpapi.Handler.RetrievePlayers")
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		h.fail(ctx, w, "decode create player request failed", err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "validate create player request failed", err)
		return
	}

	games := req.GP.Value
	if games == nil {
		games = req.GamesPlayed.Value
	}

	item, err := h.playerService.CreatePlayer(ctx, usecase.CreatePlayerInput{
		PlayerName:       req.PlayerName,
		TeamAbbreviation: req.TeamAbbreviation,
		TeamName:         req.TeamName,
		Season:           req.Season,
		Age:              req.Age.Value,
		Height:           req.PlayerHeight.Value,
		Weight:           req.PlayerWeight.Value,
		College:          string(req.College),
		Country:          string(req.Country),
		DraftYear:        string(req.DraftYear),
		DraftRound:       string(req.DraftRound),
		DraftNumber:      string(req.DraftNumber),
		GamesPlayed:      games,
		Pts:              req.Pts.Value,
		Reb:              req.Reb.Value,
		Ast:              req.Ast.Value,
		NetRating:        req.NetRating.Value,
		OrebPct:          req.OrebPct.Value,
		DrebPct:          req.DrebPct.Value,
		UsgPct:           req.UsgPct.Value,
		TsPct:            req.TsPct.Value,
		AstPct:           req.AstPct.Value,
	})
	if err != nil {
		h.fail(ctx, w, "create player failed", err, "player_name", req.PlayerName)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, createPlayerResponse{
		Message: "Player created successfully",
		Player:  playerToDTO(item),
	})
}

func (h *Handler) UpdatePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayers")
	defer span.End()

	var req updatePlayersRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		h.fail(ctx, w, "decode update players request failed", err)
		return
	}

	rows, err := h.playerService.UpdatePlayers(ctx, req.Players, req.Data)
	if err != nil {
		h.fail(ctx, w, "update players failed", err, "players", req.Players)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, updatePlayersResponse{
		Message:       "Players updated successfully",
		PlayerSeasons: seasonsToDTO(rows),
	})
}

func (h *Handler) DeletePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayers")
	defer span.End()

	var req deletePlayersRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		h.fail(ctx, w, "decode delete players request failed", err)
		return
	}

	deleted, err := h.playerService.DeletePlayers(ctx, req.Players)
	if err != nil {
		h.fail(ctx, w, "delete players failed", err, "players", req.Players)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletePlayersResponse{
		Message: "Players deleted successfully",
		Count:   len(deleted),
		Players: playersToDTO(deleted),
	})
}

// retrieve serves both retrieve endpoints. A body that fails to decode is
// treated as an empty request, which selects every row.
func (h *Handler) retrieve(w http.ResponseWriter, r *http.Request, entity retrieval.Entity, spanName string) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	var req retrieveRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		h.logger.WarnContext(ctx, "retrieve body ignored", "entity", string(entity), "error", err)
		req = retrieveRequest{}
	}

	res, err := h.retrieveService.Retrieve(ctx, entity, req.toDomain())
	if err != nil {
		h.fail(ctx, w, "retrieve failed", err, "entity", string(entity))
		return
	}
	h.metrics.observeRetrieve(string(entity), len(res.Rows))

	rows := res.Rows
	if rows == nil {
		rows = []map[string]any{}
	}
	params := res.Params
	if params == nil {
		params = []any{}
	}
	writeSuccess(ctx, w, http.StatusOK, retrieveResponse{
		Results: rows,
		Query:   res.Query,
		Params:  params,
	})
}
