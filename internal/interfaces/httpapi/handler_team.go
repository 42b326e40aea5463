package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/nba-stats/internal/domain/retrieval"
	"github.com/riskibarqy/nba-stats/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	abbreviation := strings.TrimSpace(r.PathValue("abbreviation"))
	item, err := h.teamService.GetTeam(ctx, abbreviation)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team_abbreviation", abbreviation)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	abbreviation := strings.TrimSpace(r.PathValue("abbreviation"))
	items, err := h.teamService.ListTeamPlayers(ctx, abbreviation)
	if err != nil {
		h.fail(ctx, w, "list team players failed", err, "team_abbreviation", abbreviation)
		return
	}

	out := make([]teamPlayerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamPlayerDTO{
			PlayerName: item.Name,
			Pts:        item.Pts,
			Reb:        item.Reb,
			Ast:        item.Ast,
			Seasons:    nonNilStrings(item.Seasons),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTeamPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPerformance")
	defer span.End()

	abbreviation := strings.TrimSpace(r.PathValue("abbreviation"))
	items, err := h.teamService.GetTeamPerformance(ctx, abbreviation)
	if err != nil {
		h.fail(ctx, w, "get team performance failed", err, "team_abbreviation", abbreviation)
		return
	}

	out := make([]teamPerformanceDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamPerformanceDTO{
			Season:     item.Season,
			AvgPts:     item.AvgPts,
			AvgReb:     item.AvgReb,
			AvgAst:     item.AvgAst,
			RosterSize: item.RosterSize,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeams")
	defer span.End()

	ids := usecase.SplitIDs(r.URL.Query().Get("ids"))
	items, err := h.teamService.CompareTeams(ctx, ids)
	if err != nil {
		h.fail(ctx, w, "compare teams failed", err, "ids", ids)
		return
	}

	out := make([]teamComparisonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamComparisonDTO{
			TeamAbbreviation: item.Abbreviation,
			TeamName:         item.Name,
			AvgPts:           item.AvgPts,
			AvgReb:           item.AvgReb,
			AvgAst:           item.AvgAst,
			AvgNetRating:     item.AvgNetRating,
			NumPlayers:       item.NumPlayers,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RetrieveTeams(w http.ResponseWriter, r *http.Request) {
	h.retrieve(w, r, retrieval.EntityTeam, "httpapi.Handler.RetrieveTeams")
}

// CreateTeam takes a flat object so the stats columns can be sent under
// their short labels (W, L, W/L%, ...) as well as their column names.
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var fields map[string]any
	if err := decodeJSON(w, r, &fields, false); err != nil {
		h.fail(ctx, w, "decode create team request failed", err)
		return
	}

	out, err := h.teamService.CreateTeam(ctx, fields)
	if err != nil {
		h.fail(ctx, w, "create team failed", err)
		return
	}

	resp := createTeamResponse{
		Message: "Team created successfully",
		Team:    teamToDTO(out.Team),
	}
	if out.Record != nil {
		stats := recordToDTO(*out.Record)
		resp.Stats = &stats
	}
	writeSuccess(ctx, w, http.StatusCreated, resp)
}

func (h *Handler) UpdateTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeams")
	defer span.End()

	var req updateTeamsRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		h.fail(ctx, w, "decode update teams request failed", err)
		return
	}

	out, err := h.teamService.UpdateTeams(ctx, req.Teams, req.Data)
	if err != nil {
		h.fail(ctx, w, "update teams failed", err, "teams", req.Teams)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, updateTeamsResponse{
		Message: "Teams updated successfully",
		Teams:   teamsToDTO(out.Teams),
		Stats:   recordsToDTO(out.Stats),
	})
}

func (h *Handler) DeleteTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeams")
	defer span.End()

	var req deleteTeamsRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		h.fail(ctx, w, "decode delete teams request failed", err)
		return
	}

	deleted, err := h.teamService.DeleteTeams(ctx, req.Teams)
	if err != nil {
		h.fail(ctx, w, "delete teams failed", err, "teams", req.Teams)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deleteTeamsResponse{
		Message: "Teams deleted successfully",
		Count:   len(deleted),
		Teams:   teamsToDTO(deleted),
	})
}
