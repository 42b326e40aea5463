package httpapi

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/nba-stats/internal/domain/franchise"
	"github.com/riskibarqy/nba-stats/internal/domain/player"
	"github.com/riskibarqy/nba-stats/internal/domain/retrieval"
	"github.com/riskibarqy/nba-stats/internal/domain/team"
)

// flexFloat accepts a JSON number, a numeric string, or a blank/"nan"/null
// value meaning "no data". Form posts send numbers as strings.
type flexFloat struct {
	Value *float64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	raw, null, err := flexRaw(data)
	if err != nil || null {
		f.Value = nil
		return err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		f.Value = nil
		return nil
	}
	f.Value = &v
	return nil
}

type flexInt struct {
	Value *int
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var v flexFloat
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	if v.Value == nil {
		f.Value = nil
		return nil
	}
	if *v.Value != math.Trunc(*v.Value) {
		return fmt.Errorf("%v is not a whole number", *v.Value)
	}
	// Integer columns are INT.
	if *v.Value < math.MinInt32 || *v.Value > math.MaxInt32 {
		return fmt.Errorf("%v is out of range", *v.Value)
	}
	n := int(*v.Value)
	f.Value = &n
	return nil
}

// flexString accepts strings and numbers, e.g. draft_year: 2003 or "Undrafted".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	raw, null, err := flexRaw(data)
	if err != nil || null {
		*f = ""
		return err
	}
	*f = flexString(raw)
	return nil
}

func flexRaw(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", true, nil
	}
	raw := string(data)
	if data[0] == '"' {
		if err := sonic.Unmarshal(data, &raw); err != nil {
			return "", false, err
		}
	}
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return "", true, nil
	}
	return raw, false, nil
}

type retrieveRequest struct {
	Players    []string `json:"players"`
	Teams      []string `json:"teams"`
	EntityIDs  []string `json:"entityIds"`
	Attributes []string `json:"attributes"`
	TopN       flexInt  `json:"topN"`
	SortBy     string   `json:"sortBy"`
	SortOrder  string   `json:"sortOrder"`
	FromYear   flexInt  `json:"fromYear"`
	ToYear     flexInt  `json:"toYear"`
}

func (r retrieveRequest) toDomain() retrieval.Request {
	ids := make([]string, 0, len(r.Players)+len(r.Teams)+len(r.EntityIDs))
	ids = append(ids, r.EntityIDs...)
	ids = append(ids, r.Players...)
	ids = append(ids, r.Teams...)

	out := retrieval.Request{
		EntityIDs:  ids,
		Attributes: r.Attributes,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
		FromYear:   r.FromYear.Value,
		ToYear:     r.ToYear.Value,
	}
	if r.TopN.Value != nil {
		out.TopN = *r.TopN.Value
	}
	return out
}

type retrieveResponse struct {
	Results []map[string]any `json:"results"`
	Query   string           `json:"query"`
	Params  []any            `json:"params"`
}

type createPlayerRequest struct {
	PlayerName       string     `json:"player_name" validate:"required,max=200"`
	TeamAbbreviation string     `json:"team_abbreviation" validate:"required,max=10"`
	TeamName         string     `json:"team_name" validate:"max=200"`
	Season           string     `json:"season" validate:"max=7"`
	Age              flexInt    `json:"age"`
	PlayerHeight     flexFloat  `json:"player_height"`
	PlayerWeight     flexFloat  `json:"player_weight"`
	College          flexString `json:"college"`
	Country          flexString `json:"country"`
	DraftYear        flexString `json:"draft_year"`
	DraftRound       flexString `json:"draft_round"`
	DraftNumber      flexString `json:"draft_number"`
	GP               flexInt    `json:"gp"`
	GamesPlayed      flexInt    `json:"games_played"`
	Pts              flexFloat  `json:"pts"`
	Reb              flexFloat  `json:"reb"`
	Ast              flexFloat  `json:"ast"`
	NetRating        flexFloat  `json:"net_rating"`
	OrebPct          flexFloat  `json:"oreb_pct"`
	DrebPct          flexFloat  `json:"dreb_pct"`
	UsgPct           flexFloat  `json:"usg_pct"`
	TsPct            flexFloat  `json:"ts_pct"`
	AstPct           flexFloat  `json:"ast_pct"`
}

type updatePlayersRequest struct {
	Players []string       `json:"players"`
	Data    map[string]any `json:"data"`
}

type deletePlayersRequest struct {
	Players []string `json:"players"`
}

type updateTeamsRequest struct {
	Teams []string       `json:"teams"`
	Data  map[string]any `json:"data"`
}

type deleteTeamsRequest struct {
	Teams []string `json:"teams"`
}

type playerSummaryDTO struct {
	PlayerName        string   `json:"player_name"`
	TeamAbbreviations []string `json:"team_abbreviations"`
	Seasons           []string `json:"seasons"`
}

type playerSearchDTO struct {
	PlayerName       string   `json:"player_name"`
	TeamAbbreviation string   `json:"team_abbreviation"`
	Seasons          []string `json:"seasons"`
}

type playerDTO struct {
	ID           int64    `json:"id"`
	PlayerName   string   `json:"player_name"`
	Age          *int     `json:"age"`
	PlayerHeight *float64 `json:"player_height"`
	PlayerWeight *float64 `json:"player_weight"`
	College      string   `json:"college"`
	Country      string   `json:"country"`
	DraftYear    string   `json:"draft_year"`
	DraftRound   string   `json:"draft_round"`
	DraftNumber  string   `json:"draft_number"`
}

type playerSeasonDTO struct {
	ID               int64    `json:"id"`
	PlayerID         int64    `json:"player_id"`
	TeamID           *int64   `json:"team_id"`
	TeamAbbreviation string   `json:"team_abbreviation,omitempty"`
	Season           string   `json:"season"`
	Year             int      `json:"year"`
	Age              *int     `json:"age"`
	PlayerHeight     *float64 `json:"player_height"`
	PlayerWeight     *float64 `json:"player_weight"`
	GamesPlayed      *int     `json:"games_played"`
	Pts              *float64 `json:"pts"`
	Reb              *float64 `json:"reb"`
	Ast              *float64 `json:"ast"`
	NetRating        *float64 `json:"net_rating"`
	OrebPct          *float64 `json:"oreb_pct"`
	DrebPct          *float64 `json:"dreb_pct"`
	UsgPct           *float64 `json:"usg_pct"`
	TsPct            *float64 `json:"ts_pct"`
	AstPct           *float64 `json:"ast_pct"`
}

type playerSeasonDetailDTO struct {
	playerSeasonDTO
	College string  `json:"college"`
	Salary  float64 `json:"salary"`
}

type playerDetailDTO struct {
	Player  playerDTO               `json:"player"`
	Seasons []playerSeasonDetailDTO `json:"seasons"`
}

type playerStatDTO struct {
	Season    string   `json:"season"`
	Pts       *float64 `json:"pts"`
	Reb       *float64 `json:"reb"`
	Ast       *float64 `json:"ast"`
	NetRating *float64 `json:"net_rating"`
}

type playerComparisonDTO struct {
	PlayerName        string   `json:"player_name"`
	TeamAbbreviations []string `json:"team_abbreviations"`
	Pts               *float64 `json:"pts"`
	Reb               *float64 `json:"reb"`
	Ast               *float64 `json:"ast"`
	NetRating         *float64 `json:"net_rating"`
	Seasons           []string `json:"seasons"`
	DraftYear         string   `json:"draft_year"`
	DraftRound        string   `json:"draft_round"`
	DraftNumber       string   `json:"draft_number"`
}

type createPlayerResponse struct {
	Message string    `json:"message"`
	Player  playerDTO `json:"player"`
}

type updatePlayersResponse struct {
	Message       string            `json:"message"`
	PlayerSeasons []playerSeasonDTO `json:"player_seasons"`
}

type deletePlayersResponse struct {
	Message string      `json:"message"`
	Count   int         `json:"count"`
	Players []playerDTO `json:"players"`
}

type teamDTO struct {
	ID               int64  `json:"id"`
	TeamAbbreviation string `json:"team_abbreviation"`
	TeamName         string `json:"team_name"`
	FranchiseID      *int64 `json:"franchise_id"`
	FranchiseName    string `json:"franchise_name,omitempty"`
}

type teamPlayerDTO struct {
	PlayerName string   `json:"player_name"`
	Pts        *float64 `json:"pts"`
	Reb        *float64 `json:"reb"`
	Ast        *float64 `json:"ast"`
	Seasons    []string `json:"seasons"`
}

type teamPerformanceDTO struct {
	Season     string   `json:"season"`
	AvgPts     *float64 `json:"avg_pts"`
	AvgReb     *float64 `json:"avg_reb"`
	AvgAst     *float64 `json:"avg_ast"`
	RosterSize int      `json:"roster_size"`
}

type teamComparisonDTO struct {
	TeamAbbreviation string   `json:"team_abbreviation"`
	TeamName         string   `json:"team_name"`
	AvgPts           *float64 `json:"avg_pts"`
	AvgReb           *float64 `json:"avg_reb"`
	AvgAst           *float64 `json:"avg_ast"`
	AvgNetRating     *float64 `json:"avg_net_rating"`
	NumPlayers       int      `json:"num_players"`
}

type franchiseRecordDTO struct {
	ID                int64    `json:"id"`
	FranchiseID       int64    `json:"franchise_id"`
	Franchise         string   `json:"franchise"`
	League            string   `json:"league"`
	FromYear          *int     `json:"from_year"`
	ToYear            *int     `json:"to_year"`
	Years             *int     `json:"years"`
	Games             *int     `json:"games"`
	Wins              *int     `json:"wins"`
	Losses            *int     `json:"losses"`
	WinLossPercentage *float64 `json:"win_loss_percentage"`
	Playoffs          *int     `json:"playoffs"`
	DivisionTitles    *int     `json:"division_titles"`
	ConferenceTitles  *int     `json:"conference_titles"`
	Championships     *int     `json:"championships"`
}

type createTeamResponse struct {
	Message string              `json:"message"`
	Team    teamDTO             `json:"team"`
	Stats   *franchiseRecordDTO `json:"stats"`
}

type updateTeamsResponse struct {
	Message string               `json:"message"`
	Teams   []teamDTO            `json:"teams"`
	Stats   []franchiseRecordDTO `json:"stats"`
}

type deleteTeamsResponse struct {
	Message string    `json:"message"`
	Count   int       `json:"count"`
	Teams   []teamDTO `json:"teams"`
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:           p.ID,
		PlayerName:   p.Name,
		Age:          p.Age,
		PlayerHeight: p.Height,
		PlayerWeight: p.Weight,
		College:      p.College,
		Country:      p.Country,
		DraftYear:    p.DraftYear,
		DraftRound:   p.DraftRound,
		DraftNumber:  p.DraftNumber,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func seasonToDTO(s player.Season) playerSeasonDTO {
	return playerSeasonDTO{
		ID:               s.ID,
		PlayerID:         s.PlayerID,
		TeamID:           s.TeamID,
		TeamAbbreviation: s.TeamAbbreviation,
		Season:           s.Season,
		Year:             s.Year,
		Age:              s.Age,
		PlayerHeight:     s.Height,
		PlayerWeight:     s.Weight,
		GamesPlayed:      s.GamesPlayed,
		Pts:              s.Pts,
		Reb:              s.Reb,
		Ast:              s.Ast,
		NetRating:        s.NetRating,
		OrebPct:          s.OrebPct,
		DrebPct:          s.DrebPct,
		UsgPct:           s.UsgPct,
		TsPct:            s.TsPct,
		AstPct:           s.AstPct,
	}
}

func seasonsToDTO(items []player.Season) []playerSeasonDTO {
	out := make([]playerSeasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}
	return out
}

func playerDetailToDTO(d player.Detail) playerDetailDTO {
	out := playerDetailDTO{
		Player:  playerToDTO(d.Player),
		Seasons: make([]playerSeasonDetailDTO, 0, len(d.Seasons)),
	}
	for _, s := range d.Seasons {
		out.Seasons = append(out.Seasons, playerSeasonDetailDTO{
			playerSeasonDTO: seasonToDTO(s.Season),
			College:         s.College,
			Salary:          s.Salary,
		})
	}
	return out
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:               t.ID,
		TeamAbbreviation: t.Abbreviation,
		TeamName:         t.Name,
		FranchiseID:      t.FranchiseID,
		FranchiseName:    t.FranchiseName,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func recordToDTO(r franchise.Record) franchiseRecordDTO {
	return franchiseRecordDTO{
		ID:                r.ID,
		FranchiseID:       r.FranchiseID,
		Franchise:         r.FranchiseName,
		League:            r.League,
		FromYear:          r.FromYear,
		ToYear:            r.ToYear,
		Years:             r.Years,
		Games:             r.Games,
		Wins:              r.Wins,
		Losses:            r.Losses,
		WinLossPercentage: r.WinLossPercentage,
		Playoffs:          r.Playoffs,
		DivisionTitles:    r.DivisionTitles,
		ConferenceTitles:  r.ConferenceTitles,
		Championships:     r.Championships,
	}
}

func recordsToDTO(items []franchise.Record) []franchiseRecordDTO {
	out := make([]franchiseRecordDTO, 0, len(items))
	for _, item := range items {
		out = append(out, recordToDTO(item))
	}
	return out
}
