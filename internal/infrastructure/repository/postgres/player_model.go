package postgres

import (
	"database/sql"

	"github.com/lib/pq"
)

type playerTableModel struct {
	ID          int64           `db:"id"`
	Name        string          `db:"player_name"`
	Age         sql.NullInt64   `db:"age"`
	Height      sql.NullFloat64 `db:"player_height"`
	Weight      sql.NullFloat64 `db:"player_weight"`
	College     sql.NullString  `db:"college"`
	Country     sql.NullString  `db:"country"`
	DraftYear   sql.NullString  `db:"draft_year"`
	DraftRound  sql.NullString  `db:"draft_round"`
	DraftNumber sql.NullString  `db:"draft_number"`
}

type playerInsertModel struct {
	Name        string `db:"player_name"`
	Age         any    `db:"age"`
	Height      any    `db:"player_height"`
	Weight      any    `db:"player_weight"`
	College     any    `db:"college"`
	Country     any    `db:"country"`
	DraftYear   any    `db:"draft_year"`
	DraftRound  any    `db:"draft_round"`
	DraftNumber any    `db:"draft_number"`
}

type playerSeasonTableModel struct {
	ID               int64           `db:"id"`
	PlayerID         int64           `db:"player_id"`
	TeamID           sql.NullInt64   `db:"team_id"`
	TeamAbbreviation sql.NullString  `db:"team_abbreviation"`
	Season           string          `db:"season"`
	Year             int             `db:"year"`
	Age              sql.NullInt64   `db:"age"`
	Height           sql.NullFloat64 `db:"player_height"`
	Weight           sql.NullFloat64 `db:"player_weight"`
	GamesPlayed      sql.NullInt64   `db:"games_played"`
	Pts              sql.NullFloat64 `db:"pts"`
	Reb              sql.NullFloat64 `db:"reb"`
	Ast              sql.NullFloat64 `db:"ast"`
	NetRating        sql.NullFloat64 `db:"net_rating"`
	OrebPct          sql.NullFloat64 `db:"oreb_pct"`
	DrebPct          sql.NullFloat64 `db:"dreb_pct"`
	UsgPct           sql.NullFloat64 `db:"usg_pct"`
	TsPct            sql.NullFloat64 `db:"ts_pct"`
	AstPct           sql.NullFloat64 `db:"ast_pct"`
}

type playerSeasonInsertModel struct {
	PlayerID    int64  `db:"player_id"`
	TeamID      int64  `db:"team_id"`
	Season      string `db:"season"`
	Year        int    `db:"year"`
	Age         any    `db:"age"`
	Height      any    `db:"player_height"`
	Weight      any    `db:"player_weight"`
	GamesPlayed any    `db:"games_played"`
	Pts         any    `db:"pts"`
	Reb         any    `db:"reb"`
	Ast         any    `db:"ast"`
	NetRating   any    `db:"net_rating"`
	OrebPct     any    `db:"oreb_pct"`
	DrebPct     any    `db:"dreb_pct"`
	UsgPct      any    `db:"usg_pct"`
	TsPct       any    `db:"ts_pct"`
	AstPct      any    `db:"ast_pct"`
}

type playerSummaryRow struct {
	Name              string         `db:"player_name"`
	TeamAbbreviations pq.StringArray `db:"team_abbreviations"`
	Seasons           pq.StringArray `db:"seasons"`
}

type playerSearchRow struct {
	Name             string         `db:"player_name"`
	TeamAbbreviation string         `db:"team_abbreviation"`
	Seasons          pq.StringArray `db:"seasons"`
}

type playerComparisonRow struct {
	Name              string          `db:"player_name"`
	TeamAbbreviations pq.StringArray  `db:"team_abbreviations"`
	Pts               sql.NullFloat64 `db:"pts"`
	Reb               sql.NullFloat64 `db:"reb"`
	Ast               sql.NullFloat64 `db:"ast"`
	NetRating         sql.NullFloat64 `db:"net_rating"`
	Seasons           pq.StringArray  `db:"seasons"`
	DraftYear         sql.NullString  `db:"draft_year"`
	DraftRound        sql.NullString  `db:"draft_round"`
	DraftNumber       sql.NullString  `db:"draft_number"`
}

type playerSalaryTableModel struct {
	PlayerName string          `db:"player_name"`
	Season     int             `db:"season"`
	Salary     sql.NullFloat64 `db:"salary"`
	Position   sql.NullString  `db:"position"`
	Team       sql.NullString  `db:"team"`
}

var playerSelectColumns = []string{
	"id",
	"player_name",
	"age",
	"player_height",
	"player_weight",
	"college",
	"country",
	"draft_year",
	"draft_round",
	"draft_number",
}

var playerSeasonColumns = []string{
	"ps.id",
	"ps.player_id",
	"ps.team_id",
	"t.team_abbreviation",
	"ps.season",
	"ps.year",
	"ps.age",
	"ps.player_height",
	"ps.player_weight",
	"ps.games_played",
	"ps.pts",
	"ps.reb",
	"ps.ast",
	"ps.net_rating",
	"ps.oreb_pct",
	"ps.dreb_pct",
	"ps.usg_pct",
	"ps.ts_pct",
	"ps.ast_pct",
}

// Columns written back by RETURNING on player_seasons; team abbreviation is
// not part of the table.
const playerSeasonReturning = "RETURNING id, player_id, team_id, NULL::text AS team_abbreviation, season, year, age, player_height, player_weight, games_played, pts, reb, ast, net_rating, oreb_pct, dreb_pct, usg_pct, ts_pct, ast_pct"
