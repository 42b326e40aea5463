package postgres

import (
	"database/sql"

	"github.com/lib/pq"
)

type teamTableModel struct {
	ID            int64          `db:"id"`
	Abbreviation  string         `db:"team_abbreviation"`
	Name          sql.NullString `db:"team_name"`
	FranchiseID   sql.NullInt64  `db:"franchise_id"`
	FranchiseName sql.NullString `db:"franchise_name"`
}

type teamPlayerAverageRow struct {
	Name    string          `db:"player_name"`
	Pts     sql.NullFloat64 `db:"pts"`
	Reb     sql.NullFloat64 `db:"reb"`
	Ast     sql.NullFloat64 `db:"ast"`
	Seasons pq.StringArray  `db:"seasons"`
}

type teamSeasonPerformanceRow struct {
	Season     string          `db:"season"`
	AvgPts     sql.NullFloat64 `db:"avg_pts"`
	AvgReb     sql.NullFloat64 `db:"avg_reb"`
	AvgAst     sql.NullFloat64 `db:"avg_ast"`
	RosterSize int             `db:"roster_size"`
}

type teamComparisonRow struct {
	Abbreviation string          `db:"team_abbreviation"`
	Name         sql.NullString  `db:"team_name"`
	AvgPts       sql.NullFloat64 `db:"avg_pts"`
	AvgReb       sql.NullFloat64 `db:"avg_reb"`
	AvgAst       sql.NullFloat64 `db:"avg_ast"`
	AvgNetRating sql.NullFloat64 `db:"avg_net_rating"`
	NumPlayers   int             `db:"num_players"`
}

var teamSelectColumns = []string{
	"t.id",
	"t.team_abbreviation",
	"t.team_name",
	"t.franchise_id",
	"f.franchise_name",
}

const teamReturning = "RETURNING id, team_abbreviation, team_name, franchise_id, NULL::text AS franchise_name"
