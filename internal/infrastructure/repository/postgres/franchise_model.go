package postgres

import "database/sql"

type teamStatsTableModel struct {
	ID                int64           `db:"id"`
	FranchiseID       int64           `db:"franchise_id"`
	FranchiseName     sql.NullString  `db:"franchise_name"`
	League            string          `db:"league"`
	FromYear          sql.NullInt64   `db:"from_year"`
	ToYear            sql.NullInt64   `db:"to_year"`
	Years             sql.NullInt64   `db:"years"`
	Games             sql.NullInt64   `db:"games"`
	Wins              sql.NullInt64   `db:"wins"`
	Losses            sql.NullInt64   `db:"losses"`
	WinLossPercentage sql.NullFloat64 `db:"win_loss_percentage"`
	Playoffs          sql.NullInt64   `db:"playoffs"`
	DivisionTitles    sql.NullInt64   `db:"division_titles"`
	ConferenceTitles  sql.NullInt64   `db:"conference_titles"`
	Championships     sql.NullInt64   `db:"championships"`
}

type teamStatsInsertModel struct {
	FranchiseID       int64  `db:"franchise_id"`
	League            string `db:"league"`
	FromYear          any    `db:"from_year"`
	ToYear            any    `db:"to_year"`
	Years             any    `db:"years"`
	Games             any    `db:"games"`
	Wins              any    `db:"wins"`
	Losses            any    `db:"losses"`
	WinLossPercentage any    `db:"win_loss_percentage"`
	Playoffs          any    `db:"playoffs"`
	DivisionTitles    any    `db:"division_titles"`
	ConferenceTitles  any    `db:"conference_titles"`
	Championships     any    `db:"championships"`
}

var teamStatsSelectColumns = []string{
	"ts.id",
	"ts.franchise_id",
	"f.franchise_name",
	"ts.league",
	"ts.from_year",
	"ts.to_year",
	"ts.years",
	"ts.games",
	"ts.wins",
	"ts.losses",
	"ts.win_loss_percentage",
	"ts.playoffs",
	"ts.division_titles",
	"ts.conference_titles",
	"ts.championships",
}

const teamStatsReturning = "RETURNING id, franchise_id, NULL::text AS franchise_name, league, from_year, to_year, years, games, wins, losses, win_loss_percentage, playoffs, division_titles, conference_titles, championships"
