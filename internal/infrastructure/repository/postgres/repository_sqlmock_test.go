package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nba-stats/internal/domain/franchise"
	"github.com/riskibarqy/nba-stats/internal/domain/player"
	"github.com/riskibarqy/nba-stats/internal/domain/retrieval"
	"github.com/riskibarqy/nba-stats/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	playerRowColumns = []string{"id", "player_name", "age", "player_height", "player_weight", "college", "country", "draft_year", "draft_round", "draft_number"}
	teamRowColumns   = []string{"id", "team_abbreviation", "team_name", "franchise_id", "franchise_name"}
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(schemaQueryMatcher))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return sqlx.NewDb(db, "postgres"), mock
}

func TestPlayerRepository_DeleteByNamesRemovesSeasonsFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlayerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM player_seasons WHERE player_id IN (SELECT id FROM players WHERE player_name = ANY($1))")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM players WHERE player_name = ANY($1) RETURNING id, player_name")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(playerRowColumns).
			AddRow(int64(1), "LeBron James", int64(35), 206.0, 113.0, "None", "USA", "2003", "1", "1"))
	mock.ExpectCommit()

	deleted, err := repo.DeleteByNames(context.Background(), []string{"LeBron James"})
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, "LeBron James", deleted[0].Name)
	assert.Equal(t, "2003", deleted[0].DraftYear)
	require.NotNil(t, deleted[0].Age)
	assert.Equal(t, 35, *deleted[0].Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_DeleteByNamesRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlayerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM player_seasons")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.DeleteByNames(context.Background(), []string{"LeBron James"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete player seasons")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_UpsertWritesPlayerTeamAndSeason(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlayerRepository(db)

	pts := 27.4
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO players (player_name, age, player_height, player_weight, college, country, draft_year, draft_round, draft_number) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (player_name) DO UPDATE")).
		WillReturnRows(sqlmock.NewRows(playerRowColumns).
			AddRow(int64(7), "LeBron James", nil, nil, nil, nil, nil, nil, nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO teams (team_abbreviation, team_name, franchise_id) VALUES ($1, $2, $3) ON CONFLICT (team_abbreviation) DO UPDATE")).
		WithArgs("LAL", "Los Angeles Lakers", nil).
		WillReturnRows(sqlmock.NewRows(teamRowColumns).
			AddRow(int64(3), "LAL", "Los Angeles Lakers", nil, nil))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO player_seasons (player_id, team_id, season, year,")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Upsert(context.Background(), player.UpsertInput{
		Player:           player.Player{Name: "LeBron James"},
		TeamAbbreviation: "LAL",
		TeamName:         "Los Angeles Lakers",
		Season:           &player.Season{Season: "2019-20", Pts: &pts},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_GetByNameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlayerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, player_name, age, player_height, player_weight, college, country, draft_year, draft_round, draft_number FROM players WHERE player_name = $1")).
		WithArgs("Nobody").
		WillReturnRows(sqlmock.NewRows(playerRowColumns))

	_, found, err := repo.GetByName(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_UpdateSeasons(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlayerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE player_seasons SET games_played = $1, pts = $2 WHERE player_id IN (SELECT id FROM players WHERE player_name = ANY($3)) RETURNING id")).
		WithArgs(82, 30.1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "team_id", "team_abbreviation", "season", "year", "age", "player_height", "player_weight", "games_played", "pts", "reb", "ast", "net_rating", "oreb_pct", "dreb_pct", "usg_pct", "ts_pct", "ast_pct"}).
			AddRow(int64(11), int64(7), int64(3), nil, "2019-20", 2019, nil, nil, nil, int64(82), 30.1, nil, nil, nil, nil, nil, nil, nil, nil))

	rows, err := repo.UpdateSeasons(context.Background(), []string{"LeBron James"}, []player.SeasonUpdate{
		{Column: "games_played", Value: 82},
		{Column: "pts", Value: 30.1},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].GamesPlayed)
	assert.Equal(t, 82, *rows[0].GamesPlayed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_UpdateRunsInTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamRepository(db)

	name := "Boston Celtics"
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE teams SET team_name = $1, updated_at = NOW() WHERE team_abbreviation = ANY($2) RETURNING id")).
		WithArgs(name, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(teamRowColumns).AddRow(int64(1), "BOS", name, int64(2), nil))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE team_stats ts SET wins = $1 FROM teams t, franchises f WHERE t.franchise_id = ts.franchise_id AND f.id = ts.franchise_id AND t.team_abbreviation = ANY($2) RETURNING ts.id")).
		WithArgs(3500, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "franchise_id", "franchise_name", "league", "from_year", "to_year", "years", "games", "wins", "losses", "win_loss_percentage", "playoffs", "division_titles", "conference_titles", "championships"}).
			AddRow(int64(9), int64(2), "Boston Celtics", "NBA", int64(1947), int64(2024), int64(78), nil, int64(3500), nil, nil, nil, nil, nil, int64(18)))
	mock.ExpectCommit()

	got, err := repo.Update(context.Background(), []string{"BOS"}, team.UpdateInput{
		Name:  &name,
		Stats: []franchise.StatUpdate{{Column: "wins", Value: 3500}},
	})
	require.NoError(t, err)
	require.Len(t, got.Teams, 1)
	require.Len(t, got.Stats, 1)
	require.NotNil(t, got.Stats[0].Wins)
	assert.Equal(t, 3500, *got.Stats[0].Wins)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_UpdateRollsBackWhenStatsFail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamRepository(db)

	name := "Boston Celtics"
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE teams SET team_name")).
		WillReturnRows(sqlmock.NewRows(teamRowColumns).AddRow(int64(1), "BOS", name, int64(2), nil))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE team_stats ts")).
		WillReturnError(errors.New(`pq: column "wins" is of type integer but expression is of type text`))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), []string{"BOS"}, team.UpdateInput{
		Name:  &name,
		Stats: []franchise.StatUpdate{{Column: "wins", Value: "many"}},
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetrieveRepository_ReturnsRowsQueryAndParams(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRetrieveRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT t.team_abbreviation AS team_abbreviation, SUM(ts.wins) AS wins")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"team_abbreviation", "wins"}).AddRow([]byte("BOS"), int64(3500)))

	res, err := repo.Retrieve(context.Background(), retrieval.EntityTeam, retrieval.Request{
		EntityIDs:  []string{"BOS"},
		Attributes: []string{"wins"},
	}.Normalize())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "BOS", res.Rows[0]["team_abbreviation"])
	assert.Equal(t, int64(3500), res.Rows[0]["wins"])
	assert.Contains(t, res.Query, "ANY($1)")
	assert.Len(t, res.Params, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetrieveRepository_UnknownSortKey(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewRetrieveRepository(db)

	_, err := repo.Retrieve(context.Background(), retrieval.EntityPlayer, retrieval.Request{SortBy: "salary"}.Normalize())
	assert.ErrorIs(t, err, retrieval.ErrUnknownSortKey)
}
