package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("users").
		Where(Eq("tenant_id", "t1"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM users WHERE tenant_id = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("users").
		Columns("id", "name").
		Values("u1", "name-1").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO users (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != "name-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("users").
		Set("name", "new").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "u1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE users SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "new" || args[1] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderWithJoinsAndAggregates(t *testing.T) {
	query, args, err := Select("t.team_abbreviation", "SUM(ts.wins) AS wins").
		From("teams t").
		Join("JOIN team_stats ts ON ts.franchise_id = t.franchise_id").
		Where(Any("t.team_abbreviation", []string{"BOS"}), Gte("ts.from_year", 2000), Lte("ts.to_year", 2010)).
		GroupBy("t.team_abbreviation").
		OrderBy("wins DESC").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT t.team_abbreviation, SUM(ts.wins) AS wins FROM teams t JOIN team_stats ts ON ts.franchise_id = t.franchise_id WHERE t.team_abbreviation = ANY($1) AND ts.from_year >= $2 AND ts.to_year <= $3 GROUP BY t.team_abbreviation ORDER BY wins DESC LIMIT 5"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[1] != 2000 || args[2] != 2010 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderDistinctAndILike(t *testing.T) {
	query, args, err := Select("team_abbreviation").
		Distinct().
		From("teams").
		Where(ILike("team_abbreviation", "BO%")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT DISTINCT team_abbreviation FROM teams WHERE team_abbreviation ILIKE $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "BO%" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderRequiresColumnsAndTable(t *testing.T) {
	if _, _, err := Select().From("players").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInConditionEmptyMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("player_name", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestExprPlaceholdersContinueNumbering(t *testing.T) {
	query, args, err := Select("id").
		From("player_seasons").
		Where(Eq("season", "2019-20"), Expr("player_id IN (SELECT id FROM players WHERE player_name = ?)", "LeBron James")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM player_seasons WHERE season = $1 AND player_id IN (SELECT id FROM players WHERE player_name = $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != "LeBron James" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilderWithFrom(t *testing.T) {
	query, args, err := Update("team_stats ts").
		Set("wins", 60).
		From("teams t").
		Where(Expr("t.franchise_id = ts.franchise_id"), Any("t.team_abbreviation", []string{"BOS"})).
		Suffix("RETURNING ts.*").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE team_stats ts SET wins = $1 FROM teams t WHERE t.franchise_id = ts.franchise_id AND t.team_abbreviation = ANY($2) RETURNING ts.*"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 60 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("players").
		Where(Any("player_name", []string{"A", "B"})).
		Returning("*").
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM players WHERE player_name = ANY($1) RETURNING *"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("players").ToSQL(); err == nil {
		t.Fatalf("expected error for unfiltered delete")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name    string `db:"player_name"`
		College string `db:"college"`
		skipped string
		Ignored string `db:"-"`
	}

	query, args, err := InsertModel("players", row{Name: "A", College: "Duke", skipped: "x"}, "ON CONFLICT (player_name) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO players (player_name, college) VALUES ($1, $2) ON CONFLICT (player_name) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "A" || args[1] != "Duke" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
