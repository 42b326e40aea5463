package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/nba-stats/internal/domain/franchise"
	"github.com/riskibarqy/nba-stats/internal/domain/team"
	qb "github.com/riskibarqy/nba-stats/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := teamBaseSelectBuilder().
		OrderBy("t.team_abbreviation").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teamsFromRows(rows), nil
}

func (r *TeamRepository) GetByAbbreviation(ctx context.Context, abbreviation string) (team.Team, bool, error) {
	query, args, err := teamBaseSelectBuilder().
		Where(qb.Eq("t.team_abbreviation", abbreviation)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by abbreviation query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by abbreviation: %w", err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) ListPlayerAverages(ctx context.Context, abbreviation string) ([]team.PlayerAverage, error) {
	query, args, err := qb.Select(
		"p.player_name",
		"AVG(ps.pts)::float8 AS pts",
		"AVG(ps.reb)::float8 AS reb",
		"AVG(ps.ast)::float8 AS ast",
		"array_agg(DISTINCT ps.season ORDER BY ps.season DESC) AS seasons",
	).From("player_seasons ps").
		Join("JOIN players p ON p.id = ps.player_id").
		Join("JOIN teams t ON t.id = ps.team_id").
		Where(qb.Eq("t.team_abbreviation", abbreviation)).
		GroupBy("p.player_name").
		OrderBy("p.player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team players query: %w", err)
	}

	var rows []teamPlayerAverageRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}

	out := make([]team.PlayerAverage, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.PlayerAverage{
			Name:    row.Name,
			Pts:     nullFloatToPtr(row.Pts),
			Reb:     nullFloatToPtr(row.Reb),
			Ast:     nullFloatToPtr(row.Ast),
			Seasons: []string(row.Seasons),
		})
	}
	return out, nil
}

func (r *TeamRepository) ListSeasonPerformance(ctx context.Context, abbreviation string) ([]team.SeasonPerformance, error) {
	query, args, err := qb.Select(
		"ps.season",
		"AVG(ps.pts)::float8 AS avg_pts",
		"AVG(ps.reb)::float8 AS avg_reb",
		"AVG(ps.ast)::float8 AS avg_ast",
		"COUNT(DISTINCT ps.player_id) AS roster_size",
	).From("player_seasons ps").
		Join("JOIN teams t ON t.id = ps.team_id").
		Where(qb.Eq("t.team_abbreviation", abbreviation)).
		GroupBy("ps.season").
		OrderBy("ps.season").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team performance query: %w", err)
	}

	var rows []teamSeasonPerformanceRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team performance: %w", err)
	}

	out := make([]team.SeasonPerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.SeasonPerformance{
			Season:     row.Season,
			AvgPts:     nullFloatToPtr(row.AvgPts),
			AvgReb:     nullFloatToPtr(row.AvgReb),
			AvgAst:     nullFloatToPtr(row.AvgAst),
			RosterSize: row.RosterSize,
		})
	}
	return out, nil
}

func (r *TeamRepository) Compare(ctx context.Context, abbreviations []string) ([]team.Comparison, error) {
	if len(abbreviations) == 0 {
		return []team.Comparison{}, nil
	}

	query, args, err := qb.Select(
		"t.team_abbreviation",
		"t.team_name",
		"AVG(ps.pts)::float8 AS avg_pts",
		"AVG(ps.reb)::float8 AS avg_reb",
		"AVG(ps.ast)::float8 AS avg_ast",
		"AVG(ps.net_rating)::float8 AS avg_net_rating",
		"COUNT(DISTINCT ps.player_id) AS num_players",
	).From("teams t").
		Join("LEFT JOIN player_seasons ps ON ps.team_id = t.id").
		Where(qb.Any("t.team_abbreviation", pq.StringArray(abbreviations))).
		GroupBy("t.team_abbreviation", "t.team_name").
		OrderBy("t.team_abbreviation").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build compare teams query: %w", err)
	}

	var rows []teamComparisonRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("compare teams: %w", err)
	}

	out := make([]team.Comparison, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Comparison{
			Abbreviation: row.Abbreviation,
			Name:         nullStringValue(row.Name),
			AvgPts:       nullFloatToPtr(row.AvgPts),
			AvgReb:       nullFloatToPtr(row.AvgReb),
			AvgAst:       nullFloatToPtr(row.AvgAst),
			AvgNetRating: nullFloatToPtr(row.AvgNetRating),
			NumPlayers:   row.NumPlayers,
		})
	}
	return out, nil
}

// Upsert writes the franchise, the team and the franchise league record in
// one transaction.
func (r *TeamRepository) Upsert(ctx context.Context, input team.UpsertInput) (team.UpsertResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.UpsertResult{}, fmt.Errorf("begin tx upsert team: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var franchiseID *int64
	franchiseName := strings.TrimSpace(input.FranchiseName)
	if franchiseName != "" {
		id, err := upsertFranchiseTx(ctx, tx, franchiseName)
		if err != nil {
			return team.UpsertResult{}, err
		}
		franchiseID = &id
	}

	row, err := upsertTeamTx(ctx, tx, input.Team.Abbreviation, input.Team.Name, franchiseID)
	if err != nil {
		return team.UpsertResult{}, err
	}

	out := team.UpsertResult{Team: teamFromRow(row)}
	if franchiseName != "" {
		out.Team.FranchiseName = franchiseName
	}

	if input.Record != nil {
		if franchiseID == nil {
			return team.UpsertResult{}, fmt.Errorf("upsert team stats: franchise is required")
		}
		record := *input.Record
		record.FranchiseName = franchiseName
		stored, err := upsertRecordTx(ctx, tx, *franchiseID, record)
		if err != nil {
			return team.UpsertResult{}, err
		}
		out.Record = &stored
	}

	if err := tx.Commit(); err != nil {
		return team.UpsertResult{}, fmt.Errorf("commit upsert team: %w", err)
	}
	return out, nil
}

// Update renames the matched teams and applies stat assignments to their
// franchise records inside a single transaction.
func (r *TeamRepository) Update(ctx context.Context, abbreviations []string, input team.UpdateInput) (team.UpdateResult, error) {
	if len(abbreviations) == 0 {
		return team.UpdateResult{Teams: []team.Team{}, Stats: []franchise.Record{}}, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.UpdateResult{}, fmt.Errorf("begin tx update teams: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	abbreviationArray := pq.StringArray(abbreviations)
	var teamRows []teamTableModel
	if input.Name != nil {
		query, args, err := qb.Update("teams").
			Set("team_name", *input.Name).
			SetExpr("updated_at", "NOW()").
			Where(qb.Any("team_abbreviation", abbreviationArray)).
			Suffix(teamReturning).
			ToSQL()
		if err != nil {
			return team.UpdateResult{}, fmt.Errorf("build update teams query: %w", err)
		}
		if err := tx.SelectContext(ctx, &teamRows, query, args...); err != nil {
			return team.UpdateResult{}, fmt.Errorf("update teams: %w", err)
		}
	} else {
		query, args, err := teamBaseSelectBuilder().
			Where(qb.Any("t.team_abbreviation", abbreviationArray)).
			OrderBy("t.team_abbreviation").
			ToSQL()
		if err != nil {
			return team.UpdateResult{}, fmt.Errorf("build select teams for update query: %w", err)
		}
		if err := tx.SelectContext(ctx, &teamRows, query, args...); err != nil {
			return team.UpdateResult{}, fmt.Errorf("select teams for update: %w", err)
		}
	}

	statsRows := []teamStatsTableModel{}
	if len(input.Stats) > 0 {
		builder := qb.Update("team_stats ts")
		for _, s := range input.Stats {
			builder = builder.Set(s.Column, s.Value)
		}
		query, args, err := builder.
			From("teams t, franchises f").
			Where(
				qb.Expr("t.franchise_id = ts.franchise_id"),
				qb.Expr("f.id = ts.franchise_id"),
				qb.Any("t.team_abbreviation", abbreviationArray),
			).
			Suffix("RETURNING " + strings.Join(teamStatsSelectColumns, ", ")).
			ToSQL()
		if err != nil {
			return team.UpdateResult{}, fmt.Errorf("build update team stats query: %w", err)
		}
		if err := tx.SelectContext(ctx, &statsRows, query, args...); err != nil {
			return team.UpdateResult{}, fmt.Errorf("update team stats: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return team.UpdateResult{}, fmt.Errorf("commit update teams: %w", err)
	}

	return team.UpdateResult{
		Teams: teamsFromRows(teamRows),
		Stats: recordsFromRows(statsRows),
	}, nil
}

func (r *TeamRepository) DeleteByAbbreviations(ctx context.Context, abbreviations []string) ([]team.Team, error) {
	if len(abbreviations) == 0 {
		return []team.Team{}, nil
	}

	query, args, err := qb.DeleteFrom("teams").
		Where(qb.Any("team_abbreviation", pq.StringArray(abbreviations))).
		Returning("id", "team_abbreviation", "team_name", "franchise_id", "NULL::text AS franchise_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build delete teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("delete teams: %w", err)
	}
	return teamsFromRows(rows), nil
}

// upsertTeamTx keeps the stored name and franchise when the caller leaves them empty.
func upsertTeamTx(ctx context.Context, tx *sqlx.Tx, abbreviation, name string, franchiseID *int64) (teamTableModel, error) {
	query, args, err := qb.InsertInto("teams").
		Columns("team_abbreviation", "team_name", "franchise_id").
		Values(strings.TrimSpace(abbreviation), optionalString(name), int64PtrValue(franchiseID)).
		Suffix(`ON CONFLICT (team_abbreviation) DO UPDATE SET
			team_name = COALESCE(EXCLUDED.team_name, teams.team_name),
			franchise_id = COALESCE(EXCLUDED.franchise_id, teams.franchise_id),
			updated_at = NOW()
		` + teamReturning).
		ToSQL()
	if err != nil {
		return teamTableModel{}, fmt.Errorf("build upsert team query: %w", err)
	}

	var row teamTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		return teamTableModel{}, fmt.Errorf("upsert team: %w", err)
	}
	return row, nil
}

func teamBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(teamSelectColumns...).
		From("teams t").
		Join("LEFT JOIN franchises f ON f.id = t.franchise_id")
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:            row.ID,
		Abbreviation:  row.Abbreviation,
		Name:          nullStringValue(row.Name),
		FranchiseID:   nullInt64ToPtr(row.FranchiseID),
		FranchiseName: nullStringValue(row.FranchiseName),
	}
}

func teamsFromRows(rows []teamTableModel) []team.Team {
	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out
}
