package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/nba-stats/internal/domain/player"
	qb "github.com/riskibarqy/nba-stats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, namePrefix string, limit int) ([]player.Summary, error) {
	builder := qb.Select(
		"p.player_name",
		"COALESCE(array_agg(DISTINCT t.team_abbreviation) FILTER (WHERE t.team_abbreviation IS NOT NULL), '{}') AS team_abbreviations",
		"COALESCE(array_agg(DISTINCT ps.season ORDER BY ps.season DESC) FILTER (WHERE ps.season IS NOT NULL), '{}') AS seasons",
	).From("players p").
		Join("LEFT JOIN player_seasons ps ON ps.player_id = p.id").
		Join("LEFT JOIN teams t ON t.id = ps.team_id")
	if namePrefix != "" {
		builder = builder.Where(qb.ILike("p.player_name", prefixPattern(namePrefix)))
	}
	query, args, err := builder.
		GroupBy("p.player_name").
		OrderBy("p.player_name").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Summary{
			Name:              row.Name,
			TeamAbbreviations: []string(row.TeamAbbreviations),
			Seasons:           []string(row.Seasons),
		})
	}
	return out, nil
}

func (r *PlayerRepository) SearchByTeam(ctx context.Context, namePrefix string, limit int) ([]player.SearchHit, error) {
	query, args, err := qb.Select(
		"p.player_name",
		"t.team_abbreviation",
		"array_agg(DISTINCT ps.season ORDER BY ps.season DESC) AS seasons",
	).From("players p").
		Join("JOIN player_seasons ps ON ps.player_id = p.id").
		Join("JOIN teams t ON t.id = ps.team_id").
		Where(qb.ILike("p.player_name", prefixPattern(namePrefix))).
		GroupBy("p.player_name", "t.team_abbreviation").
		OrderBy("p.player_name", "t.team_abbreviation").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search players by team query: %w", err)
	}

	var rows []playerSearchRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search players by team: %w", err)
	}

	out := make([]player.SearchHit, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.SearchHit{
			Name:             row.Name,
			TeamAbbreviation: row.TeamAbbreviation,
			Seasons:          []string(row.Seasons),
		})
	}
	return out, nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("player_name", name)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by name query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by name: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) ListSeasons(ctx context.Context, playerID int64) ([]player.Season, error) {
	query, args, err := qb.Select(playerSeasonColumns...).From("player_seasons ps").
		Join("LEFT JOIN teams t ON t.id = ps.team_id").
		Where(qb.Eq("ps.player_id", playerID)).
		OrderBy("ps.season DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player seasons query: %w", err)
	}

	var rows []playerSeasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player seasons: %w", err)
	}

	return seasonsFromRows(rows), nil
}

func (r *PlayerRepository) ListSalaries(ctx context.Context, name string) ([]player.Salary, error) {
	query, args, err := qb.Select("player_name", "season", "salary", "position", "team").
		From("player_salaries").
		Where(qb.Eq("player_name", name)).
		OrderBy("season").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player salaries query: %w", err)
	}

	var rows []playerSalaryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player salaries: %w", err)
	}

	out := make([]player.Salary, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Salary{
			PlayerName: row.PlayerName,
			Season:     row.Season,
			Amount:     row.Salary.Float64,
			Position:   nullStringValue(row.Position),
			Team:       nullStringValue(row.Team),
		})
	}
	return out, nil
}

func (r *PlayerRepository) Compare(ctx context.Context, names []string) ([]player.Comparison, error) {
	if len(names) == 0 {
		return []player.Comparison{}, nil
	}

	query, args, err := qb.Select(
		"p.player_name",
		"COALESCE(array_agg(DISTINCT t.team_abbreviation) FILTER (WHERE t.team_abbreviation IS NOT NULL), '{}') AS team_abbreviations",
		"AVG(ps.pts)::float8 AS pts",
		"AVG(ps.reb)::float8 AS reb",
		"AVG(ps.ast)::float8 AS ast",
		"AVG(ps.net_rating)::float8 AS net_rating",
		"COALESCE(array_agg(DISTINCT ps.season ORDER BY ps.season) FILTER (WHERE ps.season IS NOT NULL), '{}') AS seasons",
		"p.draft_year",
		"p.draft_round",
		"p.draft_number",
	).From("players p").
		Join("LEFT JOIN player_seasons ps ON ps.player_id = p.id").
		Join("LEFT JOIN teams t ON t.id = ps.team_id").
		Where(qb.Any("p.player_name", pq.StringArray(names))).
		GroupBy("p.player_name", "p.draft_year", "p.draft_round", "p.draft_number").
		OrderBy("p.player_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build compare players query: %w", err)
	}

	var rows []playerComparisonRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("compare players: %w", err)
	}

	out := make([]player.Comparison, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Comparison{
			Name:              row.Name,
			TeamAbbreviations: []string(row.TeamAbbreviations),
			Pts:               nullFloatToPtr(row.Pts),
			Reb:               nullFloatToPtr(row.Reb),
			Ast:               nullFloatToPtr(row.Ast),
			NetRating:         nullFloatToPtr(row.NetRating),
			Seasons:           []string(row.Seasons),
			DraftYear:         nullStringValue(row.DraftYear),
			DraftRound:        nullStringValue(row.DraftRound),
			DraftNumber:       nullStringValue(row.DraftNumber),
		})
	}
	return out, nil
}

func (r *PlayerRepository) TeamNameByAbbreviation(ctx context.Context, abbreviation string) (string, bool, error) {
	query, args, err := qb.Select("COALESCE(team_name, '') AS team_name").From("teams").
		Where(qb.Eq("team_abbreviation", abbreviation)).
		ToSQL()
	if err != nil {
		return "", false, fmt.Errorf("build get team name query: %w", err)
	}

	var name string
	if err := r.db.GetContext(ctx, &name, query, args...); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get team name: %w", err)
	}
	return name, true, nil
}

// Upsert writes the player, its team and the optional season line in one
// transaction. Each statement is keyed on its unique constraint.
func (r *PlayerRepository) Upsert(ctx context.Context, input player.UpsertInput) (player.Player, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return player.Player{}, fmt.Errorf("begin tx upsert player: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	p := input.Player
	query, args, err := qb.InsertModel("players", playerInsertModel{
		Name:        p.Name,
		Age:         intPtrValue(p.Age),
		Height:      floatPtrValue(p.Height),
		Weight:      floatPtrValue(p.Weight),
		College:     optionalString(p.College),
		Country:     optionalString(p.Country),
		DraftYear:   optionalString(p.DraftYear),
		DraftRound:  optionalString(p.DraftRound),
		DraftNumber: optionalString(p.DraftNumber),
	}, `ON CONFLICT (player_name) DO UPDATE SET
			age = EXCLUDED.age,
			player_height = EXCLUDED.player_height,
			player_weight = EXCLUDED.player_weight,
			college = EXCLUDED.college,
			country = EXCLUDED.country,
			draft_year = EXCLUDED.draft_year,
			draft_round = EXCLUDED.draft_round,
			draft_number = EXCLUDED.draft_number,
			updated_at = NOW()
		RETURNING id, player_name, age, player_height, player_weight, college, country, draft_year, draft_round, draft_number`)
	if err != nil {
		return player.Player{}, fmt.Errorf("build upsert player query: %w", err)
	}

	var row playerTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("upsert player: %w", err)
	}

	teamRow, err := upsertTeamTx(ctx, tx, input.TeamAbbreviation, input.TeamName, nil)
	if err != nil {
		return player.Player{}, err
	}

	if s := input.Season; s != nil {
		year := s.Year
		if year == 0 {
			year = player.SeasonYear(s.Season)
		}
		query, args, err := qb.InsertModel("player_seasons", playerSeasonInsertModel{
			PlayerID:    row.ID,
			TeamID:      teamRow.ID,
			Season:      s.Season,
			Year:        year,
			Age:         intPtrValue(s.Age),
			Height:      floatPtrValue(s.Height),
			Weight:      floatPtrValue(s.Weight),
			GamesPlayed: intPtrValue(s.GamesPlayed),
			Pts:         floatPtrValue(s.Pts),
			Reb:         floatPtrValue(s.Reb),
			Ast:         floatPtrValue(s.Ast),
			NetRating:   floatPtrValue(s.NetRating),
			OrebPct:     floatPtrValue(s.OrebPct),
			DrebPct:     floatPtrValue(s.DrebPct),
			UsgPct:      floatPtrValue(s.UsgPct),
			TsPct:       floatPtrValue(s.TsPct),
			AstPct:      floatPtrValue(s.AstPct),
		}, `ON CONFLICT (player_id, season) DO UPDATE SET
				team_id = EXCLUDED.team_id,
				year = EXCLUDED.year,
				age = EXCLUDED.age,
				player_height = EXCLUDED.player_height,
				player_weight = EXCLUDED.player_weight,
				games_played = EXCLUDED.games_played,
				pts = EXCLUDED.pts,
				reb = EXCLUDED.reb,
				ast = EXCLUDED.ast,
				net_rating = EXCLUDED.net_rating,
				oreb_pct = EXCLUDED.oreb_pct,
				dreb_pct = EXCLUDED.dreb_pct,
				usg_pct = EXCLUDED.usg_pct,
				ts_pct = EXCLUDED.ts_pct,
				ast_pct = EXCLUDED.ast_pct`)
		if err != nil {
			return player.Player{}, fmt.Errorf("build upsert player season query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return player.Player{}, fmt.Errorf("upsert player season: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return player.Player{}, fmt.Errorf("commit upsert player: %w", err)
	}
	return playerFromRow(row), nil
}

func (r *PlayerRepository) UpsertSalaries(ctx context.Context, salaries []player.Salary) error {
	if len(salaries) == 0 {
		return nil
	}

	builder := qb.InsertInto("player_salaries").
		Columns("player_name", "season", "salary", "position", "team")
	for _, s := range salaries {
		builder = builder.Values(s.PlayerName, s.Season, s.Amount, optionalString(s.Position), optionalString(s.Team))
	}
	query, args, err := builder.
		Suffix(`ON CONFLICT (player_name, season) DO UPDATE SET
			salary = EXCLUDED.salary,
			position = EXCLUDED.position,
			team = EXCLUDED.team`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert player salaries query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player salaries: %w", err)
	}
	return nil
}

func (r *PlayerRepository) UpdateSeasons(ctx context.Context, names []string, updates []player.SeasonUpdate) ([]player.Season, error) {
	if len(names) == 0 || len(updates) == 0 {
		return []player.Season{}, nil
	}

	builder := qb.Update("player_seasons")
	for _, u := range updates {
		builder = builder.Set(u.Column, u.Value)
	}
	query, args, err := builder.
		Where(qb.Expr("player_id IN (SELECT id FROM players WHERE player_name = ANY(?))", pq.StringArray(names))).
		Suffix(playerSeasonReturning).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build update player seasons query: %w", err)
	}

	var rows []playerSeasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("update player seasons: %w", err)
	}
	return seasonsFromRows(rows), nil
}

// DeleteByNames removes the players' seasons first, then the players, and
// returns the deleted player rows.
func (r *PlayerRepository) DeleteByNames(ctx context.Context, names []string) ([]player.Player, error) {
	if len(names) == 0 {
		return []player.Player{}, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx delete players: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	nameArray := pq.StringArray(names)
	query, args, err := qb.DeleteFrom("player_seasons").
		Where(qb.Expr("player_id IN (SELECT id FROM players WHERE player_name = ANY(?))", nameArray)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build delete player seasons query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("delete player seasons: %w", err)
	}

	query, args, err = qb.DeleteFrom("players").
		Where(qb.Any("player_name", nameArray)).
		Returning(playerSelectColumns...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build delete players query: %w", err)
	}

	var rows []playerTableModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("delete players: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit delete players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:          row.ID,
		Name:        row.Name,
		Age:         nullIntToPtr(row.Age),
		Height:      nullFloatToPtr(row.Height),
		Weight:      nullFloatToPtr(row.Weight),
		College:     nullStringValue(row.College),
		Country:     nullStringValue(row.Country),
		DraftYear:   nullStringValue(row.DraftYear),
		DraftRound:  nullStringValue(row.DraftRound),
		DraftNumber: nullStringValue(row.DraftNumber),
	}
}

func seasonsFromRows(rows []playerSeasonTableModel) []player.Season {
	out := make([]player.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Season{
			ID:               row.ID,
			PlayerID:         row.PlayerID,
			TeamID:           nullInt64ToPtr(row.TeamID),
			TeamAbbreviation: nullStringValue(row.TeamAbbreviation),
			Season:           row.Season,
			Year:             row.Year,
			Age:              nullIntToPtr(row.Age),
			Height:           nullFloatToPtr(row.Height),
			Weight:           nullFloatToPtr(row.Weight),
			GamesPlayed:      nullIntToPtr(row.GamesPlayed),
			Pts:              nullFloatToPtr(row.Pts),
			Reb:              nullFloatToPtr(row.Reb),
			Ast:              nullFloatToPtr(row.Ast),
			NetRating:        nullFloatToPtr(row.NetRating),
			OrebPct:          nullFloatToPtr(row.OrebPct),
			DrebPct:          nullFloatToPtr(row.DrebPct),
			UsgPct:           nullFloatToPtr(row.UsgPct),
			TsPct:            nullFloatToPtr(row.TsPct),
			AstPct:           nullFloatToPtr(row.AstPct),
		})
	}
	return out
}
