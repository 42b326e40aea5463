package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nba-stats/internal/domain/franchise"
	qb "github.com/riskibarqy/nba-stats/internal/platform/querybuilder"
)

type FranchiseRepository struct {
	db *sqlx.DB
}

func NewFranchiseRepository(db *sqlx.DB) *FranchiseRepository {
	return &FranchiseRepository{db: db}
}

func (r *FranchiseRepository) ListRecords(ctx context.Context) ([]franchise.Record, error) {
	query, args, err := qb.Select(teamStatsSelectColumns...).
		From("team_stats ts").
		Join("JOIN franchises f ON f.id = ts.franchise_id").
		OrderBy("f.franchise_name", "ts.league").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list franchise records query: %w", err)
	}

	var rows []teamStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list franchise records: %w", err)
	}
	return recordsFromRows(rows), nil
}

func (r *FranchiseRepository) ListRecordsByName(ctx context.Context, name string) ([]franchise.Record, error) {
	query, args, err := qb.Select(teamStatsSelectColumns...).
		From("team_stats ts").
		Join("JOIN franchises f ON f.id = ts.franchise_id").
		Where(qb.Eq("f.franchise_name", name)).
		OrderBy("ts.league").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list franchise records by name query: %w", err)
	}

	var rows []teamStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list franchise records by name: %w", err)
	}
	return recordsFromRows(rows), nil
}

// UpsertRecord creates the franchise when needed and upserts its league record.
func (r *FranchiseRepository) UpsertRecord(ctx context.Context, record franchise.Record) (franchise.Record, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return franchise.Record{}, fmt.Errorf("begin tx upsert franchise record: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	franchiseID, err := upsertFranchiseTx(ctx, tx, record.FranchiseName)
	if err != nil {
		return franchise.Record{}, err
	}

	out, err := upsertRecordTx(ctx, tx, franchiseID, record)
	if err != nil {
		return franchise.Record{}, err
	}

	if err := tx.Commit(); err != nil {
		return franchise.Record{}, fmt.Errorf("commit upsert franchise record: %w", err)
	}
	return out, nil
}

func upsertFranchiseTx(ctx context.Context, tx *sqlx.Tx, name string) (int64, error) {
	query, args, err := qb.InsertInto("franchises").
		Columns("franchise_name").
		Values(strings.TrimSpace(name)).
		Suffix("ON CONFLICT (franchise_name) DO UPDATE SET franchise_name = EXCLUDED.franchise_name RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build upsert franchise query: %w", err)
	}

	var id int64
	if err := tx.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("upsert franchise: %w", err)
	}
	return id, nil
}

func upsertRecordTx(ctx context.Context, tx *sqlx.Tx, franchiseID int64, record franchise.Record) (franchise.Record, error) {
	league := strings.ToUpper(strings.TrimSpace(record.League))
	if league == "" {
		league = franchise.DefaultLeague
	}

	query, args, err := qb.InsertModel("team_stats", teamStatsInsertModel{
		FranchiseID:       franchiseID,
		League:            league,
		FromYear:          intPtrValue(record.FromYear),
		ToYear:            intPtrValue(record.ToYear),
		Years:             intPtrValue(record.Years),
		Games:             intPtrValue(record.Games),
		Wins:              intPtrValue(record.Wins),
		Losses:            intPtrValue(record.Losses),
		WinLossPercentage: floatPtrValue(record.WinLossPercentage),
		Playoffs:          intPtrValue(record.Playoffs),
		DivisionTitles:    intPtrValue(record.DivisionTitles),
		ConferenceTitles:  intPtrValue(record.ConferenceTitles),
		Championships:     intPtrValue(record.Championships),
	}, `ON CONFLICT (franchise_id, league) DO UPDATE SET
			from_year = EXCLUDED.from_year,
			to_year = EXCLUDED.to_year,
			years = EXCLUDED.years,
			games = EXCLUDED.games,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			win_loss_percentage = EXCLUDED.win_loss_percentage,
			playoffs = EXCLUDED.playoffs,
			division_titles = EXCLUDED.division_titles,
			conference_titles = EXCLUDED.conference_titles,
			championships = EXCLUDED.championships
		`+teamStatsReturning)
	if err != nil {
		return franchise.Record{}, fmt.Errorf("build upsert team stats query: %w", err)
	}

	var row teamStatsTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		return franchise.Record{}, fmt.Errorf("upsert team stats: %w", err)
	}

	out := recordFromRow(row)
	out.FranchiseName = strings.TrimSpace(record.FranchiseName)
	return out, nil
}

func recordFromRow(row teamStatsTableModel) franchise.Record {
	return franchise.Record{
		ID:                row.ID,
		FranchiseID:       row.FranchiseID,
		FranchiseName:     nullStringValue(row.FranchiseName),
		League:            row.League,
		FromYear:          nullIntToPtr(row.FromYear),
		ToYear:            nullIntToPtr(row.ToYear),
		Years:             nullIntToPtr(row.Years),
		Games:             nullIntToPtr(row.Games),
		Wins:              nullIntToPtr(row.Wins),
		Losses:            nullIntToPtr(row.Losses),
		WinLossPercentage: nullFloatToPtr(row.WinLossPercentage),
		Playoffs:          nullIntToPtr(row.Playoffs),
		DivisionTitles:    nullIntToPtr(row.DivisionTitles),
		ConferenceTitles:  nullIntToPtr(row.ConferenceTitles),
		Championships:     nullIntToPtr(row.Championships),
	}
}

func recordsFromRows(rows []teamStatsTableModel) []franchise.Record {
	out := make([]franchise.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, recordFromRow(row))
	}
	return out
}
