package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nba-stats/internal/domain/retrieval"
)

type RetrieveRepository struct {
	db *sqlx.DB
}

func NewRetrieveRepository(db *sqlx.DB) *RetrieveRepository {
	return &RetrieveRepository{db: db}
}

func (r *RetrieveRepository) Retrieve(ctx context.Context, entity retrieval.Entity, req retrieval.Request) (retrieval.Result, error) {
	catalog, err := catalogFor(entity)
	if err != nil {
		return retrieval.Result{}, err
	}

	query, args, err := buildRetrieveQuery(catalog, req)
	if err != nil {
		return retrieval.Result{}, fmt.Errorf("build retrieve %s query: %w", entity, err)
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return retrieval.Result{}, fmt.Errorf("retrieve %s: %w", entity, err)
	}
	defer rows.Close()

	out := make([]map[string]any, 0)
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return retrieval.Result{}, fmt.Errorf("scan retrieve %s row: %w", entity, err)
		}
		for k, v := range row {
			row[k] = normalizeRowValue(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return retrieval.Result{}, fmt.Errorf("iterate retrieve %s rows: %w", entity, err)
	}

	return retrieval.Result{Rows: out, Query: query, Params: args}, nil
}
