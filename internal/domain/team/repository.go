package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByAbbreviation(ctx context.Context, abbreviation string) (Team, bool, error)
	ListPlayerAverages(ctx context.Context, abbreviation string) ([]PlayerAverage, error)
	ListSeasonPerformance(ctx context.Context, abbreviation string) ([]SeasonPerformance, error)
	Compare(ctx context.Context, abbreviations []string) ([]Comparison, error)
	Upsert(ctx context.Context, input UpsertInput) (UpsertResult, error)
	Update(ctx context.Context, abbreviations []string, input UpdateInput) (UpdateResult, error)
	DeleteByAbbreviations(ctx context.Context, abbreviations []string) ([]Team, error)
}
