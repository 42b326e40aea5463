package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, namePrefix string, limit int) ([]Summary, error)
	SearchByTeam(ctx context.Context, namePrefix string, limit int) ([]SearchHit, error)
	GetByName(ctx context.Context, name string) (Player, bool, error)
	ListSeasons(ctx context.Context, playerID int64) ([]Season, error)
	ListSalaries(ctx context.Context, name string) ([]Salary, error)
	Compare(ctx context.Context, names []string) ([]Comparison, error)
	TeamNameByAbbreviation(ctx context.Context, abbreviation string) (string, bool, error)
	Upsert(ctx context.Context, input UpsertInput) (Player, error)
	UpsertSalaries(ctx context.Context, salaries []Salary) error
	UpdateSeasons(ctx context.Context, names []string, updates []SeasonUpdate) ([]Season, error)
	DeleteByNames(ctx context.Context, names []string) ([]Player, error)
}
