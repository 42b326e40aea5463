package team

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/nba-stats/internal/domain/franchise"
)

// Team is a club identified by its abbreviation.
type Team struct {
	ID            int64
	Abbreviation  string
	Name          string
	FranchiseID   *int64
	FranchiseName string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Abbreviation) == "" {
		return fmt.Errorf("team abbreviation is required")
	}
	return nil
}

// PlayerAverage is a roster entry with the player's averages while on the team.
type PlayerAverage struct {
	Name    string
	Pts     *float64
	Reb     *float64
	Ast     *float64
	Seasons []string
}

// SeasonPerformance aggregates the team's player seasons for one season.
type SeasonPerformance struct {
	Season     string
	AvgPts     *float64
	AvgReb     *float64
	AvgAst     *float64
	RosterSize int
}

// Comparison carries averages used by the compare view.
type Comparison struct {
	Abbreviation string
	Name         string
	AvgPts       *float64
	AvgReb       *float64
	AvgAst       *float64
	AvgNetRating *float64
	NumPlayers   int
}

// UpsertInput creates or refreshes a team, optionally linking a franchise and
// its league record.
type UpsertInput struct {
	Team          Team
	FranchiseName string
	Record        *franchise.Record
}

// UpsertResult is what a create call persisted.
type UpsertResult struct {
	Team   Team
	Record *franchise.Record
}

// UpdateInput is applied to every matched team inside one transaction.
type UpdateInput struct {
	Name  *string
	Stats []franchise.StatUpdate
}

// UpdateResult lists the rows touched by an update.
type UpdateResult struct {
	Teams []Team
	Stats []franchise.Record
}
