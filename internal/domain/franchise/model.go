package franchise

import "strings"

// Franchise is a team lineage spanning abbreviation and name changes.
type Franchise struct {
	ID   int64
	Name string
}

// DefaultLeague is assumed when a stats record does not name its league.
const DefaultLeague = "NBA"

// Record is the aggregate history of a franchise within one league.
type Record struct {
	ID                int64
	FranchiseID       int64
	FranchiseName     string
	League            string
	FromYear          *int
	ToYear            *int
	Years             *int
	Games             *int
	Wins              *int
	Losses            *int
	WinLossPercentage *float64
	Playoffs          *int
	DivisionTitles    *int
	ConferenceTitles  *int
	Championships     *int
}

// StatColumns maps accepted field names, canonical or the short labels used by
// basketball-reference exports, to team_stats columns.
var StatColumns = map[string]string{
	"from_year":           "from_year",
	"to_year":             "to_year",
	"years":               "years",
	"games":               "games",
	"wins":                "wins",
	"losses":              "losses",
	"win_loss_percentage": "win_loss_percentage",
	"playoffs":            "playoffs",
	"division_titles":     "division_titles",
	"conference_titles":   "conference_titles",
	"championships":       "championships",
	"from":                "from_year",
	"to":                  "to_year",
	"yrs":                 "years",
	"g":                   "games",
	"w":                   "wins",
	"l":                   "losses",
	"w/l%":                "win_loss_percentage",
	"plyfs":               "playoffs",
	"div":                 "division_titles",
	"conf":                "conference_titles",
	"champ":               "championships",
}

// StatColumn resolves a field name case-insensitively.
func StatColumn(field string) (string, bool) {
	col, ok := StatColumns[strings.ToLower(strings.TrimSpace(field))]
	return col, ok
}

// StatUpdate is a single team_stats column assignment.
type StatUpdate struct {
	Column string
	Value  any
}
