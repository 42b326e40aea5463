package player

// UpsertInput is the payload persisted by a create call: the player profile,
// the team it played for, and optionally one season line.
type UpsertInput struct {
	Player           Player
	TeamAbbreviation string
	TeamName         string
	Season           *Season
}

// SeasonColumns lists the player_seasons columns a bulk update may set.
var SeasonColumns = map[string]struct{}{
	"season":        {},
	"year":          {},
	"age":           {},
	"player_height": {},
	"player_weight": {},
	"games_played":  {},
	"pts":           {},
	"reb":           {},
	"ast":           {},
	"net_rating":    {},
	"oreb_pct":      {},
	"dreb_pct":      {},
	"usg_pct":       {},
	"ts_pct":        {},
	"ast_pct":       {},
}

// SeasonUpdate is a column assignment applied to every season of the matched players.
type SeasonUpdate struct {
	Column string
	Value  any
}
