package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/riskibarqy/nba-stats/internal/domain/retrieval"
	qb "github.com/riskibarqy/nba-stats/internal/platform/querybuilder"
)

// retrieveAttribute is one requestable output column. Name doubles as the
// SQL alias, so it must stay a plain identifier.
type retrieveAttribute struct {
	Name      string
	Expr      string
	Aggregate bool
}

type retrieveCatalog struct {
	from       string
	joins      []string
	key        retrieveAttribute
	attributes map[string]retrieveAttribute
	// lookup maps lower-cased request names, including legacy labels, to Name.
	lookup   map[string]string
	defaults []string

	yearsAttribute string
	fromYearColumn string
	toYearColumn   string
}

func newRetrieveCatalog(key retrieveAttribute, attrs []retrieveAttribute, aliases map[string]string) *retrieveCatalog {
	c := &retrieveCatalog{
		key:        key,
		attributes: make(map[string]retrieveAttribute, len(attrs)+1),
		lookup:     make(map[string]string, len(attrs)+len(aliases)+1),
	}
	c.attributes[key.Name] = key
	c.lookup[key.Name] = key.Name
	for _, attr := range attrs {
		c.attributes[attr.Name] = attr
		c.lookup[attr.Name] = attr.Name
	}
	for alias, name := range aliases {
		c.lookup[strings.ToLower(alias)] = name
	}
	return c
}

func (c *retrieveCatalog) resolve(name string) (retrieveAttribute, bool) {
	canonical, ok := c.lookup[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return retrieveAttribute{}, false
	}
	attr, ok := c.attributes[canonical]
	return attr, ok
}

var playerRetrieveCatalog = func() *retrieveCatalog {
	c := newRetrieveCatalog(
		retrieveAttribute{Name: "player_name", Expr: "p.player_name"},
		[]retrieveAttribute{
			{Name: "team_abbreviation", Expr: "string_agg(DISTINCT t.team_abbreviation, ',' ORDER BY t.team_abbreviation)", Aggregate: true},
			{Name: "age", Expr: "p.age"},
			{Name: "player_height", Expr: "p.player_height"},
			{Name: "player_weight", Expr: "p.player_weight"},
			{Name: "college", Expr: "p.college"},
			{Name: "country", Expr: "p.country"},
			{Name: "draft_year", Expr: "p.draft_year"},
			{Name: "draft_round", Expr: "p.draft_round"},
			{Name: "draft_number", Expr: "p.draft_number"},
			{Name: "games_played", Expr: "SUM(ps.games_played)", Aggregate: true},
			{Name: "pts", Expr: "AVG(ps.pts)::float8", Aggregate: true},
			{Name: "reb", Expr: "AVG(ps.reb)::float8", Aggregate: true},
			{Name: "ast", Expr: "AVG(ps.ast)::float8", Aggregate: true},
			{Name: "net_rating", Expr: "AVG(ps.net_rating)::float8", Aggregate: true},
			{Name: "oreb_pct", Expr: "AVG(ps.oreb_pct)::float8", Aggregate: true},
			{Name: "dreb_pct", Expr: "AVG(ps.dreb_pct)::float8", Aggregate: true},
			{Name: "usg_pct", Expr: "AVG(ps.usg_pct)::float8", Aggregate: true},
			{Name: "ts_pct", Expr: "AVG(ps.ts_pct)::float8", Aggregate: true},
			{Name: "ast_pct", Expr: "AVG(ps.ast_pct)::float8", Aggregate: true},
			{Name: "seasons", Expr: "COUNT(DISTINCT ps.season)", Aggregate: true},
			{Name: "years", Expr: "COUNT(DISTINCT ps.year)", Aggregate: true},
		},
		map[string]string{
			"name": "player_name",
			"team": "team_abbreviation",
			"gp":   "games_played",
		},
	)
	c.from = "players p"
	c.joins = []string{
		"LEFT JOIN player_seasons ps ON ps.player_id = p.id",
		"LEFT JOIN teams t ON t.id = ps.team_id",
	}
	c.defaults = []string{"team_abbreviation", "seasons", "pts", "reb", "ast"}
	c.yearsAttribute = "years"
	c.fromYearColumn = "ps.year"
	c.toYearColumn = "ps.year"
	return c
}()

var teamRetrieveCatalog = func() *retrieveCatalog {
	c := newRetrieveCatalog(
		retrieveAttribute{Name: "team_abbreviation", Expr: "t.team_abbreviation"},
		[]retrieveAttribute{
			{Name: "team_name", Expr: "t.team_name"},
			{Name: "franchise", Expr: "f.franchise_name"},
			{Name: "league", Expr: "string_agg(DISTINCT ts.league, ',' ORDER BY ts.league)", Aggregate: true},
			{Name: "from_year", Expr: "MIN(ts.from_year)", Aggregate: true},
			{Name: "to_year", Expr: "MAX(ts.to_year)", Aggregate: true},
			{Name: "years", Expr: "COUNT(DISTINCT ts.from_year)", Aggregate: true},
			{Name: "games", Expr: "SUM(ts.games)", Aggregate: true},
			{Name: "wins", Expr: "SUM(ts.wins)", Aggregate: true},
			{Name: "losses", Expr: "SUM(ts.losses)", Aggregate: true},
			{Name: "win_loss_percentage", Expr: "ROUND(SUM(ts.wins)::numeric / NULLIF(SUM(ts.wins) + SUM(ts.losses), 0), 3)::float8", Aggregate: true},
			{Name: "playoffs", Expr: "SUM(ts.playoffs)", Aggregate: true},
			{Name: "division_titles", Expr: "SUM(ts.division_titles)", Aggregate: true},
			{Name: "conference_titles", Expr: "SUM(ts.conference_titles)", Aggregate: true},
			{Name: "championships", Expr: "SUM(ts.championships)", Aggregate: true},
		},
		map[string]string{
			"abbreviation":   "team_abbreviation",
			"franchise_name": "franchise",
			"lg":             "league",
			"from":           "from_year",
			"to":             "to_year",
			"yrs":            "years",
			"g":              "games",
			"w":              "wins",
			"l":              "losses",
			"w/l%":           "win_loss_percentage",
			"plyfs":          "playoffs",
			"div":            "division_titles",
			"conf":           "conference_titles",
			"champ":          "championships",
		},
	)
	c.from = "teams t"
	c.joins = []string{
		"LEFT JOIN franchises f ON f.id = t.franchise_id",
		"LEFT JOIN team_stats ts ON ts.franchise_id = t.franchise_id",
	}
	c.defaults = []string{"team_name", "franchise", "years", "games", "wins", "losses", "championships"}
	c.yearsAttribute = "years"
	c.fromYearColumn = "ts.from_year"
	c.toYearColumn = "ts.to_year"
	return c
}()

func catalogFor(entity retrieval.Entity) (*retrieveCatalog, error) {
	switch entity {
	case retrieval.EntityPlayer:
		return playerRetrieveCatalog, nil
	case retrieval.EntityTeam:
		return teamRetrieveCatalog, nil
	default:
		return nil, fmt.Errorf("unsupported retrieve entity %q", entity)
	}
}

// buildRetrieveQuery assembles the SELECT for a normalized request. Column
// names only ever come from the catalog; request values are bound as params.
func buildRetrieveQuery(c *retrieveCatalog, req retrieval.Request) (string, []any, error) {
	selected := []retrieveAttribute{c.key}
	seen := map[string]struct{}{c.key.Name: {}}
	add := func(attr retrieveAttribute) {
		if _, ok := seen[attr.Name]; ok {
			return
		}
		seen[attr.Name] = struct{}{}
		selected = append(selected, attr)
	}

	requested := req.Attributes
	if len(requested) == 0 {
		requested = c.defaults
	}
	for _, name := range requested {
		if attr, ok := c.resolve(name); ok {
			add(attr)
		}
	}

	var sortAttr *retrieveAttribute
	if req.SortBy != "" {
		attr, ok := c.resolve(req.SortBy)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", retrieval.ErrUnknownSortKey, req.SortBy)
		}
		add(attr)
		sortAttr = &attr
	}

	columns := make([]string, 0, len(selected))
	groupBy := make([]string, 0, len(selected))
	for _, attr := range selected {
		columns = append(columns, attr.Expr+" AS "+attr.Name)
		if !attr.Aggregate {
			groupBy = append(groupBy, attr.Expr)
		}
	}

	builder := qb.Select(columns...).From(c.from)
	for _, join := range c.joins {
		builder = builder.Join(join)
	}
	if len(req.EntityIDs) > 0 {
		builder = builder.Where(qb.Any(c.key.Expr, pq.StringArray(req.EntityIDs)))
	}
	if _, ok := seen[c.yearsAttribute]; ok {
		if req.FromYear != nil {
			builder = builder.Where(qb.Gte(c.fromYearColumn, *req.FromYear))
		}
		if req.ToYear != nil {
			builder = builder.Where(qb.Lte(c.toYearColumn, *req.ToYear))
		}
	}

	orderBy := make([]string, 0, 2)
	if sortAttr != nil {
		orderBy = append(orderBy, sortAttr.Name+" "+strings.ToUpper(req.SortOrder)+" NULLS LAST")
	}
	if sortAttr == nil || sortAttr.Name != c.key.Name {
		orderBy = append(orderBy, c.key.Name)
	}

	return builder.
		GroupBy(groupBy...).
		OrderBy(orderBy...).
		Limit(req.TopN).
		ToSQL()
}
