package postgres

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationsDir = "../../../../db/migrations"

var (
	createTableRe    = regexp.MustCompile(`(?is)CREATE TABLE(?: IF NOT EXISTS)?\s+(\w+)\s*\((.*?)\n\);`)
	insertTargetRe   = regexp.MustCompile(`(?is)^\s*INSERT INTO (\w+)\s*\(([^)]*)\)`)
	conflictTargetRe = regexp.MustCompile(`(?is)ON CONFLICT \(([^)]*)\)(?:\s+DO UPDATE SET\s+(.*?))?(?:\s+RETURNING\b|$)`)
	updateTargetRe   = regexp.MustCompile(`(?is)^\s*UPDATE (\w+)(?:\s+\w+)?\s+SET\s+(.*?)(?:\s+FROM\b|\s+WHERE\b|\s+RETURNING\b|$)`)

	schemaOnce sync.Once
	schemaMap  map[string]map[string]bool
	schemaErr  error
)

// loadSchema reads the column set of every table created by the up migrations.
func loadSchema() (map[string]map[string]bool, error) {
	schemaOnce.Do(func() {
		files, err := filepath.Glob(filepath.Join(migrationsDir, "*.up.sql"))
		if err != nil {
			schemaErr = err
			return
		}
		if len(files) == 0 {
			schemaErr = fmt.Errorf("no up migrations found in %s", migrationsDir)
			return
		}
		sort.Strings(files)

		schemaMap = map[string]map[string]bool{}
		for _, file := range files {
			raw, err := os.ReadFile(file)
			if err != nil {
				schemaErr = err
				return
			}
			for _, m := range createTableRe.FindAllStringSubmatch(string(raw), -1) {
				cols := map[string]bool{}
				for _, line := range strings.Split(m[2], "\n") {
					fields := strings.Fields(strings.TrimSpace(line))
					if len(fields) == 0 {
						continue
					}
					switch strings.ToUpper(fields[0]) {
					case "UNIQUE", "PRIMARY", "CONSTRAINT", "FOREIGN", "CHECK":
						continue
					}
					cols[strings.ToLower(fields[0])] = true
				}
				schemaMap[strings.ToLower(m[1])] = cols
			}
		}
	})
	return schemaMap, schemaErr
}

// checkWriteColumns fails when an INSERT or UPDATE names a table or column
// the migrations never create.
func checkWriteColumns(query string) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	var table string
	var targets []string
	switch {
	case insertTargetRe.MatchString(query):
		m := insertTargetRe.FindStringSubmatch(query)
		table = m[1]
		targets = append(targets, splitTopLevel(m[2])...)
		if c := conflictTargetRe.FindStringSubmatch(query); c != nil {
			targets = append(targets, splitTopLevel(c[1])...)
			targets = append(targets, assignmentTargets(c[2])...)
		}
	case updateTargetRe.MatchString(query):
		m := updateTargetRe.FindStringSubmatch(query)
		table = m[1]
		targets = assignmentTargets(m[2])
	default:
		return nil
	}

	cols, ok := schema[strings.ToLower(table)]
	if !ok {
		return fmt.Errorf("table %q is not created by the migrations", table)
	}
	for _, target := range targets {
		if !cols[strings.ToLower(target)] {
			return fmt.Errorf("column %q does not exist on table %q", target, table)
		}
	}
	return nil
}

func assignmentTargets(set string) []string {
	out := []string{}
	for _, part := range splitTopLevel(set) {
		name, _, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		out = append(out, strings.TrimSpace(name))
	}
	return out
}

func splitTopLevel(list string) []string {
	var (
		out   []string
		depth int
		start int
	)
	for i, r := range list {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(list[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(list[start:]); tail != "" {
		out = append(out, tail)
	}
	return out
}

// schemaQueryMatcher validates the written columns against the migrations
// before falling back to sqlmock's regexp matching.
var schemaQueryMatcher = sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
	if err := checkWriteColumns(actualSQL); err != nil {
		return err
	}
	return sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
})

func TestMigrationSchema_PlayersAndTeamsTrackUpdates(t *testing.T) {
	schema, err := loadSchema()
	require.NoError(t, err)

	for _, table := range []string{"players", "teams"} {
		require.Contains(t, schema, table)
		assert.True(t, schema[table]["updated_at"], "%s.updated_at", table)
		assert.True(t, schema[table]["created_at"], "%s.created_at", table)
	}
}

func TestMigrationSchema_InsertModelsMatchColumns(t *testing.T) {
	schema, err := loadSchema()
	require.NoError(t, err)

	tests := []struct {
		table string
		model any
	}{
		{table: "players", model: playerInsertModel{}},
		{table: "player_seasons", model: playerSeasonInsertModel{}},
		{table: "team_stats", model: teamStatsInsertModel{}},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			typ := reflect.TypeOf(tt.model)
			for i := 0; i < typ.NumField(); i++ {
				tag := typ.Field(i).Tag.Get("db")
				if tag == "" || tag == "-" {
					continue
				}
				assert.True(t, schema[tt.table][tag], "%s.%s", tt.table, tag)
			}
		})
	}
}

func TestCheckWriteColumns(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{
			name:  "team update",
			query: "UPDATE teams SET team_name = $1, updated_at = NOW() WHERE team_abbreviation = ANY($2) RETURNING id",
		},
		{
			name:  "aliased update with from",
			query: "UPDATE team_stats ts SET wins = $1 FROM teams t WHERE t.franchise_id = ts.franchise_id",
		},
		{
			name:  "upsert with coalesce",
			query: "INSERT INTO teams (team_abbreviation, team_name, franchise_id) VALUES ($1, $2, $3) ON CONFLICT (team_abbreviation) DO UPDATE SET team_name = COALESCE(EXCLUDED.team_name, teams.team_name), updated_at = NOW() RETURNING id",
		},
		{
			name:  "select is ignored",
			query: "SELECT nickname FROM teams",
		},
		{
			name:    "unknown update column",
			query:   "UPDATE teams SET nickname = $1 WHERE id = $2",
			wantErr: `column "nickname" does not exist on table "teams"`,
		},
		{
			name:    "unknown conflict column",
			query:   "INSERT INTO players (player_name) VALUES ($1) ON CONFLICT (player_name) DO UPDATE SET modified = NOW()",
			wantErr: `column "modified" does not exist on table "players"`,
		},
		{
			name:    "unknown table",
			query:   "INSERT INTO coaches (coach_name) VALUES ($1)",
			wantErr: `table "coaches" is not created by the migrations`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkWriteColumns(tt.query)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
