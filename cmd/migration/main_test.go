package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/riskibarqy/nba-stats/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	upErr      error
	steps      []int
	forced     []int
	target     []uint
	version    uint
	dirty      bool
	versionErr error
}

func (f *fakeMigrator) Up() error { return f.upErr }

func (f *fakeMigrator) Steps(n int) error {
	f.steps = append(f.steps, n)
	return nil
}

func (f *fakeMigrator) Migrate(version uint) error {
	f.target = append(f.target, version)
	return nil
}

func (f *fakeMigrator) Force(version int) error {
	f.forced = append(f.forced, version)
	return nil
}

func (f *fakeMigrator) Version() (uint, bool, error) {
	return f.version, f.dirty, f.versionErr
}

func staticTables(names ...string) tableLister {
	return func(context.Context) ([]string, error) {
		return names, nil
	}
}

func testLogger() *logging.Logger {
	return logging.New(io.Discard, logging.LevelError)
}

func TestRun_UpTreatsNoChangeAsSuccess(t *testing.T) {
	m := &fakeMigrator{upErr: migrate.ErrNoChange}
	require.NoError(t, run(context.Background(), m, staticTables(), []string{"up"}, testLogger()))

	m.upErr = errors.New("dirty database version 1")
	require.Error(t, run(context.Background(), m, staticTables(), []string{"up"}, testLogger()))
}

func TestRun_DownDefaultsToOneStep(t *testing.T) {
	m := &fakeMigrator{}
	require.NoError(t, run(context.Background(), m, staticTables(), []string{"down"}, testLogger()))
	require.NoError(t, run(context.Background(), m, staticTables(), []string{"DOWN", "2"}, testLogger()))
	assert.Equal(t, []int{-1, -2}, m.steps)

	require.Error(t, run(context.Background(), m, staticTables(), []string{"down", "0"}, testLogger()))
}

func TestRun_ForceAndGoto(t *testing.T) {
	m := &fakeMigrator{}
	require.NoError(t, run(context.Background(), m, staticTables(), []string{"force", "1"}, testLogger()))
	require.NoError(t, run(context.Background(), m, staticTables(), []string{"goto", "1"}, testLogger()))
	assert.Equal(t, []int{1}, m.forced)
	assert.Equal(t, []uint{1}, m.target)

	require.Error(t, run(context.Background(), m, staticTables(), []string{"force"}, testLogger()))
	require.Error(t, run(context.Background(), m, staticTables(), []string{"goto", "-1"}, testLogger()))
}

func TestRun_VersionListsTables(t *testing.T) {
	var listed bool
	tables := func(context.Context) ([]string, error) {
		listed = true
		return []string{"franchises", "teams", "players", "player_seasons", "team_stats", "player_salaries", "schema_migrations"}, nil
	}

	m := &fakeMigrator{versionErr: migrate.ErrNilVersion}
	require.NoError(t, run(context.Background(), m, tables, []string{"version"}, testLogger()))
	assert.True(t, listed)
}

func TestRun_VersionSurfacesListErrors(t *testing.T) {
	tables := func(context.Context) ([]string, error) {
		return nil, errors.New("connection refused")
	}

	err := run(context.Background(), &fakeMigrator{version: 1}, tables, []string{"version"}, testLogger())
	require.ErrorContains(t, err, "list tables")
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(context.Background(), &fakeMigrator{}, staticTables(), []string{"sideways"}, testLogger())
	require.ErrorIs(t, err, errUsage)
}

func TestMissingTables(t *testing.T) {
	assert.Equal(t, []string{"team_stats", "player_salaries"},
		missingTables([]string{"franchises", "teams", "players", "player_seasons"}))
	assert.Empty(t, missingTables(schemaTables))
}

func TestDefaultMigrationsDir(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")
	assert.Equal(t, "db/migrations", defaultMigrationsDir())

	t.Setenv("MIGRATIONS_DIR", "/app/db/migrations")
	assert.Equal(t, "/app/db/migrations", defaultMigrationsDir())
}
