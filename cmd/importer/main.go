package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/nba-stats/internal/app"
	"github.com/riskibarqy/nba-stats/internal/config"
	"github.com/riskibarqy/nba-stats/internal/platform/logging"
	"github.com/riskibarqy/nba-stats/internal/usecase"
)

type importJob struct {
	path string
	run  func(context.Context, io.Reader) (usecase.ImportReport, error)
}

func main() {
	_ = godotenv.Load()

	playersPath := flag.String("players", "", "path to the per-season player stats CSV")
	teamsPath := flag.String("teams", "", "path to the franchise records CSV")
	salariesPath := flag.String("salaries", "", "path to the player salaries CSV")
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName+"-importer")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := app.OpenDB(ctx, cfg, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	importer := app.NewImportService(cfg, db, logger)

	jobs := []importJob{
		{path: *teamsPath, run: importer.ImportTeamStats},
		{path: *playersPath, run: importer.ImportPlayerSeasons},
		{path: *salariesPath, run: importer.ImportSalaries},
	}

	ran, failed := 0, false
	for _, job := range jobs {
		if strings.TrimSpace(job.path) == "" {
			continue
		}
		ran++
		if err := runJob(ctx, job, logger); err != nil {
			logger.Error("import failed", "file", job.path, "error", err)
			failed = true
		}
	}

	if ran == 0 {
		printUsage()
		os.Exit(2)
	}
	if failed {
		os.Exit(1)
	}
}

func runJob(ctx context.Context, job importJob, logger *logging.Logger) error {
	f, err := os.Open(job.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", job.path, err)
	}
	defer func() { _ = f.Close() }()

	report, err := job.run(ctx, f)
	if err != nil {
		return err
	}

	logger.Info("import finished",
		"kind", report.Kind,
		"file", job.path,
		"rows", report.Rows,
		"imported", report.Imported,
		"failed", report.Failed,
	)
	for _, msg := range report.Errors {
		logger.Warn("import row rejected", "kind", report.Kind, "detail", msg)
	}
	return nil
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s [-teams FILE] [-players FILE] [-salaries FILE]\n", name)
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s -players data/all_seasons.csv\n", name)
	fmt.Fprintf(os.Stderr, "  %s -teams data/team_stats.csv -salaries data/salaries.csv\n", name)
}
