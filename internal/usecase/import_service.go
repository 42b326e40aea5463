package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/nba-stats/internal/domain/franchise"
	"github.com/riskibarqy/nba-stats/internal/domain/player"
	"github.com/riskibarqy/nba-stats/internal/platform/logging"
)

const (
	defaultImportWorkers   = 4
	defaultImportBatchSize = 200
	maxReportedImportErrs  = 20
)

// ImportReport summarizes one CSV file import.
type ImportReport struct {
	Kind     string
	Rows     int
	Imported int
	Failed   int
	Errors   []string
}

// ImportService loads the public NBA CSV exports through the repositories.
// Rows are grouped into batches and batches are upserted by a worker pool.
type ImportService struct {
	playerRepo    player.Repository
	franchiseRepo franchise.Repository
	workers       int
	batchSize     int
	logger        *logging.Logger
}

func NewImportService(
	playerRepo player.Repository,
	franchiseRepo franchise.Repository,
	workers int,
	batchSize int,
	logger *logging.Logger,
) *ImportService {
	if workers <= 0 {
		workers = defaultImportWorkers
	}
	if batchSize <= 0 {
		batchSize = defaultImportBatchSize
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		playerRepo:    playerRepo,
		franchiseRepo: franchiseRepo,
		workers:       workers,
		batchSize:     batchSize,
		logger:        logger,
	}
}

// ImportPlayerSeasons reads the per-season player export
// (player_name, team_abbreviation, season, gp, pts, ...).
func (s *ImportService) ImportPlayerSeasons(ctx context.Context, r io.Reader) (ImportReport, error) {
	return s.run(ctx, "player_seasons", r, []string{"player_name", "team_abbreviation", "season"}, func(ctx context.Context, rows []csvRow) (int, []error) {
		imported := 0
		var errs []error
		for _, row := range rows {
			input, err := playerUpsertFromRow(row)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if _, err := s.playerRepo.Upsert(ctx, input); err != nil {
				errs = append(errs, crerr.Wrapf(err, "line %d: upsert player %q", row.line, input.Player.Name))
				continue
			}
			imported++
		}
		return imported, errs
	})
}

// ImportTeamStats reads the franchise history export, one row per franchise
// and league.
func (s *ImportService) ImportTeamStats(ctx context.Context, r io.Reader) (ImportReport, error) {
	return s.run(ctx, "team_stats", r, []string{"franchise", "league"}, func(ctx context.Context, rows []csvRow) (int, []error) {
		imported := 0
		var errs []error
		for _, row := range rows {
			record, err := franchiseRecordFromRow(row)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if _, err := s.franchiseRepo.UpsertRecord(ctx, record); err != nil {
				errs = append(errs, crerr.Wrapf(err, "line %d: upsert franchise %q", row.line, record.FranchiseName))
				continue
			}
			imported++
		}
		return imported, errs
	})
}

// ImportSalaries reads the salary export (name, season, salary, position, team).
// Each batch is written with a single multi-row upsert.
func (s *ImportService) ImportSalaries(ctx context.Context, r io.Reader) (ImportReport, error) {
	return s.run(ctx, "salaries", r, []string{"name", "season", "salary"}, func(ctx context.Context, rows []csvRow) (int, []error) {
		var errs []error
		byKey := make(map[string]int, len(rows))
		salaries := make([]player.Salary, 0, len(rows))
		for _, row := range rows {
			salary, err := salaryFromRow(row)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			key := salary.PlayerName + "|" + strconv.Itoa(salary.Season)
			if idx, ok := byKey[key]; ok {
				salaries[idx] = salary
				continue
			}
			byKey[key] = len(salaries)
			salaries = append(salaries, salary)
		}
		if len(salaries) == 0 {
			return 0, errs
		}
		if err := s.playerRepo.UpsertSalaries(ctx, salaries); err != nil {
			errs = append(errs, crerr.Wrapf(err, "lines %d-%d: upsert salaries", rows[0].line, rows[len(rows)-1].line))
			return 0, errs
		}
		return len(rows) - len(errs), errs
	})
}

type csvRow struct {
	line   int
	index  map[string]int
	record []string
}

func (r csvRow) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

type batchHandler func(ctx context.Context, rows []csvRow) (int, []error)

func (s *ImportService) run(ctx context.Context, kind string, r io.Reader, required []string, handle batchHandler) (ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService."+kind)
	defer span.End()

	report := ImportReport{Kind: kind}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return report, crerr.Wrapf(err, "read %s csv header", kind)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		index[name] = i
	}
	for _, column := range required {
		if _, ok := index[column]; !ok {
			return report, crerr.Newf("%s csv is missing column %q", kind, column)
		}
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return report, crerr.Wrap(err, "create import worker pool")
	}
	defer pool.Release()

	var (
		workers  sync.WaitGroup
		imported atomic.Int64
		failed   atomic.Int64
		errsMu   sync.Mutex
		rowErrs  []string
	)
	collect := func(errs []error) {
		if len(errs) == 0 {
			return
		}
		failed.Add(int64(len(errs)))
		errsMu.Lock()
		defer errsMu.Unlock()
		for _, err := range errs {
			if len(rowErrs) >= maxReportedImportErrs {
				return
			}
			rowErrs = append(rowErrs, err.Error())
		}
	}
	submit := func(batch []csvRow) error {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			n, errs := handle(ctx, batch)
			imported.Add(int64(n))
			collect(errs)
		}); err != nil {
			workers.Done()
			return crerr.Wrap(err, "submit import batch")
		}
		return nil
	}

	batch := make([]csvRow, 0, s.batchSize)
	line := 1
	var submitErr error
	for ctx.Err() == nil {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			report.Rows++
			collect([]error{crerr.Wrapf(err, "line %d", line)})
			continue
		}

		report.Rows++
		batch = append(batch, csvRow{line: line, index: index, record: record})
		if len(batch) < s.batchSize {
			continue
		}
		if submitErr = submit(batch); submitErr != nil {
			break
		}
		batch = make([]csvRow, 0, s.batchSize)
	}
	if submitErr == nil && len(batch) > 0 && ctx.Err() == nil {
		submitErr = submit(batch)
	}

	workers.Wait()

	report.Imported = int(imported.Load())
	report.Failed = int(failed.Load())
	report.Errors = rowErrs

	if submitErr != nil {
		return report, submitErr
	}
	if err := ctx.Err(); err != nil {
		return report, crerr.Wrapf(err, "import %s interrupted", kind)
	}

	s.logger.InfoContext(ctx, "csv import finished",
		"kind", kind,
		"rows", report.Rows,
		"imported", report.Imported,
		"failed", report.Failed,
	)
	return report, nil
}

func playerUpsertFromRow(row csvRow) (player.UpsertInput, error) {
	name := row.get("player_name")
	if name == "" {
		return player.UpsertInput{}, crerr.Newf("line %d: player_name is empty", row.line)
	}
	abbreviation := row.get("team_abbreviation")
	if abbreviation == "" {
		return player.UpsertInput{}, crerr.Newf("line %d: team_abbreviation is empty", row.line)
	}
	seasonLabel := row.get("season")
	year := player.SeasonYear(seasonLabel)
	if year == 0 {
		return player.UpsertInput{}, crerr.Newf("line %d: invalid season %q", row.line, seasonLabel)
	}

	var parseErr error
	floatCol := func(column string) *float64 {
		v, err := parseOptionalFloat(column, row.get(column))
		if err != nil && parseErr == nil {
			parseErr = crerr.Wrapf(err, "line %d", row.line)
		}
		return v
	}
	intCol := func(column string) *int {
		v := floatCol(column)
		if v == nil {
			return nil
		}
		out := int(*v)
		return &out
	}

	age := intCol("age")
	height := floatCol("player_height")
	weight := floatCol("player_weight")
	gp := intCol("gp")
	if gp == nil {
		gp = intCol("games_played")
	}
	season := &player.Season{
		Season:      seasonLabel,
		Year:        year,
		Age:         age,
		Height:      height,
		Weight:      weight,
		GamesPlayed: gp,
		Pts:         floatCol("pts"),
		Reb:         floatCol("reb"),
		Ast:         floatCol("ast"),
		NetRating:   floatCol("net_rating"),
		OrebPct:     floatCol("oreb_pct"),
		DrebPct:     floatCol("dreb_pct"),
		UsgPct:      floatCol("usg_pct"),
		TsPct:       floatCol("ts_pct"),
		AstPct:      floatCol("ast_pct"),
	}
	if parseErr != nil {
		return player.UpsertInput{}, parseErr
	}

	teamName := row.get("team_name")
	if teamName == "" {
		teamName = abbreviation
	}

	return player.UpsertInput{
		Player: player.Player{
			Name:        name,
			Age:         age,
			Height:      height,
			Weight:      weight,
			College:     row.get("college"),
			Country:     row.get("country"),
			DraftYear:   row.get("draft_year"),
			DraftRound:  row.get("draft_round"),
			DraftNumber: row.get("draft_number"),
		},
		TeamAbbreviation: abbreviation,
		TeamName:         teamName,
		Season:           season,
	}, nil
}

func franchiseRecordFromRow(row csvRow) (franchise.Record, error) {
	name := row.get("franchise")
	if name == "" {
		return franchise.Record{}, crerr.Newf("line %d: franchise is empty", row.line)
	}

	var parseErr error
	intCol := func(column string) *int {
		v, err := parseOptionalInt(column, row.get(column))
		if err != nil && parseErr == nil {
			parseErr = crerr.Wrapf(err, "line %d", row.line)
		}
		return v
	}
	yearCol := func(column string) *int {
		raw := row.get(column)
		if year := player.SeasonYear(raw); year != 0 {
			return &year
		}
		return intCol(column)
	}

	winLoss, err := parseOptionalFloat("win_loss_percentage", row.get("win_loss_percentage"))
	if err != nil {
		return franchise.Record{}, crerr.Wrapf(err, "line %d", row.line)
	}

	record := franchise.Record{
		FranchiseName:     name,
		League:            row.get("league"),
		FromYear:          yearCol("from_years"),
		ToYear:            yearCol("to_years"),
		Years:             intCol("number_of_years"),
		Games:             intCol("games_played"),
		Wins:              intCol("games_wins"),
		Losses:            intCol("games_losses"),
		WinLossPercentage: winLoss,
		Playoffs:          intCol("playoff_appearances"),
		DivisionTitles:    intCol("division_titles"),
		ConferenceTitles:  intCol("conference_titles"),
		Championships:     intCol("championships"),
	}
	if parseErr != nil {
		return franchise.Record{}, parseErr
	}
	return record, nil
}

func salaryFromRow(row csvRow) (player.Salary, error) {
	name := row.get("name")
	if name == "" {
		return player.Salary{}, crerr.Newf("line %d: name is empty", row.line)
	}
	season, err := parseOptionalInt("season", row.get("season"))
	if err != nil || season == nil {
		return player.Salary{}, crerr.Newf("line %d: invalid season %q", row.line, row.get("season"))
	}
	amount, err := parseOptionalFloat("salary", strings.NewReplacer("$", "", ",", "").Replace(row.get("salary")))
	if err != nil {
		return player.Salary{}, crerr.Wrapf(err, "line %d", row.line)
	}

	out := player.Salary{
		PlayerName: name,
		Season:     *season,
		Position:   row.get("position"),
		Team:       row.get("team"),
	}
	if amount != nil {
		out.Amount = *amount
	}
	return out, nil
}
