package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/nba-stats/internal/domain/franchise"
	"github.com/riskibarqy/nba-stats/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, abbreviation string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	abbreviation = strings.TrimSpace(abbreviation)
	if abbreviation == "" {
		return team.Team{}, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByAbbreviation(ctx, abbreviation)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team not found: %s", ErrNotFound, abbreviation)
	}
	return item, nil
}

func (s *TeamService) ListTeamPlayers(ctx context.Context, abbreviation string) ([]team.PlayerAverage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamPlayers")
	defer span.End()

	if _, err := s.GetTeam(ctx, abbreviation); err != nil {
		return nil, err
	}

	items, err := s.teamRepo.ListPlayerAverages(ctx, strings.TrimSpace(abbreviation))
	if err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}
	return items, nil
}

func (s *TeamService) GetTeamPerformance(ctx context.Context, abbreviation string) ([]team.SeasonPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamPerformance")
	defer span.End()

	if _, err := s.GetTeam(ctx, abbreviation); err != nil {
		return nil, err
	}

	items, err := s.teamRepo.ListSeasonPerformance(ctx, strings.TrimSpace(abbreviation))
	if err != nil {
		return nil, fmt.Errorf("list team performance: %w", err)
	}
	return items, nil
}

func (s *TeamService) CompareTeams(ctx context.Context, abbreviations []string) ([]team.Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CompareTeams")
	defer span.End()

	abbreviations = trimNames(abbreviations)
	if len(abbreviations) == 0 {
		return nil, fmt.Errorf("%w: invalid team ids", ErrInvalidInput)
	}

	items, err := s.teamRepo.Compare(ctx, abbreviations)
	if err != nil {
		return nil, fmt.Errorf("compare teams: %w", err)
	}
	return items, nil
}

// CreateTeam upserts a team from a flat field map. Stats fields may use the
// canonical column names or the short labels (W, L, W/L%, ...); they need a
// franchise to attach to.
func (s *TeamService) CreateTeam(ctx context.Context, fields map[string]any) (team.UpsertResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	abbreviation := stringField(fields, "team_abbreviation", "abbreviation")
	if abbreviation == "" {
		return team.UpsertResult{}, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}

	input := team.UpsertInput{
		Team: team.Team{
			Abbreviation: abbreviation,
			Name:         stringField(fields, "team_name"),
		},
		FranchiseName: stringField(fields, "franchise", "franchise_name"),
	}
	if err := input.Team.Validate(); err != nil {
		return team.UpsertResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.Team.Name == "" {
		existing, found, err := s.teamRepo.GetByAbbreviation(ctx, abbreviation)
		if err != nil {
			return team.UpsertResult{}, fmt.Errorf("get team %q: %w", abbreviation, err)
		}
		if !found {
			return team.UpsertResult{}, fmt.Errorf("%w: team name is required for new teams", ErrInvalidInput)
		}
		input.Team.Name = existing.Name
	}

	record := franchise.Record{
		FranchiseName: input.FranchiseName,
		League:        stringField(fields, "league", "lg"),
	}
	hasStats := false
	for key, value := range fields {
		column, ok := franchise.StatColumn(key)
		if !ok || isBlankValue(value) {
			continue
		}
		if err := assignRecordField(&record, column, value); err != nil {
			return team.UpsertResult{}, err
		}
		hasStats = true
	}
	if hasStats {
		if input.FranchiseName == "" {
			return team.UpsertResult{}, fmt.Errorf("%w: franchise is required for team stats", ErrInvalidInput)
		}
		input.Record = &record
	}

	out, err := s.teamRepo.Upsert(ctx, input)
	if err != nil {
		return team.UpsertResult{}, fmt.Errorf("upsert team: %w", err)
	}
	return out, nil
}

// UpdateTeams renames the teams and/or updates their franchise records in
// one transaction. Blank values are skipped.
func (s *TeamService) UpdateTeams(ctx context.Context, abbreviations []string, data map[string]any) (team.UpdateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeams")
	defer span.End()

	abbreviations = trimNames(abbreviations)
	if len(abbreviations) == 0 || len(data) == 0 {
		return team.UpdateResult{}, fmt.Errorf("%w: no teams specified or no data provided for update", ErrInvalidInput)
	}

	var input team.UpdateInput
	stats := make(map[string]any)
	for key, value := range data {
		if isBlankValue(value) {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "team_name") {
			name := stringField(data, key)
			input.Name = &name
			continue
		}
		column, ok := franchise.StatColumn(key)
		if !ok {
			return team.UpdateResult{}, fmt.Errorf("%w: %s cannot be updated", ErrInvalidInput, key)
		}
		parsed, err := parseStatValue(column, value)
		if err != nil {
			return team.UpdateResult{}, err
		}
		stats[column] = parsed
	}

	columns := make([]string, 0, len(stats))
	for column := range stats {
		columns = append(columns, column)
	}
	slices.Sort(columns)
	for _, column := range columns {
		input.Stats = append(input.Stats, franchise.StatUpdate{Column: column, Value: stats[column]})
	}

	if input.Name == nil && len(input.Stats) == 0 {
		return team.UpdateResult{}, fmt.Errorf("%w: no update data provided", ErrInvalidInput)
	}

	out, err := s.teamRepo.Update(ctx, abbreviations, input)
	if err != nil {
		return team.UpdateResult{}, fmt.Errorf("update teams: %w", err)
	}
	return out, nil
}

func (s *TeamService) DeleteTeams(ctx context.Context, abbreviations []string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeams")
	defer span.End()

	abbreviations = trimNames(abbreviations)
	if len(abbreviations) == 0 {
		return nil, fmt.Errorf("%w: no teams specified for deletion", ErrInvalidInput)
	}

	deleted, err := s.teamRepo.DeleteByAbbreviations(ctx, abbreviations)
	if err != nil {
		return nil, fmt.Errorf("delete teams: %w", err)
	}
	return deleted, nil
}

func parseStatValue(column string, value any) (any, error) {
	if column == "win_loss_percentage" {
		v, err := parseOptionalFloat(column, value)
		if err != nil || v == nil {
			return nil, err
		}
		return *v, nil
	}
	v, err := parseOptionalInt(column, value)
	if err != nil || v == nil {
		return nil, err
	}
	return int64(*v), nil
}

func assignRecordField(record *franchise.Record, column string, value any) error {
	if column == "win_loss_percentage" {
		v, err := parseOptionalFloat(column, value)
		if err != nil {
			return err
		}
		record.WinLossPercentage = v
		return nil
	}

	v, err := parseOptionalInt(column, value)
	if err != nil {
		return err
	}
	switch column {
	case "from_year":
		record.FromYear = v
	case "to_year":
		record.ToYear = v
	case "years":
		record.Years = v
	case "games":
		record.Games = v
	case "wins":
		record.Wins = v
	case "losses":
		record.Losses = v
	case "playoffs":
		record.Playoffs = v
	case "division_titles":
		record.DivisionTitles = v
	case "conference_titles":
		record.ConferenceTitles = v
	case "championships":
		record.Championships = v
	default:
		return fmt.Errorf("%w: unknown stats field %s", ErrInvalidInput, column)
	}
	return nil
}
