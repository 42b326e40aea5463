package usecase

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/riskibarqy/nba-stats/internal/domain/player"
	"github.com/sourcegraph/conc/pool"
)

const (
	DefaultSearchLimit = 10
	MaxListLimit       = 1000
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// CreatePlayerInput is a player profile plus the team and, when Season is
// set, the season line to upsert with it.
type CreatePlayerInput struct {
	PlayerName       string
	TeamAbbreviation string
	TeamName         string
	Season           string
	Age              *int
	Height           *float64
	Weight           *float64
	College          string
	Country          string
	DraftYear        string
	DraftRound       string
	DraftNumber      string
	GamesPlayed      *int
	Pts              *float64
	Reb              *float64
	Ast              *float64
	NetRating        *float64
	OrebPct          *float64
	DrebPct          *float64
	UsgPct           *float64
	TsPct            *float64
	AstPct           *float64
}

func (s *PlayerService) ListPlayers(ctx context.Context, search string, limit int) ([]player.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	if limit < 0 || limit > MaxListLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxListLimit)
	}

	items, err := s.playerRepo.List(ctx, strings.TrimSpace(search), limit)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) SearchPlayers(ctx context.Context, query string, limit int) ([]player.SearchHit, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SearchPlayers")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return []player.SearchHit{}, nil
	}
	if limit < 0 || limit > MaxListLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxListLimit)
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	items, err := s.playerRepo.SearchByTeam(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return items, nil
}

// GetPlayer returns the profile with every season, newest first, each carrying
// the salary of its starting year.
func (s *PlayerService) GetPlayer(ctx context.Context, name string) (player.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	profile, err := s.getProfile(ctx, name)
	if err != nil {
		return player.Detail{}, err
	}

	var (
		seasons  []player.Season
		salaries []player.Salary
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		rows, err := s.playerRepo.ListSeasons(ctx, profile.ID)
		if err != nil {
			return fmt.Errorf("list player seasons: %w", err)
		}
		seasons = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.playerRepo.ListSalaries(ctx, profile.Name)
		if err != nil {
			return fmt.Errorf("list player salaries: %w", err)
		}
		salaries = rows
		return nil
	})
	if err := p.Wait(); err != nil {
		return player.Detail{}, err
	}

	salaryByYear := make(map[int]float64, len(salaries))
	for _, item := range salaries {
		salaryByYear[item.Season] = item.Amount
	}

	sort.SliceStable(seasons, func(i, j int) bool {
		return seasons[i].Season > seasons[j].Season
	})

	out := player.Detail{
		Player:  profile,
		Seasons: make([]player.SeasonWithSalary, 0, len(seasons)),
	}
	for _, item := range seasons {
		year := item.Year
		if year == 0 {
			year = player.SeasonYear(item.Season)
		}
		out.Seasons = append(out.Seasons, player.SeasonWithSalary{
			Season:  item,
			College: profile.College,
			Salary:  salaryByYear[year],
		})
	}
	return out, nil
}

// GetPlayerStats returns season lines oldest first for charting.
func (s *PlayerService) GetPlayerStats(ctx context.Context, name string) ([]player.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerStats")
	defer span.End()

	profile, err := s.getProfile(ctx, name)
	if err != nil {
		return nil, err
	}

	seasons, err := s.playerRepo.ListSeasons(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list player seasons: %w", err)
	}

	sort.SliceStable(seasons, func(i, j int) bool {
		return seasons[i].Season < seasons[j].Season
	})
	return seasons, nil
}

func (s *PlayerService) ComparePlayers(ctx context.Context, names []string) ([]player.Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ComparePlayers")
	defer span.End()

	names = trimNames(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: player ids are required", ErrInvalidInput)
	}

	items, err := s.playerRepo.Compare(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("compare players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	input.PlayerName = strings.TrimSpace(input.PlayerName)
	input.TeamAbbreviation = strings.TrimSpace(input.TeamAbbreviation)
	input.TeamName = strings.TrimSpace(input.TeamName)
	input.Season = strings.TrimSpace(input.Season)

	if input.PlayerName == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.TeamAbbreviation == "" {
		return player.Player{}, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}
	if input.Season != "" && player.SeasonYear(input.Season) == 0 {
		return player.Player{}, fmt.Errorf("%w: season must look like 2019-20", ErrInvalidInput)
	}

	if input.TeamName == "" {
		name, exists, err := s.playerRepo.TeamNameByAbbreviation(ctx, input.TeamAbbreviation)
		if err != nil {
			return player.Player{}, fmt.Errorf("get team name: %w", err)
		}
		if !exists {
			return player.Player{}, fmt.Errorf("%w: team name is required for new teams", ErrInvalidInput)
		}
		input.TeamName = name
	}

	profile := player.Player{
		Name:        input.PlayerName,
		Age:         input.Age,
		Height:      input.Height,
		Weight:      input.Weight,
		College:     input.College,
		Country:     input.Country,
		DraftYear:   input.DraftYear,
		DraftRound:  input.DraftRound,
		DraftNumber: input.DraftNumber,
	}
	if err := profile.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	upsert := player.UpsertInput{
		Player:           profile,
		TeamAbbreviation: input.TeamAbbreviation,
		TeamName:         input.TeamName,
	}
	if input.Season != "" {
		upsert.Season = &player.Season{
			Season:      input.Season,
			Year:        player.SeasonYear(input.Season),
			Age:         input.Age,
			Height:      input.Height,
			Weight:      input.Weight,
			GamesPlayed: input.GamesPlayed,
			Pts:         input.Pts,
			Reb:         input.Reb,
			Ast:         input.Ast,
			NetRating:   input.NetRating,
			OrebPct:     input.OrebPct,
			DrebPct:     input.DrebPct,
			UsgPct:      input.UsgPct,
			TsPct:       input.TsPct,
			AstPct:      input.AstPct,
		}
	}

	out, err := s.playerRepo.Upsert(ctx, upsert)
	if err != nil {
		return player.Player{}, fmt.Errorf("upsert player: %w", err)
	}
	return out, nil
}

// UpdatePlayers applies data to every season of the named players. Keys must
// be player_seasons columns; "gp" is accepted for games_played.
func (s *PlayerService) UpdatePlayers(ctx context.Context, names []string, data map[string]any) ([]player.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayers")
	defer span.End()

	names = trimNames(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no players specified for update", ErrInvalidInput)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no update data provided", ErrInvalidInput)
	}

	values := make(map[string]any, len(data))
	for key, value := range data {
		column := strings.ToLower(strings.TrimSpace(key))
		if column == "gp" {
			column = "games_played"
		}
		if _, ok := player.SeasonColumns[column]; !ok {
			return nil, fmt.Errorf("%w: %s cannot be updated", ErrInvalidInput, key)
		}
		parsed, err := parseSeasonValue(column, value)
		if err != nil {
			return nil, err
		}
		values[column] = parsed
	}
	if season, ok := values["season"].(string); ok {
		if _, hasYear := values["year"]; !hasYear {
			values["year"] = int64(player.SeasonYear(season))
		}
	}

	columns := make([]string, 0, len(values))
	for column := range values {
		columns = append(columns, column)
	}
	slices.Sort(columns)

	updates := make([]player.SeasonUpdate, 0, len(columns))
	for _, column := range columns {
		updates = append(updates, player.SeasonUpdate{Column: column, Value: values[column]})
	}

	rows, err := s.playerRepo.UpdateSeasons(ctx, names, updates)
	if err != nil {
		return nil, fmt.Errorf("update player seasons: %w", err)
	}
	return rows, nil
}

func (s *PlayerService) DeletePlayers(ctx context.Context, names []string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayers")
	defer span.End()

	names = trimNames(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no players specified for deletion", ErrInvalidInput)
	}

	deleted, err := s.playerRepo.DeleteByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("delete players: %w", err)
	}
	return deleted, nil
}

func (s *PlayerService) getProfile(ctx context.Context, name string) (player.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	profile, exists, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player not found: %s", ErrNotFound, name)
	}
	return profile, nil
}

func parseSeasonValue(column string, value any) (any, error) {
	switch column {
	case "season":
		season, ok := value.(string)
		season = strings.TrimSpace(season)
		if !ok || player.SeasonYear(season) == 0 {
			return nil, fmt.Errorf("%w: season must look like 2019-20", ErrInvalidInput)
		}
		return season, nil
	case "year", "age", "games_played":
		v, err := parseOptionalInt(column, value)
		if err != nil || v == nil {
			return nil, err
		}
		return int64(*v), nil
	default:
		v, err := parseOptionalFloat(column, value)
		if err != nil || v == nil {
			return nil, err
		}
		return *v, nil
	}
}
