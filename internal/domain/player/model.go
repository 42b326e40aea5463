package player

import (
	"fmt"
	"strings"
)

// Player is an athlete profile. Name is the natural key.
type Player struct {
	ID          int64
	Name        string
	Age         *int
	Height      *float64
	Weight      *float64
	College     string
	Country     string
	DraftYear   string
	DraftRound  string
	DraftNumber string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}

// Season is one player's statistical record for one season.
type Season struct {
	ID               int64
	PlayerID         int64
	TeamID           *int64
	TeamAbbreviation string
	Season           string
	Year             int
	Age              *int
	Height           *float64
	Weight           *float64
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

// SeasonWithSalary is a season line enriched with the salary earned in its
// starting year, zero when no salary row exists.
type SeasonWithSalary struct {
	Season
	College string
	Salary  float64
}

// Detail is the full profile view of a player.
type Detail struct {
	Player  Player
	Seasons []SeasonWithSalary
}

// Summary is one row of the player directory.
type Summary struct {
	Name              string
	TeamAbbreviations []string
	Seasons           []string
}

// SearchHit groups a player's seasons by the team they were played for.
type SearchHit struct {
	Name             string
	TeamAbbreviation string
	Seasons          []string
}

// Comparison carries career averages used by the compare view.
type Comparison struct {
	Name              string
	TeamAbbreviations []string
	Pts               *float64
	Reb               *float64
	Ast               *float64
	NetRating         *float64
	Seasons           []string
	DraftYear         string
	DraftRound        string
	DraftNumber       string
}

// Salary is one contract year of a player.
type Salary struct {
	PlayerName string
	Season     int
	Amount     float64
	Position   string
	Team       string
}

// SeasonYear returns the starting calendar year of a season label such as
// "2019-20". Zero is returned when the label does not start with a year.
func SeasonYear(season string) int {
	season = strings.TrimSpace(season)
	if len(season) < 4 {
		return 0
	}
	year := 0
	for _, c := range season[:4] {
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}
