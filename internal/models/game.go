package models

import (
	"fmt"
	"math"
	"strings"
)

// Game status ids as reported by the scoreboard endpoint.
const (
	GameStatusScheduled = 1
	GameStatusLive      = 2
	GameStatusFinal     = 3
)

// UndefinedTeamName is the placeholder used until the line-score pass
// resolves a team's real name.
const UndefinedTeamName = "Undefined"

// Team is one side of a game. Identity is ID; Name and Score are filled
// in by normalization from the provider's line-score rows.
type Team struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// NewTeam returns a placeholder team carrying only its id.
func NewTeam(id int) Team {
	return Team{ID: id, Name: UndefinedTeamName, Score: math.NaN()}
}

// TeamsPair pairs the two teams of a game.
type TeamsPair struct {
	Home    Team `json:"home"`
	Visitor Team `json:"visitor"`
}

// ByID returns the side whose team id matches, or false when neither
// side matches.
func (p *TeamsPair) ByID(id int) (*Team, bool) {
	switch id {
	case p.Home.ID:
		return &p.Home, true
	case p.Visitor.ID:
		return &p.Visitor, true
	}
	return nil, false
}

// GameKind selects the description rule for a game.
type GameKind int

const (
	// KindBase renders only the matchup.
	KindBase GameKind = iota
	// KindTopPerformance renders the standout performer lines ahead of
	// the matchup.
	KindTopPerformance
	// KindLiveScore renders the current score and status after the
	// matchup.
	KindLiveScore
)

// Game is one scoreboard game. Exactly one is created per game-header
// row and it is read-only once normalization has filled the scores and
// performer lines.
type Game struct {
	ID            string    `json:"game_id"`
	Status        string    `json:"status"`
	StatusID      int       `json:"status_id"`
	Kind          GameKind  `json:"-"`
	Teams         TeamsPair `json:"teams"`
	TopPerformers []string  `json:"top_performers,omitempty"`
}

// ScoreGap is the absolute difference between the two final scores.
// Only meaningful for finished games.
func (g *Game) ScoreGap() float64 {
	return math.Abs(g.Teams.Home.Score - g.Teams.Visitor.Score)
}

// AddPerformer appends one formatted standout-performer line.
func (g *Game) AddPerformer(playerName string, points int) {
	g.TopPerformers = append(g.TopPerformers,
		fmt.Sprintf("%s <b>%d</b> pts", playerName, points))
}

// Description renders the one-line HTML summary for this game,
// selected by kind.
func (g *Game) Description() string {
	switch g.Kind {
	case KindTopPerformance:
		return fmt.Sprintf("%s (<i>%s - %s</i>)",
			strings.Join(g.TopPerformers, ", "),
			g.Teams.Visitor.Name, g.Teams.Home.Name)
	case KindLiveScore:
		return fmt.Sprintf("%s - %s (%.0f-%.0f, %s)",
			g.Teams.Visitor.Name, g.Teams.Home.Name,
			g.Teams.Visitor.Score, g.Teams.Home.Score, g.Status)
	default:
		return fmt.Sprintf("%s - %s", g.Teams.Visitor.Name, g.Teams.Home.Name)
	}
}
