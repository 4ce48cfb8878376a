package services

import (
	"errors"
	"fmt"

	"github.com/nbadviser/nbadviser/internal/models"
	"github.com/nbadviser/nbadviser/internal/providers"
)

// ErrInconsistentData marks a provider response that contradicts
// itself, e.g. a line-score row naming a team that plays in neither
// side of its game. Such rows used to be droppable provider noise; we
// fail the strategy loudly instead so the operator sees it.
var ErrInconsistentData = errors.New("inconsistent provider data")

// Scoreboard column names. Field names are a fixed contract with the
// provider; a missing one is a loud error.
const (
	colGameID         = "GAME_ID"
	colGameStatusText = "GAME_STATUS_TEXT"
	colGameStatusID   = "GAME_STATUS_ID"
	colHomeTeamID     = "HOME_TEAM_ID"
	colVisitorTeamID  = "VISITOR_TEAM_ID"
	colTeamID         = "TEAM_ID"
	colTeamCityName   = "TEAM_CITY_NAME"
	colTeamName       = "TEAM_NAME"
	colPoints         = "PTS"
	colPointsPlayer   = "PTS_PLAYER_NAME"
)

// gameSet is the normalized day: games by id plus their encounter
// order, so downstream grouping stays deterministic.
type gameSet struct {
	byID  map[string]*models.Game
	order []string
}

func newGameSet() *gameSet {
	return &gameSet{byID: make(map[string]*models.Game)}
}

func (s *gameSet) add(g *models.Game) {
	if _, ok := s.byID[g.ID]; !ok {
		s.order = append(s.order, g.ID)
	}
	s.byID[g.ID] = g
}

func (s *gameSet) get(id string) (*models.Game, bool) {
	g, ok := s.byID[id]
	return g, ok
}

// games returns all games in the order their header rows appeared.
func (s *gameSet) games() []*models.Game {
	out := make([]*models.Game, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// normalizeScoreboard turns one day's raw scoreboard into Game
// instances of the requested kind: a game-header pass constructs one
// game per row with placeholder teams, then a line-score pass fills
// team names and scores.
func normalizeScoreboard(kind models.GameKind, scoreboard *providers.Scoreboard) (*gameSet, error) {
	games, err := collectGames(kind, scoreboard)
	if err != nil {
		return nil, err
	}
	if err := fillNamesAndScores(games, scoreboard); err != nil {
		return nil, err
	}
	return games, nil
}

func collectGames(kind models.GameKind, scoreboard *providers.Scoreboard) (*gameSet, error) {
	header, err := scoreboard.GameHeader()
	if err != nil {
		return nil, err
	}

	games := newGameSet()
	for _, row := range header.Rows() {
		gameID, err := row.String(colGameID)
		if err != nil {
			return nil, err
		}
		statusText, err := row.String(colGameStatusText)
		if err != nil {
			return nil, err
		}
		statusID, err := row.Int(colGameStatusID)
		if err != nil {
			return nil, err
		}
		homeID, err := row.Int(colHomeTeamID)
		if err != nil {
			return nil, err
		}
		visitorID, err := row.Int(colVisitorTeamID)
		if err != nil {
			return nil, err
		}

		games.add(&models.Game{
			ID:       gameID,
			Status:   statusText,
			StatusID: statusID,
			Kind:     kind,
			Teams: models.TeamsPair{
				Home:    models.NewTeam(homeID),
				Visitor: models.NewTeam(visitorID),
			},
		})
	}
	return games, nil
}

func fillNamesAndScores(games *gameSet, scoreboard *providers.Scoreboard) error {
	lineScore, err := scoreboard.LineScore()
	if err != nil {
		return err
	}

	for _, row := range lineScore.Rows() {
		gameID, err := row.String(colGameID)
		if err != nil {
			return err
		}
		game, ok := games.get(gameID)
		if !ok {
			return fmt.Errorf("%w: line score references unknown game %s",
				ErrInconsistentData, gameID)
		}

		teamID, err := row.Int(colTeamID)
		if err != nil {
			return err
		}
		team, ok := game.Teams.ByID(teamID)
		if !ok {
			return fmt.Errorf("%w: team %d plays in neither side of game %s",
				ErrInconsistentData, teamID, gameID)
		}

		city, err := row.String(colTeamCityName)
		if err != nil {
			return err
		}
		nickname, err := row.String(colTeamName)
		if err != nil {
			return err
		}
		points, err := row.Float(colPoints)
		if err != nil {
			return err
		}

		team.Name = fmt.Sprintf("%s %s", city, nickname)
		team.Score = points
	}
	return nil
}
