package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/nbadviser/nbadviser/internal/providers"
)

// Test doubles and scoreboard fixtures shared by the strategy tests.
// Rows use float64 for numeric values, matching what encoding/json
// produces when the real client decodes the provider response.

type headerRow struct {
	gameID     string
	statusText string
	statusID   int
	homeID     int
	visitorID  int
}

type scoreRow struct {
	gameID string
	teamID int
	city   string
	name   string
	points float64
}

type leaderRow struct {
	gameID string
	teamID int
	player string
	points float64
}

func fixtureScoreboard(headers []headerRow, scores []scoreRow, leaders []leaderRow) *providers.Scoreboard {
	gameHeader := providers.ResultSet{
		Name:    providers.ResultSetGameHeader,
		Headers: []string{"GAME_ID", "GAME_STATUS_TEXT", "GAME_STATUS_ID", "HOME_TEAM_ID", "VISITOR_TEAM_ID"},
	}
	for _, h := range headers {
		gameHeader.RowSet = append(gameHeader.RowSet, []interface{}{
			h.gameID, h.statusText, float64(h.statusID), float64(h.homeID), float64(h.visitorID),
		})
	}

	lineScore := providers.ResultSet{
		Name:    providers.ResultSetLineScore,
		Headers: []string{"GAME_ID", "TEAM_ID", "TEAM_CITY_NAME", "TEAM_NAME", "PTS"},
	}
	for _, s := range scores {
		lineScore.RowSet = append(lineScore.RowSet, []interface{}{
			s.gameID, float64(s.teamID), s.city, s.name, s.points,
		})
	}

	teamLeaders := providers.ResultSet{
		Name:    providers.ResultSetTeamLeaders,
		Headers: []string{"GAME_ID", "TEAM_ID", "PTS_PLAYER_NAME", "PTS"},
	}
	for _, l := range leaders {
		teamLeaders.RowSet = append(teamLeaders.RowSet, []interface{}{
			l.gameID, float64(l.teamID), l.player, l.points,
		})
	}

	return &providers.Scoreboard{
		Resource:   "scoreboardV2",
		ResultSets: []providers.ResultSet{gameHeader, lineScore, teamLeaders},
	}
}

// finishedGame builds one finished game with its two score rows.
func finishedGame(gameID string, homeID, visitorID int, homeScore, visitorScore float64) ([]headerRow, []scoreRow) {
	return []headerRow{
			{gameID: gameID, statusText: "Final", statusID: 3, homeID: homeID, visitorID: visitorID},
		}, []scoreRow{
			{gameID: gameID, teamID: homeID, city: "Home City", name: "Team", points: homeScore},
			{gameID: gameID, teamID: visitorID, city: "Visitor City", name: "Team", points: visitorScore},
		}
}

// fakeProvider serves canned scoreboards keyed by date, or a fixed
// error.
type fakeProvider struct {
	scoreboards map[string]*providers.Scoreboard
	err         error
	calls       int
}

func (f *fakeProvider) Scoreboard(_ context.Context, gameDate string) (*providers.Scoreboard, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	sb, ok := f.scoreboards[gameDate]
	if !ok {
		return nil, errors.New("no fixture for date " + gameDate)
	}
	return sb, nil
}

func singleDateProvider(date string, sb *providers.Scoreboard) *fakeProvider {
	return &fakeProvider{scoreboards: map[string]*providers.Scoreboard{date: sb}}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func testGameDay() *GameDay {
	gameDay, err := NewGameDay(DefaultLeagueTimezone, DefaultCutoffHour)
	if err != nil {
		panic(err)
	}
	return gameDay
}
