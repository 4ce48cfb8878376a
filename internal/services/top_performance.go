package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/nbadviser/nbadviser/internal/models"
	"github.com/nbadviser/nbadviser/internal/providers"
)

// DefaultPerformanceThreshold is the point total a single player must
// reach for their game to qualify.
const DefaultPerformanceThreshold = 37

// TopPerformanceStrategy recommends every game in which at least one
// player's point total met the threshold. A game qualifies once no
// matter how many of its players cleared the bar; all qualifying
// performer lines are attached to it.
type TopPerformanceStrategy struct {
	provider  ScoreboardProvider
	gameDay   *GameDay
	threshold int
	logger    *logrus.Entry
}

// NewTopPerformanceStrategy builds the strategy. threshold falls back
// to the default when non-positive.
func NewTopPerformanceStrategy(provider ScoreboardProvider, gameDay *GameDay, threshold int, logger *logrus.Logger) *TopPerformanceStrategy {
	if threshold <= 0 {
		threshold = DefaultPerformanceThreshold
	}
	return &TopPerformanceStrategy{
		provider:  provider,
		gameDay:   gameDay,
		threshold: threshold,
		logger:    logger.WithField("strategy", "top_performance"),
	}
}

// Title implements Strategy.
func (s *TopPerformanceStrategy) Title() string {
	return "Standout performances ⛹️"
}

// GetRawData implements Strategy.
func (s *TopPerformanceStrategy) GetRawData(ctx context.Context, gameDate string) (*providers.Scoreboard, error) {
	return s.provider.Scoreboard(ctx, gameDate)
}

// Execute implements Strategy.
func (s *TopPerformanceStrategy) Execute(ctx context.Context, params models.Params) (models.Recommendation, error) {
	rec := models.Recommendation{Title: s.Title()}

	gameDate := s.gameDay.Resolve(params)
	scoreboard, err := s.GetRawData(ctx, gameDate)
	if err != nil {
		return rec, err
	}

	games, err := normalizeScoreboard(models.KindTopPerformance, scoreboard)
	if err != nil {
		return rec, err
	}

	leaders, err := scoreboard.TeamLeaders()
	if err != nil {
		return rec, err
	}

	// Qualifying games in first-encountered order, each exactly once.
	seen := make(map[string]bool)
	var selected []*models.Game
	for _, row := range leaders.Rows() {
		points, err := row.Int(colPoints)
		if err != nil {
			return rec, err
		}
		if points < s.threshold {
			continue
		}

		gameID, err := row.String(colGameID)
		if err != nil {
			return rec, err
		}
		game, ok := games.get(gameID)
		if !ok {
			return rec, &inconsistentLeaderError{gameID: gameID}
		}

		playerName, err := row.String(colPointsPlayer)
		if err != nil {
			return rec, err
		}
		game.AddPerformer(playerName, points)

		if !seen[gameID] {
			seen[gameID] = true
			selected = append(selected, game)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"game_date": gameDate,
		"selected":  len(selected),
	}).Debug("Top performance selection complete")

	rec.Games = selected
	return rec, nil
}

type inconsistentLeaderError struct {
	gameID string
}

func (e *inconsistentLeaderError) Error() string {
	return "inconsistent provider data: team leaders reference unknown game " + e.gameID
}

func (e *inconsistentLeaderError) Unwrap() error {
	return ErrInconsistentData
}
