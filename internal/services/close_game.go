package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/nbadviser/nbadviser/internal/models"
	"github.com/nbadviser/nbadviser/internal/providers"
)

// CloseGameStrategy defaults.
const (
	// DefaultAllowedGap is the largest final-score gap a game may have
	// and still count as close.
	DefaultAllowedGap = 6
	// DefaultTopGames bounds how many distinct gap values are selected,
	// not how many games. A tie at the smallest gap keeps every game
	// sharing it.
	DefaultTopGames = 2
)

// CloseGameStrategy recommends finished games whose final score gap
// lands in the smallest distinct gap buckets of the day, subject to a
// maximum allowed gap.
type CloseGameStrategy struct {
	provider   ScoreboardProvider
	gameDay    *GameDay
	allowedGap int
	topGames   int
	logger     *logrus.Entry
}

// NewCloseGameStrategy builds the strategy. allowedGap and topGames
// fall back to defaults when non-positive.
func NewCloseGameStrategy(provider ScoreboardProvider, gameDay *GameDay, allowedGap, topGames int, logger *logrus.Logger) *CloseGameStrategy {
	if allowedGap <= 0 {
		allowedGap = DefaultAllowedGap
	}
	if topGames <= 0 {
		topGames = DefaultTopGames
	}
	return &CloseGameStrategy{
		provider:   provider,
		gameDay:    gameDay,
		allowedGap: allowedGap,
		topGames:   topGames,
		logger:     logger.WithField("strategy", "close_game"),
	}
}

// Title implements Strategy.
func (s *CloseGameStrategy) Title() string {
	return "Tight finish 🔥"
}

// GetRawData implements Strategy. Memoization by date lives in the
// provider, so strategies asking for the same day share one fetch.
func (s *CloseGameStrategy) GetRawData(ctx context.Context, gameDate string) (*providers.Scoreboard, error) {
	return s.provider.Scoreboard(ctx, gameDate)
}

// Execute implements Strategy.
func (s *CloseGameStrategy) Execute(ctx context.Context, params models.Params) (models.Recommendation, error) {
	rec := models.Recommendation{Title: s.Title()}

	gameDate := s.gameDay.Resolve(params)
	scoreboard, err := s.GetRawData(ctx, gameDate)
	if err != nil {
		return rec, err
	}

	games, err := normalizeScoreboard(models.KindBase, scoreboard)
	if err != nil {
		return rec, err
	}

	// Bucket finished games by integer score gap, keeping encounter
	// order inside each bucket.
	buckets := make(map[int][]*models.Game)
	var gaps []int
	for _, game := range games.games() {
		if game.StatusID != models.GameStatusFinal {
			continue
		}
		scoreGap := game.ScoreGap()
		if math.IsNaN(scoreGap) {
			// A finished game with no line score rows never got its
			// scores filled in; its gap is meaningless.
			return rec, fmt.Errorf("%w: finished game %s has no scores", ErrInconsistentData, game.ID)
		}
		gap := int(scoreGap)
		if _, seen := buckets[gap]; !seen {
			gaps = append(gaps, gap)
		}
		buckets[gap] = append(buckets[gap], game)
	}

	sort.Ints(gaps)
	if len(gaps) > s.topGames {
		gaps = gaps[:s.topGames]
	}

	var closeGames []*models.Game
	for _, gap := range gaps {
		if gap > s.allowedGap {
			continue
		}
		closeGames = append(closeGames, buckets[gap]...)
	}

	s.logger.WithFields(logrus.Fields{
		"game_date": gameDate,
		"selected":  len(closeGames),
	}).Debug("Close game selection complete")

	rec.Games = closeGames
	return rec, nil
}
