package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/nbadviser/nbadviser/internal/models"
	"github.com/nbadviser/nbadviser/internal/providers"
)

// LiveGamesStrategy selects the games currently in progress, rendered
// with their running score. It is never registered with the adviser's
// registry; it only serves the best-effort live lookup side channel.
type LiveGamesStrategy struct {
	provider ScoreboardProvider
	gameDay  *GameDay
	logger   *logrus.Entry
}

// NewLiveGamesStrategy builds the strategy.
func NewLiveGamesStrategy(provider ScoreboardProvider, gameDay *GameDay, logger *logrus.Logger) *LiveGamesStrategy {
	return &LiveGamesStrategy{
		provider: provider,
		gameDay:  gameDay,
		logger:   logger.WithField("strategy", "live_games"),
	}
}

// Title implements Strategy.
func (s *LiveGamesStrategy) Title() string {
	return "Live right now 🏀"
}

// GetRawData implements Strategy.
func (s *LiveGamesStrategy) GetRawData(ctx context.Context, gameDate string) (*providers.Scoreboard, error) {
	return s.provider.Scoreboard(ctx, gameDate)
}

// Execute implements Strategy.
func (s *LiveGamesStrategy) Execute(ctx context.Context, params models.Params) (models.Recommendation, error) {
	rec := models.Recommendation{Title: s.Title()}

	gameDate := s.gameDay.Resolve(params)
	scoreboard, err := s.GetRawData(ctx, gameDate)
	if err != nil {
		return rec, err
	}

	games, err := normalizeScoreboard(models.KindLiveScore, scoreboard)
	if err != nil {
		return rec, err
	}

	var live []*models.Game
	for _, game := range games.games() {
		if game.StatusID == models.GameStatusLive {
			live = append(live, game)
		}
	}

	rec.Games = live
	return rec, nil
}
