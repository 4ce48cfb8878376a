package services

import (
	"context"

	"github.com/nbadviser/nbadviser/internal/models"
	"github.com/nbadviser/nbadviser/internal/providers"
)

// ScoreboardProvider fetches one day's raw scoreboard data. Satisfied
// by providers.ScoreboardClient; tests substitute fixtures.
type ScoreboardProvider interface {
	Scoreboard(ctx context.Context, gameDate string) (*providers.Scoreboard, error)
}

// Strategy is one pluggable rule that scans a day's normalized games
// and selects a subset to recommend. Execute must surface every
// failure as a returned error so the adviser can classify it; only the
// adviser decides what a failure means for the run.
type Strategy interface {
	// Title is the fixed, human-readable category label.
	Title() string
	// GetRawData fetches the day's scoreboard for the resolved date.
	GetRawData(ctx context.Context, gameDate string) (*providers.Scoreboard, error)
	// Execute runs the selection algorithm for the given parameters.
	Execute(ctx context.Context, params models.Params) (models.Recommendation, error)
}

// Registry is the ordered set of strategies an adviser runs. It is
// built once at startup by listing the concrete strategies and is
// read-only afterwards; iteration order is registration order, which
// fixes presentation order.
type Registry struct {
	strategies []Strategy
}

// NewRegistry builds a registry from the given strategies, preserving
// their order.
func NewRegistry(strategies ...Strategy) *Registry {
	return &Registry{strategies: strategies}
}

// Strategies returns the registered strategies in registration order.
func (r *Registry) Strategies() []Strategy {
	return r.strategies
}
