package services

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nbadviser/nbadviser/internal/models"
)

// Adviser runs every registered strategy against one set of runtime
// parameters and assembles the combined report. A failing strategy
// never aborts the run; its error is recorded and the remaining
// strategies still execute.
type Adviser struct {
	registry *Registry
	live     Strategy
	logger   *logrus.Logger
}

// NewAdviser wires the adviser with its registry and the dedicated
// live-games strategy used by the side channel.
func NewAdviser(registry *Registry, live Strategy, logger *logrus.Logger) *Adviser {
	return &Adviser{
		registry: registry,
		live:     live,
		logger:   logger,
	}
}

// GetRecommendations executes all registered strategies in
// registration order. It returns the possibly partial recommendations
// together with one StrategyError per failed strategy; presenting the
// errors is the caller's job.
func (a *Adviser) GetRecommendations(ctx context.Context, params models.Params) (models.Recommendations, []models.StrategyError) {
	runLogger := a.logger.WithField("run_id", uuid.NewString())

	recommendations := models.Recommendations{Params: params.Clone()}
	var errs []models.StrategyError

	for _, strategy := range a.registry.Strategies() {
		label := strategy.Title()
		rec, stack, err := a.executeStrategy(ctx, strategy, params)
		if err != nil {
			runLogger.WithError(err).WithField("strategy", label).Warn("Strategy failed")
			errs = append(errs, models.StrategyError{
				Label: label,
				Err:   err,
				Stack: stack,
			})
			continue
		}
		recommendations.Append(rec)
	}

	runLogger.WithFields(logrus.Fields{
		"succeeded": len(recommendations.Items),
		"failed":    len(errs),
	}).Info("Adviser run complete")

	return recommendations, errs
}

// GetLiveGamesOrNone runs the live-games lookup. This path is
// best-effort: any failure is swallowed and indistinguishable from
// "no live games".
func (a *Adviser) GetLiveGamesOrNone(ctx context.Context, params models.Params) *models.Recommendation {
	rec, _, err := a.executeStrategy(ctx, a.live, params)
	if err != nil {
		a.logger.WithError(err).Debug("Live games lookup failed")
		return nil
	}
	if len(rec.Games) == 0 {
		return nil
	}
	return &rec
}

// executeStrategy isolates one strategy invocation, converting a panic
// into an error carrying the panic-site stack. For plain errors the
// stack records where the adviser classified the failure.
func (a *Adviser) executeStrategy(ctx context.Context, strategy Strategy, params models.Params) (rec models.Recommendation, stack string, err error) {
	defer func() {
		if r := recover(); r != nil {
			stack = string(debug.Stack())
			err = fmt.Errorf("strategy panicked: %v", r)
		}
	}()

	rec, err = strategy.Execute(ctx, params)
	if err != nil {
		stack = string(debug.Stack())
	}
	return rec, stack, err
}
