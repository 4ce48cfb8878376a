package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbadviser/nbadviser/internal/models"
	"github.com/nbadviser/nbadviser/internal/providers"
)

// stubStrategy is a scripted strategy for adviser tests.
type stubStrategy struct {
	title  string
	rec    models.Recommendation
	err    error
	panics bool
}

func (s *stubStrategy) Title() string { return s.title }

func (s *stubStrategy) GetRawData(context.Context, string) (*providers.Scoreboard, error) {
	return nil, nil
}

func (s *stubStrategy) Execute(context.Context, models.Params) (models.Recommendation, error) {
	if s.panics {
		panic("scripted panic")
	}
	return s.rec, s.err
}

func okStrategy(title string) *stubStrategy {
	return &stubStrategy{
		title: title,
		rec: models.Recommendation{
			Title: title,
			Games: []*models.Game{{ID: title + "-game"}},
		},
	}
}

func TestGetRecommendationsIsolatesSingleFailure(t *testing.T) {
	failing := &stubStrategy{title: "Broken", err: errors.New("provider exploded")}
	adviser := NewAdviser(
		NewRegistry(okStrategy("First"), failing, okStrategy("Third")),
		okStrategy("Live"),
		testLogger(),
	)

	recs, errs := adviser.GetRecommendations(context.Background(), models.NewParams())

	require.Len(t, errs, 1)
	assert.Equal(t, "Broken", errs[0].Label)
	assert.ErrorContains(t, errs[0].Err, "provider exploded")
	assert.NotEmpty(t, errs[0].Stack)

	// Strategies after the failure still ran, in registration order.
	require.Len(t, recs.Items, 2)
	assert.Equal(t, "First", recs.Items[0].Title)
	assert.Equal(t, "Third", recs.Items[1].Title)
}

func TestGetRecommendationsRecoversPanic(t *testing.T) {
	adviser := NewAdviser(
		NewRegistry(&stubStrategy{title: "Panicky", panics: true}, okStrategy("Second")),
		okStrategy("Live"),
		testLogger(),
	)

	recs, errs := adviser.GetRecommendations(context.Background(), models.NewParams())

	require.Len(t, errs, 1)
	assert.Equal(t, "Panicky", errs[0].Label)
	assert.ErrorContains(t, errs[0].Err, "scripted panic")
	assert.NotEmpty(t, errs[0].Stack)
	require.Len(t, recs.Items, 1)
}

func TestGetRecommendationsAllFail(t *testing.T) {
	adviser := NewAdviser(
		NewRegistry(
			&stubStrategy{title: "One", err: errors.New("down")},
			&stubStrategy{title: "Two", err: errors.New("down")},
		),
		okStrategy("Live"),
		testLogger(),
	)

	recs, errs := adviser.GetRecommendations(context.Background(), models.NewParams())
	assert.Len(t, errs, 2)
	assert.True(t, recs.Empty())
}

func TestGetRecommendationsSnapshotsParams(t *testing.T) {
	adviser := NewAdviser(NewRegistry(), okStrategy("Live"), testLogger())

	params := models.NewParams()
	params.Set(models.ParamGamesDate, "2022-03-27")
	recs, _ := adviser.GetRecommendations(context.Background(), params)

	// Mutating the caller's params after the run must not change the
	// container's view of the run.
	params.Set(models.ParamGamesDate, "2099-01-01")
	date, ok := recs.Params.GamesDate()
	require.True(t, ok)
	assert.Equal(t, "2022-03-27", date)
}

func TestGetLiveGamesOrNoneSwallowsFailures(t *testing.T) {
	adviser := NewAdviser(
		NewRegistry(),
		&stubStrategy{title: "Live", err: errors.New("down")},
		testLogger(),
	)
	assert.Nil(t, adviser.GetLiveGamesOrNone(context.Background(), models.NewParams()))
}

func TestGetLiveGamesOrNoneNilOnEmpty(t *testing.T) {
	adviser := NewAdviser(
		NewRegistry(),
		&stubStrategy{title: "Live", rec: models.Recommendation{Title: "Live"}},
		testLogger(),
	)
	assert.Nil(t, adviser.GetLiveGamesOrNone(context.Background(), models.NewParams()))
}

func TestGetLiveGamesOrNoneReturnsGames(t *testing.T) {
	adviser := NewAdviser(NewRegistry(), okStrategy("Live"), testLogger())

	rec := adviser.GetLiveGamesOrNone(context.Background(), models.NewParams())
	require.NotNil(t, rec)
	assert.Equal(t, "Live", rec.Title)
	assert.Len(t, rec.Games, 1)
}
