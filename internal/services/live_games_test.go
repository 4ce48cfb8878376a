package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbadviser/nbadviser/internal/models"
)

func TestLiveGamesSelectsInProgressOnly(t *testing.T) {
	sb := buildDay(
		dayRow{id: "A", statusID: 3, home: 110, visitor: 104},
		dayRow{id: "B", statusID: 2, home: 55, visitor: 60},
		dayRow{id: "C", statusID: 1, home: 0, visitor: 0},
	)
	strategy := NewLiveGamesStrategy(singleDateProvider("2022-03-27", sb), testGameDay(), testLogger())

	params := models.NewParams()
	params.Set(models.ParamGamesDate, "2022-03-27")
	rec, err := strategy.Execute(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, rec.Games, 1)
	assert.Equal(t, "B", rec.Games[0].ID)
	assert.Equal(t, models.KindLiveScore, rec.Games[0].Kind)
}

func TestLiveGamesDescriptionsCarryScore(t *testing.T) {
	sb := buildDay(dayRow{id: "B", statusID: 2, home: 55, visitor: 60})
	strategy := NewLiveGamesStrategy(singleDateProvider("2022-03-27", sb), testGameDay(), testLogger())

	params := models.NewParams()
	params.Set(models.ParamGamesDate, "2022-03-27")
	rec, err := strategy.Execute(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, rec.Games, 1)
	assert.Contains(t, rec.Games[0].Description(), "(60-55,")
}
