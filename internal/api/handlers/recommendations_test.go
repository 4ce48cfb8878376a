package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbadviser/nbadviser/internal/models"
	"github.com/nbadviser/nbadviser/internal/providers"
	"github.com/nbadviser/nbadviser/internal/render"
	"github.com/nbadviser/nbadviser/internal/services"
)

type scriptedStrategy struct {
	title string
	rec   models.Recommendation
	err   error
}

func (s *scriptedStrategy) Title() string { return s.title }

func (s *scriptedStrategy) GetRawData(context.Context, string) (*providers.Scoreboard, error) {
	return nil, nil
}

func (s *scriptedStrategy) Execute(context.Context, models.Params) (models.Recommendation, error) {
	return s.rec, s.err
}

func newTestRouter(t *testing.T, strategies ...services.Strategy) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	gameDay, err := services.NewGameDay(services.DefaultLeagueTimezone, services.DefaultCutoffHour)
	require.NoError(t, err)

	live := &scriptedStrategy{title: "Live", err: errors.New("not in this test")}
	adviser := services.NewAdviser(services.NewRegistry(strategies...), live, log)
	handler := NewRecommendationsHandler(adviser, render.NewRenderer(gameDay), log)

	router := gin.New()
	router.GET("/api/v1/recommendations", handler.GetRecommendations)
	router.GET("/api/v1/live", handler.GetLiveGames)
	return router
}

func TestGetRecommendationsRejectsBadDate(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?date=27-03-2022", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecommendationsReportsPartialFailure(t *testing.T) {
	ok := &scriptedStrategy{
		title: "Tight finish",
		rec:   models.Recommendation{Title: "Tight finish", Games: []*models.Game{{ID: "A"}}},
	}
	broken := &scriptedStrategy{title: "Standouts", err: errors.New("provider down")}
	router := newTestRouter(t, ok, broken)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?date=2022-03-27", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data recommendationsView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Contains(t, resp.Data.Report, "Game day: 2022-03-27")
	require.Len(t, resp.Data.Recommendations, 1)
	require.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, "Standouts", resp.Data.Errors[0].Strategy)
	assert.Contains(t, resp.Data.Errors[0].Message, "provider down")
}

func TestGetLiveGamesSwallowsFailure(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/live", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"live_games":null`)
}
