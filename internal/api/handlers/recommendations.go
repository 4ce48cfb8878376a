package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nbadviser/nbadviser/internal/models"
	"github.com/nbadviser/nbadviser/internal/render"
	"github.com/nbadviser/nbadviser/internal/services"
	"github.com/nbadviser/nbadviser/internal/utils"
)

// RecommendationsHandler exposes the adviser over HTTP.
type RecommendationsHandler struct {
	adviser  *services.Adviser
	renderer *render.Renderer
	logger   *logrus.Logger
}

// NewRecommendationsHandler creates the handler.
func NewRecommendationsHandler(adviser *services.Adviser, renderer *render.Renderer, logger *logrus.Logger) *RecommendationsHandler {
	return &RecommendationsHandler{
		adviser:  adviser,
		renderer: renderer,
		logger:   logger,
	}
}

type strategyErrorView struct {
	Strategy string `json:"strategy"`
	Message  string `json:"message"`
}

type recommendationsView struct {
	Report          string                  `json:"report"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Errors          []strategyErrorView     `json:"errors,omitempty"`
}

// GetRecommendations runs the full pipeline for an optional
// ?date=YYYY-MM-DD query parameter. Date format validation lives here,
// on the presentation side; the core accepts whatever it is given.
func (h *RecommendationsHandler) GetRecommendations(c *gin.Context) {
	params := models.NewParams()
	if date := c.Query("date"); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			utils.SendBadRequest(c, "date must be in YYYY-MM-DD format")
			return
		}
		params.Set(models.ParamGamesDate, date)
	}

	recs, errs := h.adviser.GetRecommendations(c.Request.Context(), params)

	view := recommendationsView{
		Report:          h.renderer.Render(recs),
		Recommendations: recs.Items,
	}
	for _, e := range errs {
		h.logger.WithError(e.Err).WithField("strategy", e.Label).Error("Strategy failed during API run")
		view.Errors = append(view.Errors, strategyErrorView{
			Strategy: e.Label,
			Message:  e.Err.Error(),
		})
	}

	utils.SendSuccess(c, view)
}

// GetLiveGames returns the best-effort live games lookup. Failures are
// indistinguishable from an empty answer.
func (h *RecommendationsHandler) GetLiveGames(c *gin.Context) {
	params := models.NewParams()
	rec := h.adviser.GetLiveGamesOrNone(c.Request.Context(), params)
	if rec == nil {
		utils.SendSuccess(c, gin.H{"live_games": nil})
		return
	}
	utils.SendSuccess(c, gin.H{
		"live_games": rec,
		"report":     h.renderer.RenderRecommendation(*rec),
	})
}
