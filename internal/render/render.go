// Package render converts recommendation containers into the HTML
// report sent to chat clients.
package render

import (
	"fmt"
	"strings"

	"github.com/nbadviser/nbadviser/internal/models"
	"github.com/nbadviser/nbadviser/internal/services"
)

// Fixed report lines.
const (
	emptyCategoryLine = "No games in this category"
	emptyReportLine   = "Could not find any interesting games"
)

// Renderer formats recommendation containers as Telegram-flavored
// HTML. It needs the game-day resolver to label the report when the
// run had no explicit date parameter.
type Renderer struct {
	gameDay *services.GameDay
}

// NewRenderer creates a renderer.
func NewRenderer(gameDay *services.GameDay) *Renderer {
	return &Renderer{gameDay: gameDay}
}

// Render produces the full report: a game-day header, then one block
// per recommendation. An entirely empty container renders the single
// could-not-find line instead of a bare header.
func (r *Renderer) Render(recs models.Recommendations) string {
	gameDate, ok := recs.Params.GamesDate()
	if !ok || gameDate == "" {
		gameDate = r.gameDay.PreviousGameDay()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<i>Game day: %s</i>\n", gameDate)

	if recs.Empty() {
		b.WriteString(emptyReportLine)
		return b.String()
	}

	for _, rec := range recs.Items {
		b.WriteString(r.RenderRecommendation(rec))
	}
	return b.String()
}

// RenderRecommendation produces one category block: the underlined
// title, then one description line per game, or the fixed empty line
// when the strategy selected nothing.
func (r *Renderer) RenderRecommendation(rec models.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n<b><u>%s</u></b>\n", rec.Title)

	if len(rec.Games) == 0 {
		b.WriteString(emptyCategoryLine + "\n")
		return b.String()
	}

	for _, game := range rec.Games {
		b.WriteString(game.Description() + "\n")
	}
	return b.String()
}
