package services

import (
	"fmt"
	"time"

	"github.com/nbadviser/nbadviser/internal/models"
)

// Defaults for the league-home-timezone cutoff rule.
const (
	DefaultLeagueTimezone = "America/New_York"
	DefaultCutoffHour     = 22
)

// GameDay computes the effective game date for a run. Without an
// explicit games_date parameter the answer is "yesterday" in the
// league's home timezone, flipping to "today" once local time reaches
// the cutoff hour. The cutoff models the provider's data-availability
// boundary, not calendar semantics.
type GameDay struct {
	loc        *time.Location
	cutoffHour int
	now        func() time.Time
}

// NewGameDay loads the league timezone and returns the resolver.
func NewGameDay(timezone string, cutoffHour int) (*GameDay, error) {
	if timezone == "" {
		timezone = DefaultLeagueTimezone
	}
	if cutoffHour <= 0 {
		cutoffHour = DefaultCutoffHour
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load league timezone %q: %w", timezone, err)
	}
	return &GameDay{loc: loc, cutoffHour: cutoffHour, now: time.Now}, nil
}

// Resolve returns the caller-supplied games_date verbatim when set,
// otherwise the computed previous game day.
func (d *GameDay) Resolve(params models.Params) string {
	if date, ok := params.GamesDate(); ok && date != "" {
		return date
	}
	return d.PreviousGameDay()
}

// PreviousGameDay returns yesterday's date in the league timezone,
// or today's once local time has passed the cutoff hour.
func (d *GameDay) PreviousGameDay() string {
	localNow := d.now().In(d.loc)
	offsetDays := 1
	if localNow.Hour() >= d.cutoffHour {
		offsetDays = 0
	}
	return localNow.AddDate(0, 0, -offsetDays).Format("2006-01-02")
}
