package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// DefaultScoreboardCacheSize bounds the memoized scoreboard lookups.
// Strategies within one run usually ask for the same date, so a handful
// of entries is enough to avoid duplicate fetches.
const DefaultScoreboardCacheSize = 5

// ScoreboardClient fetches one day's scoreboard from the NBA stats
// API. Responses are memoized in a small LRU keyed by date string, and
// the outbound call runs behind a circuit breaker so a dead provider
// fails fast instead of hanging every strategy in turn.
type ScoreboardClient struct {
	client  *http.Client
	baseURL string
	breaker *gobreaker.CircuitBreaker
	cache   *lru.Cache[string, *Scoreboard]
	logger  *logrus.Logger
}

// DefaultBreakerThreshold is the request count the breaker needs
// before it may trip.
const DefaultBreakerThreshold = 3

// NewScoreboardClient creates a scoreboard client. cacheSize and
// breakerThreshold fall back to their defaults when non-positive.
func NewScoreboardClient(baseURL string, timeout time.Duration, cacheSize, breakerThreshold int, logger *logrus.Logger) (*ScoreboardClient, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultScoreboardCacheSize
	}
	if breakerThreshold <= 0 {
		breakerThreshold = DefaultBreakerThreshold
	}
	cache, err := lru.New[string, *Scoreboard](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoreboard cache: %w", err)
	}

	settings := gobreaker.Settings{
		Name: "nba-stats",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= uint32(breakerThreshold) && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"service":   name,
				"from":      from.String(),
				"to":        to.String(),
			}).Info("Circuit breaker state changed")
		},
	}

	return &ScoreboardClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		breaker: gobreaker.NewCircuitBreaker(settings),
		cache:   cache,
		logger:  logger,
	}, nil
}

// Scoreboard returns the scoreboard for gameDate (YYYY-MM-DD). The date
// string is passed to the provider verbatim; a malformed date surfaces
// as a provider error.
func (c *ScoreboardClient) Scoreboard(ctx context.Context, gameDate string) (*Scoreboard, error) {
	if cached, ok := c.cache.Get(gameDate); ok {
		c.logger.WithField("game_date", gameDate).Debug("Scoreboard cache hit")
		return cached, nil
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, gameDate)
	})
	if err != nil {
		return nil, fmt.Errorf("scoreboard fetch for %s: %w", gameDate, err)
	}

	scoreboard := result.(*Scoreboard)
	c.cache.Add(gameDate, scoreboard)
	return scoreboard, nil
}

func (c *ScoreboardClient) fetch(ctx context.Context, gameDate string) (*Scoreboard, error) {
	params := url.Values{}
	params.Add("GameDate", gameDate)
	params.Add("LeagueID", "00")
	params.Add("DayOffset", "0")

	endpoint := fmt.Sprintf("%s/scoreboardv2?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoreboard request: %w", err)
	}

	// The stats API rejects requests without a browser-like identity.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-nba-stats-origin", "stats")
	req.Header.Set("x-nba-stats-token", "true")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scoreboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoreboard API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoreboard response: %w", err)
	}

	var scoreboard Scoreboard
	if err := json.Unmarshal(body, &scoreboard); err != nil {
		return nil, fmt.Errorf("failed to parse scoreboard response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"game_date":   gameDate,
		"result_sets": len(scoreboard.ResultSets),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Fetched scoreboard")

	return &scoreboard, nil
}
