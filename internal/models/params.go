package models

// ParamGamesDate is the one recognized runtime parameter: a specific
// game date in YYYY-MM-DD form. When absent, strategies fall back to
// the computed previous game day.
const ParamGamesDate = "games_date"

// Params is the runtime parameter set for one adviser run. It is a
// plain value passed into GetRecommendations; callers that keep
// parameters between runs (the bot does) own the long-lived copy and
// hand the adviser a snapshot per run.
type Params struct {
	values map[string]string
}

// NewParams returns an empty parameter set.
func NewParams() Params {
	return Params{values: make(map[string]string)}
}

// Set stores or overwrites a parameter. No validation happens here;
// format checks are the caller's responsibility.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	p.values[key] = value
}

// Del removes a parameter and returns its previous value, if any.
func (p *Params) Del(key string) (string, bool) {
	prev, ok := p.values[key]
	if ok {
		delete(p.values, key)
	}
	return prev, ok
}

// Get returns a parameter value, if set.
func (p Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// GamesDate returns the explicitly requested game date, if set.
func (p Params) GamesDate() (string, bool) {
	return p.Get(ParamGamesDate)
}

// Clone returns an independent copy, used to snapshot the caller's
// parameters for the duration of one run.
func (p Params) Clone() Params {
	c := NewParams()
	for k, v := range p.values {
		c.values[k] = v
	}
	return c
}
