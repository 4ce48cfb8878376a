package models

// Recommendation is one strategy's output: a fixed category title plus
// the games it selected. Games is nil or empty when nothing qualified,
// which renders as an empty category rather than an error.
type Recommendation struct {
	Title string  `json:"title"`
	Games []*Game `json:"games,omitempty"`
}

// Recommendations holds every successful recommendation of one adviser
// run together with the parameters that run was executed with. The
// parameters are only consulted to recover the display date when the
// caller supplied one explicitly.
type Recommendations struct {
	Items  []Recommendation `json:"items"`
	Params Params           `json:"-"`
}

// Append adds one recommendation, preserving strategy execution order.
func (r *Recommendations) Append(rec Recommendation) {
	r.Items = append(r.Items, rec)
}

// Empty reports whether no strategy produced a recommendation at all.
func (r *Recommendations) Empty() bool {
	return len(r.Items) == 0
}
