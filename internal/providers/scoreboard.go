package providers

import (
	"fmt"
)

// Result set names within the scoreboard response.
const (
	ResultSetGameHeader  = "GameHeader"
	ResultSetLineScore   = "LineScore"
	ResultSetTeamLeaders = "TeamLeaders"
)

// Scoreboard is one day's raw scoreboard response from the stats
// provider: a list of named result sets, each a header list plus rows
// of equal-length tuples.
type Scoreboard struct {
	Resource   string      `json:"resource"`
	ResultSets []ResultSet `json:"resultSets"`
}

// ResultSet is one tabular section of the scoreboard response. Column
// order is not contractually fixed; consumers must resolve fields by
// header name, never by position.
type ResultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// Row is one result-set row with values keyed by column name, produced
// by zipping the declared header list with the row tuple.
type Row map[string]interface{}

// Rows zips the header list with every row tuple. Tuples shorter than
// the header list simply leave the trailing fields absent, which
// surfaces later as a missing-field error.
func (rs *ResultSet) Rows() []Row {
	rows := make([]Row, 0, len(rs.RowSet))
	for _, tuple := range rs.RowSet {
		row := make(Row, len(rs.Headers))
		for i, header := range rs.Headers {
			if i < len(tuple) {
				row[header] = tuple[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ResultSet returns the named result set or an error when the provider
// response does not carry it.
func (s *Scoreboard) ResultSet(name string) (*ResultSet, error) {
	for i := range s.ResultSets {
		if s.ResultSets[i].Name == name {
			return &s.ResultSets[i], nil
		}
	}
	return nil, fmt.Errorf("scoreboard response has no %q result set", name)
}

// GameHeader returns the per-game header rows.
func (s *Scoreboard) GameHeader() (*ResultSet, error) {
	return s.ResultSet(ResultSetGameHeader)
}

// LineScore returns the per-team score rows.
func (s *Scoreboard) LineScore() (*ResultSet, error) {
	return s.ResultSet(ResultSetLineScore)
}

// TeamLeaders returns the per-team top-scorer rows.
func (s *Scoreboard) TeamLeaders() (*ResultSet, error) {
	return s.ResultSet(ResultSetTeamLeaders)
}

// String extracts a string field. A JSON null is returned as the empty
// string; an absent header is a loud error because field names are a
// fixed contract with the provider.
func (r Row) String(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", fmt.Errorf("missing expected field %q in provider row", field)
	}
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", field, v)
	}
	return s, nil
}

// Int extracts an integer field. JSON numbers decode as float64, so
// both forms are accepted.
func (r Row) Int(field string) (int, error) {
	f, err := r.Float(field)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Float extracts a numeric field.
func (r Row) Float(field string) (float64, error) {
	v, ok := r[field]
	if !ok {
		return 0, fmt.Errorf("missing expected field %q in provider row", field)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case nil:
		return 0, fmt.Errorf("field %q: unexpected null value", field)
	default:
		return 0, fmt.Errorf("field %q: expected number, got %T", field, v)
	}
}
