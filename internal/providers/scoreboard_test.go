package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsZipsHeadersWithTuples(t *testing.T) {
	rs := ResultSet{
		Name:    ResultSetLineScore,
		Headers: []string{"GAME_ID", "TEAM_ID", "PTS"},
		RowSet: [][]interface{}{
			{"A", float64(1), float64(110)},
			{"B", float64(2), float64(95)},
		},
	}

	rows := rs.Rows()
	require.Len(t, rows, 2)

	id, err := rows[1].String("GAME_ID")
	require.NoError(t, err)
	assert.Equal(t, "B", id)

	pts, err := rows[1].Float("PTS")
	require.NoError(t, err)
	assert.Equal(t, float64(95), pts)
}

func TestRowsShortTupleLeavesFieldAbsent(t *testing.T) {
	rs := ResultSet{
		Headers: []string{"GAME_ID", "PTS"},
		RowSet:  [][]interface{}{{"A"}},
	}

	rows := rs.Rows()
	require.Len(t, rows, 1)

	_, err := rows[0].Float("PTS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PTS")
}

func TestRowStringNullBecomesEmpty(t *testing.T) {
	row := Row{"PTS_PLAYER_NAME": nil}
	name, err := row.String("PTS_PLAYER_NAME")
	require.NoError(t, err)
	assert.Equal(t, "", name)
}

func TestRowTypeMismatch(t *testing.T) {
	row := Row{"GAME_ID": float64(7), "PTS": "eleven"}

	_, err := row.String("GAME_ID")
	assert.Error(t, err)

	_, err = row.Float("PTS")
	assert.Error(t, err)
}

func TestResultSetLookupByName(t *testing.T) {
	sb := Scoreboard{ResultSets: []ResultSet{
		{Name: ResultSetGameHeader},
		{Name: ResultSetTeamLeaders},
	}}

	rs, err := sb.TeamLeaders()
	require.NoError(t, err)
	assert.Equal(t, ResultSetTeamLeaders, rs.Name)

	_, err = sb.LineScore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ResultSetLineScore)
}
