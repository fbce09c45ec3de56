package stoker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsers_Empty(t *testing.T) {
	s, err := ParseString("")
	assert.NoError(t, err)
	assert.Equal(t, "", s)

	n, err := ParseInt("")
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	f, err := ParseFloat("")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, f)

	b, err := ParseFlag("")
	assert.NoError(t, err)
	assert.True(t, b, "a bare flag is on")

	d, err := ParseDuration("")
	assert.NoError(t, err)
	assert.Equal(t, time.Duration(0), d)

	tm, err := ParseTime("")
	assert.NoError(t, err)
	assert.True(t, tm.IsZero())
}

func TestParsers_Values(t *testing.T) {
	n, err := ParseInt(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ParseInt("-3")
	require.NoError(t, err)
	assert.Equal(t, -3, n)

	_, err = ParseInt("many")
	assert.Error(t, err)

	f, err := ParseFloat("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	for _, v := range []string{"true", "1", "T"} {
		b, err := ParseFlag(v)
		require.NoError(t, err)
		assert.True(t, b, v)
	}
	for _, v := range []string{"false", "0", "F"} {
		b, err := ParseFlag(v)
		require.NoError(t, err)
		assert.False(t, b, v)
	}
	_, err = ParseFlag("fireball")
	assert.Error(t, err)

	d, err := ParseDuration("1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)
}

func TestParseTime(t *testing.T) {
	for _, v := range []string{"2024-03-01", "2024-03-01 10:30:00", "03/01/2024", "March 1, 2024"} {
		tm, err := ParseTime(v)
		require.NoError(t, err, v)
		assert.Equal(t, 2024, tm.Year(), v)
		assert.Equal(t, time.March, tm.Month(), v)
		assert.Equal(t, 1, tm.Day(), v)
	}

	_, err := ParseTime("not a date")
	assert.Error(t, err)
}

func TestParseOneOf(t *testing.T) {
	parse := ParseOneOf("Easy", "Hard")

	v, err := parse("hard")
	require.NoError(t, err)
	assert.Equal(t, "Hard", v)

	_, err = parse("medium")
	assert.EqualError(t, err, "expected one of Easy, Hard")

	v, err = parse("")
	assert.NoError(t, err)
	assert.Empty(t, v)
}
