package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionpulse/ratebot-go/validation"
)

var today = time.Date(2019, time.March, 15, 12, 30, 0, 0, time.UTC)

func TestIsValidLocationCaseInsensitive(t *testing.T) {
	assert.True(t, validation.IsValidLocation("LONDON"))
	assert.True(t, validation.IsValidLocation("London"))
	assert.True(t, validation.IsValidLocation("london"))
	assert.True(t, validation.IsValidLocation("Tel Aviv"))
	assert.False(t, validation.IsValidLocation("Paris"))
	assert.False(t, validation.IsValidLocation(""))
}

func TestParseDateAcceptsBothOrderings(t *testing.T) {
	for _, input := range []string{
		"2019-03-10",
		"10 March 2019",
		"March 10, 2019",
		"03/10/2019",
	} {
		d, err := validation.ParseDate(input)
		require.NoError(t, err, input)
		assert.Equal(t, time.March, d.Month(), input)
		assert.Equal(t, 10, d.Day(), input)
	}

	assert.False(t, validation.IsValidDate("not a date"))
	assert.True(t, validation.IsValidDate("14 Mar 2019"))
}

func TestIsFutureDate(t *testing.T) {
	assert.True(t, validation.IsFutureDate("2019-03-16", today))
	assert.False(t, validation.IsFutureDate("2019-03-15", today), "today is not in the future")
	assert.False(t, validation.IsFutureDate("2019-03-14", today))
	assert.False(t, validation.IsFutureDate("garbage", today))
}

func TestWithinLastNDaysBoundaryIsExclusive(t *testing.T) {
	// 30 days before 2019-03-15 is 2019-02-13.
	assert.False(t, validation.WithinLastNDays("2019-02-13", today, 30),
		"a date exactly 30 days ago falls outside the window")
	assert.True(t, validation.WithinLastNDays("2019-02-14", today, 30))
	assert.False(t, validation.WithinLastNDays("2019-02-01", today, 30))
	assert.True(t, validation.WithinLastNDays("2019-03-15", today, 30))
}

func TestIsValidScoreRange(t *testing.T) {
	for n := 1; n <= 5; n++ {
		assert.True(t, validation.IsValidScore(n), "score %d", n)
	}
	for _, n := range []int{-1, 0, 6, 7, 100} {
		assert.False(t, validation.IsValidScore(n), "score %d", n)
	}
}

func TestParseScore(t *testing.T) {
	n, ok := validation.ParseScore("4")
	require.True(t, ok)
	assert.Equal(t, 4, n)

	n, ok = validation.ParseScore("4.0")
	require.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = validation.ParseScore("four")
	assert.False(t, ok)
}

func TestIsValidComments(t *testing.T) {
	for _, s := range []string{"", "ok", "meh!"} {
		assert.False(t, validation.IsValidComments(s), "%q", s)
	}
	assert.True(t, validation.IsValidComments("great"))
	assert.True(t, validation.IsValidComments("loved the talk"))
}

func TestIsValidTestTarget(t *testing.T) {
	assert.True(t, validation.IsValidTestTarget("A"))
	assert.True(t, validation.IsValidTestTarget("B"))
	assert.True(t, validation.IsValidTestTarget("C"))
	assert.False(t, validation.IsValidTestTarget("a"))
	assert.False(t, validation.IsValidTestTarget("D"))
}
