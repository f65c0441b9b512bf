package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	t.Run("spaced", func(t *testing.T) {
		ti, err := ParseTimeRange("13:57 - 14:00")
		require.NoError(t, err)
		assert.Equal(t, 180, ti.DurationSeconds())
		assert.Equal(t, 3*time.Minute, ti.Duration())
		assert.Equal(t, "13:57:00 - 14:00:00", ti.String())
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		ti, err := ParseTimeRange(" 09:00-10:30 ")
		require.NoError(t, err)
		assert.Equal(t, 5400, ti.DurationSeconds())
		assert.Equal(t, 5400.0/86400.0, ti.DayFraction())
	})

	t.Run("reversed order keeps absolute duration", func(t *testing.T) {
		ti, err := ParseTimeRange("14:00 - 13:00")
		require.NoError(t, err)
		assert.Equal(t, 3600, ti.DurationSeconds())
		assert.Equal(t, NewClockTimeHM(14, 0), ti.Start())
		assert.Equal(t, NewClockTimeHM(13, 0), ti.Stop())
	})
}

func TestParseTimeRangeErrors(t *testing.T) {
	inputs := []string{"", "13:57", "13:57 -", "- 14:00", "13:57 - 14:00 - 15:00", "ab - cd"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ti, err := ParseTimeRange(input)
			assert.ErrorIs(t, err, ErrFormat)
			assert.Nil(t, ti)
		})
	}
}

func TestParseTimeInterval(t *testing.T) {
	ti, err := ParseTimeInterval("8", "9:15:30")
	require.NoError(t, err)
	assert.Equal(t, 3600+15*60+30, ti.DurationSeconds())

	_, err = ParseTimeInterval("8", "nine")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestNewTimeIntervalDayFraction(t *testing.T) {
	ti := NewTimeInterval(NewClockTimeHM(0, 0), NewClockTimeHM(24, 0))
	assert.Equal(t, 1.0, ti.DayFraction())
}
