package schedule

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeeklySchedule(t *testing.T) {
	ws, err := ParseWeeklySchedule("SuMoTu 08:00 - 09:00")
	require.NoError(t, err)

	first, err := ws.Get(0)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 3600, first.DurationSeconds())

	for i := 1; i <= 2; i++ {
		got, err := ws.Get(i)
		require.NoError(t, err)
		assert.Same(t, first, got)
	}
	for i := 3; i < DaysInWeek; i++ {
		got, err := ws.Get(i)
		require.NoError(t, err)
		assert.Nil(t, got)
	}

	assert.Equal(t, []time.Weekday{time.Sunday, time.Monday, time.Tuesday}, ws.Days())
	assert.Equal(t, 3*3600, ws.TotalSeconds())
}

func TestParseWeeklyScheduleMatchesManualAssignment(t *testing.T) {
	parsed, err := ParseWeeklySchedule("MoWeFr 13:57 - 14:00")
	require.NoError(t, err)

	interval := NewTimeInterval(NewClockTimeHM(13, 57), NewClockTimeHM(14, 0))
	manual := NewWeeklySchedule()
	require.NoError(t, manual.AssignByName("Monday", interval))
	require.NoError(t, manual.AssignByName("Wednesday", interval))
	require.NoError(t, manual.AssignByName("Friday", interval))

	opts := cmp.AllowUnexported(WeeklySchedule{}, TimeInterval{}, ClockTime{})
	if diff := cmp.Diff(manual, parsed, opts); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWeeklyScheduleErrors(t *testing.T) {
	inputs := []string{
		"Xy 08:00-09:00",
		"MoX 08:00-09:00",
		"SuMoTu",
		" 08:00-09:00",
		"Mo 08:00",
		"Mo 08:00-",
		"mo 08:00-09:00",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ws, err := ParseWeeklySchedule(input)
			assert.ErrorIs(t, err, ErrFormat)
			assert.Nil(t, ws)
		})
	}
}

func TestAssignWritesRequestedIndex(t *testing.T) {
	ws := NewWeeklySchedule()
	interval := NewTimeInterval(NewClockTimeHM(10, 0), NewClockTimeHM(11, 0))

	require.NoError(t, ws.Assign(3, interval))

	got, err := ws.Get(3)
	require.NoError(t, err)
	assert.Same(t, interval, got)

	for i := 0; i < DaysInWeek; i++ {
		if i == 3 {
			continue
		}
		other, err := ws.Get(i)
		require.NoError(t, err)
		assert.Nil(t, other, "weekday %d", i)
	}
	assert.Same(t, interval, ws.Day(time.Wednesday))
}

func TestAssignReplaces(t *testing.T) {
	ws := NewWeeklySchedule()
	first := NewTimeInterval(NewClockTimeHM(10, 0), NewClockTimeHM(11, 0))
	second := NewTimeInterval(NewClockTimeHM(12, 0), NewClockTimeHM(13, 0))

	require.NoError(t, ws.Assign(5, first))
	require.NoError(t, ws.Assign(5, second))

	assert.Same(t, second, ws.Day(time.Friday))
	assert.Equal(t, 1, ws.Len())
}

func TestAssignErrors(t *testing.T) {
	ws := NewWeeklySchedule()
	interval := NewTimeInterval(NewClockTimeHM(10, 0), NewClockTimeHM(11, 0))

	assert.ErrorIs(t, ws.Assign(-1, interval), ErrIndex)
	assert.ErrorIs(t, ws.Assign(7, interval), ErrIndex)
	assert.ErrorIs(t, ws.Assign(0, nil), ErrNilInterval)
	assert.ErrorIs(t, ws.AssignByName("Someday", interval), ErrFormat)

	_, err := ws.Get(7)
	assert.ErrorIs(t, err, ErrIndex)
	assert.Nil(t, ws.Day(time.Weekday(-1)))
	assert.Equal(t, 0, ws.Len())
}

func TestMergeAndString(t *testing.T) {
	ws, err := ParseWeeklySchedule("MoWe 09:00 - 10:30")
	require.NoError(t, err)
	friday, err := ParseWeeklySchedule("FrWe 13:00 - 14:00")
	require.NoError(t, err)

	ws.Merge(friday)
	ws.Merge(nil)

	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, ws.Days())
	assert.Equal(t, "Mo 09:00:00 - 10:30:00\nWe 13:00:00 - 14:00:00\nFr 13:00:00 - 14:00:00", ws.String())
	assert.Equal(t, 5400+3600+3600, ws.TotalSeconds())
	assert.Equal(t, "", NewWeeklySchedule().String())
}
