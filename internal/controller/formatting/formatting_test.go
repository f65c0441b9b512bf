package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/schedule"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0 мин", FormatDuration(30))
	assert.Equal(t, "45 мин", FormatDuration(45*60))
	assert.Equal(t, "2 ч", FormatDuration(2*3600))
	assert.Equal(t, "1 ч 30 мин", FormatDuration(5400))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(schedule.NewClockTimeHM(9, 5)))
	assert.Equal(t, "23:58:56", FormatClock(schedule.NewClockTime(23, 58, 56)))
}

func TestFormatWeekdayRange(t *testing.T) {
	tests := []struct {
		name string
		days []time.Weekday
		want string
	}{
		{name: "empty", days: nil, want: ""},
		{name: "sequence", days: []time.Weekday{time.Wednesday, time.Monday, time.Tuesday}, want: "Пн-Ср"},
		{name: "gaps", days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}, want: "Пн, Ср, Пт"},
		{name: "sunday last", days: []time.Weekday{time.Sunday, time.Friday, time.Saturday}, want: "Пт-Вс"},
		{name: "two days", days: []time.Weekday{time.Tuesday, time.Monday}, want: "Пн, Вт"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWeekdayRange(tt.days))
		})
	}
}

func TestFormatWeek(t *testing.T) {
	ws, err := schedule.ParseWeeklySchedule("SuMo 09:00 - 10:30")
	require.NoError(t, err)

	assert.Equal(t, "Пн 09:00-10:30 (1 ч 30 мин)\nВс 09:00-10:30 (1 ч 30 мин)", FormatWeek(ws))
	assert.Equal(t, "Нет занятий", FormatWeek(schedule.NewWeeklySchedule()))
	assert.Equal(t, "Нет занятий", FormatWeek(nil))
}

func TestFormatPreview(t *testing.T) {
	ws, err := schedule.ParseWeeklySchedule("MoWeFr 13:57 - 14:00")
	require.NoError(t, err)

	text := FormatPreview(ws)
	assert.Contains(t, text, "Пн, Ср, Пт")
	assert.Contains(t, text, "13:57-14:00")
	assert.Contains(t, text, "0.2%")
	assert.Contains(t, text, "9 мин")
}

func TestFormatClassInfo(t *testing.T) {
	c := model.NewClass(1, "Algebra <I>", "Dr. Noether", "Hall 12")
	require.NoError(t, c.AddTimes("Tu 10:00 - 11:00"))

	text := FormatClassInfo(c)
	assert.Contains(t, text, "Algebra &lt;I&gt;")
	assert.Contains(t, text, "ауд. 12")
	assert.Contains(t, text, "Вт 10:00-11:00")
}

func TestFormatTimetableAndDigest(t *testing.T) {
	c := model.NewClass(1, "Algebra", "", "Hall 12")
	require.NoError(t, c.AddTimes("MoTu 10:00 - 11:00"))
	tt := service.BuildTimetable([]*model.Class{c})

	text := FormatTimetable(tt)
	assert.Contains(t, text, "Понедельник")
	assert.Contains(t, text, "Вторник")
	assert.Contains(t, text, "Всего за неделю: 2 ч")
	assert.Equal(t, "📭 Расписание пусто", FormatTimetable(service.BuildTimetable(nil)))

	digest := FormatDigest(time.Monday, tt.Entries(time.Monday))
	assert.Contains(t, digest, "🕐 10:00-11:00 Algebra 📍 Hall 12")
}

func TestFormatClassList(t *testing.T) {
	assert.Contains(t, FormatClassList(nil), "/addclass")

	c := model.NewClass(1, "Algebra", "", "")
	text := FormatClassList([]*model.Class{c})
	assert.Contains(t, text, "1. Algebra")
	assert.Contains(t, text, "без расписания")
}
