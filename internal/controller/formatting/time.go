package formatting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/schedule"
)

var weekdayNames = [schedule.DaysInWeek]string{
	"Воскресенье",
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
}

var weekdayShortNames = [schedule.DaysInWeek]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// WeekOrder порядок дней для отображения (неделя с понедельника)
var WeekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// GetWeekdayName возвращает название дня недели на русском
func GetWeekdayName(day time.Weekday) string {
	if day >= time.Sunday && day <= time.Saturday {
		return weekdayNames[day]
	}
	return "Неизвестно"
}

// GetWeekdayShort возвращает короткое название дня недели
func GetWeekdayShort(day time.Weekday) string {
	if day >= time.Sunday && day <= time.Saturday {
		return weekdayShortNames[day]
	}
	return "?"
}

// FormatClock форматирует время как HH:MM (секунды показываются только если они есть)
func FormatClock(t schedule.ClockTime) string {
	if t.Seconds() != 0 {
		return t.String()
	}
	return fmt.Sprintf("%02d:%02d", t.Hours(), t.Minutes())
}

// FormatInterval форматирует интервал как "09:00-10:30"
func FormatInterval(ti *schedule.TimeInterval) string {
	return fmt.Sprintf("%s-%s", FormatClock(ti.Start()), FormatClock(ti.Stop()))
}

// FormatDuration форматирует длительность в секундах
func FormatDuration(seconds int) string {
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d мин", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d ч", hours)
	}
	return fmt.Sprintf("%d ч %d мин", hours, mins)
}

// FormatDayFraction форматирует долю суток в процентах
func FormatDayFraction(ti *schedule.TimeInterval) string {
	return fmt.Sprintf("%.1f%%", ti.DayFraction()*100)
}

// FormatWeekdayRange форматирует набор дней недели
// Например: [1,2,3] -> "Пн-Ср", [1,3,5] -> "Пн, Ср, Пт"
func FormatWeekdayRange(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}

	// Сортируем в порядке недели с понедельника
	pos := func(d time.Weekday) int { return (int(d) + 6) % 7 }
	sorted := make([]time.Weekday, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return pos(sorted[i]) < pos(sorted[j]) })

	isSequence := true
	for i := 1; i < len(sorted); i++ {
		if pos(sorted[i]) != pos(sorted[i-1])+1 {
			isSequence = false
			break
		}
	}

	if isSequence && len(sorted) > 2 {
		return fmt.Sprintf("%s-%s", GetWeekdayShort(sorted[0]), GetWeekdayShort(sorted[len(sorted)-1]))
	}

	names := make([]string, 0, len(sorted))
	for _, d := range sorted {
		names = append(names, GetWeekdayShort(d))
	}
	return strings.Join(names, ", ")
}
