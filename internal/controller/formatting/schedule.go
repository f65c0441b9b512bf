package formatting

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/schedule"
	"github.com/Freeeeeet/timetable_bot/internal/service"
)

// FormatWeek форматирует недельное расписание по строке на день
func FormatWeek(ws *schedule.WeeklySchedule) string {
	if ws == nil || ws.Len() == 0 {
		return "Нет занятий"
	}

	var sb strings.Builder
	for _, day := range WeekOrder {
		ti := ws.Day(day)
		if ti == nil {
			continue
		}
		fmt.Fprintf(&sb, "%s %s (%s)\n", GetWeekdayShort(day), FormatInterval(ti), FormatDuration(ti.DurationSeconds()))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatPreview форматирует результат разбора дескриптора
func FormatPreview(ws *schedule.WeeklySchedule) string {
	days := ws.Days()
	if len(days) == 0 {
		return "Нет занятий"
	}
	ti := ws.Day(days[0])

	return fmt.Sprintf(
		"✅ <b>Расписание распознано</b>\n\n"+
			"📅 Дни: %s\n"+
			"🕐 Время: %s\n"+
			"⏱ Длительность: %s (%s суток)\n"+
			"📊 В неделю: %s",
		FormatWeekdayRange(days),
		FormatInterval(ti),
		FormatDuration(ti.DurationSeconds()),
		FormatDayFraction(ti),
		FormatDuration(ws.TotalSeconds()),
	)
}

// FormatClassInfo форматирует информацию о занятии
func FormatClassInfo(class *model.Class) string {
	location := html.EscapeString(class.Location)
	if room, err := class.RoomNumber(); err == nil {
		location = fmt.Sprintf("%s (ауд. %d)", location, room)
	}

	return fmt.Sprintf(
		"📚 <b>%s</b>\n\n"+
			"👤 Преподаватель: %s\n"+
			"📍 Место: %s\n"+
			"🗓 Расписание:\n%s",
		html.EscapeString(class.Name),
		html.EscapeString(orDash(class.Instructor)),
		orDash(location),
		FormatWeek(class.Week),
	)
}

// FormatClassShort форматирует краткую информацию о занятии
func FormatClassShort(class *model.Class, index int) string {
	days := "без расписания"
	if class.Week != nil && class.Week.Len() > 0 {
		days = FormatWeekdayRange(class.Week.Days())
	}

	return fmt.Sprintf(
		"%d. %s\n"+
			"   👤 %s | 📍 %s\n"+
			"   📅 %s",
		index,
		html.EscapeString(class.Name),
		html.EscapeString(orDash(class.Instructor)),
		html.EscapeString(orDash(class.Location)),
		days,
	)
}

// FormatClassList форматирует список занятий с номерами, начиная с 1
func FormatClassList(classes []*model.Class) string {
	if len(classes) == 0 {
		return "📭 У вас пока нет занятий.\n\nДобавьте первое через /addclass"
	}

	lines := make([]string, 0, len(classes))
	for i, class := range classes {
		lines = append(lines, FormatClassShort(class, i+1))
	}
	return "📚 <b>Ваши занятия</b>\n\n" + strings.Join(lines, "\n\n")
}

// FormatTimetable форматирует сводное расписание по дням
func FormatTimetable(tt *service.Timetable) string {
	var sb strings.Builder
	sb.WriteString("🗓 <b>Расписание на неделю</b>\n")

	empty := true
	for _, day := range WeekOrder {
		entries := tt.Entries(day)
		if len(entries) == 0 {
			continue
		}
		empty = false
		fmt.Fprintf(&sb, "\n<b>%s</b>\n", GetWeekdayName(day))
		writeEntries(&sb, entries)
	}

	if empty {
		return "📭 Расписание пусто"
	}

	fmt.Fprintf(&sb, "\n⏱ Всего за неделю: %s", FormatDuration(tt.TotalSeconds))
	return sb.String()
}

// FormatDigest форматирует расписание на один день
func FormatDigest(day time.Weekday, entries []service.TimetableEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "☀️ <b>%s: занятия сегодня</b>\n\n", GetWeekdayName(day))
	writeEntries(&sb, entries)
	return strings.TrimRight(sb.String(), "\n")
}

func writeEntries(sb *strings.Builder, entries []service.TimetableEntry) {
	for _, e := range entries {
		fmt.Fprintf(sb, "🕐 %s %s", FormatInterval(e.Interval), html.EscapeString(e.Class.Name))
		if e.Class.Location != "" {
			fmt.Fprintf(sb, " 📍 %s", html.EscapeString(e.Class.Location))
		}
		sb.WriteString("\n")
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
