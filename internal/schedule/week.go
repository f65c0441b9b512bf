package schedule

import (
	"fmt"
	"strings"
	"time"
)

// WeeklySchedule семь слотов (воскресенье = 0), в каждом не больше одного интервала.
// Пустой слот означает, что в этот день занятий нет. Несколько дней могут ссылаться
// на один и тот же интервал, если они заданы одним дескриптором.
type WeeklySchedule struct {
	days [DaysInWeek]*TimeInterval
}

// NewWeeklySchedule создаёт пустое расписание
func NewWeeklySchedule() *WeeklySchedule {
	return &WeeklySchedule{}
}

// ParseWeeklySchedule разбирает дескриптор "SuMoTuWeThFrSa 13:57 - 14:00".
// Все перечисленные дни получают один и тот же интервал.
func ParseWeeklySchedule(s string) (*WeeklySchedule, error) {
	codes, rangeStr, found := strings.Cut(s, " ")
	if !found {
		return nil, fmt.Errorf("parse weekly schedule %q: %w", s, ErrFormat)
	}

	days, err := ParseDayCodes(codes)
	if err != nil {
		return nil, fmt.Errorf("parse weekly schedule: %w", err)
	}

	interval, err := ParseTimeRange(rangeStr)
	if err != nil {
		return nil, fmt.Errorf("parse weekly schedule: %w", err)
	}

	ws := NewWeeklySchedule()
	for _, day := range days {
		ws.days[day] = interval
	}
	return ws, nil
}

// Assign назначает интервал дню с индексом 0-6. Повторное назначение заменяет значение.
func (ws *WeeklySchedule) Assign(index int, interval *TimeInterval) error {
	if index < 0 || index >= DaysInWeek {
		return fmt.Errorf("assign weekday %d: %w", index, ErrIndex)
	}
	if interval == nil {
		return fmt.Errorf("assign weekday %d: %w", index, ErrNilInterval)
	}
	ws.days[index] = interval
	return nil
}

// AssignByName назначает интервал дню по полному названию ("Monday")
func (ws *WeeklySchedule) AssignByName(name string, interval *TimeInterval) error {
	day, err := ParseDayName(name)
	if err != nil {
		return err
	}
	return ws.Assign(int(day), interval)
}

// Get возвращает интервал дня или nil, если занятий нет
func (ws *WeeklySchedule) Get(index int) (*TimeInterval, error) {
	if index < 0 || index >= DaysInWeek {
		return nil, fmt.Errorf("get weekday %d: %w", index, ErrIndex)
	}
	return ws.days[index], nil
}

// Day возвращает интервал для дня недели, nil для пустого или неверного дня
func (ws *WeeklySchedule) Day(day time.Weekday) *TimeInterval {
	if !validDay(day) {
		return nil
	}
	return ws.days[day]
}

// Days возвращает дни с занятиями в порядке индексов
func (ws *WeeklySchedule) Days() []time.Weekday {
	var days []time.Weekday
	for i, interval := range ws.days {
		if interval != nil {
			days = append(days, time.Weekday(i))
		}
	}
	return days
}

// Len возвращает число заполненных дней
func (ws *WeeklySchedule) Len() int {
	return len(ws.Days())
}

// TotalSeconds суммирует длительность занятий за неделю
func (ws *WeeklySchedule) TotalSeconds() int {
	total := 0
	for _, interval := range ws.days {
		if interval != nil {
			total += interval.DurationSeconds()
		}
	}
	return total
}

// Merge переносит заполненные дни other в ws; дни other заменяют существующие
func (ws *WeeklySchedule) Merge(other *WeeklySchedule) {
	if other == nil {
		return
	}
	for i, interval := range other.days {
		if interval != nil {
			ws.days[i] = interval
		}
	}
}

// String выводит по строке на каждый заполненный день: "Mo 08:00:00 - 09:00:00"
func (ws *WeeklySchedule) String() string {
	lines := make([]string, 0, DaysInWeek)
	for _, day := range ws.Days() {
		lines = append(lines, DayCode(day)+" "+ws.days[day].String())
	}
	return strings.Join(lines, "\n")
}
