package schedule

import (
	"fmt"
	"strings"
	"time"
)

// TimeInterval промежуток (start, stop) внутри одних суток.
// Порядок не проверяется: stop может быть раньше start.
type TimeInterval struct {
	start ClockTime
	stop  ClockTime
}

// NewTimeInterval создаёт интервал из двух моментов
func NewTimeInterval(start, stop ClockTime) *TimeInterval {
	return &TimeInterval{start: start, stop: stop}
}

// ParseTimeInterval разбирает начало и конец гибким парсером
func ParseTimeInterval(startStr, stopStr string) (*TimeInterval, error) {
	start, err := ParseFlexible(startStr)
	if err != nil {
		return nil, fmt.Errorf("parse interval start: %w", err)
	}
	stop, err := ParseFlexible(stopStr)
	if err != nil {
		return nil, fmt.Errorf("parse interval stop: %w", err)
	}
	return NewTimeInterval(start, stop), nil
}

// ParseTimeRange разбирает строку вида "13:57 - 14:00"
func ParseTimeRange(s string) (*TimeInterval, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("parse time range %q: %w", s, ErrFormat)
	}

	startStr := strings.TrimSpace(parts[0])
	stopStr := strings.TrimSpace(parts[1])
	if startStr == "" || stopStr == "" {
		return nil, fmt.Errorf("parse time range %q: %w", s, ErrFormat)
	}

	return ParseTimeInterval(startStr, stopStr)
}

// Start возвращает начало интервала
func (ti *TimeInterval) Start() ClockTime {
	return ti.start
}

// Stop возвращает конец интервала
func (ti *TimeInterval) Stop() ClockTime {
	return ti.stop
}

// DurationSeconds возвращает длительность в секундах (модуль разницы, без перехода через полночь)
func (ti *TimeInterval) DurationSeconds() int {
	return ti.start.Difference(ti.stop)
}

// Duration возвращает длительность как time.Duration
func (ti *TimeInterval) Duration() time.Duration {
	return time.Duration(ti.DurationSeconds()) * time.Second
}

// DayFraction возвращает долю суток, которую занимает интервал
func (ti *TimeInterval) DayFraction() float64 {
	return float64(ti.DurationSeconds()) / secondsPerDay
}

func (ti *TimeInterval) String() string {
	return ti.start.String() + " - " + ti.stop.String()
}
