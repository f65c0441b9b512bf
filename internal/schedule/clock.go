package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// ClockTime время суток, хранится как число секунд от полуночи.
// Диапазон не проверяется: 90 минут или 30 часов просто складываются в общее число секунд.
type ClockTime struct {
	seconds int
}

// NewClockTime создаёт время из часов, минут и секунд без проверки диапазонов
func NewClockTime(hours, minutes, seconds int) ClockTime {
	return ClockTime{seconds: toSeconds(hours, minutes, seconds)}
}

// NewClockTimeHM создаёт время из часов и минут
func NewClockTimeHM(hours, minutes int) ClockTime {
	return NewClockTime(hours, minutes, 0)
}

func toSeconds(hours, minutes, seconds int) int {
	return hours*secondsPerHour + minutes*secondsPerMinute + seconds
}

// ParseStrict разбирает 12-часовой формат "H:MMAM" / "H:MMPM", например "5:15PM" или "5:15 PM".
// Минуты - два символа сразу после двоеточия, маркер A/P (заглавный) стоит предпоследним символом,
// между минутами и маркером допускаются только пробелы. 12AM даёт 0 часов, 12PM - 12 часов.
func ParseStrict(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("parse meridiem time %q: %w", s, ErrFormat)
	}

	rest := parts[1]
	if len(rest) < 4 || rest[len(rest)-1] != 'M' || strings.Trim(rest[2:len(rest)-2], " ") != "" {
		return ClockTime{}, fmt.Errorf("parse meridiem time %q: %w", s, ErrFormat)
	}

	hours, err := parseField(parts[0])
	if err != nil {
		return ClockTime{}, fmt.Errorf("parse meridiem time %q: %w", s, err)
	}
	minutes, err := parseField(rest[:2])
	if err != nil {
		return ClockTime{}, fmt.Errorf("parse meridiem time %q: %w", s, err)
	}

	switch rest[len(rest)-2] {
	case 'A':
		if hours == 12 {
			hours = 0
		}
	case 'P':
		if hours != 12 {
			hours += 12
		}
	default:
		return ClockTime{}, fmt.Errorf("parse meridiem time %q: %w", s, ErrFormat)
	}

	return NewClockTimeHM(hours, minutes), nil
}

// ParseFlexible разбирает "H", "H:MM" или "H:MM:SS". Отсутствующие поля равны нулю.
func ParseFlexible(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 0 || len(parts) > 3 {
		return ClockTime{}, fmt.Errorf("parse time %q: %w", s, ErrFormat)
	}

	var fields [3]int
	for i, p := range parts {
		v, err := parseField(p)
		if err != nil {
			return ClockTime{}, fmt.Errorf("parse time %q: %w", s, err)
		}
		fields[i] = v
	}

	return NewClockTime(fields[0], fields[1], fields[2]), nil
}

// parseField разбирает неотрицательное десятичное поле
func parseField(field string) (int, error) {
	if field == "" {
		return 0, fmt.Errorf("empty field: %w", ErrFormat)
	}
	v, err := strconv.ParseUint(field, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", field, ErrFormat)
	}
	return int(v), nil
}

// TotalSeconds возвращает число секунд от полуночи
func (t ClockTime) TotalSeconds() int {
	return t.seconds
}

// Hours возвращает часы как total/3600 по модулю 60.
// Для времени до 24:00 совпадает с часом суток; для часов суток см. WallHours.
func (t ClockTime) Hours() int {
	return t.seconds / secondsPerHour % 60
}

// WallHours возвращает час суток (по модулю 24)
func (t ClockTime) WallHours() int {
	return t.seconds / secondsPerHour % 24
}

// Minutes возвращает минуты (0-59)
func (t ClockTime) Minutes() int {
	return t.seconds / secondsPerMinute % 60
}

// Seconds возвращает секунды (0-59)
func (t ClockTime) Seconds() int {
	return t.seconds % 60
}

// Difference возвращает модуль разницы в секундах
func (t ClockTime) Difference(other ClockTime) int {
	d := t.seconds - other.seconds
	if d < 0 {
		return -d
	}
	return d
}

// Before сообщает, что t раньше other
func (t ClockTime) Before(other ClockTime) bool {
	return t.seconds < other.seconds
}

// Duration возвращает время от полуночи как time.Duration
func (t ClockTime) Duration() time.Duration {
	return time.Duration(t.seconds) * time.Second
}

// String форматирует время как HH:MM:SS
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours(), t.Minutes(), t.Seconds())
}
