package schedule

import (
	"fmt"
	"time"
)

// DaysInWeek число дней в неделе, индексы 0 (воскресенье) - 6 (суббота)
const DaysInWeek = 7

var dayCodes = [DaysInWeek]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// DayCode возвращает двухбуквенный код дня, например "Mo"
func DayCode(day time.Weekday) string {
	if !validDay(day) {
		return "?"
	}
	return dayCodes[day]
}

// ParseDayCode разбирает двухбуквенный код дня (с учётом регистра)
func ParseDayCode(code string) (time.Weekday, error) {
	for i, c := range dayCodes {
		if c == code {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day code %q: %w", code, ErrFormat)
}

// ParseDayCodes разбирает склеенные коды дней, например "MoWeFr"
func ParseDayCodes(codes string) ([]time.Weekday, error) {
	if codes == "" || len(codes)%2 != 0 {
		return nil, fmt.Errorf("parse day codes %q: %w", codes, ErrFormat)
	}

	days := make([]time.Weekday, 0, len(codes)/2)
	for i := 0; i < len(codes); i += 2 {
		day, err := ParseDayCode(codes[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("parse day codes %q: %w", codes, err)
		}
		days = append(days, day)
	}
	return days, nil
}

// ParseDayName разбирает полное английское название дня ("Sunday".."Saturday")
func ParseDayName(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q: %w", name, ErrFormat)
}

func validDay(day time.Weekday) bool {
	return day >= time.Sunday && day <= time.Saturday
}
