package schedule

import "errors"

// Ошибки разбора и доступа к расписанию
var (
	ErrFormat      = errors.New("invalid format")
	ErrIndex       = errors.New("weekday index out of range")
	ErrNilInterval = errors.New("nil time interval")
)
