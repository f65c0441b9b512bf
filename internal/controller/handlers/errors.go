package handlers

import (
	"errors"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/schedule"
	"github.com/Freeeeeet/timetable_bot/internal/service"
)

var (
	ErrMissingArgs  = errors.New("missing command arguments")
	ErrInvalidIndex = errors.New("invalid class number")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, schedule.ErrFormat):
		return "❌ Не удалось разобрать расписание.\n\n" + descriptorHelp
	case errors.Is(err, schedule.ErrIndex):
		return "❌ День недели должен быть от 0 (Вс) до 6 (Сб)"
	case errors.Is(err, service.ErrEmptyName):
		return "❌ Название занятия не может быть пустым"
	case errors.Is(err, service.ErrClassNotFound):
		return "❌ Занятие не найдено"
	case errors.Is(err, service.ErrNotClassOwner):
		return "❌ У вас нет доступа к этому занятию"
	case errors.Is(err, model.ErrNoRoomNumber):
		return "❌ В адресе нет номера аудитории"
	case errors.Is(err, ErrMissingArgs):
		return "❌ Не хватает параметров команды. Смотрите /help"
	case errors.Is(err, ErrInvalidIndex):
		return "❌ Неверный номер занятия. Номера есть в списке /classes"
	default:
		return "❌ Произошла ошибка"
	}
}

const descriptorHelp = "Формат: <code>ДНИ НАЧАЛО - КОНЕЦ</code>\n" +
	"Дни - двухбуквенные коды подряд: Su Mo Tu We Th Fr Sa\n" +
	"Пример: <code>MoWeFr 09:00 - 10:30</code>"
