package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Состояния для создания занятия
	StateAddClassName       UserState = "add_class_name"
	StateAddClassInstructor UserState = "add_class_instructor"
	StateAddClassLocation   UserState = "add_class_location"
	StateAddClassTimes      UserState = "add_class_times"
)

// Ключи временных данных диалога
const (
	KeyClassName       = "class_name"
	KeyClassInstructor = "class_instructor"
	KeyClassLocation   = "class_location"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]string
}
