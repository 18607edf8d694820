package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu     UserState = "main_menu"     // В главном меню
	StateAwaitingPose UserState = "awaiting_pose" // Ожидание данных позы
	StateProcessing   UserState = "processing"    // Обработка кадра
)

// User представляет пользователя бота
type User struct {
	ID             int64     // Telegram User ID
	ChatID         int64     // Telegram Chat ID
	State          UserState // Текущее состояние пользователя
	Method         Method    // Выбранный метод оценки
	ManualWeightKg *float64  // Вес груза, заданный вручную (nil — не задан)
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
		Method: MethodREBA,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// ToggleMethod переключает метод оценки между RULA и REBA
func (u *User) ToggleMethod() {
	if u.Method == MethodRULA {
		u.Method = MethodREBA
	} else {
		u.Method = MethodRULA
	}
}

// SetManualWeight задаёт вес груза вручную; отрицательное значение
// сбрасывает ручной ввод
func (u *User) SetManualWeight(kg float64) {
	if kg < 0 {
		u.ManualWeightKg = nil
		return
	}
	u.ManualWeightKg = &kg
}
