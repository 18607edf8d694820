package storage

import (
	"context"
	"sync"

	"posture-bot/internal/domain/entity"
	"posture-bot/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище пользователей и их настроек
// оценки, ключ — Telegram User ID
type MemoryUserRepository struct {
	mu            sync.RWMutex
	users         map[int64]*entity.User
	defaultMethod entity.Method
}

// NewMemoryUserRepository создаёт новое in-memory хранилище.
// defaultMethod присваивается новым пользователям; пустое значение
// оставляет метод по умолчанию из entity.NewUser.
func NewMemoryUserRepository(defaultMethod entity.Method) *MemoryUserRepository {
	return &MemoryUserRepository{
		users:         make(map[int64]*entity.User),
		defaultMethod: defaultMethod,
	}
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	r.mu.RLock()
	user, exists := r.users[userID]
	r.mu.RUnlock()

	if exists {
		return user, nil
	}

	// Создаём нового пользователя
	newUser := entity.NewUser(userID, chatID)
	if r.defaultMethod != "" {
		newUser.Method = r.defaultMethod
	}

	r.mu.Lock()
	r.users[userID] = newUser
	r.mu.Unlock()

	return newUser, nil
}

// Save сохраняет состояние пользователя
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	r.users[user.ID] = user
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
