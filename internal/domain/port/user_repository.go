package port

import (
	"context"

	"posture-bot/internal/domain/entity"
)

// UserRepository интерфейс хранилища пользователей и их настроек оценки
type UserRepository interface {
	// Get возвращает пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет состояние и настройки пользователя
	Save(ctx context.Context, user *entity.User) error
}
