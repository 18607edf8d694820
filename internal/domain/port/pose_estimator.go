package port

import (
	"context"

	"posture-bot/internal/domain/entity"
)

// PoseEstimator интерфейс модели оценки позы. Модель — чёрный ящик:
// на вход изображение, на выход 17 ключевых точек в нормализованных
// координатах.
type PoseEstimator interface {
	// Estimate возвращает скелет человека на изображении
	Estimate(ctx context.Context, imageData []byte) (entity.PoseSample, error)
}
