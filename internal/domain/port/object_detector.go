package port

import (
	"context"

	"posture-bot/internal/domain/entity"
)

// ObjectDetector интерфейс детектора внешних объектов. Модель — чёрный
// ящик: рамки выдаются в тех же нормализованных координатах, что и скелет.
type ObjectDetector interface {
	// Detect возвращает найденные на изображении объекты
	Detect(ctx context.Context, imageData []byte) ([]entity.DetectedObject, error)
}
