package ergo

import (
	"math"

	"posture-bot/internal/domain/entity"
)

// Радиусы привязки объекта к телу, в нормализованных координатах.
const (
	wristGrabRadius = 0.08
	torsoGrabRadius = 0.12 // 1.5 радиуса запястья
)

// WeightCatalog отдаёт справочный вес класса объекта в килограммах.
type WeightCatalog interface {
	WeightKg(class string) float64
}

// dist — евклидово расстояние между центром рамки и точкой скелета.
func dist(cx, cy float64, k entity.Keypoint) float64 {
	return math.Hypot(cx-k.X, cy-k.Y)
}

// AnalyzeObjects сопоставляет найденные детектором объекты с руками и
// корпусом. Объект считается удерживаемым, если его центр рядом с уверенно
// распознанным запястьем либо с серединой корпуса (средней точкой локтей).
func AnalyzeObjects(p entity.PoseSample, objects []entity.DetectedObject, catalog WeightCatalog) entity.ObjectInteraction {
	out := entity.ObjectInteraction{}
	if !p.IsComplete() || len(objects) == 0 {
		return out
	}

	torsoMid := entity.Midpoint(p[entity.KeypointLeftElbow], p[entity.KeypointRightElbow])
	wrists := []entity.Keypoint{
		p[entity.KeypointLeftWrist],
		p[entity.KeypointRightWrist],
	}

	for _, obj := range objects {
		cx, cy := obj.Box.Center()

		held := false
		for _, w := range wrists {
			if visible(w) && dist(cx, cy, w) <= wristGrabRadius {
				held = true
				break
			}
		}
		if !held && visible(torsoMid) && dist(cx, cy, torsoMid) <= torsoGrabRadius {
			held = true
		}
		if !held {
			continue
		}

		out.Held = append(out.Held, obj)
		out.TotalEstimatedWeightKg += catalog.WeightKg(obj.Class)
	}

	out.IsHoldingObject = len(out.Held) > 0
	return out
}
