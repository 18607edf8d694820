package ergo

import (
	"math"

	"posture-bot/internal/domain/entity"
)

// Корректировка итогового балла на эффективный вес груза.

// weightMultiplier — множитель балла по весу, ступенями.
func weightMultiplier(kg float64) float64 {
	switch {
	case kg > 23:
		return 3.0
	case kg > 10:
		return 2.0
	case kg > 5:
		return 1.5
	default:
		return 1.0
	}
}

// riskFor пересчитывает уровень риска по шкале того метода, которым был
// получен базовый балл.
func riskFor(method entity.Method, final int) entity.RiskLevel {
	if method == entity.MethodRULA {
		return rulaRisk(final)
	}
	return rebaRisk(final)
}

// Adjust пересчитывает базовый итоговый балл с учётом эффективного веса.
// Балл умножается на ступенчатый множитель, округляется вверх и
// ограничивается шкалой [1,7].
func Adjust(base *entity.Assessment, effectiveKg float64, source entity.WeightSource) *entity.AdjustedScore {
	mult := weightMultiplier(effectiveKg)
	final := clampInt(int(math.Ceil(float64(base.Final)*mult)), 1, 7)

	return &entity.AdjustedScore{
		Final:             final,
		Risk:              riskFor(base.Method, final),
		WeightMultiplier:  mult,
		EffectiveWeightKg: effectiveKg,
		Source:            source,
	}
}

// EffectiveWeight выбирает источник веса: явный ручной ввод важнее
// распознанных объектов, объекты важнее геометрической эвристики.
func EffectiveWeight(manual *float64, interaction *entity.ObjectInteraction, estimate entity.LoadEstimate) (float64, entity.WeightSource) {
	if manual != nil {
		return *manual, entity.WeightManual
	}
	if interaction != nil && interaction.IsHoldingObject {
		return interaction.TotalEstimatedWeightKg, entity.WeightObjectDetected
	}
	return estimate.EstimatedWeightKg, entity.WeightHeuristic
}
