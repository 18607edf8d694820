package ergo

import "posture-bot/internal/domain/entity"

// Метод A: оценка верхних конечностей. Баллы по каждому суставу растут
// с углом отклонения и сводятся тремя таблицами к итогу [1,7].

func rulaUpperArmScore(angle float64) int {
	switch {
	case angle <= 20:
		return 1
	case angle <= 45:
		return 2
	case angle <= 90:
		return 3
	default:
		return 4
	}
}

func rulaLowerArmScore(angle float64) int {
	// 60–100° — нейтральная зона локтя.
	if angle >= 60 && angle <= 100 {
		return 1
	}
	return 2
}

func rulaWristScore(angle float64) int {
	switch {
	case angle <= 15:
		return 1
	case angle <= 30:
		return 2
	default:
		return 3
	}
}

func rulaNeckScore(angle float64) int {
	switch {
	case angle <= 10:
		return 1
	case angle <= 20:
		return 2
	default:
		return 3
	}
}

func rulaTrunkScore(angle float64) int {
	switch {
	case angle <= 5:
		return 1
	case angle <= 20:
		return 2
	case angle <= 60:
		return 3
	default:
		return 4
	}
}

// rulaRisk переводит итоговый балл в уровень риска метода A.
func rulaRisk(final int) entity.RiskLevel {
	switch {
	case final <= 2:
		return entity.RiskNegligible
	case final <= 4:
		return entity.RiskLow
	case final <= 6:
		return entity.RiskMedium
	default:
		return entity.RiskCritical
	}
}

// AssessRULA оценивает скелет методом A. Непригодный кадр даёт явный
// результат "нет данных".
func AssessRULA(p entity.PoseSample) *entity.Assessment {
	side, ok := Validate(p, entity.MethodRULA)
	if !ok {
		return entity.NewIndeterminate(entity.MethodRULA)
	}

	angles := Angles(p, side)

	comps := entity.ComponentScores{
		UpperArm: rulaUpperArmScore(angles.UpperArm),
		LowerArm: rulaLowerArmScore(angles.LowerArm),
		Wrist:    rulaWristScore(angles.Wrist),
		Neck:     rulaNeckScore(angles.Neck),
		Trunk:    rulaTrunkScore(angles.Trunk),
	}

	scoreA := rulaTableA[clampInt(comps.UpperArm, 1, 4)-1][clampInt(comps.LowerArm, 1, 2)-1][clampInt(comps.Wrist, 1, 3)-1]
	scoreB := rulaTableB[clampInt(comps.Neck, 1, 3)-1][clampInt(comps.Trunk, 1, 4)-1]
	final := clampInt(rulaTableC[clampInt(scoreA, 1, 8)-1][clampInt(scoreB, 1, 7)-1], 1, 7)

	return &entity.Assessment{
		Method:     entity.MethodRULA,
		Side:       side,
		Angles:     angles,
		Components: comps,
		ScoreA:     scoreA,
		ScoreB:     scoreB,
		Final:      final,
		Risk:       rulaRisk(final),
	}
}
