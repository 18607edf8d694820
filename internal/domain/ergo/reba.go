package ergo

import (
	"math"

	"posture-bot/internal/domain/entity"
)

// Метод B: оценка всего тела. К базовым баллам суставов добавляются
// модификаторы, распознаваемые по геометрии скелета, и слагаемое за вес
// груза. Итог сводится к общей шкале [1,7].

// Пороги геометрических модификаторов, в нормализованных координатах
// и градусах.
const (
	trunkTwistSpanRatio   = 0.6  // плечи ýже таза — корпус развёрнут
	trunkSideBendTiltDeg  = 10.0 // наклон линии плеч от горизонтали
	neckOffsetMargin      = 0.05 // смещение носа от середины плеч
	unevenLegsMargin      = 0.04 // разница высоты лодыжек
	raisedShoulderMargin  = 0.04 // разница высоты плеч
	abductionOffsetMargin = 0.10 // вынос локтя вбок от плеча
	midlineCrossMargin    = 0.02 // заход запястья за ось тела
	wristDeviationDeg     = 45.0 // сильный увод предплечья от нейтрали
)

func rebaTrunkScore(angle float64) int {
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

func rebaNeckScore(angle float64) int {
	switch {
	case angle <= 20:
		return 1
	case angle <= 45:
		return 2
	default:
		return 3
	}
}

// rebaLegsScore оценивает ноги по средней величине сгиба бедра и колена.
func rebaLegsScore(thigh, kneeInterior float64) int {
	flexion := (thigh + (180 - kneeInterior)) / 2
	switch {
	case flexion <= 30:
		return 1
	case flexion <= 55:
		return 2
	default:
		return 3
	}
}

func rebaUpperArmScore(angle float64) int {
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

func rebaLowerArmScore(angle float64) int {
	if angle >= 60 && angle <= 100 {
		return 1
	}
	return 2
}

func rebaWristScore(angle float64) int {
	switch {
	case angle <= 15:
		return 1
	case angle <= 30:
		return 2
	default:
		return 3
	}
}

// rebaLoadScore — слагаемое за вес груза, добавляется к баллу группы A.
func rebaLoadScore(kg float64) int {
	switch {
	case kg < 5:
		return 0
	case kg <= 10:
		return 1
	case kg <= 20:
		return 2
	default:
		return 3
	}
}

// rebaRisk переводит итоговый балл в уровень риска метода B.
func rebaRisk(final int) entity.RiskLevel {
	switch {
	case final <= 1:
		return entity.RiskNegligible
	case final <= 3:
		return entity.RiskLow
	case final <= 5:
		return entity.RiskMedium
	default:
		return entity.RiskHigh
	}
}

// trunkTwisted: при развороте корпуса видимая ширина плеч сжимается
// относительно таза.
func trunkTwisted(p entity.PoseSample) bool {
	shoulderSpan := math.Abs(p[entity.KeypointLeftShoulder].X - p[entity.KeypointRightShoulder].X)
	hipSpan := math.Abs(p[entity.KeypointLeftHip].X - p[entity.KeypointRightHip].X)
	if hipSpan == 0 {
		return false
	}
	return shoulderSpan/hipSpan < trunkTwistSpanRatio
}

// trunkSideBent: линия плеч заметно отклонена от горизонтали.
func trunkSideBent(p entity.PoseSample) bool {
	dx := math.Abs(p[entity.KeypointLeftShoulder].X - p[entity.KeypointRightShoulder].X)
	dy := math.Abs(p[entity.KeypointLeftShoulder].Y - p[entity.KeypointRightShoulder].Y)
	if dx == 0 && dy == 0 {
		return false
	}
	tilt := math.Atan2(dy, dx) * 180 / math.Pi
	return tilt > trunkSideBendTiltDeg
}

// neckBentOrTwisted: нос смещён вбок от середины плеч.
func neckBentOrTwisted(p entity.PoseSample) bool {
	mid := entity.Midpoint(p[entity.KeypointLeftShoulder], p[entity.KeypointRightShoulder])
	return math.Abs(p[entity.KeypointNose].X-mid.X) > neckOffsetMargin
}

// legsUneven: лодыжки на разной высоте — опора на одну ногу или шаг.
func legsUneven(p entity.PoseSample) bool {
	l, r := p[entity.KeypointLeftAnkle], p[entity.KeypointRightAnkle]
	if !visible(l) || !visible(r) {
		return false
	}
	return math.Abs(l.Y-r.Y) > unevenLegsMargin
}

// shoulderRaised: одно плечо поднято относительно другого.
func shoulderRaised(p entity.PoseSample) bool {
	return math.Abs(p[entity.KeypointLeftShoulder].Y-p[entity.KeypointRightShoulder].Y) > raisedShoulderMargin
}

// armAbducted: локоть уведён вбок от плеча.
func armAbducted(p entity.PoseSample, side entity.Side) bool {
	return math.Abs(p[side.Elbow()].X-p[side.Shoulder()].X) > abductionOffsetMargin
}

// armCrossesMidline: запястье ушло за вертикальную ось тела на чужую сторону.
func armCrossesMidline(p entity.PoseSample, side entity.Side) bool {
	mid := entity.Midpoint(p[entity.KeypointLeftShoulder], p[entity.KeypointRightShoulder])
	shoulderOffset := p[side.Shoulder()].X - mid.X
	wristOffset := p[side.Wrist()].X - mid.X
	return shoulderOffset*wristOffset < 0 && math.Abs(wristOffset) > midlineCrossMargin
}

// AssessREBA оценивает скелет методом B с учётом веса груза loadKg.
// Непригодный кадр даёт явный результат "нет данных".
func AssessREBA(p entity.PoseSample, loadKg float64) *entity.Assessment {
	side, ok := Validate(p, entity.MethodREBA)
	if !ok {
		return entity.NewIndeterminate(entity.MethodREBA)
	}

	angles := Angles(p, side)

	trunk := rebaTrunkScore(angles.Trunk)
	if trunkTwisted(p) {
		trunk++
	}
	if trunkSideBent(p) {
		trunk++
	}
	trunk = clampInt(trunk, 1, 5)

	neck := rebaNeckScore(angles.Neck)
	if neckBentOrTwisted(p) {
		neck++
	}
	neck = clampInt(neck, 1, 4)

	legs := rebaLegsScore(angles.Thigh, angles.Knee)
	if legsUneven(p) {
		legs++
	}
	legs = clampInt(legs, 1, 4)

	upperArm := rebaUpperArmScore(angles.UpperArm)
	if shoulderRaised(p) {
		upperArm++
	}
	if armAbducted(p, side) {
		upperArm++
	}
	upperArm = clampInt(upperArm, 1, 6)

	lowerArm := rebaLowerArmScore(angles.LowerArm)
	if armCrossesMidline(p, side) {
		lowerArm++
	}
	lowerArm = clampInt(lowerArm, 1, 3)

	wrist := rebaWristScore(angles.Wrist)
	if angles.Wrist > wristDeviationDeg {
		wrist++
	}
	wrist = clampInt(wrist, 1, 4)

	comps := entity.ComponentScores{
		Trunk:    trunk,
		Neck:     neck,
		Legs:     legs,
		UpperArm: upperArm,
		LowerArm: lowerArm,
		Wrist:    wrist,
	}

	scoreA := rebaTableA[clampInt(trunk, 1, 5)-1][clampInt(neck+legs, 2, 8)-2]
	scoreA = clampInt(scoreA+rebaLoadScore(loadKg), 1, 12)
	scoreB := rebaTableB[clampInt(upperArm, 1, 6)-1][clampInt(lowerArm+wrist, 2, 7)-2]
	final := clampInt(rebaTableC[clampInt(scoreA, 1, 12)-1][clampInt(scoreB, 1, 12)-1], 1, 7)

	return &entity.Assessment{
		Method:     entity.MethodREBA,
		Side:       side,
		Angles:     angles,
		Components: comps,
		ScoreA:     scoreA,
		ScoreB:     scoreB,
		Final:      final,
		Risk:       rebaRisk(final),
	}
}
