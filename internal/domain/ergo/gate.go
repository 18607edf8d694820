package ergo

import (
	"math"

	"posture-bot/internal/domain/entity"
)

// ConfidenceThreshold — порог уверенности, ниже которого точка считается
// отсутствующей.
const ConfidenceThreshold = 0.3

// SelectSide выбирает сторону тела по средней уверенности тройки
// плечо-локоть-запястье. При равенстве берётся правая.
func SelectSide(p entity.PoseSample) entity.Side {
	left := (p[entity.KeypointLeftShoulder].Confidence +
		p[entity.KeypointLeftElbow].Confidence +
		p[entity.KeypointLeftWrist].Confidence) / 3
	right := (p[entity.KeypointRightShoulder].Confidence +
		p[entity.KeypointRightElbow].Confidence +
		p[entity.KeypointRightWrist].Confidence) / 3

	if left > right {
		return entity.SideLeft
	}
	return entity.SideRight
}

// visible проверяет, что точка уверенно распознана.
func visible(k entity.Keypoint) bool {
	return k.Confidence > ConfidenceThreshold
}

// Validate решает, достаточно ли в скелете сигнала для оценки выбранным
// методом. Возвращает выбранную сторону и признак пригодности.
// Непригодный кадр — штатная ситуация: вызывающий код обязан выдать
// явный результат "нет данных", а не нулевые баллы.
func Validate(p entity.PoseSample, method entity.Method) (entity.Side, bool) {
	if !p.IsComplete() {
		return entity.SideRight, false
	}

	side := SelectSide(p)

	required := []int{
		entity.KeypointNose,
		side.Shoulder(),
		side.Elbow(),
		side.Wrist(),
		side.Hip(),
	}
	if method == entity.MethodREBA {
		required = append(required, side.Knee(), side.Ankle())
	}
	for _, idx := range required {
		if !visible(p[idx]) {
			return side, false
		}
	}

	// Середина таза считается только по двум уверенным бёдрам.
	if !visible(p[entity.KeypointLeftHip]) || !visible(p[entity.KeypointRightHip]) {
		return side, false
	}

	return side, true
}

// Angles вычисляет углы суставов для выбранной стороны. Середины плеч и
// таза берутся двусторонние, односторонние суставы — по стороне side.
func Angles(p entity.PoseSample, side entity.Side) entity.JointAngles {
	shoulderMid := entity.Midpoint(p[entity.KeypointLeftShoulder], p[entity.KeypointRightShoulder])
	hipMid := entity.Midpoint(p[entity.KeypointLeftHip], p[entity.KeypointRightHip])

	shoulder := p[side.Shoulder()]
	elbow := p[side.Elbow()]
	wrist := p[side.Wrist()]
	hip := p[side.Hip()]
	knee := p[side.Knee()]
	ankle := p[side.Ankle()]

	return entity.JointAngles{
		Trunk:    VerticalDeviation(hipMid, shoulderMid),
		Neck:     VerticalDeviation(shoulderMid, p[entity.KeypointNose]),
		// Плечо меряется с учётом знака по вертикали: рука выше
		// горизонтали должна давать угол больше 90.
		UpperArm: ElevationAngle(shoulder, elbow),
		LowerArm: VertexAngle(shoulder, elbow, wrist),
		// Запястье в топологии из 17 точек не имеет точки кисти,
		// поэтому сгиб приближается отклонением предплечья от горизонтали.
		Wrist: math.Abs(90 - VerticalDeviation(elbow, wrist)),
		Thigh: VerticalDeviation(hip, knee),
		Knee:  VertexAngle(hip, knee, ankle),
	}
}
