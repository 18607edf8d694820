package ergo

import (
	"math"

	"posture-bot/internal/domain/entity"
)

// Эвристическая оценка переносимого груза по одной лишь геометрии скелета.
// Никакой обученной модели: только углы, смещения и асимметрия. Оценка
// сознательно грубая, но детерминированная.

const (
	liftElbowBandLow   = 50.0  // нижняя граница рабочего сгиба локтя
	liftElbowBandHigh  = 130.0 // верхняя граница рабочего сгиба локтя
	liftSymmetryDeg    = 25.0  // допустимая разница сгиба локтей при подъёме
	carryElbowMin      = 150.0 // почти прямые руки при переносе
	overheadMargin     = 0.05  // запястье выше плеча минимум на эту долю кадра
	awayOffsetMargin   = 0.04  // запястья отведены от плеч по горизонтали
	extendedReach      = 0.15  // вытянутые руки
	strongAsymmetryDeg = 40.0  // выраженная односторонняя нагрузка
	forwardLeanDeg     = 20.0  // наклон корпуса вперёд
	lateralWristOffset = 0.10  // боковой вынос запястья при наклоне
	spineCompensation  = 15.0  // компенсаторное отклонение позвоночника
)

// Базовые веса и надбавки, в килограммах.
const (
	baseLiftingKg   = 5.0
	baseCarryingKg  = 3.0
	bonusOverheadKg = 2.0
	bonusAsymmetry  = 1.5
	bonusLeanKg     = 1.5
	bonusSpineKg    = 1.0
)

// Фиксированные уровни уверенности оценки: это явный сигнал, а не
// вычисленная вероятность.
const (
	loadConfidenceDetected = 0.7
	loadConfidenceIdle     = 0.3
)

// EstimateLoad классифицирует позу подъёма/переноса и оценивает вес груза.
// Вес выдаётся ненулевым только при совпадении минимум двух независимых
// признаков — защита от ложных срабатываний.
func EstimateLoad(p entity.PoseSample) entity.LoadEstimate {
	idle := entity.LoadEstimate{
		Confidence: loadConfidenceIdle,
		Posture:    entity.PosturePattern{ArmPosition: entity.ArmClose, LoadDirection: entity.LoadNone},
	}
	if !p.IsComplete() {
		return idle
	}

	// Для двусторонних признаков нужны обе руки и оба бедра.
	needed := []int{
		entity.KeypointLeftShoulder, entity.KeypointRightShoulder,
		entity.KeypointLeftElbow, entity.KeypointRightElbow,
		entity.KeypointLeftWrist, entity.KeypointRightWrist,
		entity.KeypointLeftHip, entity.KeypointRightHip,
	}
	for _, idx := range needed {
		if !visible(p[idx]) {
			return idle
		}
	}

	lShoulder, rShoulder := p[entity.KeypointLeftShoulder], p[entity.KeypointRightShoulder]
	lElbow, rElbow := p[entity.KeypointLeftElbow], p[entity.KeypointRightElbow]
	lWrist, rWrist := p[entity.KeypointLeftWrist], p[entity.KeypointRightWrist]

	lElbowAngle := VertexAngle(lShoulder, lElbow, lWrist)
	rElbowAngle := VertexAngle(rShoulder, rElbow, rWrist)

	shoulderMid := entity.Midpoint(lShoulder, rShoulder)
	hipMid := entity.Midpoint(p[entity.KeypointLeftHip], p[entity.KeypointRightHip])
	spineDeviation := VerticalDeviation(hipMid, shoulderMid)

	inBand := func(a float64) bool { return a >= liftElbowBandLow && a <= liftElbowBandHigh }
	bothBent := inBand(lElbowAngle) && inBand(rElbowAngle)
	symmetricBend := math.Abs(lElbowAngle-rElbowAngle) < liftSymmetryDeg

	wristsBelowAway := lWrist.Y > lShoulder.Y && rWrist.Y > rShoulder.Y &&
		math.Abs(lWrist.X-lShoulder.X) > awayOffsetMargin &&
		math.Abs(rWrist.X-rShoulder.X) > awayOffsetMargin

	overhead := lWrist.Y < lShoulder.Y-overheadMargin || rWrist.Y < rShoulder.Y-overheadMargin

	isLifting := (bothBent && symmetricBend && wristsBelowAway) || overhead

	lHip, rHip := p[entity.KeypointLeftHip], p[entity.KeypointRightHip]
	isCarrying := !isLifting &&
		lElbowAngle >= carryElbowMin && rElbowAngle >= carryElbowMin &&
		lWrist.Y > lHip.Y && rWrist.Y > rHip.Y

	maxReach := math.Max(math.Abs(lWrist.X-lShoulder.X), math.Abs(rWrist.X-rShoulder.X))

	armPosition := entity.ArmClose
	switch {
	case overhead:
		armPosition = entity.ArmOverhead
	case maxReach > extendedReach:
		armPosition = entity.ArmExtended
	}

	strongAsymmetry := math.Abs(lElbowAngle-rElbowAngle) > strongAsymmetryDeg
	leanWithReach := spineDeviation > forwardLeanDeg && maxReach > lateralWristOffset
	spineCompensating := spineDeviation > spineCompensation

	direction := entity.LoadNone
	switch {
	case overhead:
		direction = entity.LoadOverhead
	case isCarrying && strongAsymmetry:
		direction = entity.LoadSide
	case isLifting || isCarrying:
		direction = entity.LoadFront
	}

	indicators := 0
	weight := 0.0
	if isLifting {
		indicators++
		weight += baseLiftingKg
	} else if isCarrying {
		indicators++
		weight += baseCarryingKg
	}
	if overhead {
		indicators++
		weight += bonusOverheadKg
	}
	if strongAsymmetry {
		indicators++
		weight += bonusAsymmetry
	}
	if leanWithReach {
		indicators++
		weight += bonusLeanKg
	}
	if spineCompensating {
		indicators++
		weight += bonusSpineKg
	}
	if indicators < 2 {
		weight = 0
	}

	confidence := loadConfidenceIdle
	if isLifting || isCarrying {
		confidence = loadConfidenceDetected
	}

	return entity.LoadEstimate{
		EstimatedWeightKg: weight,
		Confidence:        confidence,
		Posture: entity.PosturePattern{
			IsLifting:         isLifting,
			IsCarrying:        isCarrying,
			ArmPosition:       armPosition,
			SpineDeviationDeg: spineDeviation,
			LoadDirection:     direction,
		},
	}
}
