package ergo

import "posture-bot/internal/domain/entity"

// neutralPose — стоящий прямо человек, локти под 90°, все точки уверенные.
func neutralPose() entity.PoseSample {
	coords := [entity.KeypointCount][2]float64{
		{0.50, 0.20}, // нос
		{0.48, 0.18}, {0.52, 0.18}, // глаза
		{0.46, 0.19}, {0.54, 0.19}, // уши
		{0.42, 0.30}, {0.58, 0.30}, // плечи
		{0.40, 0.42}, {0.60, 0.42}, // локти
		{0.30, 0.40}, {0.70, 0.40}, // запястья
		{0.44, 0.52}, {0.56, 0.52}, // бёдра
		{0.44, 0.70}, {0.56, 0.70}, // колени
		{0.44, 0.88}, {0.56, 0.88}, // лодыжки
	}

	sample := make(entity.PoseSample, entity.KeypointCount)
	for i, c := range coords {
		sample[i] = entity.Keypoint{X: c[0], Y: c[1], Confidence: 0.9}
	}
	return sample
}

// withPoint возвращает копию скелета с заменённой точкой.
func withPoint(p entity.PoseSample, idx int, k entity.Keypoint) entity.PoseSample {
	out := make(entity.PoseSample, len(p))
	copy(out, p)
	out[idx] = k
	return out
}

// mirrorIndex — парный индекс точки при зеркальном отражении кадра.
var mirrorIndex = [entity.KeypointCount]int{
	entity.KeypointNose,
	entity.KeypointRightEye, entity.KeypointLeftEye,
	entity.KeypointRightEar, entity.KeypointLeftEar,
	entity.KeypointRightShoulder, entity.KeypointLeftShoulder,
	entity.KeypointRightElbow, entity.KeypointLeftElbow,
	entity.KeypointRightWrist, entity.KeypointLeftWrist,
	entity.KeypointRightHip, entity.KeypointLeftHip,
	entity.KeypointRightKnee, entity.KeypointLeftKnee,
	entity.KeypointRightAnkle, entity.KeypointLeftAnkle,
}

// mirrored отражает скелет по горизонтали, меняя левые и правые точки
// местами вместе с их уверенностями.
func mirrored(p entity.PoseSample) entity.PoseSample {
	out := make(entity.PoseSample, len(p))
	for i := range p {
		src := p[mirrorIndex[i]]
		out[i] = entity.Keypoint{X: 1 - src.X, Y: src.Y, Confidence: src.Confidence}
	}
	return out
}
