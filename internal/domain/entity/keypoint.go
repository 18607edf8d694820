package entity

// Индексы ключевых точек в фиксированной топологии скелета (17 точек).
const (
	KeypointNose          = 0
	KeypointLeftEye       = 1
	KeypointRightEye      = 2
	KeypointLeftEar       = 3
	KeypointRightEar      = 4
	KeypointLeftShoulder  = 5
	KeypointRightShoulder = 6
	KeypointLeftElbow     = 7
	KeypointRightElbow    = 8
	KeypointLeftWrist     = 9
	KeypointRightWrist    = 10
	KeypointLeftHip       = 11
	KeypointRightHip      = 12
	KeypointLeftKnee      = 13
	KeypointRightKnee     = 14
	KeypointLeftAnkle     = 15
	KeypointRightAnkle    = 16
)

// KeypointCount — обязательная длина PoseSample.
const KeypointCount = 17

// Keypoint — одна ключевая точка тела в нормализованных координатах [0,1].
type Keypoint struct {
	X          float64 // доля ширины кадра
	Y          float64 // доля высоты кадра, растёт вниз
	Confidence float64 // уверенность модели, [0,1]
}

// Midpoint возвращает середину отрезка между двумя точками.
// Уверенность — минимальная из двух: середина не надёжнее худшей точки.
func Midpoint(a, b Keypoint) Keypoint {
	c := a.Confidence
	if b.Confidence < c {
		c = b.Confidence
	}
	return Keypoint{
		X:          (a.X + b.X) / 2,
		Y:          (a.Y + b.Y) / 2,
		Confidence: c,
	}
}

// PoseSample — полный скелет одного кадра.
type PoseSample []Keypoint

// IsComplete проверяет, что скелет содержит все 17 точек.
func (p PoseSample) IsComplete() bool {
	return len(p) == KeypointCount
}

// Side — сторона тела, выбранная для односторонних суставов.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Shoulder возвращает индекс плеча выбранной стороны.
func (s Side) Shoulder() int {
	if s == SideLeft {
		return KeypointLeftShoulder
	}
	return KeypointRightShoulder
}

// Elbow возвращает индекс локтя выбранной стороны.
func (s Side) Elbow() int {
	if s == SideLeft {
		return KeypointLeftElbow
	}
	return KeypointRightElbow
}

// Wrist возвращает индекс запястья выбранной стороны.
func (s Side) Wrist() int {
	if s == SideLeft {
		return KeypointLeftWrist
	}
	return KeypointRightWrist
}

// Hip возвращает индекс бедра выбранной стороны.
func (s Side) Hip() int {
	if s == SideLeft {
		return KeypointLeftHip
	}
	return KeypointRightHip
}

// Knee возвращает индекс колена выбранной стороны.
func (s Side) Knee() int {
	if s == SideLeft {
		return KeypointLeftKnee
	}
	return KeypointRightKnee
}

// Ankle возвращает индекс лодыжки выбранной стороны.
func (s Side) Ankle() int {
	if s == SideLeft {
		return KeypointLeftAnkle
	}
	return KeypointRightAnkle
}
