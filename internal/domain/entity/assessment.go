package entity

// Method — метод оценки позы.
type Method string

const (
	MethodRULA Method = "rula" // верхние конечности
	MethodREBA Method = "reba" // всё тело
)

// RiskLevel — упорядоченный уровень риска, выводится только из итогового балла.
type RiskLevel int

const (
	RiskNegligible RiskLevel = iota // допустимая поза
	RiskLow
	RiskMedium
	RiskHigh
	RiskCritical
)

// String возвращает короткую метку уровня риска.
func (r RiskLevel) String() string {
	switch r {
	case RiskNegligible:
		return "negligible"
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskCritical:
		return "critical"
	}
	return "unknown"
}

// JointAngles — углы суставов одного кадра, в градусах [0,180].
type JointAngles struct {
	Trunk    float64 // отклонение корпуса от вертикали
	Neck     float64 // отклонение шеи от вертикали
	UpperArm float64 // отклонение плеча от вертикали
	LowerArm float64 // внутренний угол локтя
	Wrist    float64 // приближение сгиба запястья
	Thigh    float64 // отклонение бедра от вертикали
	Knee     float64 // внутренний угол колена
}

// ComponentScores — баллы по отдельным суставам.
type ComponentScores struct {
	Trunk    int
	Neck     int
	Legs     int // только для метода REBA
	UpperArm int
	LowerArm int
	Wrist    int
}

// Assessment хранит итог оценки позы одним методом.
// При Indeterminate все остальные поля не заполняются.
type Assessment struct {
	Method        Method
	Side          Side
	Angles        JointAngles
	Components    ComponentScores
	ScoreA        int // составной балл первой группы
	ScoreB        int // составной балл второй группы
	Final         int // итоговый балл, [1,7]
	Risk          RiskLevel
	Indeterminate bool // недостаточно данных для оценки
}

// NewIndeterminate создаёт явный результат "нет данных".
func NewIndeterminate(method Method) *Assessment {
	return &Assessment{Method: method, Indeterminate: true}
}

// ArmPosition — положение рук относительно корпуса.
type ArmPosition string

const (
	ArmClose    ArmPosition = "close"    // руки у корпуса
	ArmExtended ArmPosition = "extended" // руки вытянуты вперёд или в сторону
	ArmOverhead ArmPosition = "overhead" // руки выше плеч
)

// LoadDirection — направление переносимой нагрузки.
type LoadDirection string

const (
	LoadNone     LoadDirection = "none"
	LoadFront    LoadDirection = "front"
	LoadSide     LoadDirection = "side"
	LoadOverhead LoadDirection = "overhead"
)

// PosturePattern описывает характер позы при работе с грузом.
type PosturePattern struct {
	IsLifting         bool
	IsCarrying        bool
	ArmPosition       ArmPosition
	SpineDeviationDeg float64
	LoadDirection     LoadDirection
}

// LoadEstimate — эвристическая оценка внешнего груза по геометрии скелета.
type LoadEstimate struct {
	EstimatedWeightKg float64
	Confidence        float64 // 0.7 при распознанном подъёме/переносе, иначе 0.3
	Posture           PosturePattern
}

// WeightSource — источник эффективного веса для корректировки балла.
type WeightSource string

const (
	WeightHeuristic      WeightSource = "heuristic"       // оценка по геометрии
	WeightObjectDetected WeightSource = "object_detected" // по распознанным объектам
	WeightManual         WeightSource = "manual"          // задан пользователем
)

// AdjustedScore — итоговый балл, скорректированный на вес груза.
type AdjustedScore struct {
	Final             int // [1,7]
	Risk              RiskLevel
	WeightMultiplier  float64
	EffectiveWeightKg float64
	Source            WeightSource
}
