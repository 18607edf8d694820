package entity

// BBox — рамка объекта в тех же нормализованных координатах, что и скелет.
type BBox struct {
	X      float64 // левый верхний угол
	Y      float64
	Width  float64
	Height float64
}

// Center возвращает координаты центра рамки.
func (b BBox) Center() (x, y float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// DetectedObject — внешний объект, найденный детектором.
type DetectedObject struct {
	Class      string  // метка класса
	Confidence float64 // уверенность детектора, [0,1]
	Box        BBox
}

// ObjectInteraction — итог сопоставления объектов с руками и корпусом.
type ObjectInteraction struct {
	Held                   []DetectedObject // объекты, признанные удерживаемыми
	IsHoldingObject        bool
	TotalEstimatedWeightKg float64 // сумма справочных весов удерживаемых объектов
}
