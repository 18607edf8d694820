package ergo

import (
	"math"

	"posture-bot/internal/domain/entity"
)

// neutralAngle подставляется при вырожденной геометрии (совпавшие точки),
// чтобы не распространять NaN дальше по расчёту.
const neutralAngle = 90.0

// VerticalDeviation возвращает угол между вектором a→b и вертикалью,
// в градусах [0,90]. Модули по обеим осям делают результат симметричным
// при зеркальном отражении кадра.
func VerticalDeviation(a, b entity.Keypoint) float64 {
	dx := math.Abs(b.X - a.X)
	dy := math.Abs(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dx, dy) * 180 / math.Pi
}

// ElevationAngle возвращает угол вектора a→b от направления вниз,
// в градусах [0,180]: висящая рука даёт 0, горизонтальная 90, поднятая
// выше плеча — больше 90. По оси X берётся модуль, так что зеркальное
// отражение кадра результата не меняет.
func ElevationAngle(a, b entity.Keypoint) float64 {
	dx := math.Abs(b.X - a.X)
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dx, dy) * 180 / math.Pi
}

// VertexAngle возвращает внутренний угол при вершине p2 между векторами
// p2→p1 и p2→p3, в градусах [0,180]. Для вектора нулевой длины
// возвращается нейтральные 90°.
func VertexAngle(p1, p2, p3 entity.Keypoint) float64 {
	v1x, v1y := p1.X-p2.X, p1.Y-p2.Y
	v2x, v2y := p3.X-p2.X, p3.Y-p2.Y

	m1 := math.Hypot(v1x, v1y)
	m2 := math.Hypot(v2x, v2y)
	if m1 == 0 || m2 == 0 {
		return neutralAngle
	}

	cos := (v1x*v2x + v1y*v2y) / (m1 * m2)
	// Погрешность плавающей точки может вывести косинус за [-1,1].
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi
}
