package domain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec2 - двумерный вектор (оси ввода).
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec3 - точка или направление в мире. Y смотрит вверх, Z вперёд.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

var (
	VecZero    = Vec3{}
	VecUp      = Vec3{Y: 1}
	VecForward = Vec3{Z: 1}
)

// Арифметика делегируется gonum spatial/r3 и r2, Vec3 и Vec2 остаются доменными типами с JSON-тегами.
func (v Vec3) vec() r3.Vec { return r3.Vec(v) }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3(r3.Add(v.vec(), o.vec())) }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3(r3.Sub(v.vec(), o.vec())) }

func (v Vec3) Scale(k float64) Vec3 { return Vec3(r3.Scale(k, v.vec())) }

func (v Vec3) Dot(o Vec3) float64 { return r3.Dot(v.vec(), o.vec()) }

func (v Vec3) Length() float64 { return r3.Norm(v.vec()) }

// DistanceTo возвращает расстояние до другой точки
func (v Vec3) DistanceTo(o Vec3) float64 { return r3.Norm(r3.Sub(v.vec(), o.vec())) }

// Flat обнуляет высоту (для расчётов на плоскости земли)
func (v Vec3) Flat() Vec3 { return Vec3{X: v.X, Z: v.Z} }

// Normalized возвращает единичный вектор.
// Для нулевого (или почти нулевого) вектора ok == false.
func (v Vec3) Normalized() (Vec3, bool) {
	l := v.Length()
	if l < 1e-9 || !IsFinite(l) {
		return VecZero, false
	}
	return Vec3(r3.Unit(v.vec())), true
}

// MoveTowards сдвигает точку к цели не более чем на maxStep, без перелёта.
func (v Vec3) MoveTowards(target Vec3, maxStep float64) Vec3 {
	d := target.Sub(v)
	dist := d.Length()
	if dist <= maxStep || dist == 0 {
		return target
	}
	return v.Add(d.Scale(maxStep / dist))
}

// Length для Vec2
func (v Vec2) Length() float64 { return r2.Norm(r2.Vec(v)) }

// ClampMagnitude ограничивает длину вектора ввода (диагональ не быстрее прямой).
func (v Vec2) ClampMagnitude(max float64) Vec2 {
	l := v.Length()
	if l <= max || l == 0 {
		return v
	}
	return Vec2(r2.Scale(max/l, r2.Vec(v)))
}

// Clamp ограничивает x отрезком [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// InverseLerp возвращает положение x между a и b, обрезанное до [0, 1].
func InverseLerp(a, b, x float64) float64 {
	if a == b {
		return 0
	}
	return Clamp((x-a)/(b-a), 0, 1)
}

// IsFinite - защита от NaN/Inf во входных данных
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
