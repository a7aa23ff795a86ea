package domain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform - положение и поворот вокруг вертикальной оси (рыскание, радианы).
type Transform struct {
	Position Vec3    `json:"position"`
	Yaw      float64 `json:"yaw"`
}

// yawAxis - мировая вертикаль, вокруг неё считается рыскание
var yawAxis = r3.Vec{Y: 1}

// rotation - поворот локальных осей объекта в мировые
func (t Transform) rotation() r3.Rotation {
	return r3.NewRotation(t.Yaw, yawAxis)
}

// Forward - единичный вектор "вперёд" с учётом поворота
func (t Transform) Forward() Vec3 {
	return Vec3(t.rotation().Rotate(VecForward.vec()))
}

// Right - единичный вектор "вправо"
func (t Transform) Right() Vec3 {
	return Vec3(t.rotation().Rotate(r3.Vec{X: 1}))
}

// TransformPoint переводит локальную точку в мировые координаты.
func (t Transform) TransformPoint(local Vec3) Vec3 {
	return t.Position.Add(Vec3(t.rotation().Rotate(local.vec())))
}

// InverseTransformPoint переводит мировую точку в локальную систему объекта.
// X > 0 - точка справа, Z > 0 - впереди.
func (t Transform) InverseTransformPoint(world Vec3) Vec3 {
	d := world.Sub(t.Position)
	return Vec3(r3.NewRotation(-t.Yaw, yawAxis).Rotate(d.vec()))
}

// YawTowards - угол рыскания, при котором Forward смотрит вдоль dir.
func YawTowards(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z)
}

// LerpAngle плавно поворачивает угол a к b по кратчайшей дуге, t в [0, 1].
func LerpAngle(a, b, t float64) float64 {
	delta := math.Mod(b-a, 2*math.Pi)
	if delta > math.Pi {
		delta -= 2 * math.Pi
	} else if delta < -math.Pi {
		delta += 2 * math.Pi
	}
	return a + delta*Clamp(t, 0, 1)
}

// RotateDirection поворачивает направление на pitch/yaw (градусы).
// Рыскание - вокруг мировой оси Y, тангаж - вокруг локальной правой оси
// (положительный тангаж опускает направление).
func RotateDirection(dir Vec3, pitchDeg, yawDeg float64) Vec3 {
	n, ok := dir.Normalized()
	if !ok {
		return dir
	}
	yawed := r3.Rotate(n.vec(), yawDeg*math.Pi/180, yawAxis)
	right := Transform{Yaw: YawTowards(Vec3(yawed))}.Right()
	return Vec3(r3.Rotate(yawed, pitchDeg*math.Pi/180, right.vec()))
}
