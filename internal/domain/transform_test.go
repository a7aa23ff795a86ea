package domain

import (
	"math"
	"testing"
)

func near(a, b Vec3) bool {
	return a.DistanceTo(b) < 1e-9
}

func TestTransform_RoundTrip(t *testing.T) {
	tr := Transform{Position: Vec3{X: 3, Y: 1, Z: -2}, Yaw: 0.7}
	local := Vec3{X: 1.5, Y: 0.25, Z: -4}
	if got := tr.InverseTransformPoint(tr.TransformPoint(local)); !near(got, local) {
		t.Errorf("round trip = %+v, want %+v", got, local)
	}
}

func TestTransform_LocalAxes(t *testing.T) {
	tr := Transform{}
	if got := tr.InverseTransformPoint(Vec3{X: 2, Z: 5}); !near(got, Vec3{X: 2, Z: 5}) {
		t.Errorf("identity transform changed point: %+v", got)
	}

	// Поворот на 90° вправо: мировой +X становится "вперёд"
	tr.Yaw = math.Pi / 2
	if got := tr.InverseTransformPoint(Vec3{X: 1}); !near(got, Vec3{Z: 1}) {
		t.Errorf("got %+v, want forward", got)
	}
	if got := tr.InverseTransformPoint(Vec3{Z: -1}); !near(got, Vec3{X: 1}) {
		t.Errorf("got %+v, want right", got)
	}
}

func TestRotateDirection(t *testing.T) {
	dir := RotateDirection(VecForward, 0, 90)
	if !near(dir, Vec3{X: 1}) {
		t.Errorf("yaw 90: %+v", dir)
	}
	dir = RotateDirection(VecForward, 10, -10)
	if math.Abs(dir.Length()-1) > 1e-9 {
		t.Errorf("rotated direction must stay unit length, got %v", dir.Length())
	}
	if RotateDirection(VecZero, 5, 5) != VecZero {
		t.Error("zero direction must stay zero")
	}
}

func TestLerpAngle_ShortestArc(t *testing.T) {
	got := LerpAngle(math.Pi-0.1, -math.Pi+0.1, 1)
	if math.Abs(math.Cos(got-(-math.Pi+0.1))-1) > 1e-9 {
		t.Errorf("LerpAngle full step = %v", got)
	}
	half := LerpAngle(math.Pi-0.1, -math.Pi+0.1, 0.5)
	if math.Abs(math.Abs(half)-math.Pi) > 1e-9 {
		t.Errorf("half step must pass through pi, got %v", half)
	}
}

func TestVec_MoveTowards(t *testing.T) {
	p := Vec3{}.MoveTowards(Vec3{X: 10}, 3)
	if !near(p, Vec3{X: 3}) {
		t.Errorf("step = %+v", p)
	}
	p = Vec3{X: 9}.MoveTowards(Vec3{X: 10}, 3)
	if !near(p, Vec3{X: 10}) {
		t.Errorf("must not overshoot: %+v", p)
	}
}
