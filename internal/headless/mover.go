package headless

import (
	"sandbox-core/internal/domain"
)

// Ground - контроллер персонажа на плоской земле без препятствий
type Ground struct {
	Height float64
}

func (g Ground) Move(from, delta domain.Vec3) (domain.Vec3, bool) {
	to := from.Add(delta)
	if to.Y <= g.Height {
		to.Y = g.Height
		return to, true
	}
	return to, false
}

// StraightFollower - навигатор без поиска пути: идёт к цели по прямой.
// Поворачивает корпус сразу, без сглаживания.
type StraightFollower struct {
	dest    domain.Vec3
	hasDest bool
	speed   float64
	pos     domain.Vec3
}

func NewStraightFollower(start domain.Vec3) *StraightFollower {
	return &StraightFollower{pos: start}
}

func (f *StraightFollower) SetDestination(dest domain.Vec3) bool {
	f.dest, f.hasDest = dest, true
	return true
}

func (f *StraightFollower) SetSpeed(speed float64) { f.speed = speed }

func (f *StraightFollower) PathPending() bool { return false }

func (f *StraightFollower) RemainingDistance() float64 {
	if !f.hasDest {
		return 0
	}
	return f.pos.Flat().DistanceTo(f.dest.Flat())
}

func (f *StraightFollower) Advance(from domain.Transform, dt float64) domain.Transform {
	f.pos = from.Position
	if !f.hasDest || dt <= 0 {
		return from
	}
	next := from
	next.Position = from.Position.MoveTowards(f.dest, f.speed*dt)
	if dir, ok := f.dest.Sub(from.Position).Flat().Normalized(); ok {
		next.Yaw = domain.YawTowards(dir)
	}
	f.pos = next.Position
	return next
}
