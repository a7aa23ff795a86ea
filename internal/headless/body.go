package headless

import (
	"sandbox-core/internal/domain"
	"sandbox-core/internal/systems"
)

// Body - кинематическое тело машины на плоскости.
// Вращение только вокруг вертикали, момент инерции равен массе.
type Body struct {
	mass float64
	// Drag и AngularDrag - доля скорости, теряемая за секунду
	Drag        float64
	AngularDrag float64

	velocity domain.Vec3
	angular  float64
	accel    domain.Vec3
	angAccel float64
}

func NewBody(mass float64) *Body {
	if mass <= 0 {
		mass = domain.DefaultVehicleMass
	}
	return &Body{mass: mass, Drag: 0.5, AngularDrag: 3}
}

func (b *Body) Mass() float64         { return b.mass }
func (b *Body) Velocity() domain.Vec3 { return b.velocity }
func (b *Body) AngularSpeed() float64 { return b.angular }

// AddForce копит силу до следующего Step. Импульсы применяются сразу.
func (b *Body) AddForce(force domain.Vec3, mode systems.ForceMode) {
	force = force.Flat()
	switch mode {
	case systems.ForceModeForce:
		b.accel = b.accel.Add(force.Scale(1 / b.mass))
	case systems.ForceModeAcceleration:
		b.accel = b.accel.Add(force)
	case systems.ForceModeImpulse:
		b.velocity = b.velocity.Add(force.Scale(1 / b.mass))
	case systems.ForceModeVelocityChange:
		b.velocity = b.velocity.Add(force)
	}
}

// AddRelativeTorque - учитывается только составляющая по Y
func (b *Body) AddRelativeTorque(torque domain.Vec3, mode systems.ForceMode) {
	switch mode {
	case systems.ForceModeForce:
		b.angAccel += torque.Y / b.mass
	case systems.ForceModeAcceleration:
		b.angAccel += torque.Y
	case systems.ForceModeImpulse:
		b.angular += torque.Y / b.mass
	case systems.ForceModeVelocityChange:
		b.angular += torque.Y
	}
}

// Step интегрирует накопленные силы и возвращает новую позу
func (b *Body) Step(from domain.Transform, dt float64) domain.Transform {
	if dt <= 0 {
		return from
	}
	b.velocity = b.velocity.Add(b.accel.Scale(dt)).Scale(damping(b.Drag, dt))
	b.angular = (b.angular + b.angAccel*dt) * damping(b.AngularDrag, dt)
	b.accel, b.angAccel = domain.VecZero, 0

	next := from
	next.Position = from.Position.Add(b.velocity.Scale(dt))
	next.Yaw = from.Yaw + b.angular*dt
	return next
}

// Collide - удар о неподвижное препятствие: тело останавливается.
// Возвращает импульс удара (масса на изменение скорости).
func (b *Body) Collide() float64 {
	impulse := b.velocity.Length() * b.mass
	b.velocity = domain.VecZero
	b.angular = 0
	return impulse
}

func damping(rate, dt float64) float64 {
	return domain.Clamp(1-rate*dt, 0, 1)
}
