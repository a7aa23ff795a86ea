package systems

import (
	"math"
	"sandbox-core/internal/domain"
)

// MovementResult - результат шага пешего передвижения
type MovementResult struct {
	Transform domain.Transform
	Grounded  bool
	Jumped    bool
}

// groundSnap - небольшая прижимающая скорость, пока стоим на земле
const groundSnap = -2.0

// CalculatePlayerMove - ходьба относительно камеры, прыжок, присед и гравитация.
// Пока игрок сидит в машине, ничего не делает.
// Присед переключается после шага, новая скорость действует со следующего кадра.
func CalculatePlayerMove(e *domain.Entity, in domain.InputFrame, mover CharacterMover, dt float64) MovementResult {
	res := MovementResult{Transform: e.Transform}
	loco := e.Locomotion
	if loco == nil || e.ControlSuspended || dt <= 0 {
		return res
	}

	if loco.Grounded && loco.VerticalVelocity < 0 {
		loco.VerticalVelocity = groundSnap
	}

	speed := loco.WalkSpeed
	if in.SprintHeld {
		speed = loco.RunSpeed
	}
	if loco.Crouching {
		speed = loco.CrouchSpeed
	}

	axis := in.MoveAxis.ClampMagnitude(1)
	forward, ok := in.LookDirection.Flat().Normalized()
	if !ok {
		forward = e.Transform.Forward()
	}
	right := domain.Vec3{X: forward.Z, Z: -forward.X}
	move := forward.Scale(axis.Y).Add(right.Scale(axis.X))

	pos, grounded := moveCharacter(mover, res.Transform.Position, move.Scale(speed*dt))
	res.Transform.Position = pos

	if move.Length() > 0.1 {
		res.Transform.Yaw = domain.LerpAngle(res.Transform.Yaw, domain.YawTowards(move), dt*loco.TurnRate)
	}

	if loco.Grounded && in.JumpPressed {
		loco.VerticalVelocity = math.Sqrt(loco.JumpHeight * -2 * loco.Gravity)
		res.Jumped = true
	}

	loco.VerticalVelocity += loco.Gravity * dt
	pos, grounded = moveCharacter(mover, res.Transform.Position, domain.Vec3{Y: loco.VerticalVelocity * dt})
	res.Transform.Position = pos
	loco.Grounded = grounded
	res.Grounded = grounded

	if in.CrouchPressed {
		loco.Crouching = !loco.Crouching
	}
	return res
}

// moveCharacter - без контроллера персонажа земля считается плоскостью Y = 0
func moveCharacter(mover CharacterMover, from, delta domain.Vec3) (domain.Vec3, bool) {
	if mover != nil {
		return mover.Move(from, delta)
	}
	to := from.Add(delta)
	if to.Y <= 0 {
		to.Y = 0
		return to, true
	}
	return to, false
}
