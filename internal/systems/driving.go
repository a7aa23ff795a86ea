package systems

import (
	"sandbox-core/internal/domain"
)

// ComputeDriverControls - водитель-ИИ: руль по боковому смещению цели, газ только вперёд.
// После достижения точки маршрут переключается на следующую (по кругу).
func ComputeDriverControls(d *domain.DriverAgent, t domain.Transform) domain.VehicleControls {
	target, ok := d.Target()
	if !ok {
		return domain.VehicleControls{}
	}

	local := t.InverseTransformPoint(target)
	c := domain.VehicleControls{
		Steer:   domain.Clamp(local.X/d.ArrivalRadius, -1, 1),
		Forward: domain.Clamp(local.Z, 0, 1),
		Source:  domain.ControlDriverAI,
	}

	if t.Position.DistanceTo(target) < d.ArrivalRadius {
		d.Advance()
	}
	return c
}
