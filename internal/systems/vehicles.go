package systems

import (
	"sandbox-core/internal/domain"
	"sandbox-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// EnterVehicle сажает актёра в машину.
// Мёртвые не садятся, в разбитую машину не садятся, занятое место не отдаётся.
func EnterVehicle(actor, vehicle *domain.Entity) bool {
	vehicleLogger := logger.Log.WithFields(logrus.Fields{
		"component":  "vehicle_system",
		"actor_id":   actor.ID,
		"vehicle_id": vehicle.ID,
	})

	if vehicle.Occupancy == nil || !actor.IsAlive() || !vehicle.IsAlive() || actor.IsSeated() {
		vehicleLogger.Debug("Enter rejected: precondition failed.")
		return false
	}
	if !vehicle.Occupancy.TryEnter(actor, vehicle.Transform) {
		vehicleLogger.WithField("occupant", vehicle.Occupancy.OccupantID()).Info("Enter rejected: seat is taken.")
		return false
	}
	actor.SeatedIn = vehicle.ID
	if vehicle.Vehicle != nil {
		vehicle.Vehicle.Controls = domain.VehicleControls{}
	}
	vehicleLogger.Info("Actor entered vehicle.")
	return true
}

// ExitVehicle высаживает водителя. Возвращает ID бывшего водителя.
func ExitVehicle(vehicle *domain.Entity) (domain.EntityID, bool) {
	if vehicle.Occupancy == nil {
		return "", false
	}
	prev := vehicle.Occupancy.Exit(vehicle.Transform)
	if prev == nil {
		return "", false
	}
	if vehicle.Vehicle != nil {
		vehicle.Vehicle.Controls = domain.VehicleControls{}
	}
	logger.Log.WithFields(logrus.Fields{
		"component":  "vehicle_system",
		"actor_id":   prev.OccupantID(),
		"vehicle_id": vehicle.ID,
	}).Info("Actor left vehicle.")
	return prev.OccupantID(), true
}

// FollowSeat держит водителя на сиденье, пока машина едет
func FollowSeat(vehicle, occupant *domain.Entity) {
	if vehicle.Occupancy == nil {
		return
	}
	occupant.Transform = vehicle.Occupancy.SeatPose(vehicle.Transform)
}

// OccupantControls - управление от ввода сидящего игрока
func OccupantControls(in domain.InputFrame) domain.VehicleControls {
	return domain.VehicleControls{
		Forward: domain.Clamp(in.MoveAxis.Y, -1, 1),
		Steer:   domain.Clamp(in.MoveAxis.X, -1, 1),
		Brake:   in.BrakeHeld,
		Source:  domain.ControlOccupant,
	}
}

// VehicleForces - запросы к физическому движку на один фиксированный шаг
type VehicleForces struct {
	Drive      domain.Vec3
	DriveMode  ForceMode
	Torque     domain.Vec3
	TorqueMode ForceMode
	Brake      domain.Vec3
	HasBrake   bool
}

// ComputeVehicleForces переводит команды в силы.
// Водитель-ИИ использует собственные усиления, умноженные на dt.
func ComputeVehicleForces(t domain.Transform, c domain.VehicleControls, p domain.VehicleProfile, velocity domain.Vec3, mass, dt float64) VehicleForces {
	f := VehicleForces{DriveMode: ForceModeAcceleration, TorqueMode: ForceModeForce}

	switch c.Source {
	case domain.ControlOccupant:
		f.Drive = t.Forward().Scale(c.Forward * p.Acceleration * dt)
		f.Torque = domain.VecUp.Scale(c.Steer * p.TurnTorque * mass)
	case domain.ControlDriverAI:
		f.Drive = t.Forward().Scale(c.Forward * p.AIAcceleration * dt)
		f.Torque = domain.VecUp.Scale(c.Steer * mass * p.AITurnTorque * dt)
	default:
		return f
	}

	if c.Brake {
		f.Brake = velocity.Scale(-p.BrakeForce * dt)
		f.HasBrake = true
	}
	return f
}

// ApplyVehicleForces отправляет силы в тело
func ApplyVehicleForces(body RigidBody, f VehicleForces) {
	body.AddForce(f.Drive, f.DriveMode)
	body.AddRelativeTorque(f.Torque, f.TorqueMode)
	if f.HasBrake {
		body.AddForce(f.Brake, ForceModeAcceleration)
	}
}

// ApplyCollisionDamage переводит удар в урон машине, независимо от того, кто за рулём.
// Возвращает нанесённый урон.
func ApplyCollisionDamage(vehicle *domain.Entity, impulse float64) float64 {
	if vehicle.Vehicle == nil {
		return 0
	}
	damage := vehicle.Vehicle.Profile.ImpactDamage(impulse)
	if damage <= 0 {
		return 0
	}
	applied, killed := ApplyDamage(vehicle, damage)
	if !applied {
		return 0
	}
	logger.Log.WithFields(logrus.Fields{
		"component":  "vehicle_system",
		"vehicle_id": vehicle.ID,
		"impulse":    impulse,
		"damage":     damage,
		"wrecked":    killed,
	}).Info("Collision damage applied.")
	return damage
}
