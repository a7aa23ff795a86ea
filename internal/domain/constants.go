package domain

import "time"

// Здоровье
const (
	DefaultMaxHealth = 100.0
)

// Оружие
const (
	DefaultAimSpreadMultiplier = 0.5
)

// Пешеходы
const (
	DefaultPedestrianSpeed     = 2.0
	DefaultFleeSpeedMultiplier = 1.5
	DefaultFleeTriggerRadius   = 10.0
	DefaultFleeDistance        = 10.0
	DefaultArrivalRadius       = 0.5
	// Скорость доворота корпуса при движении без навигационного коллаборатора
	DefaultTurnRate = 5.0
)

// Транспорт
const (
	DefaultVehicleAcceleration = 800.0
	DefaultVehicleBrakeForce   = 1200.0
	DefaultVehicleTurnTorque   = 4.0
	DefaultVehicleMass         = 1200.0
	DefaultDriverArrivalRadius = 3.0

	DefaultImpactLow       = 10.0
	DefaultImpactHigh      = 80.0
	DefaultMaxImpactDamage = 50.0
)

// Игрок
const (
	DefaultWalkSpeed     = 4.0
	DefaultRunSpeed      = 7.0
	DefaultCrouchSpeed   = 2.0
	DefaultJumpHeight    = 1.5
	DefaultGravity       = -9.81
	DefaultInteractRange = 2.5
	// Множитель сглаживания поворота игрока
	DefaultPlayerTurnRate = 10.0
)

// Профили оружия по умолчанию
const (
	DefaultReloadDuration = 1200 * time.Millisecond
)
