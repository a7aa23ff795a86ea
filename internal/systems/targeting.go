package systems

import (
	"sandbox-core/internal/domain"
)

// ValidationResult - результат проверки цели
type ValidationResult struct {
	Target  *domain.Entity
	Valid   bool
	Message string // Причина отказа, если Valid == false
}

// LookDirection - куда смотрит актёр: камера, а без неё корпус
func LookDirection(actor *domain.Entity, look domain.Vec3) domain.Vec3 {
	if dir, ok := look.Normalized(); ok {
		return dir
	}
	return actor.Transform.Forward()
}

// FindEnterableVehicle ищет машину перед актёром в пределах rangeLimit.
// Машина должна быть живой и иметь место водителя.
func FindEnterableVehicle(actor *domain.Entity, look domain.Vec3, rangeLimit float64, cf ControllableFinder, finder EntityProvider) ValidationResult {
	if cf == nil {
		return ValidationResult{Message: "no controllable finder"}
	}

	// 1. Поиск перед камерой
	id, ok := cf.FindControllable(actor.Transform.Position, LookDirection(actor, look), rangeLimit)
	if !ok {
		return ValidationResult{Message: "nothing to enter"}
	}

	// 2. Поиск сущности
	target := finder.GetEntity(id)
	if target == nil {
		return ValidationResult{Message: "target not found"}
	}

	// 3. Возможность сесть
	if target.Occupancy == nil {
		return ValidationResult{Message: "target has no seat"}
	}
	if !target.IsAlive() {
		return ValidationResult{Message: "vehicle is wrecked"}
	}

	// 4. Дистанция (поисковик мог вернуть что-то дальше)
	if dist := actor.Transform.Position.DistanceTo(target.Transform.Position); dist > rangeLimit+vehicleReach {
		return ValidationResult{Message: "target is too far"}
	}

	return ValidationResult{Target: target, Valid: true}
}

// vehicleReach - допуск на габарит машины: луч упирается в кузов, а не в центр
const vehicleReach = 3.0
