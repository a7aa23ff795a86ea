package systems

import (
	"sandbox-core/internal/domain"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Raycaster,ControllableFinder,PathFollower,RigidBody,CharacterMover

// Hit - результат лучевой проверки
type Hit struct {
	Point    domain.Vec3
	Entity   domain.EntityID // пустой, если попали в статику
	Distance float64
}

// Raycaster - направленная проверка попадания в мире.
// Коллайдер, внутри которого начинается луч, не учитывается.
type Raycaster interface {
	Raycast(origin, direction domain.Vec3, maxRange float64, mask domain.LayerMask) (Hit, bool)
}

// ControllableFinder ищет управляемую машину перед камерой
type ControllableFinder interface {
	FindControllable(origin, direction domain.Vec3, maxRange float64) (domain.EntityID, bool)
}

// PathFollower - внешний навигатор (поиск пути с обходом препятствий).
type PathFollower interface {
	SetDestination(dest domain.Vec3) bool
	SetSpeed(speed float64)
	PathPending() bool
	RemainingDistance() float64
	// Advance двигает тело на один кадр и возвращает новую позу
	Advance(from domain.Transform, dt float64) domain.Transform
}

// ForceMode - как интерпретировать силу (как в физическом движке)
type ForceMode uint8

const (
	ForceModeForce ForceMode = iota
	ForceModeAcceleration
	ForceModeImpulse
	ForceModeVelocityChange
)

// RigidBody - физическое тело машины. Интегрирует силы сам физический движок.
type RigidBody interface {
	AddForce(force domain.Vec3, mode ForceMode)
	AddRelativeTorque(torque domain.Vec3, mode ForceMode)
	Velocity() domain.Vec3
	Mass() float64
	// Step продвигает физику на dt и возвращает новую позу тела
	Step(from domain.Transform, dt float64) domain.Transform
}

// ContactSensor - с кем сейчас соприкасается тело сущности
type ContactSensor interface {
	Contact(e *domain.Entity) (domain.EntityID, bool)
}

// Collider - тело, которое останавливается об препятствие.
// Collide возвращает импульс удара.
type Collider interface {
	Collide() float64
}

// CharacterMover - контроллер персонажа с коллизиями
type CharacterMover interface {
	Move(from, delta domain.Vec3) (domain.Vec3, bool)
}

// EntityProvider - интерфейс для поиска сущностей (чтобы не зависеть от Simulation напрямую)
type EntityProvider interface {
	GetEntity(id domain.EntityID) *domain.Entity
}
