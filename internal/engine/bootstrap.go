package engine

import (
	"fmt"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/systems"
	"sandbox-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Scene - всё, что нужно симуляции на старте: граф, актёры и физика хоста
type Scene struct {
	Graph    *domain.WaypointGraph
	Actors   []*Actor
	PlayerID domain.EntityID

	Raycaster     systems.Raycaster
	Controllables systems.ControllableFinder
	// Contacts - откуда FixedTick узнаёт об ударах машин (может быть nil)
	Contacts systems.ContactSensor
}

// Bootstrap регистрирует актёров сцены. Вызывается ровно один раз.
// При ошибке симуляция остаётся пустой.
func (s *Simulation) Bootstrap(scene Scene) error {
	if s.bootstrapped {
		return ErrAlreadyBootstrapped
	}

	// 1. Проверяем всё до регистрации, чтобы не оставить мир наполовину собранным
	seen := make(map[domain.EntityID]bool, len(scene.Actors))
	for _, a := range scene.Actors {
		if a == nil || a.Entity == nil {
			return fmt.Errorf("bootstrap: nil actor")
		}
		if a.ID.IsZero() {
			a.ID = domain.NewEntityID()
		}
		if seen[a.ID] {
			return fmt.Errorf("bootstrap: %w: %s", domain.ErrDuplicateEntity, a.ID)
		}
		seen[a.ID] = true
	}

	// 2. Регистрируем
	world := domain.NewGameWorld(scene.Graph)
	for _, a := range scene.Actors {
		if err := world.RegisterEntity(a.Entity); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		s.actors[a.ID] = a
		if a.Vitality != nil {
			a.Vitality.Subscribe(&vitalityBridge{sim: s, id: a.ID})
		}
	}

	s.world = world
	s.playerID = scene.PlayerID
	s.raycaster = scene.Raycaster
	s.controllables = scene.Controllables
	s.contacts = scene.Contacts
	s.bootstrapped = true

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      s.cfg.Seed,
		"entities":  world.Count(),
		"player_id": s.playerID,
	}).Info("Simulation bootstrapped.")

	s.publishSnapshot()
	return nil
}
