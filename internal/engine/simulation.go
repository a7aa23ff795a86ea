package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/engine/handlers"
	"sandbox-core/internal/engine/handlers/actions"
	"sandbox-core/internal/engine/handlers/admin"
	"sandbox-core/internal/systems"
	"sandbox-core/pkg/api"
	"sandbox-core/pkg/logger"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadyBootstrapped = errors.New("simulation already bootstrapped")
	ErrNotBootstrapped     = errors.New("simulation is not bootstrapped")
	ErrUnknownAction       = errors.New("unknown action")
	ErrNotAdminAction      = errors.New("action is not accepted from outside")
)

// Actor - сущность плюс внешние коллабораторы её тела.
// Любой коллаборатор может отсутствовать, тогда работает запасной вариант.
type Actor struct {
	*domain.Entity

	Follower systems.PathFollower
	Body     systems.RigidBody
	Mover    systems.CharacterMover
}

// frameState - снимок актёра на начало кадра
type frameState struct {
	Position domain.Vec3
	Alive    bool
}

// Simulation - однопоточная симуляция актёров.
// Tick, FixedTick и ReportCollision вызываются из одной горутины хоста.
// Из других горутин безопасны только Enqueue и Snapshot.
type Simulation struct {
	cfg Config

	world    *domain.GameWorld
	actors   map[domain.EntityID]*Actor
	playerID domain.EntityID

	raycaster     systems.Raycaster
	controllables systems.ControllableFinder
	contacts      systems.ContactSensor
	// touching - текущий контакт машины, урон только на входе в контакт
	touching map[domain.EntityID]domain.EntityID

	rng      *rand.Rand
	bus      *EventBus
	handlers map[domain.ActionType]handlers.HandlerFunc
	// checks - проверка данных отладочных команд до постановки в очередь
	checks   map[domain.ActionType]func(json.RawMessage) error
	recorder *Recorder

	tick         uint64
	now          time.Duration
	accumulator  time.Duration
	bootstrapped bool

	frame    map[domain.EntityID]frameState
	removals []domain.EntityID

	// cause - кто сейчас действует (для атрибуции урона)
	cause domain.EntityID
	// Пока выполняется хендлер, события из наблюдателей здоровья ждут его собственных
	holding bool
	held    []domain.Event

	cmdMu    sync.Mutex
	commands []domain.InternalCommand

	snapMu   sync.RWMutex
	snapshot []api.ActorView
}

func NewSimulation(cfg Config) *Simulation {
	s := &Simulation{
		cfg:      cfg,
		actors:   make(map[domain.EntityID]*Actor),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		bus:      NewEventBus(),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		checks:   make(map[domain.ActionType]func(json.RawMessage) error),
		frame:    make(map[domain.EntityID]frameState),
		touching: make(map[domain.EntityID]domain.EntityID),
	}
	s.registerHandlers()
	return s
}

func (s *Simulation) registerHandlers() {
	// Намерения игрока
	s.handlers[domain.ActionFire] = handlers.RequireActor(handlers.WithEmptyPayload(actions.HandleFire))
	s.handlers[domain.ActionReload] = handlers.RequireActor(handlers.WithEmptyPayload(actions.HandleReload))
	s.handlers[domain.ActionInteract] = handlers.RequireActor(handlers.WithEmptyPayload(actions.HandleInteract))
	s.handlers[domain.ActionSelectWeapon] = handlers.RequireActor(handlers.WithPayload(actions.HandleSelectWeapon))

	// Отладка
	s.handlers[domain.ActionDamage] = handlers.WithPayload(admin.HandleDamage)
	s.handlers[domain.ActionHeal] = handlers.WithPayload(admin.HandleHeal)
	s.handlers[domain.ActionKill] = handlers.WithPayload(admin.HandleKill)

	s.checks[domain.ActionDamage] = handlers.PayloadCheck[api.AmountPayload]()
	s.checks[domain.ActionHeal] = handlers.PayloadCheck[api.AmountPayload]()
	s.checks[domain.ActionKill] = handlers.PayloadCheck[api.EntityPayload]()
}

// Subscribe подписывает наблюдателя на события
func (s *Simulation) Subscribe(sink domain.EventSink) {
	s.bus.Subscribe(sink)
}

// Record включает запись ввода
func (s *Simulation) Record(r *Recorder) {
	s.recorder = r
}

// --- Доступ к состоянию ---

func (s *Simulation) Config() Config                  { return s.cfg }
func (s *Simulation) Now() time.Duration              { return s.now }
func (s *Simulation) TickCount() uint64               { return s.tick }
func (s *Simulation) PlayerID() domain.EntityID       { return s.playerID }
func (s *Simulation) World() *domain.GameWorld        { return s.world }
func (s *Simulation) Bootstrapped() bool              { return s.bootstrapped }
func (s *Simulation) Actor(id domain.EntityID) *Actor { return s.actors[id] }

// GetEntity реализует EntityFinder
func (s *Simulation) GetEntity(id domain.EntityID) *domain.Entity {
	if s.world == nil {
		return nil
	}
	return s.world.GetEntity(id)
}

// Entities - все живые и мёртвые сущности мира в порядке регистрации
func (s *Simulation) Entities() []*domain.Entity {
	if s.world == nil {
		return nil
	}
	return s.world.Entities()
}

// QueryRadius - сущности в радиусе r по плоскости XZ (пространственный индекс мира)
func (s *Simulation) QueryRadius(center domain.Vec3, r float64) []*domain.Entity {
	if s.world == nil {
		return nil
	}
	return s.world.QueryRadius(center, r)
}

// --- Цикл ---

// Advance - один кадр хоста: фиксированные шаги физики по накопителю, затем Tick.
// Запись и воспроизведение идут через этот метод.
func (s *Simulation) Advance(delta time.Duration, in domain.InputFrame) {
	if !s.bootstrapped || delta < 0 {
		return
	}
	step := s.cfg.Tick.FixedStep
	s.accumulator += delta
	for step > 0 && s.accumulator >= step {
		s.FixedTick(step)
		s.accumulator -= step
	}
	s.Tick(delta, in)
}

// Tick продвигает всех актёров на один кадр.
// Позиции и живость снимаются в начале кадра, удаления применяются в конце.
func (s *Simulation) Tick(dt time.Duration, in domain.InputFrame) {
	if !s.bootstrapped || dt < 0 {
		return
	}
	s.tick++
	s.now += dt
	if s.recorder != nil {
		s.recorder.recordFrame(s.tick, dt, in)
	}

	s.drainCommands()
	s.captureFrame()

	for _, e := range s.world.Entities() {
		if a, ok := s.actors[e.ID]; ok {
			s.tickActor(a, in, dt)
		}
	}

	s.clearDeadThreats()
	s.flushRemovals()
	s.world.Tick = s.tick
	s.publishSnapshot()
}

// FixedTick - шаг физики: силы машин и интеграция тел
func (s *Simulation) FixedTick(dt time.Duration) {
	if !s.bootstrapped || dt <= 0 {
		return
	}
	sec := dt.Seconds()

	for _, e := range s.world.Entities() {
		a := s.actors[e.ID]
		if a == nil || e.Vehicle == nil || a.Body == nil {
			continue
		}
		if e.IsAlive() {
			f := systems.ComputeVehicleForces(e.Transform, e.Vehicle.Controls, e.Vehicle.Profile, a.Body.Velocity(), a.Body.Mass(), sec)
			systems.ApplyVehicleForces(a.Body, f)
		}
		e.Transform = a.Body.Step(e.Transform, sec)
		s.world.UpdateEntityCell(e)

		if e.Occupancy != nil {
			if occ := s.world.GetEntity(e.Occupancy.OccupantID()); occ != nil {
				systems.FollowSeat(e, occ)
				s.world.UpdateEntityCell(occ)
			}
		}
		s.detectContact(a)
	}

	s.flushRemovals()
}

// detectContact останавливает машину на входе в контакт и передаёт удар в ReportCollision
func (s *Simulation) detectContact(a *Actor) {
	if s.contacts == nil {
		return
	}
	e := a.Entity
	other, ok := s.contacts.Contact(e)
	if !ok {
		delete(s.touching, e.ID)
		return
	}
	if prev, touching := s.touching[e.ID]; touching && prev == other {
		return
	}
	s.touching[e.ID] = other

	col, ok := a.Body.(systems.Collider)
	if !ok {
		return
	}
	impulse := col.Collide()

	s.cause = other
	damage := s.ReportCollision(e.ID, impulse)
	s.cause = ""

	logger.Log.WithFields(logrus.Fields{
		"component":  "engine",
		"vehicle_id": e.ID,
		"other_id":   other,
		"impulse":    impulse,
		"damage":     damage,
	}).Debug("Vehicle contact.")
}

// ReportCollision - физика сообщает об ударе машины. Возвращает нанесённый урон.
func (s *Simulation) ReportCollision(vehicleID domain.EntityID, impulse float64) float64 {
	e := s.GetEntity(vehicleID)
	if e == nil {
		return 0
	}
	return systems.ApplyCollisionDamage(e, impulse)
}

func (s *Simulation) captureFrame() {
	clear(s.frame)
	for _, e := range s.world.Entities() {
		s.frame[e.ID] = frameState{Position: e.Transform.Position, Alive: e.IsAlive()}
	}
}

// --- Команды ---

// Enqueue принимает отладочную команду извне (WebSocket). Выполнится в начале следующего тика.
func (s *Simulation) Enqueue(cmd api.ClientCommand) error {
	action := domain.ParseAction(cmd.Action)
	if action == domain.ActionUnknown {
		return ErrUnknownAction
	}
	if !action.IsAdmin() {
		return ErrNotAdminAction
	}
	if check := s.checks[action]; check != nil {
		if err := check(cmd.Payload); err != nil {
			return fmt.Errorf("%s: %w", action, err)
		}
	}

	s.cmdMu.Lock()
	s.commands = append(s.commands, domain.InternalCommand{
		Action:  action,
		Actor:   domain.EntityID(cmd.Token),
		Payload: cmd.Payload,
	})
	s.cmdMu.Unlock()
	return nil
}

func (s *Simulation) drainCommands() {
	s.cmdMu.Lock()
	pending := s.commands
	s.commands = nil
	s.cmdMu.Unlock()

	for _, cmd := range pending {
		if s.recorder != nil {
			s.recorder.recordAction(s.tick, cmd)
		}
		s.execute(cmd.Action, s.GetEntity(cmd.Actor), cmd.Payload, domain.NoInput())
	}
}

// execute выполняет команду через хендлер и публикует его события
func (s *Simulation) execute(action domain.ActionType, actor *domain.Entity, payload json.RawMessage, in domain.InputFrame) {
	handler, ok := s.handlers[action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Finder:              s.world,
		World:               s.world,
		Actor:               actor,
		Now:                 s.now,
		Input:               in,
		Raycaster:           s.raycaster,
		Controllables:       s.controllables,
		Rng:                 s.rng,
		AimSpreadMultiplier: s.cfg.Weapons.AimSpreadMultiplier,
	}

	prevCause := s.cause
	if actor != nil {
		s.cause = actor.ID
	}
	s.holding = true
	result, err := handler(ctx, payload)
	s.holding = false
	s.cause = prevCause

	held := s.held
	s.held = nil

	if err != nil {
		var actorID domain.EntityID
		if actor != nil {
			actorID = actor.ID
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"action":    action.String(),
			"actor_id":  actorID,
		}).WithError(err).Warn("Command rejected.")
	}
	if result.Msg != "" {
		AddLog(s.tick, result.Msg, result.MsgType)
	}
	for _, e := range result.Events {
		s.emit(e)
	}
	for _, e := range held {
		s.bus.Publish(e)
	}
}

// emit проставляет время и отправляет событие в шину
func (s *Simulation) emit(e domain.Event) {
	e.Tick = s.tick
	e.Time = s.now
	if s.holding {
		s.held = append(s.held, e)
		return
	}
	s.bus.Publish(e)
}

// --- Смерть и удаление ---

// vitalityBridge переводит уведомления здоровья в события шины
type vitalityBridge struct {
	sim *Simulation
	id  domain.EntityID
}

func (b *vitalityBridge) OnDamaged(amount, current float64) {
	b.sim.emit(domain.Event{
		Type:   domain.EventDamaged,
		Source: b.sim.cause,
		Target: b.id,
		Amount: amount,
		Health: current,
	})
}

func (b *vitalityBridge) OnDied() {
	b.sim.emit(domain.Event{
		Type:   domain.EventDied,
		Source: b.sim.cause,
		Target: b.id,
	})
	b.sim.onDeath(b.id)
}

// onDeath разрывает ссылки на погибшего: место в машине, угрозы, очередь удаления
func (s *Simulation) onDeath(id domain.EntityID) {
	e := s.GetEntity(id)
	if e == nil {
		return
	}

	// Разбитая машина высаживает водителя
	if e.Occupancy != nil && e.Occupancy.State() == domain.Occupied {
		if occID, ok := systems.ExitVehicle(e); ok {
			if occ := s.world.GetEntity(occID); occ != nil {
				s.world.UpdateEntityCell(occ)
			}
			s.emit(domain.Event{Type: domain.EventOccupancyChanged, Source: occID, Target: e.ID})
		}
	}
	if e.Vehicle != nil {
		e.Vehicle.Controls = domain.VehicleControls{}
	}

	// Погибший водитель освобождает место, тело остаётся на сиденье
	if e.IsSeated() {
		if v := s.GetEntity(e.SeatedIn); v != nil && v.Occupancy != nil && v.Occupancy.OccupantID() == e.ID {
			v.Occupancy.Release()
			if v.Vehicle != nil {
				v.Vehicle.Controls = domain.VehicleControls{}
			}
			s.emit(domain.Event{Type: domain.EventOccupancyChanged, Source: e.ID, Target: v.ID})
		}
		e.SetControlSuspended(false)
	}

	if e.Vitality != nil && e.Vitality.RemoveOnDeath {
		s.removals = append(s.removals, id)
	}
}

// clearDeadThreats забывает угрозы, которые погибли или исчезли.
// Вызывается после прохода по актёрам, чтобы весь кадр видел одну и ту же угрозу.
func (s *Simulation) clearDeadThreats() {
	for _, e := range s.world.Entities() {
		nav := e.Navigation
		if nav == nil || nav.Threat.IsZero() {
			continue
		}
		if t := s.world.GetEntity(nav.Threat); t == nil || !t.IsAlive() {
			nav.Threat = ""
		}
	}
}

func (s *Simulation) flushRemovals() {
	if len(s.removals) == 0 {
		return
	}
	pending := s.removals
	s.removals = nil

	for _, id := range pending {
		if s.world.GetEntity(id) == nil {
			continue
		}
		s.world.UnregisterEntity(id)
		delete(s.actors, id)
		delete(s.frame, id)
		delete(s.touching, id)
		s.emit(domain.Event{Type: domain.EventEntityRemoved, Target: id})

		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"entity_id": id,
		}).Info("Entity removed after death.")
	}
}

// --- Снимок для других горутин ---

func (s *Simulation) publishSnapshot() {
	entities := s.world.Entities()
	views := make([]api.ActorView, 0, len(entities))
	for _, e := range entities {
		views = append(views, BuildActorView(e))
	}

	s.snapMu.Lock()
	s.snapshot = views
	s.snapMu.Unlock()
}

// Snapshot - состояние актёров на конец последнего тика.
// Срез не изменяется после публикации, его можно читать без копирования.
func (s *Simulation) Snapshot() []api.ActorView {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.snapshot
}
