package engine

import (
	"encoding/json"
	"errors"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/engine/handlers"
	"sandbox-core/internal/headless"
	"sandbox-core/internal/systems"
	"sandbox-core/pkg/api"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	t.Run("second call is rejected", func(t *testing.T) {
		sim, _ := newTestSim(t, Scene{Actors: []*Actor{newTestPlayer()}})
		err := sim.Bootstrap(Scene{Actors: []*Actor{newTestCar("car", domain.VecZero)}})
		assert.ErrorIs(t, err, ErrAlreadyBootstrapped)
		assert.Len(t, sim.Entities(), 1)
	})

	t.Run("duplicate ids leave the simulation empty", func(t *testing.T) {
		sim := NewSimulation(testConfig())
		err := sim.Bootstrap(Scene{Actors: []*Actor{newTestCar("car", domain.VecZero), newTestCar("car", domain.VecZero)}})
		assert.ErrorIs(t, err, domain.ErrDuplicateEntity)
		assert.False(t, sim.Bootstrapped())
		assert.Empty(t, sim.Entities())
	})

	t.Run("missing ids are generated", func(t *testing.T) {
		car := newTestCar("", domain.VecZero)
		sim, _ := newTestSim(t, Scene{Actors: []*Actor{car}})
		assert.False(t, car.ID.IsZero())
		assert.Same(t, car.Entity, sim.GetEntity(car.ID))
	})

	t.Run("tick before bootstrap does nothing", func(t *testing.T) {
		sim := NewSimulation(testConfig())
		sim.Tick(testTick, domain.NoInput())
		sim.FixedTick(testTick)
		assert.Zero(t, sim.TickCount())
		assert.Nil(t, sim.GetEntity("player"))
	})
}

func TestSimulation_FleeAndRevert(t *testing.T) {
	graph := mustRing(t, 20, 4)
	player := newTestPlayer()
	player.Transform.Position = domain.Vec3{Z: 12}
	ped := newTestPedestrian("ped", graph, 0)
	sim, rec := newTestSim(t, Scene{Graph: graph, Actors: []*Actor{player, ped}})

	sim.Tick(testTick, domain.NoInput())

	nav := ped.Navigation
	require.Equal(t, domain.NavFleeing, nav.Mode)
	changes := rec.ofType(domain.EventNavModeChanged)
	require.Len(t, changes, 1)
	assert.Equal(t, "FLEEING", changes[0].Mode)
	assert.Equal(t, ped.ID, changes[0].Target)
	assert.Equal(t, player.ID, changes[0].Source)
	// Бежит от игрока быстрее обычного
	assert.InDelta(t, 30.0, nav.Destination.Z, 1e-9)
	assert.InDelta(t, 20.6, ped.Transform.Position.Z, 1e-9)

	// Угроза ушла - обратно в патруль
	player.Transform.Position = domain.Vec3{Z: -100}
	sim.Tick(testTick, domain.NoInput())
	assert.Equal(t, domain.NavPatrolling, nav.Mode)
	changes = rec.ofType(domain.EventNavModeChanged)
	require.Len(t, changes, 2)
	assert.Equal(t, "PATROLLING", changes[1].Mode)
}

func TestSimulation_ThreatReadsFrameSnapshot(t *testing.T) {
	graph := mustRing(t, 20, 4)
	player := newTestPlayer()
	player.Transform.Position = domain.Vec3{Z: 9}
	ped := newTestPedestrian("ped", graph, 0)
	sim, _ := newTestSim(t, Scene{Graph: graph, Actors: []*Actor{player, ped}})

	// Игрок подходит вплотную в этом же кадре, пешеход видит его на старте кадра
	walk := domain.NoInput()
	walk.MoveAxis = domain.Vec2{Y: 1}
	walk.LookDirection = domain.VecForward
	sim.Tick(time.Second, walk)
	require.InDelta(t, 13.0, player.Transform.Position.Z, 1e-9)
	assert.Equal(t, domain.NavPatrolling, ped.Navigation.Mode)

	sim.Tick(testTick, domain.NoInput())
	assert.Equal(t, domain.NavFleeing, ped.Navigation.Mode)
}

func TestSimulation_ThreatDeathSameForWholeFrame(t *testing.T) {
	graph := mustRing(t, 20, 4)
	player := newTestPlayer(testPistol())
	pa := newTestPedestrian("pa", graph, 0)
	pb := newTestPedestrian("pb", graph, 0)
	pa.Navigation.Threat = "guard"
	pb.Navigation.Threat = "guard"

	guard := newTestPedestrian("guard", graph, 0)
	guard.Transform.Position = domain.Vec3{Z: 22}
	guard.Navigation.Threat = ""
	guard.Vitality = domain.NewVitality(40)
	guard.Vitality.RemoveOnDeath = true

	// Стрелок стоит между пешеходами в порядке обхода
	sim, _ := newTestSim(t, Scene{
		Graph:     graph,
		Actors:    []*Actor{pa, player, pb, guard},
		Raycaster: &stubRay{target: guard.ID},
	})

	fire := domain.NoInput()
	fire.FireHeld = true
	sim.Tick(testTick, fire)

	require.Nil(t, sim.GetEntity(guard.ID))
	assert.Equal(t, domain.NavFleeing, pa.Navigation.Mode)
	assert.Equal(t, pa.Navigation.Mode, pb.Navigation.Mode)
	assert.True(t, pa.Navigation.Threat.IsZero())
	assert.True(t, pb.Navigation.Threat.IsZero())

	sim.Tick(testTick, domain.NoInput())
	assert.Equal(t, domain.NavPatrolling, pa.Navigation.Mode)
	assert.Equal(t, domain.NavPatrolling, pb.Navigation.Mode)
}

func testPistol() *domain.WeaponProfile {
	return &domain.WeaponProfile{
		ID:             "pistol",
		Damage:         50,
		FireInterval:   100 * time.Millisecond,
		Range:          60,
		MagazineSize:   12,
		ReloadDuration: time.Second,
	}
}

func TestSimulation_ShootingKillsAndRemoves(t *testing.T) {
	graph := mustRing(t, 20, 4)
	player := newTestPlayer(testPistol())
	ped := newTestPedestrian("ped", graph, 0)
	ray := &stubRay{target: ped.ID}
	sim, rec := newTestSim(t, Scene{Graph: graph, Actors: []*Actor{player, ped}, Raycaster: ray})
	stats := NewSessionStats(player.ID)
	sim.Subscribe(stats)

	fire := domain.NoInput()
	fire.FireHeld = true

	sim.Tick(testTick, fire)
	assert.Equal(t, []domain.EventType{domain.EventFired, domain.EventDamaged}, rec.types())
	fired := rec.events[0]
	assert.Equal(t, uint64(1), fired.Tick)
	assert.Equal(t, testTick, fired.Time)
	assert.True(t, fired.Hit)
	assert.Equal(t, ped.ID, fired.Target)
	assert.Equal(t, 50.0, fired.Amount)
	assert.Equal(t, player.ID, rec.events[1].Source)
	rec.reset()

	sim.Tick(testTick, fire)
	assert.Equal(t, []domain.EventType{
		domain.EventFired,
		domain.EventDamaged,
		domain.EventDied,
		domain.EventEntityRemoved,
	}, rec.types())
	assert.Equal(t, player.ID, rec.events[2].Source)
	assert.Nil(t, sim.GetEntity(ped.ID))
	assert.Len(t, sim.Snapshot(), 1)

	assert.Equal(t, 2, stats.Shots)
	assert.Equal(t, 2, stats.Hits)
	assert.Equal(t, 1, stats.Kills)
	assert.Zero(t, stats.Deaths)
	assert.Equal(t, 10, player.Arsenal.Current().Ammo)
}

func TestSimulation_ReloadCycle(t *testing.T) {
	profile := testPistol()
	profile.MagazineSize = 2
	profile.ReloadDuration = 500 * time.Millisecond
	player := newTestPlayer(profile)
	sim, rec := newTestSim(t, Scene{Actors: []*Actor{player}})

	fire := domain.NoInput()
	fire.FireHeld = true
	for i := 0; i < 4; i++ {
		sim.Tick(testTick, fire)
	}
	arm := player.Arsenal.Current()
	assert.Equal(t, domain.ReloadReloading, arm.State)
	assert.Zero(t, arm.Ammo)
	assert.Len(t, rec.ofType(domain.EventFired), 2)
	require.Len(t, rec.ofType(domain.EventReloadStarted), 1)
	assert.Empty(t, rec.ofType(domain.EventReloadCompleted))

	// 1000ms: магазин полон в начале кадра и сразу стреляем
	sim.Tick(testTick, fire)
	done := rec.ofType(domain.EventReloadCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, "pistol", done[0].WeaponID)
	assert.Len(t, rec.ofType(domain.EventFired), 3)
	assert.Equal(t, 1, arm.Ammo)
}

func TestSimulation_ManualReloadAndSwitch(t *testing.T) {
	rifle := domain.RifleProfile()
	player := newTestPlayer(testPistol(), rifle)
	sim, rec := newTestSim(t, Scene{Actors: []*Actor{player}})

	in := domain.NoInput()
	in.FireHeld = true
	sim.Tick(testTick, in)

	in = domain.NoInput()
	in.ReloadPressed = true
	sim.Tick(testTick, in)
	require.Len(t, rec.ofType(domain.EventReloadStarted), 1)

	in = domain.NoInput()
	in.SelectSlot = 1
	sim.Tick(testTick, in)
	switched := rec.ofType(domain.EventWeaponSwitched)
	require.Len(t, switched, 1)
	assert.Equal(t, 1, switched[0].Slot)
	assert.Equal(t, rifle.ID, player.Arsenal.Current().Profile.ID)

	// Неактивный ствол дозаряжается в фоне
	for i := 0; i < 5; i++ {
		sim.Tick(testTick, domain.NoInput())
	}
	done := rec.ofType(domain.EventReloadCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, 0, done[0].Slot)
	assert.Equal(t, 12, player.Arsenal.Slots[0].Ammo)
}

func enterCar(t *testing.T) (*Simulation, *eventRecorder, *Actor, *Actor) {
	t.Helper()
	player := newTestPlayer()
	car := newTestCar("car", domain.Vec3{X: 3})
	sim, rec := newTestSim(t, Scene{
		Actors:        []*Actor{player, car},
		Controllables: stubFinder{target: car.ID},
	})

	in := domain.NoInput()
	in.InteractPressed = true
	in.LookDirection = domain.Vec3{X: 1}
	sim.Tick(testTick, in)

	require.Equal(t, car.ID, player.SeatedIn)
	return sim, rec, player, car
}

func TestSimulation_EnterDriveExit(t *testing.T) {
	sim, rec, player, car := enterCar(t)

	assert.True(t, player.ControlSuspended)
	assert.Equal(t, domain.Vec3{X: 3}, player.Transform.Position)
	entered := rec.ofType(domain.EventOccupancyChanged)
	require.Len(t, entered, 1)
	assert.True(t, entered[0].Occupied)
	assert.Equal(t, player.ID, entered[0].Source)
	assert.Equal(t, car.ID, entered[0].Target)

	drive := domain.NoInput()
	drive.MoveAxis = domain.Vec2{X: -0.5, Y: 1}
	drive.BrakeHeld = true
	sim.Tick(testTick, drive)
	assert.Equal(t, domain.VehicleControls{Forward: 1, Steer: -0.5, Brake: true, Source: domain.ControlOccupant}, car.Vehicle.Controls)
	assert.Equal(t, domain.Vec3{X: 3}, player.Transform.Position)

	out := domain.NoInput()
	out.InteractPressed = true
	sim.Tick(testTick, out)
	assert.False(t, player.IsSeated())
	assert.False(t, player.ControlSuspended)
	assert.Equal(t, domain.Vec3{X: 1}, player.Transform.Position)
	assert.Equal(t, domain.VehicleControls{}, car.Vehicle.Controls)
	assert.Equal(t, domain.Vacant, car.Occupancy.State())

	changes := rec.ofType(domain.EventOccupancyChanged)
	require.Len(t, changes, 2)
	assert.False(t, changes[1].Occupied)
}

func killCommand(t *testing.T, target domain.EntityID) api.ClientCommand {
	payload, err := json.Marshal(api.EntityPayload{TargetID: string(target)})
	require.NoError(t, err)
	return api.ClientCommand{Action: "KILL", Payload: payload}
}

func TestSimulation_WreckedVehicleEjectsDriver(t *testing.T) {
	sim, rec, player, car := enterCar(t)
	rec.reset()

	require.NoError(t, sim.Enqueue(killCommand(t, car.ID)))
	sim.Tick(testTick, domain.NoInput())

	assert.Equal(t, []domain.EventType{
		domain.EventDamaged,
		domain.EventDied,
		domain.EventOccupancyChanged,
	}, rec.types())
	assert.False(t, player.IsSeated())
	assert.Equal(t, domain.Vec3{X: 1}, player.Transform.Position)
	// Разбитая машина остаётся в мире
	assert.NotNil(t, sim.GetEntity(car.ID))

	// Сесть обратно нельзя
	in := domain.NoInput()
	in.InteractPressed = true
	in.LookDirection = domain.Vec3{X: 1}
	sim.Tick(testTick, in)
	assert.False(t, player.IsSeated())
	assert.Len(t, rec.ofType(domain.EventOccupancyChanged), 1)
}

func TestSimulation_DeadDriverFreesSeatAndThreats(t *testing.T) {
	graph := mustRing(t, 20, 4)
	player := newTestPlayer()
	car := newTestCar("car", domain.Vec3{X: 3})
	ped := newTestPedestrian("ped", graph, 0)
	sim, rec := newTestSim(t, Scene{
		Graph:         graph,
		Actors:        []*Actor{player, car, ped},
		Controllables: stubFinder{target: car.ID},
	})

	in := domain.NoInput()
	in.InteractPressed = true
	sim.Tick(testTick, in)
	require.True(t, player.IsSeated())

	drive := domain.NoInput()
	drive.MoveAxis = domain.Vec2{Y: 1}
	sim.Tick(testTick, drive)
	rec.reset()

	require.NoError(t, sim.Enqueue(killCommand(t, player.ID)))
	sim.Tick(testTick, drive)

	assert.False(t, player.IsAlive())
	assert.False(t, player.IsSeated())
	assert.Equal(t, domain.Vacant, car.Occupancy.State())
	assert.Equal(t, domain.VehicleControls{}, car.Vehicle.Controls)
	assert.True(t, ped.Navigation.Threat.IsZero())
	// Тело игрока не удаляется
	assert.NotNil(t, sim.GetEntity(player.ID))
	assert.Empty(t, rec.ofType(domain.EventEntityRemoved))

	changes := rec.ofType(domain.EventOccupancyChanged)
	require.Len(t, changes, 1)
	assert.False(t, changes[0].Occupied)
}

func TestSimulation_FixedTickReportsVehicleContact(t *testing.T) {
	sim := NewSimulation(testConfig())
	rec := &eventRecorder{}
	sim.Subscribe(rec)

	player := newTestPlayer()
	player.Transform.Position = domain.Vec3{Z: -50}
	car := newTestCar("car", domain.VecZero)
	body := headless.NewBody(domain.DefaultVehicleMass)
	car.Body = body
	wall := newTestCar("wall", domain.Vec3{Z: 5})

	require.NoError(t, sim.Bootstrap(Scene{
		PlayerID: player.ID,
		Actors:   []*Actor{player, car, wall},
		Contacts: headless.NewColliders(sim),
	}))

	body.AddForce(domain.Vec3{Z: 20}, systems.ForceModeVelocityChange)
	sim.FixedTick(100 * time.Millisecond)

	// Въехали в стоящую машину: тело остановлено, удар ушёл в урон
	assert.Equal(t, domain.VecZero, body.Velocity())
	assert.Equal(t, 200-domain.DefaultMaxImpactDamage, car.Vitality.Current)
	damaged := rec.ofType(domain.EventDamaged)
	require.Len(t, damaged, 1)
	assert.Equal(t, car.ID, damaged[0].Target)
	assert.Equal(t, wall.ID, damaged[0].Source)
	assert.Equal(t, 200.0, wall.Vitality.Current)

	// Пока контакт длится, повторного удара нет
	sim.FixedTick(100 * time.Millisecond)
	assert.Len(t, rec.ofType(domain.EventDamaged), 1)
}

func TestSimulation_Enqueue(t *testing.T) {
	player := newTestPlayer()
	sim, rec := newTestSim(t, Scene{Actors: []*Actor{player}})

	assert.ErrorIs(t, sim.Enqueue(api.ClientCommand{Action: "DANCE"}), ErrUnknownAction)
	assert.ErrorIs(t, sim.Enqueue(api.ClientCommand{Action: "FIRE"}), ErrNotAdminAction)

	payload, _ := json.Marshal(api.AmountPayload{TargetID: "player", Amount: 70})
	require.NoError(t, sim.Enqueue(api.ClientCommand{Action: "damage", Payload: payload}))
	payload, _ = json.Marshal(api.AmountPayload{TargetID: "player", Amount: 50})
	require.NoError(t, sim.Enqueue(api.ClientCommand{Action: "HEAL", Payload: payload}))
	// Невалидные данные отклоняются сразу, до очереди
	assert.ErrorIs(t, sim.Enqueue(api.ClientCommand{Action: "HEAL", Payload: json.RawMessage(`{"amount":5}`)}), handlers.ErrInvalidPayload)
	assert.ErrorIs(t, sim.Enqueue(api.ClientCommand{Action: "KILL"}), handlers.ErrInvalidPayload)

	// Команды выполняются только в начале тика
	assert.Equal(t, 100.0, player.Vitality.Current)
	sim.Tick(testTick, domain.NoInput())

	assert.Equal(t, 80.0, player.Vitality.Current)
	damaged := rec.ofType(domain.EventDamaged)
	require.Len(t, damaged, 1)
	assert.Equal(t, 30.0, damaged[0].Health)
	assert.True(t, damaged[0].Source.IsZero())
}

func TestSimulation_VehiclePhysics(t *testing.T) {
	cfg := testConfig()
	sim := NewSimulation(cfg)
	scene, err := DemoScene(cfg, sim)
	require.NoError(t, err)
	require.NoError(t, sim.Bootstrap(scene))
	rec := &eventRecorder{}
	sim.Subscribe(rec)

	aiCar := sim.GetEntity(demoAICarID)
	parked := sim.GetEntity(demoParkedCarID)
	aiStart, parkedStart := aiCar.Transform.Position, parked.Transform.Position

	for i := 0; i < 60; i++ {
		sim.Advance(cfg.FrameDelta(), domain.NoInput())
	}
	assert.Greater(t, aiCar.Transform.Position.DistanceTo(aiStart), 1.0)
	assert.Equal(t, domain.ControlDriverAI, aiCar.Vehicle.Controls.Source)
	assert.Equal(t, parkedStart, parked.Transform.Position)

	t.Run("collision damage", func(t *testing.T) {
		assert.Zero(t, sim.ReportCollision(parked.ID, 5))
		assert.InDelta(t, cfg.Vehicle.MaxImpactDamage, sim.ReportCollision(parked.ID, 500), 1e-9)
		damaged := rec.ofType(domain.EventDamaged)
		require.Len(t, damaged, 1)
		assert.Equal(t, parked.ID, damaged[0].Target)
		assert.Zero(t, sim.ReportCollision("nobody", 500))
	})
}

func TestReplay_Deterministic(t *testing.T) {
	cfg := testConfig()

	run := func(drive func(sim *Simulation)) (*Simulation, *eventRecorder) {
		sim := NewSimulation(cfg)
		scene, err := DemoScene(cfg, sim)
		require.NoError(t, err)
		require.NoError(t, sim.Bootstrap(scene))
		rec := &eventRecorder{}
		sim.Subscribe(rec)
		drive(sim)
		return sim, rec
	}

	recorder := NewRecorder(cfg.Seed, cfg.Tick.FixedStep)
	original, origEvents := run(func(sim *Simulation) {
		sim.Record(recorder)
		for i := 0; i < 180; i++ {
			in := domain.NoInput()
			in.LookDirection = domain.VecForward
			switch {
			case i < 40:
				in.MoveAxis = domain.Vec2{Y: 1}
				in.SprintHeld = i%2 == 0
			case i < 90:
				in.FireHeld = true
				in.AimHeld = i%3 == 0
			case i == 90:
				in.SelectSlot = 1
			default:
				in.FireHeld = true
				in.MoveAxis = domain.Vec2{X: 1}
			}
			if i == 60 {
				payload, _ := json.Marshal(api.AmountPayload{TargetID: "ped_2", Amount: 30})
				require.NoError(t, sim.Enqueue(api.ClientCommand{Action: "DAMAGE", Payload: payload}))
			}
			sim.Advance(cfg.FrameDelta(), in)
		}
	})

	session := recorder.Session()
	require.Len(t, session.Frames, 180)
	require.Len(t, session.Actions, 1)

	replayed, replayEvents := run(func(sim *Simulation) {
		require.NoError(t, sim.Replay(session))
	})

	assert.Equal(t, original.TickCount(), replayed.TickCount())
	assert.Equal(t, original.Snapshot(), replayed.Snapshot())
	assert.Equal(t, origEvents.events, replayEvents.events)
	assert.NotEmpty(t, origEvents.ofType(domain.EventFired))
}

func TestReplay_Rejects(t *testing.T) {
	sim := NewSimulation(testConfig())
	assert.ErrorIs(t, sim.Replay(&domain.ReplaySession{Seed: 42}), ErrNotBootstrapped)

	sim, _ = newTestSim(t, Scene{Actors: []*Actor{newTestPlayer()}})
	err := sim.Replay(&domain.ReplaySession{Seed: 7})
	assert.True(t, errors.Is(err, ErrSeedMismatch))
}
