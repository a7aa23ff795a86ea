package engine

import (
	"os"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/systems"
	"sandbox-core/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

const testTick = 200 * time.Millisecond

func testConfig() Config {
	cfg := NewConfig()
	cfg.Seed = 42
	return cfg
}

// eventRecorder собирает события шины
type eventRecorder struct {
	events []domain.Event
}

func (r *eventRecorder) OnEvent(e domain.Event) { r.events = append(r.events, e) }

func (r *eventRecorder) ofType(t domain.EventType) []domain.Event {
	var out []domain.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (r *eventRecorder) types() []domain.EventType {
	out := make([]domain.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func (r *eventRecorder) reset() { r.events = nil }

// stubRay всегда попадает в одну и ту же сущность
type stubRay struct {
	target domain.EntityID
	calls  int
}

func (r *stubRay) Raycast(origin, direction domain.Vec3, maxRange float64, _ domain.LayerMask) (systems.Hit, bool) {
	r.calls++
	return systems.Hit{Point: origin.Add(direction.Scale(5)), Entity: r.target, Distance: 5}, true
}

// stubFinder всегда находит одну машину
type stubFinder struct {
	target domain.EntityID
}

func (f stubFinder) FindControllable(_, _ domain.Vec3, _ float64) (domain.EntityID, bool) {
	return f.target, !f.target.IsZero()
}

func newTestPlayer(profiles ...*domain.WeaponProfile) *Actor {
	loco := domain.DefaultLocomotion()
	loco.Grounded = true
	e := &domain.Entity{
		ID:         "player",
		Kind:       domain.KindPlayer,
		Name:       "Player",
		Vitality:   domain.NewVitality(100),
		Locomotion: &loco,
	}
	if len(profiles) > 0 {
		ars, err := domain.NewArsenal(profiles...)
		if err != nil {
			panic(err)
		}
		e.Arsenal = ars
	}
	return &Actor{Entity: e}
}

func newTestPedestrian(id domain.EntityID, graph *domain.WaypointGraph, node domain.NodeID) *Actor {
	pos, _ := graph.Position(node)
	vit := domain.NewVitality(100)
	vit.RemoveOnDeath = true

	settings := domain.DefaultNavigationSettings()
	nav := domain.NewNavigatingAgent(graph, node, settings)
	nav.Threat = "player"

	return &Actor{Entity: &domain.Entity{
		ID:         id,
		Kind:       domain.KindPedestrian,
		Name:       string(id),
		Transform:  domain.Transform{Position: pos},
		Vitality:   vit,
		Navigation: nav,
	}}
}

func newTestCar(id domain.EntityID, pos domain.Vec3) *Actor {
	return &Actor{Entity: &domain.Entity{
		ID:        id,
		Kind:      domain.KindVehicle,
		Name:      string(id),
		Transform: domain.Transform{Position: pos},
		Vitality:  domain.NewVitality(200),
		Occupancy: domain.NewOccupancyController(domain.VecZero, domain.Vec3{X: -2}),
		Vehicle:   &domain.VehicleComponent{Profile: domain.DefaultVehicleProfile()},
	}}
}

// newTestSim собирает симуляцию с записью всех событий
func newTestSim(t *testing.T, scene Scene) (*Simulation, *eventRecorder) {
	t.Helper()
	sim := NewSimulation(testConfig())
	rec := &eventRecorder{}
	sim.Subscribe(rec)
	if scene.PlayerID.IsZero() {
		scene.PlayerID = "player"
	}
	require.NoError(t, sim.Bootstrap(scene))
	return sim, rec
}

func mustRing(t *testing.T, radius float64, n int) *domain.WaypointGraph {
	t.Helper()
	g, err := buildRing(radius, n)
	require.NoError(t, err)
	return g
}
