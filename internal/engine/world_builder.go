package engine

import (
	"fmt"
	"math"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/headless"
)

// Параметры демо-сцены
const (
	demoRingRadius  = 30.0
	demoRingNodes   = 8
	demoRoadRadius  = 45.0
	demoRoadPoints  = 12
	demoPlayerID    = domain.EntityID("player")
	demoAICarID     = domain.EntityID("car_ai")
	demoParkedCarID = domain.EntityID("car_parked")
)

// Место водителя и точка выхода в локальных координатах машины
var (
	demoSeatOffset = domain.Vec3{X: -0.4, Y: 0.5, Z: 0.2}
	demoExitOffset = domain.Vec3{X: -2.5}
)

// DemoScene собирает стартовую сцену: кольцо точек для пешеходов,
// игрока с двумя стволами, машину с водителем-ИИ и пустую припаркованную машину.
// Коллабораторы берутся из headless и читают актёров через src.
func DemoScene(cfg Config, src headless.EntitySource) (Scene, error) {
	graph, err := buildRing(demoRingRadius, demoRingNodes)
	if err != nil {
		return Scene{}, err
	}
	colliders := headless.NewColliders(src)
	scene := Scene{
		Graph:         graph,
		PlayerID:      demoPlayerID,
		Raycaster:     colliders,
		Controllables: colliders,
		Contacts:      colliders,
	}

	// 1. Игрок
	arsenal, err := domain.NewArsenal(&cfg.Weapons.Pistol, &cfg.Weapons.Rifle)
	if err != nil {
		return Scene{}, fmt.Errorf("player arsenal: %w", err)
	}
	loco := cfg.Player.LocomotionComponent
	loco.Grounded = true
	scene.Actors = append(scene.Actors, &Actor{
		Entity: &domain.Entity{
			ID:         demoPlayerID,
			Kind:       domain.KindPlayer,
			Name:       "Player",
			Vitality:   domain.NewVitality(cfg.Player.MaxHealth),
			Arsenal:    arsenal,
			Locomotion: &loco,
		},
		Mover: headless.Ground{},
	})

	// 2. Пешеходы расставлены по узлам кольца и боятся игрока
	nodes := graph.Nodes()
	for i := 0; i < cfg.Pedestrian.Count && len(nodes) > 0; i++ {
		node := nodes[i%len(nodes)]
		vit := domain.NewVitality(cfg.Pedestrian.MaxHealth)
		vit.RemoveOnDeath = true

		nav := domain.NewNavigatingAgent(graph, node.ID, cfg.Pedestrian.NavigationSettings)
		nav.Threat = demoPlayerID

		scene.Actors = append(scene.Actors, &Actor{
			Entity: &domain.Entity{
				ID:         domain.EntityID(fmt.Sprintf("ped_%d", i+1)),
				Kind:       domain.KindPedestrian,
				Name:       fmt.Sprintf("Pedestrian %d", i+1),
				Transform:  domain.Transform{Position: node.Position},
				Vitality:   vit,
				Navigation: nav,
			},
			Follower: headless.NewStraightFollower(node.Position),
		})
	}

	// 3. Машины
	road := ringPoints(demoRoadRadius, demoRoadPoints)
	aiCar := newVehicle(cfg, demoAICarID, "Taxi", domain.Transform{Position: road[0], Yaw: math.Pi / 2})
	aiCar.Driver = domain.NewDriverAgent(road, cfg.Vehicle.WaypointRadius)
	aiCar.Driver.Advance()
	scene.Actors = append(scene.Actors, &Actor{Entity: aiCar, Body: headless.NewBody(cfg.Vehicle.Mass)})

	parked := newVehicle(cfg, demoParkedCarID, "Sedan", domain.Transform{Position: domain.Vec3{X: 5, Z: 3}})
	scene.Actors = append(scene.Actors, &Actor{Entity: parked, Body: headless.NewBody(cfg.Vehicle.Mass)})

	return scene, nil
}

func newVehicle(cfg Config, id domain.EntityID, name string, t domain.Transform) *domain.Entity {
	return &domain.Entity{
		ID:        id,
		Kind:      domain.KindVehicle,
		Name:      name,
		Transform: t,
		Vitality:  domain.NewVitality(cfg.Vehicle.MaxHealth),
		Occupancy: domain.NewOccupancyController(demoSeatOffset, demoExitOffset),
		Vehicle:   &domain.VehicleComponent{Profile: cfg.Vehicle.VehicleProfile},
	}
}

// buildRing - замкнутое кольцо с двусторонними связями
func buildRing(radius float64, n int) (*domain.WaypointGraph, error) {
	g := domain.NewWaypointGraph()
	ids := make([]domain.NodeID, 0, n)
	for _, p := range ringPoints(radius, n) {
		ids = append(ids, g.AddNode(p))
	}
	for i := range ids {
		if err := g.LinkBoth(ids[i], ids[(i+1)%len(ids)]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func ringPoints(radius float64, n int) []domain.Vec3 {
	pts := make([]domain.Vec3, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, domain.Vec3{X: radius * math.Sin(a), Z: radius * math.Cos(a)})
	}
	return pts
}
