package systems_test

import (
	"sandbox-core/internal/domain"
	"sandbox-core/internal/systems"
	"sandbox-core/internal/systems/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCar() *domain.Entity {
	return &domain.Entity{
		ID:        "car",
		Kind:      domain.KindVehicle,
		Vitality:  domain.NewVitality(200),
		Occupancy: domain.NewOccupancyController(domain.Vec3{Y: 0.5}, domain.Vec3{X: -2.5}),
		Vehicle:   &domain.VehicleComponent{Profile: domain.DefaultVehicleProfile()},
	}
}

func TestEnterExitVehicle(t *testing.T) {
	car := newCar()
	player := &domain.Entity{ID: "player", Kind: domain.KindPlayer, Vitality: domain.NewVitality(100)}
	other := &domain.Entity{ID: "other", Kind: domain.KindPlayer, Vitality: domain.NewVitality(100)}

	require.True(t, systems.EnterVehicle(player, car))
	assert.Equal(t, car.ID, player.SeatedIn)
	assert.True(t, player.ControlSuspended)

	assert.False(t, systems.EnterVehicle(other, car), "seat is taken")
	assert.Equal(t, player.ID, car.Occupancy.OccupantID())

	id, ok := systems.ExitVehicle(car)
	require.True(t, ok)
	assert.Equal(t, player.ID, id)
	assert.False(t, player.IsSeated())
	assert.False(t, player.ControlSuspended)

	_, ok = systems.ExitVehicle(car)
	assert.False(t, ok, "exit from a vacant vehicle is a no-op")
}

func TestEnterVehicle_Preconditions(t *testing.T) {
	t.Run("wrecked vehicle", func(t *testing.T) {
		car := newCar()
		car.Vitality.ApplyDamage(1000)
		p := &domain.Entity{ID: "p", Vitality: domain.NewVitality(100)}
		assert.False(t, systems.EnterVehicle(p, car))
		assert.Equal(t, domain.Vacant, car.Occupancy.State())
	})

	t.Run("dead actor", func(t *testing.T) {
		car := newCar()
		p := &domain.Entity{ID: "p", Vitality: domain.NewVitality(100)}
		p.Vitality.ApplyDamage(100)
		assert.False(t, systems.EnterVehicle(p, car))
	})

	t.Run("already seated elsewhere", func(t *testing.T) {
		car := newCar()
		p := &domain.Entity{ID: "p", SeatedIn: "another-car"}
		assert.False(t, systems.EnterVehicle(p, car))
	})
}

func TestComputeVehicleForces(t *testing.T) {
	p := domain.DefaultVehicleProfile()
	tr := domain.Transform{}
	const dt = 0.02

	t.Run("occupant", func(t *testing.T) {
		c := domain.VehicleControls{Forward: 1, Steer: -0.5, Brake: true, Source: domain.ControlOccupant}
		f := systems.ComputeVehicleForces(tr, c, p, domain.Vec3{Z: 10}, 1200, dt)
		assert.InDelta(t, 800*dt, f.Drive.Z, 1e-9)
		assert.InDelta(t, -0.5*4*1200, f.Torque.Y, 1e-9)
		assert.True(t, f.HasBrake)
		assert.InDelta(t, -10*1200*dt, f.Brake.Z, 1e-9)
	})

	t.Run("driver ai", func(t *testing.T) {
		c := domain.VehicleControls{Forward: 1, Steer: 1, Source: domain.ControlDriverAI}
		f := systems.ComputeVehicleForces(tr, c, p, domain.VecZero, 1000, dt)
		assert.InDelta(t, 600*dt, f.Drive.Z, 1e-9)
		assert.InDelta(t, 1000*20*dt, f.Torque.Y, 1e-9)
		assert.False(t, f.HasBrake)
	})

	t.Run("nobody drives", func(t *testing.T) {
		f := systems.ComputeVehicleForces(tr, domain.VehicleControls{Forward: 1}, p, domain.VecZero, 1000, dt)
		assert.Equal(t, domain.VecZero, f.Drive)
		assert.Equal(t, domain.VecZero, f.Torque)
	})
}

func TestApplyVehicleForces(t *testing.T) {
	ctrl := gomock.NewController(t)
	body := mocks.NewMockRigidBody(ctrl)

	f := systems.VehicleForces{
		Drive:      domain.Vec3{Z: 16},
		DriveMode:  systems.ForceModeAcceleration,
		Torque:     domain.Vec3{Y: 4800},
		TorqueMode: systems.ForceModeForce,
		Brake:      domain.Vec3{Z: -3},
		HasBrake:   true,
	}

	gomock.InOrder(
		body.EXPECT().AddForce(f.Drive, systems.ForceModeAcceleration),
		body.EXPECT().AddRelativeTorque(f.Torque, systems.ForceModeForce),
		body.EXPECT().AddForce(f.Brake, systems.ForceModeAcceleration),
	)

	systems.ApplyVehicleForces(body, f)
}

func TestApplyCollisionDamage(t *testing.T) {
	car := newCar()
	car.Occupancy.TryEnter(&domain.Entity{ID: "p"}, car.Transform)

	assert.Zero(t, systems.ApplyCollisionDamage(car, 8))
	assert.Equal(t, 200.0, car.Vitality.Current)

	dmg := systems.ApplyCollisionDamage(car, 45)
	assert.InDelta(t, 25, dmg, 1e-9)
	assert.InDelta(t, 175, car.Vitality.Current, 1e-9)

	// Без водителя урон тот же
	car.Occupancy.Release()
	assert.InDelta(t, 50, systems.ApplyCollisionDamage(car, 120), 1e-9)
}

func TestOccupantControls(t *testing.T) {
	c := systems.OccupantControls(domain.InputFrame{MoveAxis: domain.Vec2{X: 2, Y: -0.5}, BrakeHeld: true})
	assert.Equal(t, 1.0, c.Steer)
	assert.Equal(t, -0.5, c.Forward)
	assert.True(t, c.Brake)
	assert.Equal(t, domain.ControlOccupant, c.Source)
}
