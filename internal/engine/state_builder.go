package engine

import (
	"sandbox-core/internal/domain"
	"sandbox-core/pkg/api"
)

// BuildActorView собирает DTO актёра для снимка состояния.
func BuildActorView(e *domain.Entity) api.ActorView {
	view := api.ActorView{
		ID:       string(e.ID),
		Kind:     e.Kind.String(),
		Name:     e.Name,
		Pos:      vecView(e.Transform.Position),
		Yaw:      e.Transform.Yaw,
		SeatedIn: string(e.SeatedIn),
	}
	if e.Locomotion != nil {
		view.Crouching = e.Locomotion.Crouching
	}

	if e.Vitality != nil {
		view.Health = &api.HealthView{
			Current: e.Vitality.Current,
			Max:     e.Vitality.MaxHealth,
			IsDead:  e.Vitality.IsDead(),
		}
	}

	// Показываем только активный ствол
	if e.Arsenal != nil {
		if arm := e.Arsenal.Current(); arm != nil {
			view.Weapon = &api.WeaponView{
				ID:       arm.Profile.ID,
				Slot:     e.Arsenal.Active,
				Ammo:     arm.Ammo,
				Magazine: arm.Profile.MagazineSize,
				State:    arm.State.String(),
			}
		}
	}

	if e.Navigation != nil {
		view.NavMode = e.Navigation.Mode.String()
	}
	if e.Occupancy != nil {
		view.Occupant = string(e.Occupancy.OccupantID())
	}
	return view
}

// BuildEventView переводит событие в DTO для клиента.
// Векторы выстрела отправляются только для FIRED.
func BuildEventView(e domain.Event) api.EventView {
	view := api.EventView{
		Type:     e.Type.String(),
		TimeMs:   e.Time.Milliseconds(),
		Source:   string(e.Source),
		Target:   string(e.Target),
		Amount:   e.Amount,
		Health:   e.Health,
		WeaponID: e.WeaponID,
		Slot:     e.Slot,
		Occupied: e.Occupied,
		Mode:     e.Mode,
	}

	if e.Type == domain.EventFired {
		origin, dir := vecView(e.Origin), vecView(e.Direction)
		view.Origin, view.Direction = &origin, &dir
		view.Hit = e.Hit
		view.KickPitch, view.KickYaw = e.Kick.X, e.Kick.Y
		if e.Hit {
			hp := vecView(e.HitPoint)
			view.HitPoint = &hp
		}
	}
	return view
}

// NewEventMessage - сообщение EVENT для рассылки
func NewEventMessage(e domain.Event) api.ServerMessage {
	view := BuildEventView(e)
	return api.ServerMessage{Type: api.MessageEvent, Tick: e.Tick, Event: &view}
}

// NewSnapshotMessage - сообщение SNAPSHOT для рассылки
func NewSnapshotMessage(tick uint64, actors []api.ActorView) api.ServerMessage {
	return api.ServerMessage{Type: api.MessageSnapshot, Tick: tick, Actors: actors}
}

func vecView(v domain.Vec3) api.Vec3View {
	return api.Vec3View{X: v.X, Y: v.Y, Z: v.Z}
}
