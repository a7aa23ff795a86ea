package engine

import (
	"encoding/json"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/systems"
	"sandbox-core/pkg/api"
	"time"
)

// tickActor - кадр одного актёра. Ввод получает только игрок.
func (s *Simulation) tickActor(a *Actor, in domain.InputFrame, dt time.Duration) {
	e := a.Entity

	// Перезарядка идёт и у мёртвых, и у сидящих
	if e.Arsenal != nil {
		for _, slot := range e.Arsenal.PollAll(s.now) {
			s.emit(domain.Event{
				Type:     domain.EventReloadCompleted,
				Source:   e.ID,
				WeaponID: e.Arsenal.Slots[slot].Profile.ID,
				Slot:     slot,
			})
		}
	}

	if !e.IsAlive() {
		return
	}

	switch {
	case e.ID == s.playerID:
		s.tickPlayer(a, in, dt)
	case e.Navigation != nil:
		s.tickPedestrian(a, dt)
	case e.Vehicle != nil && e.Driver != nil:
		s.tickDriver(a)
	}
}

func (s *Simulation) tickPlayer(a *Actor, in domain.InputFrame, dt time.Duration) {
	e := a.Entity

	// В машине ввод уходит в руль
	if e.IsSeated() {
		if v := s.GetEntity(e.SeatedIn); v != nil {
			if v.Vehicle != nil && v.IsAlive() {
				v.Vehicle.Controls = systems.OccupantControls(in)
			}
			systems.FollowSeat(v, e)
			s.world.UpdateEntityCell(e)
		}
		if in.InteractPressed {
			s.execute(domain.ActionInteract, e, nil, in)
		}
		return
	}

	move := systems.CalculatePlayerMove(e, in, a.Mover, dt.Seconds())
	e.Transform = move.Transform
	s.world.UpdateEntityCell(e)

	if in.SelectSlot >= 0 {
		payload, _ := json.Marshal(api.SlotPayload{Slot: in.SelectSlot})
		s.execute(domain.ActionSelectWeapon, e, payload, in)
	}
	if in.ReloadPressed {
		s.execute(domain.ActionReload, e, nil, in)
	}
	if in.FireHeld {
		s.execute(domain.ActionFire, e, nil, in)
	}
	if in.InteractPressed {
		s.execute(domain.ActionInteract, e, nil, in)
	}
}

func (s *Simulation) tickPedestrian(a *Actor, dt time.Duration) {
	e := a.Entity
	nav := e.Navigation

	// Угрозу смотрим по снимку начала кадра
	var threat systems.Threat
	if !nav.Threat.IsZero() {
		if st, ok := s.frame[nav.Threat]; ok && st.Alive {
			threat = systems.Threat{Position: st.Position, Present: true}
		}
	}

	if systems.UpdateNavigation(nav, e.Transform, threat, a.Follower, s.rng) {
		s.emit(domain.Event{
			Type:   domain.EventNavModeChanged,
			Source: nav.Threat,
			Target: e.ID,
			Mode:   nav.Mode.String(),
		})
	}

	e.Transform = systems.ApplyLocomotion(nav, e.Transform, a.Follower, dt.Seconds())
	s.world.UpdateEntityCell(e)
}

func (s *Simulation) tickDriver(a *Actor) {
	e := a.Entity
	// Игрок за рулём перебивает водителя-ИИ
	if e.Occupancy != nil && e.Occupancy.State() == domain.Occupied {
		return
	}
	e.Vehicle.Controls = systems.ComputeDriverControls(e.Driver, e.Transform)
}
