package actions

import (
	"sandbox-core/internal/domain"
	"sandbox-core/internal/engine/handlers"
	"sandbox-core/internal/systems"
)

// HandleInteract: сидя - выйти из машины, пешком - сесть в машину перед камерой
func HandleInteract(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor

	// 1. Выход
	if actor.IsSeated() {
		vehicle := ctx.Finder.GetEntity(actor.SeatedIn)
		if vehicle == nil {
			return handlers.Result{Msg: "Vehicle is gone.", MsgType: "ERROR"}, nil
		}
		if _, ok := systems.ExitVehicle(vehicle); !ok {
			return handlers.EmptyResult(), nil
		}
		return occupancyResult(actor, vehicle, false), nil
	}

	// 2. Поиск машины
	reach := domain.DefaultInteractRange
	if actor.Locomotion != nil {
		reach = actor.Locomotion.InteractRange
	}
	res := systems.FindEnterableVehicle(actor, ctx.Input.LookDirection, reach, ctx.Controllables, ctx.Finder)
	if !res.Valid {
		return handlers.Result{Msg: res.Message, MsgType: "DEBUG"}, nil
	}

	// 3. Посадка
	if !systems.EnterVehicle(actor, res.Target) {
		return handlers.Result{Msg: "Seat is taken.", MsgType: "INFO"}, nil
	}
	return occupancyResult(actor, res.Target, true), nil
}

func occupancyResult(actor, vehicle *domain.Entity, occupied bool) handlers.Result {
	verb := " left "
	if occupied {
		verb = " entered "
	}
	return handlers.Result{
		Msg:     actor.Name + verb + vehicle.Name,
		MsgType: "INFO",
		Events: []domain.Event{{
			Type:     domain.EventOccupancyChanged,
			Source:   actor.ID,
			Target:   vehicle.ID,
			Occupied: occupied,
		}},
	}
}
