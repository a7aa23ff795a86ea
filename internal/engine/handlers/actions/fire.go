package actions

import (
	"sandbox-core/internal/domain"
	"sandbox-core/internal/engine/handlers"
	"sandbox-core/internal/systems"
)

// eyeHeight - высота камеры над ногами, откуда идёт луч выстрела
const eyeHeight = 1.6

// HandleFire - нажатие на спуск активного оружия
func HandleFire(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor.Arsenal == nil || ctx.Actor.IsSeated() {
		return handlers.EmptyResult(), nil
	}
	arm := ctx.Actor.Arsenal.Current()
	if arm == nil {
		return handlers.EmptyResult(), nil
	}

	fc := systems.FireContext{
		Now:                 ctx.Now,
		Origin:              ctx.Actor.Transform.Position.Add(domain.Vec3{Y: eyeHeight}),
		Aim:                 ctx.Input.LookDirection,
		Aiming:              ctx.Input.AimHeld,
		AimSpreadMultiplier: ctx.AimSpreadMultiplier,
		Mask:                domain.LayerAll,
	}

	shot := systems.FireWeapon(ctx.Actor, ctx.Actor.Arsenal, fc, ctx.Raycaster, ctx.Finder, ctx.Rng)
	if !shot.Fired {
		return handlers.EmptyResult(), nil
	}

	fired := domain.Event{
		Type:      domain.EventFired,
		Source:    ctx.Actor.ID,
		WeaponID:  arm.Profile.ID,
		Origin:    fc.Origin,
		Direction: shot.Direction,
		Hit:       shot.HasHit,
		Kick:      shot.Kick,
	}
	if shot.HasHit {
		fired.HitPoint = shot.Hit.Point
		fired.Target = shot.Hit.Entity
		fired.Amount = shot.Damage
	}

	res := handlers.Result{Events: []domain.Event{fired}}
	if shot.ReloadStarted {
		res.Events = append(res.Events, domain.Event{
			Type:     domain.EventReloadStarted,
			Source:   ctx.Actor.ID,
			WeaponID: arm.Profile.ID,
			Slot:     ctx.Actor.Arsenal.Active,
		})
	}
	if shot.Killed {
		res.Msg, res.MsgType = ctx.Actor.Name+" killed "+string(fired.Target), "COMBAT"
	}
	return res, nil
}
