package actions

import (
	"sandbox-core/internal/domain"
	"sandbox-core/internal/engine/handlers"
)

// HandleReload - ручная перезарядка. Полный магазин и уже идущая перезарядка игнорируются.
func HandleReload(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor.Arsenal == nil {
		return handlers.EmptyResult(), nil
	}
	arm := ctx.Actor.Arsenal.Current()
	if arm == nil || !arm.RequestReload(ctx.Now) {
		return handlers.EmptyResult(), nil
	}

	return handlers.Result{Events: []domain.Event{{
		Type:     domain.EventReloadStarted,
		Source:   ctx.Actor.ID,
		WeaponID: arm.Profile.ID,
		Slot:     ctx.Actor.Arsenal.Active,
	}}}, nil
}
