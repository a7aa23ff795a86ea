package actions

import (
	"fmt"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/engine/handlers"
	"sandbox-core/pkg/api"
)

// HandleSelectWeapon переключает слот. Состояние перезарядки остаётся у каждого ствола своим.
func HandleSelectWeapon(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	ars := ctx.Actor.Arsenal
	if ars == nil || !ars.Equip(p.Slot) {
		return handlers.EmptyResult(), nil
	}

	weapon := ars.Current().Profile.ID
	return handlers.Result{
		Msg:     fmt.Sprintf("%s switched to %s", ctx.Actor.Name, weapon),
		MsgType: "INFO",
		Events: []domain.Event{{
			Type:     domain.EventWeaponSwitched,
			Source:   ctx.Actor.ID,
			WeaponID: weapon,
			Slot:     p.Slot,
		}},
	}, nil
}
