package admin

import (
	"fmt"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/engine/handlers"
	"sandbox-core/internal/systems"
	"sandbox-core/pkg/api"
)

// HandleDamage: { "targetId": "ped_1", "amount": 30 }
func HandleDamage(ctx handlers.Context, p api.AmountPayload) (handlers.Result, error) {
	target := ctx.Finder.GetEntity(domain.EntityID(p.TargetID))
	if target == nil {
		return handlers.Result{Msg: "Target not found", MsgType: "ERROR"}, nil
	}
	applied, killed := systems.ApplyDamage(target, p.Amount)
	if !applied {
		return handlers.Result{Msg: fmt.Sprintf("%s cannot be damaged", target.Name), MsgType: "ERROR"}, nil
	}
	msg := fmt.Sprintf("Dealt %.0f to %s", p.Amount, target.Name)
	if killed {
		msg += " (killed)"
	}
	return handlers.Result{Msg: msg, MsgType: "COMBAT"}, nil
}

// HandleHeal: { "targetId": "player", "amount": 50 }. Мёртвых не лечит.
func HandleHeal(ctx handlers.Context, p api.AmountPayload) (handlers.Result, error) {
	target := ctx.Finder.GetEntity(domain.EntityID(p.TargetID))
	if target == nil {
		return handlers.Result{Msg: "Target not found", MsgType: "ERROR"}, nil
	}
	if target.Vitality == nil || target.Vitality.IsDead() {
		return handlers.Result{Msg: fmt.Sprintf("%s cannot be healed", target.Name), MsgType: "ERROR"}, nil
	}
	target.Vitality.Heal(p.Amount)
	return handlers.Result{
		Msg:     fmt.Sprintf("%s healed to %.0f", target.Name, target.Vitality.Current),
		MsgType: "INFO",
	}, nil
}

// HandleKill: { "targetId": "car_1" }
func HandleKill(ctx handlers.Context, p api.EntityPayload) (handlers.Result, error) {
	target := ctx.Finder.GetEntity(domain.EntityID(p.TargetID))
	if target == nil {
		return handlers.Result{Msg: "Target not found", MsgType: "ERROR"}, nil
	}
	if target.Vitality == nil {
		return handlers.Result{Msg: fmt.Sprintf("%s is invulnerable", target.Name), MsgType: "ERROR"}, nil
	}
	systems.ApplyDamage(target, target.Vitality.Current)
	return handlers.Result{Msg: fmt.Sprintf("Smited %s", target.Name), MsgType: "COMBAT"}, nil
}
