package systems

import (
	"sandbox-core/internal/domain"
	"sandbox-core/pkg/logger"
	"time"

	"github.com/sirupsen/logrus"
)

// FireContext - всё, что нужно для одного нажатия на спуск
type FireContext struct {
	Now    time.Duration
	Origin domain.Vec3
	// Aim - направление взгляда камеры
	Aim                 domain.Vec3
	Aiming              bool
	AimSpreadMultiplier float64
	Mask                domain.LayerMask
}

// ShotResult - итог попытки выстрела
type ShotResult struct {
	Fired         bool
	ReloadStarted bool
	Direction     domain.Vec3
	Hit           Hit
	HasHit        bool
	Damage        float64
	Killed        bool
	// Kick - отдача камеры (pitch, yaw), градусы
	Kick domain.Vec2
}

// SpreadBound - максимальное отклонение ствола в градусах
func SpreadBound(p *domain.WeaponProfile, aiming bool, aimMultiplier float64) float64 {
	if aiming {
		return p.Recoil * aimMultiplier
	}
	return p.Recoil
}

// ApplySpread отклоняет направление на случайный угол в [-bound, bound] по обеим осям
func ApplySpread(dir domain.Vec3, bound float64, rng domain.RandomSource) domain.Vec3 {
	pitch := (rng.Float64()*2 - 1) * bound
	yaw := (rng.Float64()*2 - 1) * bound
	return domain.RotateDirection(dir, pitch, yaw)
}

// FireWeapon стреляет из активного ствола: тратит патрон, отклоняет луч и наносит урон первой цели.
// Если выстрел запрещён (перезарядка, пустой магазин, интервал), состояние не меняется.
func FireWeapon(shooter *domain.Entity, ars *domain.Arsenal, fc FireContext, ray Raycaster, finder EntityProvider, rng domain.RandomSource) ShotResult {
	arm := ars.Current()
	if arm == nil {
		return ShotResult{}
	}
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":  "combat_system",
		"shooter_id": shooter.ID,
		"weapon":     arm.Profile.ID,
	})

	wasReloading := arm.State == domain.ReloadReloading
	if !ars.TryFire(fc.Now) {
		combatLogger.WithFields(logrus.Fields{
			"ammo":  arm.Ammo,
			"state": arm.State,
		}).Debug("Shot rejected.")
		return ShotResult{}
	}

	aim, ok := fc.Aim.Normalized()
	if !ok {
		aim = shooter.Transform.Forward()
	}

	res := ShotResult{
		Fired:         true,
		ReloadStarted: !wasReloading && arm.State == domain.ReloadReloading,
		Direction:     ApplySpread(aim, SpreadBound(arm.Profile, fc.Aiming, fc.AimSpreadMultiplier), rng),
		Kick:          domain.Vec2{X: -arm.Profile.Recoil},
	}

	if ray == nil {
		combatLogger.Warn("Shot fired without a raycaster, nothing can be hit.")
		return res
	}

	hit, ok := ray.Raycast(fc.Origin, res.Direction, arm.Profile.Range, fc.Mask)
	if !ok {
		return res
	}
	res.Hit, res.HasHit = hit, true

	if hit.Entity.IsZero() || finder == nil {
		return res
	}
	target := finder.GetEntity(hit.Entity)
	if target == nil {
		return res
	}

	applied, killed := ApplyDamage(target, arm.Profile.Damage)
	if applied {
		res.Damage = arm.Profile.Damage
		res.Killed = killed
	}

	combatLogger.WithFields(logrus.Fields{
		"target_id":   target.ID,
		"target_kind": target.Kind,
		"damage":      res.Damage,
		"distance":    hit.Distance,
		"ammo_left":   arm.Ammo,
		"target_died": killed,
	}).Info("Shot resolved.")

	return res
}

// ApplyDamage наносит урон цели, если у неё есть здоровье и она жива.
// Возвращает (урон применён, цель погибла этим ударом).
func ApplyDamage(target *domain.Entity, amount float64) (bool, bool) {
	if target.Vitality == nil {
		return false, false
	}
	if target.Vitality.IsDead() {
		logger.Log.WithFields(logrus.Fields{
			"component": "combat_system",
			"target_id": target.ID,
		}).Debug("Damage ignored: target is already dead.")
		return false, false
	}
	return true, target.Vitality.ApplyDamage(amount)
}
