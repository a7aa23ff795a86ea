package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNegativeCapacity = errors.New("magazine size must not be negative")
	ErrNegativeDamage   = errors.New("damage must not be negative")
	ErrInvalidTiming    = errors.New("fire interval and reload duration must not be negative")
	ErrInvalidBallistic = errors.New("range and recoil must be finite and not negative")
	ErrNilProfile       = errors.New("weapon profile is nil")
)

// WeaponProfile - неизменяемое описание оружия, общее для всех экземпляров.
type WeaponProfile struct {
	ID             string        `json:"id" mapstructure:"id"`
	Damage         float64       `json:"damage" mapstructure:"damage"`
	FireInterval   time.Duration `json:"fireInterval" mapstructure:"fireInterval"`
	Range          float64       `json:"range" mapstructure:"range"`
	Recoil         float64       `json:"recoil" mapstructure:"recoil"` // градусы
	MagazineSize   int           `json:"magazineSize" mapstructure:"magazineSize"`
	ReloadDuration time.Duration `json:"reloadDuration" mapstructure:"reloadDuration"`
}

// Validate отклоняет заведомо сломанные профили.
// Магазин нулевого размера допустим.
func (p *WeaponProfile) Validate() error {
	if p == nil {
		return ErrNilProfile
	}
	if p.MagazineSize < 0 {
		return fmt.Errorf("weapon %q: %w (got %d)", p.ID, ErrNegativeCapacity, p.MagazineSize)
	}
	if !IsFinite(p.Damage) || p.Damage < 0 {
		return fmt.Errorf("weapon %q: %w (got %v)", p.ID, ErrNegativeDamage, p.Damage)
	}
	if p.FireInterval < 0 || p.ReloadDuration < 0 {
		return fmt.Errorf("weapon %q: %w", p.ID, ErrInvalidTiming)
	}
	if !IsFinite(p.Range) || p.Range < 0 || !IsFinite(p.Recoil) || p.Recoil < 0 {
		return fmt.Errorf("weapon %q: %w", p.ID, ErrInvalidBallistic)
	}
	return nil
}

// PistolProfile - стартовый пистолет
func PistolProfile() *WeaponProfile {
	return &WeaponProfile{
		ID:             "pistol",
		Damage:         20,
		FireInterval:   200 * time.Millisecond,
		Range:          60,
		Recoil:         2,
		MagazineSize:   12,
		ReloadDuration: DefaultReloadDuration,
	}
}

// RifleProfile - автомат: слабее, но скорострельнее
func RifleProfile() *WeaponProfile {
	return &WeaponProfile{
		ID:             "rifle",
		Damage:         10,
		FireInterval:   120 * time.Millisecond,
		Range:          80,
		Recoil:         1.5,
		MagazineSize:   24,
		ReloadDuration: DefaultReloadDuration,
	}
}
