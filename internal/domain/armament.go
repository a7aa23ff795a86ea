package domain

import (
	"strings"
	"time"
)

// ReloadState - состояние магазина
type ReloadState uint8

const (
	ReloadIdle ReloadState = iota
	ReloadReloading
)

func (s ReloadState) String() string {
	switch s {
	case ReloadIdle:
		return "IDLE"
	case ReloadReloading:
		return "RELOADING"
	default:
		return "UNKNOWN"
	}
}

// Armament - магазин конкретного ствола.
// Время - смещение от старта симуляции. Темп стрельбы держит Arsenal.
type Armament struct {
	Profile        *WeaponProfile `json:"profile"`
	Ammo           int            `json:"ammo"`
	State          ReloadState    `json:"state"`
	ReloadDeadline time.Duration  `json:"reloadDeadline"`
}

// NewArmament создаёт ствол с полным магазином.
func NewArmament(p *WeaponProfile) (*Armament, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Armament{Profile: p, Ammo: p.MagazineSize}, nil
}

// IsFull - магазин полон (пустой магазин нулевой ёмкости тоже "полон")
func (a *Armament) IsFull() bool {
	return a.Ammo >= a.Profile.MagazineSize
}

// CanFire - в магазине есть патрон и он не перезаряжается
func (a *Armament) CanFire() bool {
	return a.State == ReloadIdle && a.Ammo > 0
}

// TryFire тратит патрон, если магазин готов.
// Опустевший магазин сразу уходит в перезарядку.
func (a *Armament) TryFire(now time.Duration) bool {
	a.Poll(now)
	if !a.CanFire() {
		return false
	}

	a.Ammo--
	if a.Ammo == 0 {
		a.beginReload(now)
	}
	return true
}

// RequestReload начинает перезарядку. Повторный запрос во время перезарядки
// и запрос при полном магазине игнорируются. Возвращает true, если перезарядка началась.
func (a *Armament) RequestReload(now time.Duration) bool {
	if a.State == ReloadReloading || a.IsFull() {
		return false
	}
	a.beginReload(now)
	return true
}

// Poll завершает перезарядку, если дедлайн наступил. Не блокирует.
// Возвращает true в тот тик, когда магазин снова полон.
func (a *Armament) Poll(now time.Duration) bool {
	if a.State != ReloadReloading || now < a.ReloadDeadline {
		return false
	}
	a.Ammo = a.Profile.MagazineSize
	a.State = ReloadIdle
	a.ReloadDeadline = 0
	return true
}

func (a *Armament) beginReload(now time.Duration) {
	a.State = ReloadReloading
	a.ReloadDeadline = now + a.Profile.ReloadDuration
}

// Arsenal - набор стволов с активным слотом.
// Интервал между выстрелами общий: смена оружия его не сбрасывает.
type Arsenal struct {
	Slots        []*Armament   `json:"slots"`
	Active       int           `json:"active"`
	NextFireTime time.Duration `json:"nextFireTime"`
}

// NewArsenal собирает арсенал из профилей; первый слот активен.
func NewArsenal(profiles ...*WeaponProfile) (*Arsenal, error) {
	ars := &Arsenal{Slots: make([]*Armament, 0, len(profiles))}
	for _, p := range profiles {
		a, err := NewArmament(p)
		if err != nil {
			return nil, err
		}
		ars.Slots = append(ars.Slots, a)
	}
	return ars, nil
}

// Current - активный ствол (nil, если арсенал пуст)
func (ars *Arsenal) Current() *Armament {
	if ars.Active < 0 || ars.Active >= len(ars.Slots) {
		return nil
	}
	return ars.Slots[ars.Active]
}

// CanFire проверяет выстрел из активного ствола без изменения состояния.
// Граница интервала включительная.
func (ars *Arsenal) CanFire(now time.Duration) bool {
	a := ars.Current()
	return a != nil && now >= ars.NextFireTime && a.CanFire()
}

// TryFire стреляет из активного ствола и взводит общий интервал
// по профилю того ствола, из которого выстрелили.
func (ars *Arsenal) TryFire(now time.Duration) bool {
	a := ars.Current()
	if a == nil || now < ars.NextFireTime {
		return false
	}
	if !a.TryFire(now) {
		return false
	}
	ars.NextFireTime = now + a.Profile.FireInterval
	return true
}

// Equip переключает слот. Состояние магазинов сохраняется за каждым стволом.
func (ars *Arsenal) Equip(slot int) bool {
	if slot < 0 || slot >= len(ars.Slots) || slot == ars.Active {
		return false
	}
	ars.Active = slot
	return true
}

// PollAll опрашивает все стволы, включая неактивные.
// Возвращает слоты, в которых перезарядка завершилась.
func (ars *Arsenal) PollAll(now time.Duration) []int {
	var done []int
	for i, a := range ars.Slots {
		if a.Poll(now) {
			done = append(done, i)
		}
	}
	return done
}

// SlotByWeapon ищет слот по ID оружия (без учёта регистра)
func (ars *Arsenal) SlotByWeapon(id string) (int, bool) {
	for i, a := range ars.Slots {
		if strings.EqualFold(a.Profile.ID, id) {
			return i, true
		}
	}
	return -1, false
}
