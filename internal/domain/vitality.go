package domain

// VitalityObserver получает синхронные уведомления об изменении здоровья.
type VitalityObserver interface {
	OnDamaged(amount, current float64)
	OnDied()
}

// Vitality - здоровье и смерть. Общая модель для всех актёров.
type Vitality struct {
	MaxHealth float64 `json:"maxHealth"`
	Current   float64 `json:"current"`
	// RemoveOnDeath - удалять ли сущность из мира после смерти
	RemoveOnDeath bool `json:"removeOnDeath"`

	Dead bool `json:"dead"`

	observers []VitalityObserver
}

// NewVitality создаёт полностью здоровую сущность.
// Некорректный максимум заменяется значением по умолчанию.
func NewVitality(maxHealth float64) *Vitality {
	if !IsFinite(maxHealth) || maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	return &Vitality{MaxHealth: maxHealth, Current: maxHealth}
}

// Subscribe добавляет наблюдателя
func (v *Vitality) Subscribe(o VitalityObserver) {
	if o == nil {
		return
	}
	v.observers = append(v.observers, o)
}

func (v *Vitality) IsDead() bool {
	return v.Dead
}

// Fraction - доля оставшегося здоровья, [0, 1]
func (v *Vitality) Fraction() float64 {
	return v.Current / v.MaxHealth
}

// ApplyDamage наносит урон. Возвращает true, если именно этот удар убил.
func (v *Vitality) ApplyDamage(amount float64) bool {
	if v.Dead {
		return false
	}
	if !IsFinite(amount) || amount < 0 {
		amount = 0
	}

	before := v.Current
	v.Current -= amount
	if v.Current < 0 {
		v.Current = 0
	}

	// Наблюдатели получают фактическую потерю здоровья
	for _, o := range v.observers {
		o.OnDamaged(before-v.Current, v.Current)
	}

	if v.Current == 0 {
		v.Dead = true
		for _, o := range v.observers {
			o.OnDied()
		}
		return true
	}
	return false
}

// Heal лечит сущность
func (v *Vitality) Heal(amount float64) {
	if v.Dead {
		return // Мёртвых не лечим
	}
	if !IsFinite(amount) || amount < 0 {
		return
	}
	v.Current += amount
	if v.Current > v.MaxHealth {
		v.Current = v.MaxHealth
	}
}
