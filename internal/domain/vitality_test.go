package domain

import (
	"math"
	"testing"
)

type recordingObserver struct {
	damaged []float64
	deaths  int
}

func (r *recordingObserver) OnDamaged(amount, _ float64) { r.damaged = append(r.damaged, amount) }
func (r *recordingObserver) OnDied()                     { r.deaths++ }

func TestVitality_DamageThenDeath(t *testing.T) {
	v := NewVitality(100)
	obs := &recordingObserver{}
	v.Subscribe(obs)

	if died := v.ApplyDamage(30); died {
		t.Fatal("30 damage must not kill")
	}
	if v.Current != 70 {
		t.Errorf("Expected 70 HP, got %v", v.Current)
	}

	if died := v.ApplyDamage(80); !died {
		t.Fatal("Expected the second hit to kill")
	}
	if v.Current != 0 {
		t.Errorf("Expected 0 HP, got %v", v.Current)
	}
	if !v.IsDead() {
		t.Error("Expected IsDead to be true")
	}
	if obs.deaths != 1 {
		t.Errorf("Expected exactly one death notification, got %d", obs.deaths)
	}
	if len(obs.damaged) != 2 {
		t.Errorf("Expected 2 damage notifications, got %d", len(obs.damaged))
	}
}

func TestVitality_OverkillReportsActualLoss(t *testing.T) {
	v := NewVitality(100)
	obs := &recordingObserver{}
	v.Subscribe(obs)

	v.ApplyDamage(30)
	v.ApplyDamage(80)
	v.ApplyDamage(0)

	want := []float64{30, 70}
	if len(obs.damaged) != len(want) {
		t.Fatalf("Expected %d notifications, got %v", len(want), obs.damaged)
	}
	for i := range want {
		if obs.damaged[i] != want[i] {
			t.Errorf("notification %d: got %v, want %v", i, obs.damaged[i], want[i])
		}
	}
}

func TestVitality_DeadIsFrozen(t *testing.T) {
	v := NewVitality(50)
	obs := &recordingObserver{}
	v.Subscribe(obs)
	v.ApplyDamage(500)

	if died := v.ApplyDamage(10); died {
		t.Error("Damage on a corpse must not report death again")
	}
	v.Heal(25)
	if v.Current != 0 {
		t.Errorf("Corpse must not heal, got %v", v.Current)
	}
	if obs.deaths != 1 {
		t.Errorf("Death must fire once, got %d", obs.deaths)
	}
	if len(obs.damaged) != 1 {
		t.Errorf("No damage notification after death expected, got %d", len(obs.damaged))
	}
}

func TestVitality_StaysInRange(t *testing.T) {
	v := NewVitality(100)
	seq := []float64{-5, 12.5, math.NaN(), 0, math.Inf(1), 3}
	for _, amount := range seq {
		v.ApplyDamage(amount)
		if v.Current < 0 || v.Current > v.MaxHealth {
			t.Fatalf("Current %v left [0, %v] after damage %v", v.Current, v.MaxHealth, amount)
		}
	}
	// +Inf считается мусором и урона не наносит
	if v.Current != 84.5 {
		t.Errorf("Expected 84.5, got %v", v.Current)
	}

	v.Heal(1000)
	if v.Current != 100 {
		t.Errorf("Heal must cap at max, got %v", v.Current)
	}
	v.Heal(-20)
	if v.Current != 100 {
		t.Errorf("Negative heal must be ignored, got %v", v.Current)
	}
}

func TestNewVitality_InvalidMax(t *testing.T) {
	for _, m := range []float64{0, -10, math.NaN()} {
		v := NewVitality(m)
		if v.MaxHealth != DefaultMaxHealth || v.Current != DefaultMaxHealth {
			t.Errorf("NewVitality(%v) = %v/%v, want defaults", m, v.Current, v.MaxHealth)
		}
	}
}
