package utils

import "testing"

func TestStringToSeed_Stable(t *testing.T) {
	if StringToSeed("downtown") != StringToSeed("downtown") {
		t.Fatal("same string must give the same seed")
	}
	if StringToSeed("downtown") == StringToSeed("harbor") {
		t.Fatal("different strings should give different seeds")
	}
}

func TestNewRand_Deterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 10; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if len(id) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", id)
	}
	if id == GenerateID() {
		t.Fatal("ids must differ")
	}
}
