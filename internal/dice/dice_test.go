package dice

import (
	"testing"

	"github.com/talgya/faction-turn/internal/domain"
)

func TestRollRange(t *testing.T) {
	r := NewRoller(1)
	for i := 0; i < 1000; i++ {
		if got := r.Roll(8); got < 1 || got > 8 {
			t.Fatalf("Roll(8) = %d, out of range", got)
		}
	}
}

func TestInitiativeRange(t *testing.T) {
	r := NewRoller(2)
	for i := 0; i < 1000; i++ {
		if got := r.Initiative(); got < 1 || got > 8 {
			t.Fatalf("Initiative() = %d, out of range", got)
		}
	}
}

func TestAttributeCheckRange(t *testing.T) {
	r := NewRoller(3)
	f := &domain.Faction{Force: 5}
	for i := 0; i < 1000; i++ {
		if got := r.AttributeCheck(f, domain.AttributeForce); got < 6 || got > 15 {
			t.Fatalf("AttributeCheck = %d, want 1d10+5 in 6..15", got)
		}
	}
}

func TestDeterministicPerSeed(t *testing.T) {
	a, b := NewRoller(42), NewRoller(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Roll(10), b.Roll(10); x != y {
			t.Fatalf("roll %d diverged: %d vs %d", i, x, y)
		}
	}
}
