// Package dice provides the die rolls the faction rules call for: d8
// initiative and d10 attribute checks.
package dice

import (
	"math/rand"

	"github.com/talgya/faction-turn/internal/domain"
)

// Roller rolls dice from a seedable source. A fixed seed produces the same
// roll sequence, which the tests and the demo seeder rely on.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller seeded with the given value.
func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform draw in 1..sides inclusive.
func (r *Roller) Roll(sides int) int {
	return r.rng.Intn(sides) + 1
}

// Initiative rolls the 1d8 used to order the turn roster.
func (r *Roller) Initiative() int {
	return r.Roll(8)
}

// AttributeCheck rolls 1d10 plus the faction's value in the given attribute.
func (r *Roller) AttributeCheck(f *domain.Faction, t domain.AttributeType) int {
	return r.Roll(10) + f.Attribute(t)
}
