package domain

// BaseOfInfluence is a faction's foothold at a location. Creation costs
// 1 Treasure per maximum hit point. Damage dealt to a base is also dealt to
// the owning faction, but never beyond what the base itself can absorb.
type BaseOfInfluence struct {
	ID       string
	Owner    string // owning faction id
	Location *Location
	MaxHP    int
	HP       int
	Desc     string
}

// NewBase creates a base at full hit points and registers it with the
// location's reverse index.
func NewBase(id, owner string, loc *Location, maxHP int) *BaseOfInfluence {
	b := &BaseOfInfluence{ID: id, Owner: owner, MaxHP: maxHP, HP: maxHP}
	if loc != nil {
		b.MoveTo(loc)
	}
	return b
}

// MoveTo relocates the base, keeping both locations' reverse indexes in step.
func (b *BaseOfInfluence) MoveTo(loc *Location) {
	if b.Location == loc {
		return
	}
	if b.Location != nil {
		b.Location.removeBase(b)
	}
	b.Location = loc
	if loc != nil {
		loc.addBase(b)
	}
}
