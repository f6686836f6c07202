package domain

// Faction is one competing power: three primary attributes, a magic level,
// secondary pools (hit points, Treasure, experience), and the collections it
// owns (assets, bases of influence, tags, an optional active goal).
type Faction struct {
	ID   string
	Name string
	Desc string

	Cunning int
	Force   int
	Wealth  int
	Magic   MagicLevel

	HP         int
	Treasure   int
	Exp        int
	Initiative int // last rolled initiative for the current round

	Goal  *Goal
	Notes string

	Assets []*Asset
	Bases  []*BaseOfInfluence
	Tags   []*Tag
}

// NewFaction creates a faction with all attributes at 1 and hit points at
// maximum.
func NewFaction(id, name string) *Faction {
	f := &Faction{
		ID:      id,
		Name:    name,
		Cunning: 1,
		Force:   1,
		Wealth:  1,
		Magic:   MagicNone,
	}
	f.HP = f.MaxHP()
	return f
}

// MaxHP is the sum of the attribute cost table applied to each primary
// attribute.
func (f *Faction) MaxHP() int {
	return AttributeCost(f.Cunning) + AttributeCost(f.Force) + AttributeCost(f.Wealth)
}

// Attribute returns the value of the primary attribute selected by t.
func (f *Faction) Attribute(t AttributeType) int {
	switch t {
	case AttributeCunning:
		return f.Cunning
	case AttributeForce:
		return f.Force
	case AttributeWealth:
		return f.Wealth
	default:
		return 0
	}
}

// TreasureGain is the per-turn income: half of Wealth plus a quarter of
// Force and Cunning combined, rounded up.
func (f *Faction) TreasureGain() int {
	return ceilDiv(2*f.Wealth+f.Force+f.Cunning, 4)
}

// AssetsByType filters owned assets by attribute type. Pending assets count
// under their intended type.
func (f *Faction) AssetsByType(t AttributeType) []*Asset {
	var out []*Asset
	for _, a := range f.Assets {
		if a.Type() == t {
			out = append(out, a)
		}
	}
	return out
}

// AssetUpkeep sums the per-turn upkeep of every initialized asset.
func (f *Faction) AssetUpkeep() int {
	upkeep := 0
	for _, a := range f.Assets {
		if a.Initialized() {
			upkeep += a.Prototype.Upkeep()
		}
	}
	return upkeep
}

// AssetExcess counts assets of a type beyond the matching attribute's value.
// Each excess asset costs 1 Treasure per turn.
func (f *Faction) AssetExcess(t AttributeType) int {
	n := len(f.AssetsByType(t))
	if limit := f.Attribute(t); n > limit {
		return n - limit
	}
	return 0
}

// TotalUpkeep is the full upkeep bill: asset upkeep plus excess-asset costs
// across all three attribute types.
func (f *Faction) TotalUpkeep() int {
	total := f.AssetUpkeep()
	for _, t := range AttributeTypes {
		total += f.AssetExcess(t)
	}
	return total
}

// AddAsset appends an asset to the owned collection.
func (f *Faction) AddAsset(a *Asset) {
	f.Assets = append(f.Assets, a)
}

// RemoveAsset drops an owned asset by id, detaching it from its location's
// reverse index. Unknown ids are ignored.
func (f *Faction) RemoveAsset(id string) {
	for i, a := range f.Assets {
		if a.ID == id {
			a.MoveTo(nil)
			f.Assets = append(f.Assets[:i], f.Assets[i+1:]...)
			return
		}
	}
}

// AddBase appends a base of influence to the owned collection.
func (f *Faction) AddBase(b *BaseOfInfluence) {
	f.Bases = append(f.Bases, b)
}

// RemoveBase drops an owned base by id, detaching it from its location's
// reverse index. Unknown ids are ignored.
func (f *Faction) RemoveBase(id string) {
	for i, b := range f.Bases {
		if b.ID == id {
			b.MoveTo(nil)
			f.Bases = append(f.Bases[:i], f.Bases[i+1:]...)
			return
		}
	}
}

// DamageBase applies damage to an owned base. The same amount is dealt to
// the faction's own hit points, capped at what the base can absorb; overflow
// past the base's remaining hit points is not transmitted. A base reduced to
// zero is removed. Returns the damage actually absorbed.
func (f *Faction) DamageBase(b *BaseOfInfluence, damage int) int {
	if damage <= 0 {
		return 0
	}
	absorbed := damage
	if absorbed > b.HP {
		absorbed = b.HP
	}
	b.HP -= absorbed
	f.HP -= absorbed
	if b.HP <= 0 {
		f.RemoveBase(b.ID)
	}
	return absorbed
}

// LevelUpCost returns the experience cost of raising the given attribute by
// one level, and whether a raise is possible at all (attribute below cap).
func (f *Faction) LevelUpCost(t AttributeType) (int, bool) {
	cur := f.Attribute(t)
	if cur < 1 || cur >= MaxAttribute {
		return 0, false
	}
	return AttributeCost(cur + 1), true
}

// LevelUp spends experience to raise an attribute by one level at the
// table-defined cost. Returns false (and changes nothing) when the attribute
// is capped or the faction cannot afford the cost.
func (f *Faction) LevelUp(t AttributeType) bool {
	cost, ok := f.LevelUpCost(t)
	if !ok || f.Exp < cost {
		return false
	}
	f.Exp -= cost
	switch t {
	case AttributeCunning:
		f.Cunning++
	case AttributeForce:
		f.Force++
	case AttributeWealth:
		f.Wealth++
	default:
		f.Exp += cost
		return false
	}
	return true
}

// SetGoal adopts a goal copied from a template, replacing any current goal.
func (f *Faction) SetGoal(tmpl GoalTemplate) {
	f.Goal = NewGoal(tmpl)
}

// CompleteGoal awards the active goal's difficulty in experience and clears
// it. No-op without an active goal.
func (f *Faction) CompleteGoal() {
	if f.Goal == nil {
		return
	}
	f.Exp += f.Goal.Difficulty
	f.Goal = nil
}

// AbortGoal clears the active goal with no reward. The written ruleset's
// next-turn paralysis penalty is deliberately not applied here.
func (f *Faction) AbortGoal() {
	f.Goal = nil
}

// HighestAttribute returns the largest primary attribute value.
func (f *Faction) HighestAttribute() int {
	return max(f.Cunning, max(f.Force, f.Wealth))
}

// LowestAttribute returns the smallest primary attribute value.
func (f *Faction) LowestAttribute() int {
	return min(f.Cunning, min(f.Force, f.Wealth))
}
