// Package domain holds the faction-game entity model: factions, assets,
// bases of influence, locations, tags, and goals, plus the derived values
// the turn rules compute from them.
package domain

// AttributeType selects one of the three primary faction attributes.
type AttributeType int

const (
	AttributeCunning AttributeType = iota + 1
	AttributeForce
	AttributeWealth
)

// AttributeTypes lists the primary attributes in display order.
var AttributeTypes = []AttributeType{AttributeCunning, AttributeForce, AttributeWealth}

func (t AttributeType) String() string {
	switch t {
	case AttributeCunning:
		return "Cunning"
	case AttributeForce:
		return "Force"
	case AttributeWealth:
		return "Wealth"
	default:
		return "Unknown"
	}
}

// MagicLevel is an ordered scale of a faction's magical sophistication.
// Levels compare with the usual integer ordering (None < Low < Medium < High).
type MagicLevel int

const (
	MagicNone MagicLevel = iota
	MagicLow
	MagicMedium
	MagicHigh
)

func (m MagicLevel) String() string {
	switch m {
	case MagicNone:
		return "None"
	case MagicLow:
		return "Low"
	case MagicMedium:
		return "Medium"
	case MagicHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// MaxAttribute is the cap on each primary attribute.
const MaxAttribute = 8

// attributeCost[n] is the experience cost to raise an attribute from n-1 to n.
// The same table gives an attribute's hit-point contribution at level n.
// Level 1 is never bought; its entry exists only for the hit-point sum.
var attributeCost = [MaxAttribute + 1]int{0, 1, 2, 4, 6, 9, 12, 16, 20}

// AttributeCost returns the experience cost of attribute level n, or 0 for
// levels outside 1..MaxAttribute.
func AttributeCost(level int) int {
	if level < 1 || level > MaxAttribute {
		return 0
	}
	return attributeCost[level]
}

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
