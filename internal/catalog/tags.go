package catalog

import "github.com/talgya/faction-turn/internal/domain"

// Faction tag prototypes.
var tags = []*domain.TagPrototype{
	{
		ID:   "t_antimagical",
		Name: "Antimagical",
		Rules: "The faction is dwarven or of some other breed of skilled counter-sorcerers. Assets that require Medium or higher Magic to purchase " +
			"roll all attribute checks twice against this faction during an Attack and take the worst roll.",
	},
	{
		ID:    "t_concealed",
		Name:  "Concealed",
		Rules: "All Assets the faction purchases enter play with the Stealth quality.",
	},
	{
		ID:   "t_imperialist",
		Name: "Imperialist",
		Rules: "The faction quickly expands its Bases of Influence. Once per turn, it can use the Expand Influence action as a special ability " +
			"instead of it taking a full action.",
	},
	{
		ID:   "t_innovative",
		Name: "Innovative",
		Rules: "The faction can purchase Assets as if their attribute ratings were two points higher than they are. " +
			"Only two such over-complex Assets may be owned at any one time.",
	},
	{
		ID:    "t_machiavellian",
		Name:  "Machiavellian",
		Rules: "The faction is diabolically cunning. It rolls an extra die for all Cunning attribute checks. Its Cunning must always be its highest attribute.",
	},
	{
		ID:    "t_martial",
		Name:  "Martial",
		Rules: "The faction is profoundly devoted to war. It rolls an extra die for all Force attribute checks. Force must always be its highest attribute.",
	},
	{
		ID:   "t_massive",
		Name: "Massive",
		Rules: "The faction is an empire, major kingdom, or other huge organizational edifice. It automatically wins attribute checks if its attribute " +
			"is more than twice as big as the opposing side's attribute, unless the other side is also Massive.",
	},
	{
		ID:    "t_mobile",
		Name:  "Mobile",
		Rules: "The faction is exceptionally fast or mobile. Its faction turn movement range is twice what another faction would have in the same situation.",
	},
	{
		ID:    "t_populist",
		Name:  "Populist",
		Rules: "The faction has widespread popular support. Assets that cost 5 Treasure or less to buy cost one point less, to a minimum of 1.",
	},
	{
		ID:    "t_rich",
		Name:  "Rich",
		Rules: "The faction is rich or possessed of mercantile skill. It rolls an extra die for all Wealth attribute checks. Wealth must always be its highest attribute.",
	},
	{
		ID:   "t_rooted",
		Name: "Rooted",
		Rules: "The faction has very deep roots in its area of influence. They roll an extra die for attribute checks in their headquarters location, " +
			"and all rivals roll their own checks there twice, taking the worst die.",
	},
	{
		ID:    "t_scavenger",
		Name:  "Scavenger",
		Rules: "As looters and raiders, when they destroy an enemy Asset they gain a quarter of its purchase value in Treasure, rounded up.",
	},
	{
		ID:    "t_supported",
		Name:  "Supported",
		Rules: "The faction has excellent logistical support. All damaged Assets except Bases of Influence regain one lost hit point per faction turn automatically.",
	},
	{
		ID:   "t_tenacious",
		Name: "Tenacious",
		Rules: "The faction is hard to dislodge. When one of its Bases of Influence is reduced to zero hit points, it instead survives with 1 hit point. " +
			"This trait can't be used again on that base until it's fully fixed.",
	},
	{
		ID:   "t_zealot",
		Name: "Zealot",
		Rules: "Once per turn, when an Asset fails an Attack action check, it can reroll the attribute check. It automatically takes counterattack damage " +
			"from its target, however, or 1d6 if the target has less or none.",
	},
}
