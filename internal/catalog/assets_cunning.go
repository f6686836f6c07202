package catalog

import "github.com/talgya/faction-turn/internal/domain"

// Cunning asset prototypes.
var cunningAssets = []*domain.AssetPrototype{
	// Tier 1
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:          "Informers",
			ID:            "c_informers",
			DamageFormula: "C v. C/Special",
			Rules: "As a free action, once per turn, the faction can spend 1 Treasure and have the Informers look for Stealthed Assets. " +
				"To do so, the Informers pick a faction and make a Cunning vs. Cunning Attack on them. No counterattack damage is taken if they fail, " +
				"but if they succeed, all Stealthed Assets of that faction within one move of the Informers are revealed.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 2},
		Stats: domain.AssetStats{
			MaxHP:   3,
			AtkType: attr(domain.AttributeCunning),
			DefType: attr(domain.AttributeCunning),
		},
	},
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:           "Petty Seers",
			ID:             "c_petty_seers",
			CounterFormula: "1d6 damage",
			Rules:          "A cadre of skilled fortune-tellers and minor oracles have been enlisted by the faction to foresee perils and allow swift counterattacks.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 2, MagicLevel: domain.MagicMedium},
		Stats:        domain.AssetStats{MaxHP: 2},
	},
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:  "Smugglers",
			ID:    "c_smugglers",
			Rules: "Back-road runners and blockade slippers work for the faction, able to quietly carry other Assets with them as they move. Once per turn, as a free action, the Smugglers may move themselves and one other Subtle or Stealthed Asset in their location to another location within reach.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 2},
		Stats: domain.AssetStats{
			MaxHP:     4,
			Qualities: []*domain.Quality{QualitySubtle, QualityAction},
		},
	},
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:          "Useful Idiots",
			ID:            "c_useful_idiots",
			DamageFormula: "C v. C/1d4 damage",
			Rules:         "Expendable dupes and deniable catspaws have been recruited to absorb the consequences of the faction's schemes. When another Asset in the same location is targeted by an Attack, the faction may redirect the Attack to the Useful Idiots instead.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 1},
		Stats: domain.AssetStats{
			MaxHP:     2,
			AtkType:   attr(domain.AttributeCunning),
			DefType:   attr(domain.AttributeCunning),
			Qualities: []*domain.Quality{QualitySpecial},
		},
	},
	// Tier 2
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:          "Blackmail",
			ID:            "c_blackmail",
			DamageFormula: "C v. C/1d4+1 damage",
			Rules:         "Carefully curated leverage over local officials and notables lets the faction bend administration in its favor and punish the uncooperative.",
		},
		Requirements: domain.AssetRequirement{Tier: 2, Cost: 4},
		Stats: domain.AssetStats{
			MaxHP:     4,
			AtkType:   attr(domain.AttributeCunning),
			DefType:   attr(domain.AttributeCunning),
			Qualities: []*domain.Quality{QualitySubtle},
		},
	},
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:           "Saboteurs",
			ID:             "c_saboteurs",
			DamageFormula:  "C v. W/2d4 damage",
			CounterFormula: "1d4 damage",
			Rules:          "Trained wreckers and arsonists stand ready to ruin a rival's works. Their Attacks target the victim's Wealth, burning stores and fouling tools.",
		},
		Requirements: domain.AssetRequirement{Tier: 2, Cost: 5},
		Stats: domain.AssetStats{
			MaxHP:     4,
			AtkType:   attr(domain.AttributeCunning),
			DefType:   attr(domain.AttributeWealth),
			Qualities: []*domain.Quality{QualitySubtle},
		},
	},
	// Tier 3
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:           "Covert Cell",
			ID:             "c_covert_cell",
			DamageFormula:  "C v. C/1d6 damage",
			CounterFormula: "1d6 damage",
			Rules:          "A compartmentalized ring of agents operates in the area, hard to root out and quick to avenge an exposure. The cell enters play Stealthed.",
		},
		Requirements: domain.AssetRequirement{Tier: 3, Cost: 6},
		Stats: domain.AssetStats{
			MaxHP:     6,
			AtkType:   attr(domain.AttributeCunning),
			DefType:   attr(domain.AttributeCunning),
			Qualities: []*domain.Quality{QualitySubtle, QualityStealth},
		},
	},
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:  "Seditionists",
			ID:    "c_seditionists",
			Rules: "Agitators in the faction's pay stir unrest wherever they are planted. Once per turn, as a free action, the faction may force a rival with a Base of Influence at the Seditionists' location to spend 1 Treasure on keeping order, if the rival has any.",
		},
		Requirements: domain.AssetRequirement{Tier: 3, Cost: 8},
		Stats: domain.AssetStats{
			MaxHP:     8,
			Qualities: []*domain.Quality{QualitySubtle, QualityAction},
		},
	},
	// Tier 4
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:           "Spymaster",
			ID:             "c_spymaster",
			DamageFormula:  "C v. C/2d6 damage",
			CounterFormula: "1d6 damage",
			Rules:          "A gifted handler coordinates the faction's intelligence apparatus. Allied Cunning Assets in the same location may reroll one failed attribute check per turn.",
		},
		Requirements: domain.AssetRequirement{Tier: 4, Cost: 10},
		Stats: domain.AssetStats{
			MaxHP:     4,
			AtkType:   attr(domain.AttributeCunning),
			DefType:   attr(domain.AttributeCunning),
			Qualities: []*domain.Quality{QualitySubtle, QualitySpecial},
		},
	},
	// Tier 5
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:           "Court Patronage",
			ID:             "c_court_patronage",
			CounterFormula: "1d8 damage",
			Rules:          "The faction has cultivated a web of highly-placed patrons whose protection shields its works and punishes those who move openly against it.",
		},
		Requirements: domain.AssetRequirement{Tier: 5, Cost: 12},
		Stats: domain.AssetStats{
			MaxHP:     10,
			DefType:   attr(domain.AttributeCunning),
			Qualities: []*domain.Quality{QualitySpecial},
		},
	},
	// Tier 6
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:          "Shadow Network",
			ID:            "c_shadow_network",
			DamageFormula: "C v. C/2d6+2 damage",
			Rules:         "An entire parallel society of cutouts, safe houses, and sleeper agents serves the faction across the region. Its Attacks strike from unexpected quarters.",
		},
		Requirements: domain.AssetRequirement{Tier: 6, Cost: 18},
		Stats: domain.AssetStats{
			MaxHP:     12,
			AtkType:   attr(domain.AttributeCunning),
			DefType:   attr(domain.AttributeCunning),
			Qualities: []*domain.Quality{QualitySubtle, QualityStealth},
		},
	},
	// Tier 7
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:          "Omniscient Seers",
			ID:            "c_omniscient_seers",
			DamageFormula: "C v. C/Special",
			Rules: "A circle of oracles pierces every veil the faction's rivals raise. Once per turn, as a free action, the Seers reveal all Stealthed Assets " +
				"of one chosen faction anywhere within the faction's reach.",
		},
		Requirements: domain.AssetRequirement{Tier: 7, Cost: 22, MagicLevel: domain.MagicHigh},
		Stats: domain.AssetStats{
			MaxHP:     10,
			AtkType:   attr(domain.AttributeCunning),
			Qualities: []*domain.Quality{QualitySpecial, QualityAction},
		},
	},
	// Tier 8
	{
		Type: domain.AttributeCunning,
		Strings: domain.AssetStrings{
			Name:           "Popular Movement",
			ID:             "c_popular_movement",
			DamageFormula:  "C v. C/2d8 damage",
			CounterFormula: "2d6 damage",
			Rules:          "The faction's cause has caught fire among the common folk, an upwelling of support no ruler can easily suppress and no rival can fully infiltrate.",
		},
		Requirements: domain.AssetRequirement{Tier: 8, Cost: 30},
		Stats: domain.AssetStats{
			MaxHP:     24,
			AtkType:   attr(domain.AttributeCunning),
			DefType:   attr(domain.AttributeCunning),
			Qualities: []*domain.Quality{QualitySpecial},
		},
	},
}
