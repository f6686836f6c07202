package catalog

import "github.com/talgya/faction-turn/internal/domain"

// Wealth asset prototypes.
var wealthAssets = []*domain.AssetPrototype{
	// Tier 1
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:  "Front",
			ID:    "w_front",
			Rules: "A modest legitimate business launders the faction's money and shelters its agents. Other Assets in the same location are treated as Stealthed against the free Attack provoked by a new Base of Influence.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 2},
		Stats: domain.AssetStats{
			MaxHP:     3,
			Qualities: []*domain.Quality{QualitySubtle, QualitySpecial},
		},
	},
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:  "Local Investments",
			ID:    "w_local_investments",
			Rules: "The faction owns farms, shops, or workshops in the area. Once per turn, as a free action, the faction gains 1 Treasure if it has a Base of Influence at this Asset's location.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 2},
		Stats: domain.AssetStats{
			MaxHP:     4,
			Qualities: []*domain.Quality{QualityAction},
		},
	},
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:           "Armed Guards",
			ID:             "w_armed_guards",
			DamageFormula:  "W v. F/1d4 damage",
			CounterFormula: "1d4 damage",
			Rules:          "Hired blades watch over the faction's holdings, capable of seeing off common brigands if not a real army.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 3},
		Stats: domain.AssetStats{
			MaxHP:   3,
			AtkType: attr(domain.AttributeWealth),
			DefType: attr(domain.AttributeForce),
		},
	},
	// Tier 2
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:  "Caravan Company",
			ID:    "w_caravan_company",
			Rules: "Wagons, pack trains, or coastal luggers move goods for the faction. Once per faction turn, as a free action, the company may carry one allied non-Force Asset at its location to another location within reach.",
		},
		Requirements: domain.AssetRequirement{Tier: 2, Cost: 4},
		Stats: domain.AssetStats{
			MaxHP:     4,
			Qualities: []*domain.Quality{QualityAction},
		},
	},
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:          "Usurers",
			ID:            "w_usurers",
			DamageFormula: "W v. W/1d6 damage",
			Rules:         "Moneylenders in the faction's pay entangle rivals in debt. Their Attacks target a victim's Wealth, calling in markers at ruinous moments.",
		},
		Requirements: domain.AssetRequirement{Tier: 2, Cost: 4},
		Stats: domain.AssetStats{
			MaxHP:     4,
			AtkType:   attr(domain.AttributeWealth),
			DefType:   attr(domain.AttributeWealth),
			Qualities: []*domain.Quality{QualitySubtle},
		},
	},
	// Tier 3
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:           "Guild Chapter",
			ID:             "w_guild_chapter",
			DamageFormula:  "W v. W/1d8 damage",
			CounterFormula: "1d6 damage",
			Rules:          "A chartered guild house advances the faction's commercial interests, strangling competitors with regulation, pricing, and the occasional accident.",
		},
		Requirements: domain.AssetRequirement{Tier: 3, Cost: 6},
		Stats: domain.AssetStats{
			MaxHP:   6,
			AtkType: attr(domain.AttributeWealth),
			DefType: attr(domain.AttributeWealth),
		},
	},
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:  "Alchemical Workshop",
			ID:    "w_alchemical_workshop",
			Rules: "Hired alchemists brew battlefield tinctures and rarities for sale. Upkeep reflects the cost of exotic reagents. Once per turn, as a free action, the workshop may repair 1 hit point of damage to an allied Asset in its location.",
		},
		Requirements: domain.AssetRequirement{Tier: 3, Cost: 7, MagicLevel: domain.MagicLow},
		Stats: domain.AssetStats{
			MaxHP:     5,
			Upkeep:    1,
			Qualities: []*domain.Quality{QualityAction},
		},
	},
	// Tier 4
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:           "Trade Consortium",
			ID:             "w_trade_consortium",
			DamageFormula:  "W v. W/2d6 damage",
			CounterFormula: "1d6 damage",
			Rules:          "A web of partnered merchant houses pools capital for the faction, able to drown a rival's commerce in a flood of cheap goods and bought loyalty.",
		},
		Requirements: domain.AssetRequirement{Tier: 4, Cost: 10},
		Stats: domain.AssetStats{
			MaxHP:   10,
			AtkType: attr(domain.AttributeWealth),
			DefType: attr(domain.AttributeWealth),
		},
	},
	// Tier 5
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:  "Ancient Vault",
			ID:    "w_ancient_vault",
			Rules: "The faction controls a pre-collapse vault of treasures and working artifacts. Once per turn, as a free action, it gains 2 Treasure as pieces are carefully sold off.",
		},
		Requirements: domain.AssetRequirement{Tier: 5, Cost: 12, MagicLevel: domain.MagicLow},
		Stats: domain.AssetStats{
			MaxHP:     8,
			Qualities: []*domain.Quality{QualitySpecial, QualityAction},
		},
	},
	// Tier 6
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:           "Mint",
			ID:             "w_mint",
			CounterFormula: "2d6 damage",
			Rules:          "The faction strikes its own coin, accepted across the region. Its reserves are deep enough to buy out or bury most threats before they mature.",
		},
		Requirements: domain.AssetRequirement{Tier: 6, Cost: 18},
		Stats: domain.AssetStats{
			MaxHP:     15,
			DefType:   attr(domain.AttributeWealth),
			Qualities: []*domain.Quality{QualitySpecial},
		},
	},
	// Tier 7
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:          "Golem Foundry",
			ID:            "w_golem_foundry",
			DamageFormula: "W v. F/2d8 damage",
			Rules:         "Tireless constructs pour from the faction's workshops, laboring in its holdings and marching to its defense when coin alone will not serve.",
		},
		Requirements: domain.AssetRequirement{Tier: 7, Cost: 25, MagicLevel: domain.MagicMedium},
		Stats: domain.AssetStats{
			MaxHP:   14,
			AtkType: attr(domain.AttributeWealth),
			DefType: attr(domain.AttributeForce),
		},
	},
	// Tier 8
	{
		Type: domain.AttributeWealth,
		Strings: domain.AssetStrings{
			Name:           "Hidden Economy",
			ID:             "w_hidden_economy",
			DamageFormula:  "W v. W/2d10 damage",
			CounterFormula: "2d8 damage",
			Rules:          "Every ledger in the region quietly feeds the faction. Rivals who audit their own books find the faction was there first.",
		},
		Requirements: domain.AssetRequirement{Tier: 8, Cost: 35},
		Stats: domain.AssetStats{
			MaxHP:     25,
			AtkType:   attr(domain.AttributeWealth),
			DefType:   attr(domain.AttributeWealth),
			Qualities: []*domain.Quality{QualitySubtle, QualitySpecial},
		},
	},
}
