package catalog

import "github.com/talgya/faction-turn/internal/domain"

// Force asset prototypes, tiers 1 through 8.
var forceAssets = []*domain.AssetPrototype{
	// Tier 1
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Fearful Intimidation",
			ID:             "c_fearful_intimidation",
			CounterFormula: "1d4 damage",
			Rules:          "Judicious exercises of force have intimidated the locals, making them reluctant to cooperate with any group that stands opposed to the faction.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 2},
		Stats:        domain.AssetStats{MaxHP: 4},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Local Guard",
			ID:             "c_local_guard",
			DamageFormula:  "F v. F/1d3+1 damage",
			CounterFormula: "1d4+1 damage",
			Rules:          "The settlement has a trained militia or city guard willing to defend the faction's interests there.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 3},
		Stats: domain.AssetStats{
			MaxHP:   4,
			AtkType: attr(domain.AttributeForce),
			DefType: attr(domain.AttributeForce),
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:          "Summoned Hunter",
			ID:            "c_summoned_hunter",
			DamageFormula: "C v. F/1d6 damage",
			Rules:         "A skilled sorcerer has summoned a magical beast or mentally bound a usefully disposable assassin into the faction's service.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 4, MagicLevel: domain.MagicMedium},
		Stats: domain.AssetStats{
			MaxHP:     4,
			AtkType:   attr(domain.AttributeCunning),
			DefType:   attr(domain.AttributeForce),
			Qualities: []*domain.Quality{QualitySubtle},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:          "Thugs",
			ID:            "c_thugs",
			DamageFormula: "F v. C/1d6 damage",
			Rules:         "These gutter ruffians and common kneebreakers have been organized in service to the faction's causes.",
		},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: 2},
		Stats: domain.AssetStats{
			MaxHP:     1,
			AtkType:   attr(domain.AttributeForce),
			DefType:   attr(domain.AttributeCunning),
			Qualities: []*domain.Quality{QualitySubtle},
		},
	},
	// Tier 2
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:          "Guerrilla Populace",
			ID:            "c_guerrilla_populace",
			DamageFormula: "F v. F/1d4+1 damage",
			Rules:         "The locals have the assistance of trained guerrilla warfare leaders who can aid them in sabotaging and attacking unwary hostiles.",
		},
		Requirements: domain.AssetRequirement{Tier: 2, Cost: 6},
		Stats: domain.AssetStats{
			MaxHP:   4,
			AtkType: attr(domain.AttributeForce),
			DefType: attr(domain.AttributeForce),
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name: "Military Transport",
			ID:   "c_military_transport",
			Rules: "A branch of skilled teamsters, transport ships, road-building crews, or other logistical facilitators is in service to the faction. " +
				"As a free action once per faction turn, it can bring an allied Asset to its location, provided they're within one turn's movement range, " +
				"or move an allied Asset from its own location to a target also within a turn's move. " +
				"Multiple Military Transport assets can chain this movement over long distances.",
		},
		Requirements: domain.AssetRequirement{Tier: 2, Cost: 4},
		Stats: domain.AssetStats{
			MaxHP:     6,
			Qualities: []*domain.Quality{QualityAction},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Reserve Corps",
			ID:             "c_reserve_corps",
			DamageFormula:  "F v. F/1d6 damage",
			CounterFormula: "1d6 damage",
			Rules:          "Retired military personnel and rear-line troops are spread through the area as workers or colonists, available to resist hostilities as needed.",
		},
		Requirements: domain.AssetRequirement{Tier: 2, Cost: 4},
		Stats: domain.AssetStats{
			MaxHP:   4,
			AtkType: attr(domain.AttributeForce),
			DefType: attr(domain.AttributeForce),
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Scouts",
			ID:             "c_scouts",
			DamageFormula:  "F v. F/2d4 damage",
			CounterFormula: "1d4+1 damage",
			Rules:          "Long-range scouts and reconnaissance experts work for the faction, able to venture deep into hostile territory.",
		},
		Requirements: domain.AssetRequirement{Tier: 2, Cost: 5},
		Stats: domain.AssetStats{
			MaxHP:     5,
			AtkType:   attr(domain.AttributeForce),
			DefType:   attr(domain.AttributeForce),
			Qualities: []*domain.Quality{QualitySubtle},
		},
	},
	// Tier 3
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Enchanted Elites",
			ID:             "c_enchanted_elites",
			DamageFormula:  "F v. F/1d10 damage",
			CounterFormula: "1d6 damage",
			Rules:          "A carefully-selected group of skilled warriors are given magical armaments and arcane blessings to boost their effectiveness.",
		},
		Requirements: domain.AssetRequirement{Tier: 3, Cost: 8, MagicLevel: domain.MagicMedium},
		Stats: domain.AssetStats{
			MaxHP:     6,
			AtkType:   attr(domain.AttributeForce),
			DefType:   attr(domain.AttributeForce),
			Qualities: []*domain.Quality{QualitySubtle},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Infantry",
			ID:             "c_infantry",
			DamageFormula:  "F v. F/1d8 damage",
			CounterFormula: "1d6 damage",
			Rules:          "Common foot soldiers have been organized and armed by the faction. While rarely particularly heroic in their capabilities, they have the advantage of numbers.",
		},
		Requirements: domain.AssetRequirement{Tier: 3, Cost: 6},
		Stats: domain.AssetStats{
			MaxHP:   6,
			AtkType: attr(domain.AttributeForce),
			DefType: attr(domain.AttributeForce),
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Temple Fanatics",
			ID:             "c_temple_fanatics",
			DamageFormula:  "F v. F/2d6 damage",
			CounterFormula: "2d6 damage",
			Rules: "Fanatical servants of a cult, ideology, or larger religion, these enthusiasts wreak havoc on enemies without a thought for their own lives. " +
				"After every time the Temple Fanatics defend or successfully attack, they take 1d4 damage.",
		},
		Requirements: domain.AssetRequirement{Tier: 3, Cost: 4},
		Stats: domain.AssetStats{
			MaxHP:     6,
			AtkType:   attr(domain.AttributeForce),
			DefType:   attr(domain.AttributeForce),
			Qualities: []*domain.Quality{QualitySpecial},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Witch Hunters",
			ID:             "c_witch_hunters",
			DamageFormula:  "C v. C/1d4+1 damage",
			CounterFormula: "1d6 damage",
			Rules:          "Certain personnel are trained in sniffing out traitors and spies in the organization, along with the presence of hostile magic or hidden spellcraft.",
		},
		Requirements: domain.AssetRequirement{Tier: 3, Cost: 6, MagicLevel: domain.MagicLow},
		Stats: domain.AssetStats{
			MaxHP:   4,
			AtkType: attr(domain.AttributeCunning),
			DefType: attr(domain.AttributeCunning),
		},
	},
	// Tier 4
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Cavalry",
			ID:             "c_cavalry",
			DamageFormula:  "F v. F/2d6 damage",
			CounterFormula: "1d4 damage",
			Rules:          "Mounted troops, chariots, or other mobile soldiers are in service to the faction. While weak on defense, they can harry logistics and mount powerful charges.",
		},
		Requirements: domain.AssetRequirement{Tier: 4, Cost: 8},
		Stats: domain.AssetStats{
			MaxHP:   12,
			AtkType: attr(domain.AttributeForce),
			DefType: attr(domain.AttributeForce),
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name: "Military Roads",
			ID:   "c_military_roads",
			Rules: "The faction has established a network of roads with a logistical stockpile at this Asset's location. " +
				"As a consequence, once per faction turn, the faction can move any one Asset from any location within its reach " +
				"to any other location within its reach at a cost of 1 Treasure.",
		},
		Requirements: domain.AssetRequirement{Tier: 4, Cost: 10},
		Stats: domain.AssetStats{
			MaxHP:     10,
			Qualities: []*domain.Quality{QualityAction},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Vanguard Unit",
			ID:             "c_vanguard_unit",
			CounterFormula: "1d6 damage",
			Rules: "This unit is specially trained to build bridges, reduce fortifications, and facilitate a lightning strike into enemy territory. " +
				"When its faction takes a Relocate Asset turn, it can move the Vanguard Unit and any allied units at the same location to any other " +
				"location within range, even if the unit type would normally be prohibited from moving there. " +
				"The unit may remain at that location afterwards even if the Vanguard Unit leaves.",
		},
		Requirements: domain.AssetRequirement{Tier: 4, Cost: 10},
		Stats: domain.AssetStats{
			MaxHP:     10,
			Qualities: []*domain.Quality{QualityAction},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "War Fleet",
			ID:             "c_war_fleet",
			DamageFormula:  "F v. F/2d6 damage",
			CounterFormula: "1d8 damage",
			Rules: "While a war fleet can only Attack assets and locations within reach of the waterways, once per turn it can freely relocate itself " +
				"to any coastal area within movement range. The Asset itself must be based out of some landward location to provide for supply and refitting.",
		},
		Requirements: domain.AssetRequirement{Tier: 4, Cost: 12},
		Stats: domain.AssetStats{
			MaxHP:     8,
			AtkType:   attr(domain.AttributeForce),
			DefType:   attr(domain.AttributeForce),
			Qualities: []*domain.Quality{QualityAction},
		},
	},
	// Tier 5
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:          "Demonic Slayer",
			ID:            "c_demonic_slayer",
			DamageFormula: "C v. C/2d6+2 damage",
			Rules:         "Powerful sorcerers have summoned or constructed an inhuman assassin-beast to hunt down and slaughter the faction's enemies. A Demonic Slayer enters play Stealthed.",
		},
		Requirements: domain.AssetRequirement{Tier: 5, Cost: 12, MagicLevel: domain.MagicHigh},
		Stats: domain.AssetStats{
			MaxHP:     4,
			AtkType:   attr(domain.AttributeCunning),
			DefType:   attr(domain.AttributeCunning),
			Qualities: []*domain.Quality{QualitySubtle, QualitySpecial, QualityStealth},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name: "Magical Logistics",
			ID:   "c_magical_logistics",
			Rules: "An advanced web of magical Workings, skilled sorcerers, and trained logistical experts are enlisted to streamline the faction's " +
				"maintenance and sustain damaged units. Once per faction turn, as a free action, the Asset can repair 2 hit points of damage to an allied Force Asset.",
		},
		Requirements: domain.AssetRequirement{Tier: 5, Cost: 14, MagicLevel: domain.MagicMedium},
		Stats: domain.AssetStats{
			MaxHP:     6,
			Qualities: []*domain.Quality{QualitySpecial, QualityAction},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Siege Experts",
			ID:             "c_siege_experts",
			DamageFormula:  "F v. W/1d6 damage",
			CounterFormula: "1d6 damage",
			Rules: "These soldiers are trained in trenching, sapping, and razing targeted structures. " +
				"When they successfully Attack an enemy Asset, the owner loses 1d4 points of Treasure from their reserves and this faction gains it.",
		},
		Requirements: domain.AssetRequirement{Tier: 5, Cost: 10},
		Stats: domain.AssetStats{
			MaxHP:   8,
			AtkType: attr(domain.AttributeForce),
			DefType: attr(domain.AttributeWealth),
		},
	},
	// Tier 6
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Fortification Program",
			ID:             "c_fortification_program",
			CounterFormula: "2d6 damage",
			Rules: "A program of organized fortification and supply caching has been undertaken around the Asset's location, hardening allied communities " +
				"and friendly Assets. Once per turn, when an enemy makes an Attack that targets the faction's Force rating, the faction can use the " +
				"Fortification Program to defend if the Asset is within a turn's move from the attack.",
		},
		Requirements: domain.AssetRequirement{Tier: 6, Cost: 20},
		Stats: domain.AssetStats{
			MaxHP:     18,
			Qualities: []*domain.Quality{QualityAction},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Knights",
			ID:             "c_knights",
			DamageFormula:  "F v. F/2d8 damage",
			CounterFormula: "2d6 damage",
			Rules:          "Elite warriors of considerable personal prowess have been trained or enlisted by the faction, either from noble sympathizers, veteran members, or amenable mercenaries.",
		},
		Requirements: domain.AssetRequirement{Tier: 6, Cost: 18},
		Stats: domain.AssetStats{
			MaxHP:   16,
			AtkType: attr(domain.AttributeForce),
			DefType: attr(domain.AttributeForce),
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "War Machines",
			ID:             "c_war_machines",
			DamageFormula:  "F v. F/2d10+4 damage",
			CounterFormula: "1d10 damage",
			Rules:          "Mobile war machines driven by trained beasts or magical motive power are under the faction's control.",
		},
		Requirements: domain.AssetRequirement{Tier: 6, Cost: 25, MagicLevel: domain.MagicMedium},
		Stats: domain.AssetStats{
			MaxHP:   14,
			AtkType: attr(domain.AttributeForce),
			DefType: attr(domain.AttributeForce),
		},
	},
	// Tier 7
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:          "Brilliant General",
			ID:            "c_brilliant_general",
			DamageFormula: "C v. F/1d8 damage",
			Rules: "A leader for the ages is in service with the faction. Whenever the Brilliant General or any allied Force Asset in the same location " +
				"Attacks or is made to defend, it can roll an extra die to do so.",
		},
		Requirements: domain.AssetRequirement{Tier: 7, Cost: 25},
		Stats: domain.AssetStats{
			MaxHP:     8,
			AtkType:   attr(domain.AttributeCunning),
			DefType:   attr(domain.AttributeForce),
			Qualities: []*domain.Quality{QualitySubtle, QualitySpecial},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Purity Rites",
			ID:             "c_purity_rites",
			CounterFormula: "2d8+2 damage",
			Rules: "A rigorous program of regular mental inspection and counterintelligence measures has been undertaken by the faction. " +
				"This Asset can only defend against attacks that target the faction's Cunning, but it allows the faction to roll an extra die to defend.",
		},
		Requirements: domain.AssetRequirement{Tier: 7, Cost: 20, MagicLevel: domain.MagicLow},
		Stats: domain.AssetStats{
			MaxHP:     10,
			Qualities: []*domain.Quality{QualitySpecial},
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Warshaped",
			ID:             "c_warshaped",
			DamageFormula:  "F v. F/2d8+2 damage",
			CounterFormula: "2d8 damage",
			Rules: "The faction has the use of magical creatures designed specifically for warfare, or ordinary humans that have been greatly altered " +
				"to serve the faction's needs. Such forces are few and elusive enough to evade easy detection.",
		},
		Requirements: domain.AssetRequirement{Tier: 7, Cost: 30, MagicLevel: domain.MagicHigh},
		Stats: domain.AssetStats{
			MaxHP:     16,
			AtkType:   attr(domain.AttributeForce),
			DefType:   attr(domain.AttributeForce),
			Qualities: []*domain.Quality{QualitySubtle},
		},
	},
	// Tier 8
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:          "Apocalypse Engine",
			ID:            "c_apocalypse_engine",
			DamageFormula: "F v. F/3d10+4 damage",
			Rules: "One of a number of hideously powerful ancient super-weapons unearthed from some lost armory, " +
				"an Apocalypse Engine rains some eldritch horror down on a targeted enemy Asset.",
		},
		Requirements: domain.AssetRequirement{Tier: 8, Cost: 35, MagicLevel: domain.MagicMedium},
		Stats: domain.AssetStats{
			MaxHP:   20,
			AtkType: attr(domain.AttributeForce),
			DefType: attr(domain.AttributeForce),
		},
	},
	{
		Type: domain.AttributeForce,
		Strings: domain.AssetStrings{
			Name:           "Invincible Legion",
			ID:             "c_invincible_legion",
			DamageFormula:  "F v. F/2d10+4 damage",
			CounterFormula: "2d10+4 damage",
			Rules: "The faction has developed a truly irresistible military organization that can smash its way through opposition without the aid of " +
				"any support units. During a Relocate Asset action, the Invincible Legion can relocate to locations that would otherwise not permit a " +
				"formal military force to relocate there, as if it had the Subtle quality. It is not, however, in any way subtle.",
		},
		Requirements: domain.AssetRequirement{Tier: 8, Cost: 40},
		Stats: domain.AssetStats{
			MaxHP:     30,
			AtkType:   attr(domain.AttributeForce),
			DefType:   attr(domain.AttributeForce),
			Qualities: []*domain.Quality{QualitySpecial},
		},
	},
}
