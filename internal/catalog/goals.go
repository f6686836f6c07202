package catalog

import "github.com/talgya/faction-turn/internal/domain"

// Example goal templates. Adopting one copies it onto the faction; the
// difficulty of several is a baseline the GM adjusts per the printed rules.
var goals = []domain.GoalTemplate{
	{
		ID:         "g_blood_the_enemy",
		Name:       "Blood the Enemy",
		Desc:       "Inflict a number of hit points of damage on enemy faction assets or bases equal to your faction's total Force, Cunning, and Wealth ratings.",
		Difficulty: 2,
	},
	{
		ID:         "g_destroy_the_foe",
		Name:       "Destroy the Foe",
		Desc:       "Destroy a rival faction. Difficulty equal to 2 plus the average of the faction's Force, Cunning, and Wealth ratings.",
		Difficulty: 2,
	},
	{
		ID:         "g_eliminate_target",
		Name:       "Eliminate Target",
		Desc:       "Choose an undamaged rival Asset. If you destroy it within three turns, succeed at a Difficulty 1 goal. " +
			"If you fail, pick a new goal without suffering the usual turn of paralysis.",
		Difficulty: 1,
	},
	{
		ID:         "g_expand_influence",
		Name:       "Expand Influence",
		Desc:       "Plant a Base of Influence at a new location. Difficulty 1, +1 if a rival contests it.",
		Difficulty: 1,
	},
	{
		ID:         "g_inside_enemy_territory",
		Name:       "Inside Enemy Territory",
		Desc:       "Have a number of Stealthed assets in locations where there is a rival Base of Influence equal to your Cunning score. " +
			"Units that are already Stealthed in locations when this goal is adopted don't count.",
		Difficulty: 2,
	},
	{
		ID:         "g_invincible_valor",
		Name:       "Invincible Valor",
		Desc:       "Destroy a Force asset with a minimum purchase rating higher than your faction's Force rating.",
		Difficulty: 2,
	},
	{
		ID:         "g_peaceable_kingdom",
		Name:       "Peaceable Kingdom",
		Desc:       "Don't take an Attack action for four turns.",
		Difficulty: 1,
	},
	{
		ID:         "g_root_out_the_enemy",
		Name:       "Root Out the Enemy",
		Desc:       "Destroy a Base of Influence of a rival faction in a specific location. " +
			"Difficulty equal to half the average of the current ruling faction's Force, Cunning, and Wealth ratings, rounded up.",
		Difficulty: 1,
	},
	{
		ID:         "g_sphere_dominance",
		Name:       "Sphere Dominance",
		Desc:       "Choose Wealth, Force, or Cunning. Destroy a number of rival assets of that kind equal to your score in that attribute. " +
			"Difficulty of 1 per 2 destroyed, rounded up.",
		Difficulty: 2,
	},
	{
		ID:         "g_wealth_of_kingdoms",
		Name:       "Wealth of Kingdoms",
		Desc:       "Spend Treasure equal to four times your faction's Wealth rating on bribes and influence. This money is effectively lost, " +
			"but the goal is then considered accomplished. The faction's Wealth rating must increase before this goal can be selected again.",
		Difficulty: 2,
	},
}
