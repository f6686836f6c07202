package catalog

import "github.com/talgya/faction-turn/internal/domain"

// Named handles for the qualities the turn rules test for directly.
var (
	QualityAction  = &domain.Quality{ID: "q_action", Name: "Action", Rules: "The Asset grants a free Action.", Persistent: true}
	QualitySpecial = &domain.Quality{ID: "q_special", Name: "Special", Rules: "The Asset possesses some special rules.", Persistent: true}
	QualityStealth = &domain.Quality{
		ID:   "q_stealth",
		Name: "Stealth",
		Rules: "Assets with the Stealth quality can move freely to any location within reach. " +
			"Stealthed Assets cannot be Attacked by other Assets until they lose the Stealth quality. " +
			"This happens when they are discovered by certain special Assets or when the Stealthed Asset Attacks something.",
		Persistent: false,
	}
	QualitySubtle = &domain.Quality{
		ID:   "q_subtle",
		Name: "Subtle",
		Rules: "Subtle Assets can move to locations even where they would normally be prohibited by the ruling powers. " +
			"Dislodging them requires that they be Attacked until destroyed or moved out by their owner.",
		Persistent: true,
	}
)

var qualities = []*domain.Quality{
	QualityAction,
	QualitySpecial,
	QualityStealth,
	QualitySubtle,
}
