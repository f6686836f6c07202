// Package turn drives the per-faction turn sequence: a single state machine
// stepped once per UI tick, walking the initiative-ordered roster one faction
// at a time through the fixed phases and the branching main-action choice.
//
// Every transition checks its own preconditions and is a no-op when they do
// not hold; the presentation layer merely mirrors that gating by hiding
// unavailable controls.
package turn

// State enumerates the phases of the faction turn machine.
type State int

const (
	StateIdle State = iota
	StateNextFaction
	StateGainTreasure
	StatePayUpkeep
	StateSpecialAbilities
	StateMainAction
	StateAttack
	StateMoveAsset
	StateRepairAsset
	StateExpandInfluence
	StateCreateAsset
	StateHideAsset
	StateSellAsset
	StateCheckGoal
)

// stateNames are the stable identifiers used in the project file.
var stateNames = map[State]string{
	StateIdle:             "idle",
	StateNextFaction:      "next_faction",
	StateGainTreasure:     "gain_treasure",
	StatePayUpkeep:        "pay_upkeep",
	StateSpecialAbilities: "special_abilities",
	StateMainAction:       "main_action",
	StateAttack:           "action_attack",
	StateMoveAsset:        "action_move_asset",
	StateRepairAsset:      "action_repair_asset",
	StateExpandInfluence:  "action_expand_influence",
	StateCreateAsset:      "action_create_asset",
	StateHideAsset:        "action_hide_asset",
	StateSellAsset:        "action_sell_asset",
	StateCheckGoal:        "check_goal",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// StateFromName resolves a persisted state identifier. Unknown names report
// false so stale save data can degrade to an idle machine.
func StateFromName(name string) (State, bool) {
	for s, n := range stateNames {
		if n == name {
			return s, true
		}
	}
	return StateIdle, false
}

// actionState reports whether s is one of the main-action sub-states, which
// share the Back and Done transitions.
func (s State) actionState() bool {
	switch s {
	case StateAttack, StateMoveAsset, StateRepairAsset, StateExpandInfluence,
		StateCreateAsset, StateHideAsset, StateSellAsset:
		return true
	}
	return false
}

// Action identifies one of the seven main-action categories.
type Action int

const (
	ActionAttack Action = iota
	ActionMoveAsset
	ActionRepairAsset
	ActionExpandInfluence
	ActionCreateAsset
	ActionHideAsset
	ActionSellAsset
)

// Actions lists the main-action categories in display order.
var Actions = []Action{
	ActionAttack,
	ActionMoveAsset,
	ActionRepairAsset,
	ActionExpandInfluence,
	ActionCreateAsset,
	ActionHideAsset,
	ActionSellAsset,
}

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "Attack"
	case ActionMoveAsset:
		return "Move Asset"
	case ActionRepairAsset:
		return "Repair Asset"
	case ActionExpandInfluence:
		return "Expand Influence"
	case ActionCreateAsset:
		return "Create Asset"
	case ActionHideAsset:
		return "Hide Asset"
	case ActionSellAsset:
		return "Sell Asset"
	default:
		return "Unknown"
	}
}

// state maps an action choice to its sub-state.
func (a Action) state() State {
	switch a {
	case ActionAttack:
		return StateAttack
	case ActionMoveAsset:
		return StateMoveAsset
	case ActionRepairAsset:
		return StateRepairAsset
	case ActionExpandInfluence:
		return StateExpandInfluence
	case ActionCreateAsset:
		return StateCreateAsset
	case ActionHideAsset:
		return StateHideAsset
	case ActionSellAsset:
		return StateSellAsset
	default:
		return StateMainAction
	}
}
