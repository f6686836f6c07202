package turn

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/talgya/faction-turn/internal/catalog"
	"github.com/talgya/faction-turn/internal/dice"
	"github.com/talgya/faction-turn/internal/domain"
)

const (
	// HideCunningRequirement is the minimum Cunning for the Hide Asset action.
	HideCunningRequirement = 3
	// HideCost is the Treasure price of adding Stealth to one asset.
	HideCost = 2
)

// roller is the die source the sequencer needs from the dice package.
type roller interface {
	Initiative() int
}

// Sequencer is the faction-turn state machine. It owns the initiative-ordered
// roster for the current round and the per-faction temporary choices; all
// durable state lives on the entities it mutates.
type Sequencer struct {
	roller roller

	turn  int
	order []*domain.Faction // nil when no round is active
	cur   int
	state State

	// Per-faction temporaries, cleared when a faction's turn begins.
	buyProto        *domain.AssetPrototype
	buyLoc          *domain.Location
	baseLoc         *domain.Location
	baseHP          int
	repairedFaction bool
}

// NewSequencer creates an idle sequencer rolling dice from r.
func NewSequencer(r *dice.Roller) *Sequencer {
	return &Sequencer{roller: r}
}

// Turn returns the round counter, incremented per StartRound.
func (s *Sequencer) Turn() int { return s.turn }

// Active reports whether a round is in progress.
func (s *Sequencer) Active() bool { return s.order != nil }

// State returns the current machine state.
func (s *Sequencer) State() State { return s.state }

// Order returns the initiative-ordered roster of the active round, or nil.
func (s *Sequencer) Order() []*domain.Faction { return s.order }

// CurrentIndex returns the roster index of the acting faction.
func (s *Sequencer) CurrentIndex() int { return s.cur }

// Current returns the acting faction, or nil when no round is active or the
// roster is exhausted.
func (s *Sequencer) Current() *domain.Faction {
	if s.order == nil || s.cur < 0 || s.cur >= len(s.order) {
		return nil
	}
	return s.order[s.cur]
}

// StartRound begins a new round: every faction rolls 1d8 initiative and the
// roster is ordered by descending roll, ties kept in input order. The machine
// waits in Idle until Begin starts the first faction's turn. No-op while a
// round is already active or with an empty faction list.
func (s *Sequencer) StartRound(factions []*domain.Faction) {
	if s.Active() || len(factions) == 0 {
		return
	}
	for _, f := range factions {
		f.Initiative = s.roller.Initiative()
	}
	order := append([]*domain.Faction(nil), factions...)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Initiative > order[j].Initiative
	})
	s.order = order
	s.cur = 0
	s.state = StateIdle
	s.turn++
	slog.Info("round started", "turn", s.turn, "factions", len(order))
}

// Begin starts the first faction's turn of an active round.
func (s *Sequencer) Begin() {
	if !s.Active() || s.state != StateIdle {
		return
	}
	s.beginFactionTurn()
}

// beginFactionTurn clears the per-faction temporaries and enters the first
// phase.
func (s *Sequencer) beginFactionTurn() {
	s.state = StateGainTreasure
	s.repairedFaction = false
	s.buyProto = nil
	s.buyLoc = nil
	s.baseLoc = nil
	s.baseHP = 0
}

// advance moves to the next faction, or ends the round when the roster is
// exhausted. Ending the round is the only way a round terminates normally.
func (s *Sequencer) advance() {
	s.cur++
	if s.cur >= len(s.order) {
		slog.Info("round complete", "turn", s.turn)
		s.order = nil
		s.cur = 0
		s.state = StateIdle
		return
	}
	s.state = StateNextFaction
	s.beginFactionTurn()
}

// ApplyTreasureGain credits the phase-1 income and moves to upkeep.
func (s *Sequencer) ApplyTreasureGain() {
	f := s.Current()
	if f == nil || s.state != StateGainTreasure {
		return
	}
	gain := f.TreasureGain()
	f.Treasure += gain
	slog.Info("treasure gained", "faction", f.Name, "gain", gain, "treasure", f.Treasure)
	s.state = StatePayUpkeep
}

// PayUpkeep deducts the full upkeep bill, floored at zero Treasure. A deficit
// is absorbed, not carried; the GM removes excess assets by hand beforehand.
func (s *Sequencer) PayUpkeep() {
	f := s.Current()
	if f == nil || s.state != StatePayUpkeep {
		return
	}
	bill := f.TotalUpkeep()
	f.Treasure -= bill
	if f.Treasure < 0 {
		f.Treasure = 0
	}
	slog.Info("upkeep paid", "faction", f.Name, "bill", bill, "treasure", f.Treasure)
	s.state = StateSpecialAbilities
}

// FinishSpecialAbilities confirms the informational special-abilities phase.
func (s *Sequencer) FinishSpecialAbilities() {
	if s.Current() == nil || s.state != StateSpecialAbilities {
		return
	}
	s.state = StateMainAction
}

// CanChoose reports whether an action category is open to the acting faction:
// Attack, Move Asset, and Sell Asset need at least one owned asset, and Hide
// Asset needs Cunning 3 or better.
func (s *Sequencer) CanChoose(a Action) bool {
	f := s.Current()
	if f == nil {
		return false
	}
	switch a {
	case ActionAttack, ActionMoveAsset, ActionSellAsset:
		return len(f.Assets) > 0
	case ActionHideAsset:
		return f.Cunning >= HideCunningRequirement
	default:
		return true
	}
}

// ChooseAction commits the faction's one main action for the turn, entering
// the matching sub-state. Gated choices that are unavailable are ignored.
func (s *Sequencer) ChooseAction(a Action) {
	if s.state != StateMainAction || !s.CanChoose(a) {
		return
	}
	s.state = a.state()
}

// SkipAction forgoes the main action entirely.
func (s *Sequencer) SkipAction() {
	if s.state != StateMainAction {
		return
	}
	s.state = StateCheckGoal
}

// Back abandons the current action sub-state and returns to the choice.
// Side effects already applied inside the sub-state are not rolled back.
func (s *Sequencer) Back() {
	if !s.state.actionState() {
		return
	}
	s.state = StateMainAction
}

// Done finishes the current action sub-state.
func (s *Sequencer) Done() {
	if !s.state.actionState() {
		return
	}
	s.state = StateCheckGoal
}

// RepairAsset spends 1 Treasure to heal a damaged owned asset by half the
// matching attribute, rounded up, capped at the asset's maximum.
func (s *Sequencer) RepairAsset(a *domain.Asset) {
	f := s.Current()
	if f == nil || s.state != StateRepairAsset {
		return
	}
	if a == nil || !a.Initialized() || a.Owner != f.ID || a.HP >= a.MaxHP() || f.Treasure < 1 {
		return
	}
	f.Treasure--
	heal := (f.Attribute(a.Type()) + 1) / 2
	a.HP += heal
	if a.HP > a.MaxHP() {
		a.HP = a.MaxHP()
	}
	slog.Info("asset repaired", "faction", f.Name, "asset", a.Name(), "hp", a.HP)
}

// RepairFaction spends 1 Treasure to heal the faction itself by half the sum
// of its highest and lowest primary attributes, rounded up, capped at max hp.
// Allowed at most once per faction turn.
func (s *Sequencer) RepairFaction() {
	f := s.Current()
	if f == nil || s.state != StateRepairAsset || s.repairedFaction || f.Treasure < 1 {
		return
	}
	f.Treasure--
	heal := (f.HighestAttribute() + f.LowestAttribute() + 1) / 2
	f.HP += heal
	if f.HP > f.MaxHP() {
		f.HP = f.MaxHP()
	}
	s.repairedFaction = true
	slog.Info("faction repaired", "faction", f.Name, "hp", f.HP)
}

// FactionRepaired reports whether the once-per-turn faction heal was used.
func (s *Sequencer) FactionRepaired() bool { return s.repairedFaction }

// ExpandSites lists the distinct locations where the acting faction has an
// asset, the only places a new base of influence may be planted.
func (s *Sequencer) ExpandSites() []*domain.Location {
	f := s.Current()
	if f == nil {
		return nil
	}
	var sites []*domain.Location
	seen := make(map[string]bool)
	for _, a := range f.Assets {
		if a.Location != nil && !seen[a.Location.ID] {
			seen[a.Location.ID] = true
			sites = append(sites, a.Location)
		}
	}
	return sites
}

// SetBaseSite records the GM's choice of site and hit points for a new base.
// The site must be one where the faction already keeps an asset.
func (s *Sequencer) SetBaseSite(loc *domain.Location, maxHP int) {
	f := s.Current()
	if f == nil || s.state != StateExpandInfluence || loc == nil || maxHP < 0 {
		return
	}
	for _, site := range s.ExpandSites() {
		if site == loc {
			s.baseLoc = loc
			s.baseHP = maxHP
			return
		}
	}
}

// BaseSite returns the pending base choice.
func (s *Sequencer) BaseSite() (*domain.Location, int) { return s.baseLoc, s.baseHP }

// BuildBase pays 1 Treasure per hit point and plants the chosen base,
// registering it with both the faction and the location. The Cunning contest
// any rival with assets present is owed is narrated by the GM, not rolled
// here.
func (s *Sequencer) BuildBase() *domain.BaseOfInfluence {
	f := s.Current()
	if f == nil || s.state != StateExpandInfluence || s.baseLoc == nil || s.baseHP <= 0 || f.Treasure < s.baseHP {
		return nil
	}
	f.Treasure -= s.baseHP
	base := domain.NewBase(uuid.NewString(), f.ID, s.baseLoc, s.baseHP)
	f.AddBase(base)
	slog.Info("base built", "faction", f.Name, "location", s.baseLoc.Name, "max_hp", s.baseHP)
	return base
}

// RivalAttackers lists initialized rival assets with an attack type at the
// pending base site, surfaced so the GM can narrate their free attack.
func (s *Sequencer) RivalAttackers() []*domain.Asset {
	f := s.Current()
	if f == nil || s.baseLoc == nil {
		return nil
	}
	var rivals []*domain.Asset
	for _, a := range s.baseLoc.Assets {
		if a.Initialized() && a.Owner != f.ID && a.Prototype.Stats.AtkType != nil {
			rivals = append(rivals, a)
		}
	}
	return rivals
}

// EligiblePurchases lists the catalog prototypes the acting faction qualifies
// for: matching attribute at or above the tier, magic level at or above the
// requirement. Treasure is checked at purchase, not here.
func (s *Sequencer) EligiblePurchases() []*domain.AssetPrototype {
	f := s.Current()
	if f == nil {
		return nil
	}
	var out []*domain.AssetPrototype
	for _, t := range domain.AttributeTypes {
		for _, p := range catalog.Assets(t) {
			if f.Attribute(t) >= p.Requirements.Tier && f.Magic >= p.Requirements.MagicLevel {
				out = append(out, p)
			}
		}
	}
	return out
}

// PurchaseSites lists the distinct locations of the faction's bases of
// influence, the only places a new asset may be created.
func (s *Sequencer) PurchaseSites() []*domain.Location {
	f := s.Current()
	if f == nil {
		return nil
	}
	var sites []*domain.Location
	seen := make(map[string]bool)
	for _, b := range f.Bases {
		if b.Location != nil && !seen[b.Location.ID] {
			seen[b.Location.ID] = true
			sites = append(sites, b.Location)
		}
	}
	return sites
}

// SelectPurchase records the GM's prototype and site choice for Create Asset.
// Ineligible prototypes and sites without an owned base are ignored.
func (s *Sequencer) SelectPurchase(proto *domain.AssetPrototype, loc *domain.Location) {
	f := s.Current()
	if f == nil || s.state != StateCreateAsset {
		return
	}
	if proto != nil {
		if f.Attribute(proto.Type) < proto.Requirements.Tier || f.Magic < proto.Requirements.MagicLevel {
			return
		}
		s.buyProto = proto
	}
	if loc != nil {
		for _, site := range s.PurchaseSites() {
			if site == loc {
				s.buyLoc = loc
				break
			}
		}
	}
}

// Purchase returns the pending Create Asset choice.
func (s *Sequencer) Purchase() (*domain.AssetPrototype, *domain.Location) {
	return s.buyProto, s.buyLoc
}

// BuyAsset pays the prototype cost and creates the asset at the chosen site,
// appending it to the faction and the location index, then finishes the
// action. Unaffordable or incomplete purchases change nothing.
func (s *Sequencer) BuyAsset() *domain.Asset {
	f := s.Current()
	if f == nil || s.state != StateCreateAsset || s.buyProto == nil || s.buyLoc == nil {
		return nil
	}
	cost := s.buyProto.Requirements.Cost
	if f.Treasure < cost {
		return nil
	}
	f.Treasure -= cost
	a := domain.NewAsset(uuid.NewString(), f.ID, s.buyProto, s.buyLoc)
	f.AddAsset(a)
	slog.Info("asset bought", "faction", f.Name, "asset", a.Name(), "location", s.buyLoc.Name, "cost", cost)
	s.state = StateCheckGoal
	return a
}

// HideCandidates lists owned assets that could still be hidden: initialized,
// somewhere, and not already Stealthed.
func (s *Sequencer) HideCandidates() []*domain.Asset {
	f := s.Current()
	if f == nil {
		return nil
	}
	var out []*domain.Asset
	for _, a := range f.Assets {
		if a.Initialized() && a.Location != nil && !a.HasQuality(catalog.QualityStealth.ID) {
			out = append(out, a)
		}
	}
	return out
}

// HideAsset spends 2 Treasure to give one owned asset the Stealth quality.
// Assets at a location with a rival base of influence cannot be hidden. No
// refund is ever given if the Stealth is later lost.
func (s *Sequencer) HideAsset(a *domain.Asset) {
	f := s.Current()
	if f == nil || s.state != StateHideAsset {
		return
	}
	if a == nil || !a.Initialized() || a.Owner != f.ID || a.Location == nil {
		return
	}
	if a.HasQuality(catalog.QualityStealth.ID) || a.Location.HasRivalBase(f.ID) || f.Treasure < HideCost {
		return
	}
	f.Treasure -= HideCost
	a.AddQuality(catalog.QualityStealth)
	slog.Info("asset hidden", "faction", f.Name, "asset", a.Name())
}

// SellPrice quotes the salvage value of an asset: half the purchase cost,
// rounded down, but nothing at all if the asset is damaged.
func SellPrice(a *domain.Asset) int {
	if a == nil || !a.Initialized() || a.HP < a.MaxHP() {
		return 0
	}
	return a.Prototype.Requirements.Cost / 2
}

// SellAsset decommissions an owned asset for its salvage value.
func (s *Sequencer) SellAsset(a *domain.Asset) {
	f := s.Current()
	if f == nil || s.state != StateSellAsset || a == nil || !a.Initialized() || a.Owner != f.ID {
		return
	}
	price := SellPrice(a)
	f.Treasure += price
	f.RemoveAsset(a.ID)
	slog.Info("asset sold", "faction", f.Name, "asset", a.Name(), "price", price)
}

// CompleteGoal collects the active goal's reward during the goal phase.
func (s *Sequencer) CompleteGoal() {
	f := s.Current()
	if f == nil || s.state != StateCheckGoal {
		return
	}
	f.CompleteGoal()
}

// SetGoal adopts a new goal during the goal phase, only when none is active.
func (s *Sequencer) SetGoal(tmpl domain.GoalTemplate) {
	f := s.Current()
	if f == nil || s.state != StateCheckGoal || f.Goal != nil {
		return
	}
	f.SetGoal(tmpl)
}

// AbortGoal abandons the active goal during the goal phase, with no reward.
// The printed paralysis penalty for doing so is left to the GM.
func (s *Sequencer) AbortGoal() {
	f := s.Current()
	if f == nil || s.state != StateCheckGoal {
		return
	}
	f.AbortGoal()
}

// LevelUp spends experience on an attribute raise during the goal phase.
func (s *Sequencer) LevelUp(t domain.AttributeType) {
	f := s.Current()
	if f == nil || s.state != StateCheckGoal {
		return
	}
	f.LevelUp(t)
}

// CompleteTurn finishes the acting faction's turn and moves to the next
// faction, or ends the round with the roster exhausted.
func (s *Sequencer) CompleteTurn() {
	if s.Current() == nil || s.state != StateCheckGoal {
		return
	}
	s.advance()
}

// SkipFaction abandons the rest of the acting faction's turn at any phase.
func (s *Sequencer) SkipFaction() {
	if !s.Active() || s.Current() == nil || s.state == StateIdle {
		return
	}
	s.advance()
}

// AbortRound discards the active round: roster cleared, machine idle. Effects
// already applied in completed phases are deliberately not rolled back.
func (s *Sequencer) AbortRound() {
	if !s.Active() {
		return
	}
	slog.Info("round aborted", "turn", s.turn)
	s.order = nil
	s.cur = 0
	s.state = StateIdle
	s.buyProto = nil
	s.buyLoc = nil
	s.baseLoc = nil
	s.baseHP = 0
	s.repairedFaction = false
}

// Restore rebuilds sequencer state from a loaded project: the roster (already
// resolved to live factions), the acting index, the phase, and the round
// counter. An out-of-range index or empty roster restores an idle machine.
func (s *Sequencer) Restore(order []*domain.Faction, cur int, state State, turnIdx int) {
	s.turn = turnIdx
	if len(order) == 0 || cur < 0 || cur >= len(order) {
		if len(order) != 0 {
			slog.Warn("discarding saved roster with out-of-range index", "cur", cur, "len", len(order))
		}
		s.order = nil
		s.cur = 0
		s.state = StateIdle
		return
	}
	s.order = order
	s.cur = cur
	s.state = state
}
