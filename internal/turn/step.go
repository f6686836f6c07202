package turn

import (
	"fmt"
	"strings"

	"github.com/talgya/faction-turn/internal/catalog"
	"github.com/talgya/faction-turn/internal/domain"
)

// Step drives one UI tick. It renders the current phase through the adapter
// and applies whatever transition the operator triggered this frame. The
// campaign roster and location list are only consulted where a phase needs
// them, for starting a round, moving assets, and naming rival owners.
func (s *Sequencer) Step(ui Adapter, factions []*domain.Faction, locations []*domain.Location) {
	if !s.Active() {
		ui.Text(fmt.Sprintf("Turn %d complete. No faction is acting.", s.turn))
		if ui.Confirm("New Turn") {
			s.StartRound(factions)
		}
		return
	}

	ui.Text(fmt.Sprintf("Turn %d", s.turn))
	for i, f := range s.order {
		marker := "  "
		if i == s.cur {
			marker = "> "
		}
		ui.Text(fmt.Sprintf("%s%d. %s (initiative %d)", marker, i+1, f.Name, f.Initiative))
	}
	ui.Text("")

	f := s.Current()
	switch s.state {
	case StateIdle:
		ui.Text("Each faction rolls 1d8 for initiative, acting in descending order.")
		if ui.Confirm("Begin faction turn") {
			s.Begin()
		}
	case StateGainTreasure:
		s.stepGainTreasure(ui, f)
	case StatePayUpkeep:
		s.stepPayUpkeep(ui, f)
	case StateSpecialAbilities:
		s.stepSpecialAbilities(ui, f)
	case StateMainAction:
		s.stepMainAction(ui)
	case StateAttack:
		s.stepAttack(ui, f)
	case StateMoveAsset:
		s.stepMoveAsset(ui, f, locations)
	case StateRepairAsset:
		s.stepRepair(ui, f)
	case StateExpandInfluence:
		s.stepExpand(ui, factions)
	case StateCreateAsset:
		s.stepCreateAsset(ui, f)
	case StateHideAsset:
		s.stepHideAsset(ui)
	case StateSellAsset:
		s.stepSellAsset(ui, f)
	case StateCheckGoal:
		s.stepCheckGoal(ui, f)
	}

	ui.Text("")
	if ui.Confirm("Skip rest of faction turn") {
		s.SkipFaction()
	}
	if ui.Confirm("Abort turn") {
		s.AbortRound()
	}
}

func (s *Sequencer) stepGainTreasure(ui Adapter, f *domain.Faction) {
	ui.Text("The faction gains Treasure equal to half its Wealth plus a")
	ui.Text("quarter of its combined Force and Cunning, rounded up.")
	gain := f.TreasureGain()
	ui.Text(fmt.Sprintf("%s: %d Treasure -> %d Treasure (+%d)",
		f.Name, f.Treasure, f.Treasure+gain, gain))
	if ui.Confirm("Apply treasure gain") {
		s.ApplyTreasureGain()
	}
}

func (s *Sequencer) stepPayUpkeep(ui Adapter, f *domain.Faction) {
	ui.Text("Pay any upkeep required by asset costs or by the faction's")
	ui.Text("excess of assets over each governing attribute.")
	for _, t := range domain.AttributeTypes {
		if excess := f.AssetExcess(t); excess > 0 {
			ui.Text(fmt.Sprintf("  %d excess %s asset(s): %d Treasure", excess, t, excess))
		}
	}
	for _, a := range f.Assets {
		if a.Initialized() && a.Prototype.Stats.Upkeep > 0 {
			ui.Text(fmt.Sprintf("  %s upkeep: %d Treasure", a.Name(), a.Prototype.Stats.Upkeep))
		}
	}
	total := f.TotalUpkeep()
	ui.Text(fmt.Sprintf("%s owes %d Treasure (holding %d).", f.Name, total, f.Treasure))
	if total > f.Treasure {
		ui.Text("Upkeep exceeds Treasure on hand. Remove assets until it does")
		ui.Text("not, then pay what remains.")
	}
	if ui.Confirm("Pay upkeep") {
		s.PayUpkeep()
	}
}

func (s *Sequencer) stepSpecialAbilities(ui Adapter, f *domain.Faction) {
	ui.Text("Resolve any special abilities granted by assets or tags, such")
	ui.Text("as free repairs or asset movement.")
	listed := false
	for _, a := range f.Assets {
		if !a.Initialized() {
			continue
		}
		var flags []string
		if a.HasQuality(catalog.QualityAction.ID) {
			flags = append(flags, catalog.QualityAction.Name)
		}
		if a.HasQuality(catalog.QualitySpecial.ID) {
			flags = append(flags, catalog.QualitySpecial.Name)
		}
		if len(flags) == 0 {
			continue
		}
		ui.Text(fmt.Sprintf("  %s [%s]: %s", a.Name(), strings.Join(flags, ", "), a.Prototype.Strings.Rules))
		listed = true
	}
	if !listed {
		ui.Text("  No assets with special abilities.")
	}
	if ui.Confirm("Done with special abilities") {
		s.FinishSpecialAbilities()
	}
}

func (s *Sequencer) stepMainAction(ui Adapter) {
	ui.Text("Choose one main action for the faction this turn.")
	for _, act := range Actions {
		if !s.CanChoose(act) {
			continue
		}
		if ui.Confirm(act.String()) {
			s.ChooseAction(act)
			return
		}
	}
	if ui.Confirm("Skip main action") {
		s.SkipAction()
	}
}

func (s *Sequencer) stepAttack(ui Adapter, f *domain.Faction) {
	ui.Text("Nominate attacking assets. Each attack pits the attacker's")
	ui.Text("listed attribute against the defender's in opposed 1d10 rolls.")
	ui.Text("Resolve damage by hand and record it on the affected assets.")
	for _, a := range f.Assets {
		if !a.Initialized() || a.Prototype.Stats.AtkType == nil {
			continue
		}
		loc := "nowhere"
		if a.Location != nil {
			loc = a.Location.Name
		}
		ui.Text(fmt.Sprintf("  %s (attacks with %s) at %s: %s",
			a.Name(), *a.Prototype.Stats.AtkType, loc, a.Prototype.Strings.Rules))
	}
	s.stepActionFooter(ui)
}

func (s *Sequencer) stepMoveAsset(ui Adapter, f *domain.Faction, locations []*domain.Location) {
	ui.Text("Move one or more assets to adjacent locations. Subtle and")
	ui.Text("Stealthed assets may cross borders without a base of influence.")
	opts := make([]string, len(locations))
	for i, l := range locations {
		opts[i] = l.Name
	}
	for _, a := range f.Assets {
		from := "nowhere"
		if a.Location != nil {
			from = a.Location.Name
		}
		if i, ok := ui.Choice(fmt.Sprintf("Move %s (at %s)", a.Name(), from), opts); ok {
			a.MoveTo(locations[i])
		}
	}
	s.stepActionFooter(ui)
}

func (s *Sequencer) stepRepair(ui Adapter, f *domain.Faction) {
	ui.Text("Spend 1 Treasure per asset to heal it by half its governing")
	ui.Text("attribute, rounded up. The faction itself may be repaired once")
	ui.Text("per turn by half its highest and lowest attributes combined.")
	ui.Text(fmt.Sprintf("%s: %d/%d HP, %d Treasure.", f.Name, f.HP, f.MaxHP(), f.Treasure))
	for _, a := range f.Assets {
		if !a.Initialized() || a.HP >= a.MaxHP() {
			continue
		}
		heal := (f.Attribute(a.Type()) + 1) / 2
		if ui.Confirm(fmt.Sprintf("Repair %s (%d/%d HP, +%d for 1 Treasure)",
			a.Name(), a.HP, a.MaxHP(), heal)) {
			s.RepairAsset(a)
		}
	}
	if f.HP < f.MaxHP() && !s.repairedFaction {
		heal := (f.HighestAttribute() + f.LowestAttribute() + 1) / 2
		if ui.Confirm(fmt.Sprintf("Repair faction (+%d HP for 1 Treasure)", heal)) {
			s.RepairFaction()
		}
	}
	s.stepActionFooter(ui)
}

func (s *Sequencer) stepExpand(ui Adapter, factions []*domain.Faction) {
	ui.Text("Found a new base of influence at a location where the faction")
	ui.Text("keeps an asset. The base costs 1 Treasure per point of its")
	ui.Text("maximum hit points.")
	sites := s.ExpandSites()
	opts := make([]string, len(sites))
	for i, l := range sites {
		opts[i] = l.Name
	}
	loc, hp := s.BaseSite()
	if i, ok := ui.Choice("Site", opts); ok {
		s.SetBaseSite(sites[i], max(hp, 1))
		loc, hp = s.BaseSite()
	}
	if loc != nil {
		ui.Text(fmt.Sprintf("Founding at %s.", loc.Name))
		if edited := ui.IntField("Base HP", hp); edited != hp {
			s.SetBaseSite(loc, edited)
			_, hp = s.BaseSite()
		}
		for _, a := range s.RivalAttackers() {
			ui.Text(fmt.Sprintf("  Rival asset present: %s (%s). It may attack the new base.",
				a.Name(), factionName(factions, a.Owner)))
		}
		if ui.Confirm(fmt.Sprintf("Build base (%d Treasure)", hp)) {
			s.BuildBase()
		}
	}
	s.stepActionFooter(ui)
}

func (s *Sequencer) stepCreateAsset(ui Adapter, f *domain.Faction) {
	ui.Text("Purchase a new asset at a location with a base of influence.")
	ui.Text("The asset's tier may not exceed the governing attribute, nor")
	ui.Text("its magic requirement the faction's magic level.")
	protos := s.EligiblePurchases()
	opts := make([]string, len(protos))
	for i, p := range protos {
		opts[i] = fmt.Sprintf("%s (%s %d, %d Treasure)",
			p.Strings.Name, p.Type, p.Requirements.Tier, p.Requirements.Cost)
	}
	if i, ok := ui.Choice("Asset", opts); ok {
		s.SelectPurchase(protos[i], nil)
	}
	sites := s.PurchaseSites()
	siteOpts := make([]string, len(sites))
	for i, l := range sites {
		siteOpts[i] = l.Name
	}
	if i, ok := ui.Choice("Site", siteOpts); ok {
		s.SelectPurchase(nil, sites[i])
	}
	if proto, loc := s.Purchase(); proto != nil && loc != nil {
		ui.Text(fmt.Sprintf("Buying %s at %s for %d Treasure (holding %d).",
			proto.Strings.Name, loc.Name, proto.Requirements.Cost, f.Treasure))
		if ui.Confirm("Buy asset") {
			s.BuyAsset()
		}
	}
	s.stepActionFooter(ui)
}

func (s *Sequencer) stepHideAsset(ui Adapter) {
	ui.Text(fmt.Sprintf("Spend %d Treasure to give an asset the Stealth quality.", HideCost))
	ui.Text("An asset sharing a location with a rival base cannot be hidden.")
	for _, a := range s.HideCandidates() {
		if ui.Confirm(fmt.Sprintf("Hide %s (%d Treasure)", a.Name(), HideCost)) {
			s.HideAsset(a)
		}
	}
	s.stepActionFooter(ui)
}

func (s *Sequencer) stepSellAsset(ui Adapter, f *domain.Faction) {
	ui.Text("Sell an undamaged asset for half its purchase cost, rounded down.")
	for _, a := range f.Assets {
		if !a.Initialized() {
			continue
		}
		if a.HP < a.MaxHP() {
			ui.Text(fmt.Sprintf("  %s is damaged and cannot be sold.", a.Name()))
			continue
		}
		if ui.Confirm(fmt.Sprintf("Sell %s (+%d Treasure)", a.Name(), SellPrice(a))) {
			s.SellAsset(a)
		}
	}
	s.stepActionFooter(ui)
}

func (s *Sequencer) stepCheckGoal(ui Adapter, f *domain.Faction) {
	if f.Goal != nil {
		ui.Text(fmt.Sprintf("Goal: %s (difficulty %d)", f.Goal.Name, f.Goal.Difficulty))
		ui.Text("  " + f.Goal.Desc)
		if ui.Confirm(fmt.Sprintf("Complete goal (+%d XP)", f.Goal.Difficulty)) {
			s.CompleteGoal()
		}
		if ui.Confirm("Abandon goal") {
			s.AbortGoal()
		}
	} else {
		ui.Text("The faction has no goal. Choose one to pursue.")
		goals := catalog.Goals()
		opts := make([]string, len(goals))
		for i, g := range goals {
			opts[i] = fmt.Sprintf("%s (difficulty %d)", g.Name, g.Difficulty)
		}
		if i, ok := ui.Choice("Goal", opts); ok {
			s.SetGoal(goals[i])
		}
	}
	ui.Text(fmt.Sprintf("%d experience available.", f.Exp))
	for _, t := range domain.AttributeTypes {
		cost, ok := f.LevelUpCost(t)
		if !ok || cost > f.Exp {
			continue
		}
		if ui.Confirm(fmt.Sprintf("Raise %s to %d (%d XP)", t, f.Attribute(t)+1, cost)) {
			s.LevelUp(t)
		}
	}
	if ui.Confirm("Complete faction turn") {
		s.CompleteTurn()
	}
}

func (s *Sequencer) stepActionFooter(ui Adapter) {
	if ui.Confirm("Back") {
		s.Back()
	}
	if ui.Confirm("Done") {
		s.Done()
	}
}

func factionName(factions []*domain.Faction, id string) string {
	for _, f := range factions {
		if f.ID == id {
			return f.Name
		}
	}
	return "unknown faction"
}
