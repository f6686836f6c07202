package turn

import (
	"testing"

	"github.com/talgya/faction-turn/internal/catalog"
	"github.com/talgya/faction-turn/internal/domain"
)

// scriptedRoller feeds a fixed sequence of initiative rolls.
type scriptedRoller struct {
	rolls []int
	i     int
}

func (r *scriptedRoller) Initiative() int {
	v := r.rolls[r.i%len(r.rolls)]
	r.i++
	return v
}

func newTestSequencer(rolls ...int) *Sequencer {
	return &Sequencer{roller: &scriptedRoller{rolls: rolls}}
}

func forceProto(cost int) *domain.AssetPrototype {
	return &domain.AssetPrototype{
		Type:         domain.AttributeForce,
		Strings:      domain.AssetStrings{ID: "f_test", Name: "Test Troops"},
		Requirements: domain.AssetRequirement{Tier: 1, Cost: cost},
		Stats:        domain.AssetStats{MaxHP: 6},
	}
}

func TestStartRoundOrdersDescendingStable(t *testing.T) {
	factions := []*domain.Faction{
		domain.NewFaction("a", "A"),
		domain.NewFaction("b", "B"),
		domain.NewFaction("c", "C"),
		domain.NewFaction("d", "D"),
	}
	s := newTestSequencer(3, 7, 7, 1)
	s.StartRound(factions)

	want := []string{"b", "c", "a", "d"}
	order := s.Order()
	if len(order) != len(want) {
		t.Fatalf("roster length = %d, want %d", len(order), len(want))
	}
	for i, id := range want {
		if order[i].ID != id {
			t.Errorf("order[%d] = %s, want %s (ties keep input order)", i, order[i].ID, id)
		}
	}
	if s.Turn() != 1 || s.State() != StateIdle {
		t.Errorf("turn=%d state=%v, want 1 and idle", s.Turn(), s.State())
	}

	// A second StartRound while active must not reroll.
	s.StartRound(factions)
	if s.Order()[0].ID != "b" {
		t.Error("StartRound during an active round rerolled the roster")
	}
}

func TestFullRoundReturnsToIdle(t *testing.T) {
	factions := []*domain.Faction{
		domain.NewFaction("a", "A"),
		domain.NewFaction("b", "B"),
	}
	s := newTestSequencer(5, 2)
	s.StartRound(factions)
	s.Begin()

	for range factions {
		if s.State() != StateGainTreasure {
			t.Fatalf("faction turn should open with treasure gain, got %v", s.State())
		}
		s.ApplyTreasureGain()
		s.PayUpkeep()
		s.FinishSpecialAbilities()
		s.SkipAction()
		s.CompleteTurn()
	}

	if s.Active() {
		t.Error("round still active after every faction completed")
	}
	if s.State() != StateIdle || s.Order() != nil {
		t.Errorf("state=%v order=%v, want idle and cleared roster", s.State(), s.Order())
	}
}

func TestApplyTreasureGainOnlyInPhase(t *testing.T) {
	f := domain.NewFaction("a", "A")
	s := newTestSequencer(4)
	s.StartRound([]*domain.Faction{f})
	s.Begin()

	s.ApplyTreasureGain()
	if f.Treasure != 1 {
		t.Errorf("treasure = %d, want 1", f.Treasure)
	}
	// Re-invoking in the wrong phase is a no-op.
	s.ApplyTreasureGain()
	if f.Treasure != 1 {
		t.Errorf("second apply changed treasure to %d", f.Treasure)
	}
}

func TestPayUpkeepFloorsAtZero(t *testing.T) {
	f := domain.NewFaction("a", "A")
	proto := forceProto(2)
	proto.Stats.Upkeep = 3
	f.AddAsset(domain.NewAsset("x", "a", proto, nil))
	f.Treasure = 1

	s := newTestSequencer(4)
	s.StartRound([]*domain.Faction{f})
	s.Begin()
	s.ApplyTreasureGain()
	s.PayUpkeep()

	if f.Treasure != 0 {
		t.Errorf("treasure = %d, want floor at 0", f.Treasure)
	}
}

func TestRepairAsset(t *testing.T) {
	f := domain.NewFaction("a", "A")
	f.Force = 5
	f.Treasure = 3
	a := domain.NewAsset("x", "a", forceProto(4), nil)
	a.HP = 3
	f.AddAsset(a)

	s := newTestSequencer(4)
	s.StartRound([]*domain.Faction{f})
	s.Begin()
	s.ApplyTreasureGain()
	treasure := f.Treasure
	s.PayUpkeep()
	s.FinishSpecialAbilities()
	s.ChooseAction(ActionRepairAsset)

	s.RepairAsset(a)
	if a.HP != 6 {
		t.Errorf("hp = %d, want 3+ceil(5/2)=6", a.HP)
	}
	if f.Treasure != treasure-1 {
		t.Errorf("treasure = %d, want %d", f.Treasure, treasure-1)
	}

	// Already at max: no heal, no spend.
	s.RepairAsset(a)
	if a.HP != 6 || f.Treasure != treasure-1 {
		t.Error("repairing a full asset should change nothing")
	}
}

func TestRepairFactionOncePerTurn(t *testing.T) {
	f := domain.NewFaction("a", "A")
	f.Cunning, f.Force, f.Wealth = 5, 3, 1
	f.HP = 1
	f.Treasure = 5

	s := newTestSequencer(4)
	s.StartRound([]*domain.Faction{f})
	s.Begin()
	s.ApplyTreasureGain()
	s.PayUpkeep()
	s.FinishSpecialAbilities()
	s.ChooseAction(ActionRepairAsset)

	before := f.Treasure
	s.RepairFaction()
	if f.HP != 1+3 { // ceil((5+1)/2)
		t.Errorf("hp = %d, want 4", f.HP)
	}
	if f.Treasure != before-1 {
		t.Errorf("treasure = %d, want %d", f.Treasure, before-1)
	}
	s.RepairFaction()
	if f.Treasure != before-1 {
		t.Error("faction repair should be once per turn")
	}
}

func TestSellAsset(t *testing.T) {
	f := domain.NewFaction("a", "A")
	a := domain.NewAsset("x", "a", forceProto(7), nil)
	f.AddAsset(a)

	if got := SellPrice(a); got != 3 {
		t.Errorf("full-hp price = %d, want floor(7/2)=3", got)
	}
	a.HP = 2
	if got := SellPrice(a); got != 0 {
		t.Errorf("damaged price = %d, want 0", got)
	}
	a.HP = a.MaxHP()

	s := newTestSequencer(4)
	s.StartRound([]*domain.Faction{f})
	s.Begin()
	s.ApplyTreasureGain()
	treasure := f.Treasure
	s.PayUpkeep()
	s.FinishSpecialAbilities()
	s.ChooseAction(ActionSellAsset)
	s.SellAsset(a)

	if f.Treasure != treasure+3 {
		t.Errorf("treasure = %d, want %d", f.Treasure, treasure+3)
	}
	if len(f.Assets) != 0 {
		t.Error("sold asset still owned")
	}
}

func TestBuyAssetInsufficientTreasureIsIdempotent(t *testing.T) {
	loc := domain.NewLocation("l1", "Town")
	f := domain.NewFaction("a", "A")
	f.AddBase(domain.NewBase("b1", "a", loc, 4))
	f.Treasure = 3
	proto := forceProto(10)

	s := newTestSequencer(4)
	s.StartRound([]*domain.Faction{f})
	s.Begin()
	s.ApplyTreasureGain()
	treasure := f.Treasure
	s.PayUpkeep()
	s.FinishSpecialAbilities()
	s.ChooseAction(ActionCreateAsset)
	s.SelectPurchase(proto, loc)

	for i := 0; i < 2; i++ {
		if got := s.BuyAsset(); got != nil {
			t.Fatalf("attempt %d: bought asset without the treasure", i+1)
		}
	}
	if f.Treasure != treasure || len(f.Assets) != 0 {
		t.Errorf("treasure=%d assets=%d, want %d and 0", f.Treasure, len(f.Assets), treasure)
	}
	if s.State() != StateCreateAsset {
		t.Errorf("state = %v, want to stay in create asset", s.State())
	}
}

func TestBuyAsset(t *testing.T) {
	loc := domain.NewLocation("l1", "Town")
	f := domain.NewFaction("a", "A")
	f.AddBase(domain.NewBase("b1", "a", loc, 4))
	f.Treasure = 10
	proto := forceProto(4)

	s := newTestSequencer(4)
	s.StartRound([]*domain.Faction{f})
	s.Begin()
	s.ApplyTreasureGain()
	treasure := f.Treasure
	s.PayUpkeep()
	s.FinishSpecialAbilities()
	s.ChooseAction(ActionCreateAsset)
	s.SelectPurchase(proto, loc)

	a := s.BuyAsset()
	if a == nil {
		t.Fatal("purchase failed")
	}
	if f.Treasure != treasure-4 {
		t.Errorf("treasure = %d, want %d", f.Treasure, treasure-4)
	}
	if a.Location != loc || len(loc.Assets) != 1 {
		t.Error("bought asset not placed at the base's location")
	}
	if s.State() != StateCheckGoal {
		t.Errorf("state = %v, want goal phase after purchase", s.State())
	}
}

func TestHideAssetGating(t *testing.T) {
	loc := domain.NewLocation("l1", "Town")
	f := domain.NewFaction("a", "A")
	f.Treasure = 10
	a := domain.NewAsset("x", "a", forceProto(4), loc)
	f.AddAsset(a)

	s := newTestSequencer(4)
	if s.CanChoose(ActionHideAsset) {
		t.Error("hide should be closed before a round starts")
	}
	s.StartRound([]*domain.Faction{f})
	s.Begin()
	s.ApplyTreasureGain()
	s.PayUpkeep()
	s.FinishSpecialAbilities()

	if s.CanChoose(ActionHideAsset) {
		t.Error("hide should require cunning 3")
	}
	f.Cunning = 3
	s.ChooseAction(ActionHideAsset)
	if s.State() != StateHideAsset {
		t.Fatalf("state = %v, want hide asset", s.State())
	}

	// A rival base at the asset's location blocks hiding.
	rivalBase := domain.NewBase("rb", "rival", loc, 2)
	treasure := f.Treasure
	s.HideAsset(a)
	if a.HasQuality(catalog.QualityStealth.ID) || f.Treasure != treasure {
		t.Error("hid an asset under a rival base")
	}

	rivalBase.MoveTo(nil)
	s.HideAsset(a)
	if !a.HasQuality(catalog.QualityStealth.ID) {
		t.Fatal("asset not hidden")
	}
	if f.Treasure != treasure-HideCost {
		t.Errorf("treasure = %d, want %d", f.Treasure, treasure-HideCost)
	}

	// Already stealthed: no double charge.
	s.HideAsset(a)
	if f.Treasure != treasure-HideCost {
		t.Error("hiding twice charged twice")
	}
}

func TestBuildBase(t *testing.T) {
	loc := domain.NewLocation("l1", "Town")
	f := domain.NewFaction("a", "A")
	f.Treasure = 10
	f.AddAsset(domain.NewAsset("x", "a", forceProto(4), loc))

	s := newTestSequencer(4)
	s.StartRound([]*domain.Faction{f})
	s.Begin()
	s.ApplyTreasureGain()
	treasure := f.Treasure
	s.PayUpkeep()
	s.FinishSpecialAbilities()
	s.ChooseAction(ActionExpandInfluence)

	sites := s.ExpandSites()
	if len(sites) != 1 || sites[0] != loc {
		t.Fatalf("expand sites = %v, want just the asset's location", sites)
	}
	s.SetBaseSite(loc, 5)
	b := s.BuildBase()
	if b == nil {
		t.Fatal("base not built")
	}
	if f.Treasure != treasure-5 {
		t.Errorf("treasure = %d, want %d", f.Treasure, treasure-5)
	}
	if b.Location != loc || len(loc.Bases) != 1 || len(f.Bases) != 1 {
		t.Error("base not registered with location and faction")
	}
}

func TestActionGatingWithoutAssets(t *testing.T) {
	f := domain.NewFaction("a", "A")
	s := newTestSequencer(4)
	s.StartRound([]*domain.Faction{f})
	s.Begin()
	s.ApplyTreasureGain()
	s.PayUpkeep()
	s.FinishSpecialAbilities()

	for _, act := range []Action{ActionAttack, ActionMoveAsset, ActionSellAsset} {
		if s.CanChoose(act) {
			t.Errorf("%v should require an owned asset", act)
		}
		s.ChooseAction(act)
		if s.State() != StateMainAction {
			t.Errorf("choosing gated %v changed state to %v", act, s.State())
		}
	}
}

func TestBackAndDone(t *testing.T) {
	f := domain.NewFaction("a", "A")
	f.AddAsset(domain.NewPendingAsset("x", "a", domain.AttributeForce))
	s := newTestSequencer(4)
	s.StartRound([]*domain.Faction{f})
	s.Begin()
	s.ApplyTreasureGain()
	s.PayUpkeep()
	s.FinishSpecialAbilities()

	s.ChooseAction(ActionMoveAsset)
	s.Back()
	if s.State() != StateMainAction {
		t.Errorf("after back: state = %v, want main action", s.State())
	}
	s.ChooseAction(ActionMoveAsset)
	s.Done()
	if s.State() != StateCheckGoal {
		t.Errorf("after done: state = %v, want goal phase", s.State())
	}
}

func TestSkipFactionAndAbortRound(t *testing.T) {
	factions := []*domain.Faction{domain.NewFaction("a", "A"), domain.NewFaction("b", "B")}
	s := newTestSequencer(5, 2)
	s.StartRound(factions)
	s.Begin()

	s.SkipFaction()
	if s.Current() == nil || s.Current().ID != "b" {
		t.Fatal("skip did not advance to the next faction")
	}

	s.AbortRound()
	if s.Active() || s.State() != StateIdle {
		t.Error("abort left the round active")
	}
	if s.Turn() != 1 {
		t.Errorf("turn counter = %d, abort should not rewind it", s.Turn())
	}
}

func TestRestore(t *testing.T) {
	factions := []*domain.Faction{domain.NewFaction("a", "A"), domain.NewFaction("b", "B")}
	s := newTestSequencer(1)

	s.Restore(factions, 1, StatePayUpkeep, 7)
	if s.Turn() != 7 || s.Current().ID != "b" || s.State() != StatePayUpkeep {
		t.Errorf("restore: turn=%d current=%v state=%v", s.Turn(), s.Current(), s.State())
	}

	s = newTestSequencer(1)
	s.Restore(factions, 5, StatePayUpkeep, 7)
	if s.Active() || s.State() != StateIdle {
		t.Error("out-of-range index should restore an idle machine")
	}
}

func TestStateNamesRoundTrip(t *testing.T) {
	states := []State{
		StateIdle, StateGainTreasure, StatePayUpkeep, StateSpecialAbilities,
		StateMainAction, StateAttack, StateMoveAsset, StateRepairAsset,
		StateExpandInfluence, StateCreateAsset, StateHideAsset,
		StateSellAsset, StateCheckGoal,
	}
	for _, st := range states {
		got, ok := StateFromName(st.String())
		if !ok || got != st {
			t.Errorf("state %v did not survive name round-trip (%q)", st, st.String())
		}
	}
	if _, ok := StateFromName("bogus"); ok {
		t.Error("unknown name resolved to a state")
	}
}
