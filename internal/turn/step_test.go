package turn

import (
	"strings"
	"testing"

	"github.com/talgya/faction-turn/internal/catalog"
	"github.com/talgya/faction-turn/internal/domain"
)

// scriptUI answers exactly the presses and selections queued on it.
type scriptUI struct {
	presses map[string]int
	choices map[string]int
	ints    map[string]int
	lines   []string
}

func newScriptUI() *scriptUI {
	return &scriptUI{
		presses: make(map[string]int),
		choices: make(map[string]int),
		ints:    make(map[string]int),
	}
}

func (u *scriptUI) press(label string)         { u.presses[label]++ }
func (u *scriptUI) choose(label string, i int) { u.choices[label] = i }
func (u *scriptUI) Text(s string)              { u.lines = append(u.lines, s) }

func (u *scriptUI) IntField(label string, v int) int {
	if edited, ok := u.ints[label]; ok {
		return edited
	}
	return v
}

func (u *scriptUI) Confirm(label string) bool {
	if u.presses[label] > 0 {
		u.presses[label]--
		return true
	}
	return false
}

func (u *scriptUI) Choice(label string, options []string) (int, bool) {
	if i, ok := u.choices[label]; ok {
		delete(u.choices, label)
		if i < len(options) {
			return i, true
		}
	}
	return 0, false
}

func TestStepDrivesOneFactionTurn(t *testing.T) {
	loc := domain.NewLocation("l1", "Town")
	f := domain.NewFaction("a", "A")
	f.AddBase(domain.NewBase("b1", "a", loc, 4))
	factions := []*domain.Faction{f}
	locations := []*domain.Location{loc}

	s := newTestSequencer(4)
	ui := newScriptUI()
	tick := func() { s.Step(ui, factions, locations) }

	ui.press("New Turn")
	tick()
	if !s.Active() {
		t.Fatal("round did not start")
	}

	ui.press("Begin faction turn")
	tick()
	if s.State() != StateGainTreasure {
		t.Fatalf("state = %v, want treasure gain", s.State())
	}

	ui.press("Apply treasure gain")
	tick()
	if f.Treasure != 1 {
		t.Errorf("treasure = %d, want 1", f.Treasure)
	}

	ui.press("Pay upkeep")
	tick()
	ui.press("Done with special abilities")
	tick()
	if s.State() != StateMainAction {
		t.Fatalf("state = %v, want main action", s.State())
	}

	ui.press("Skip main action")
	tick()
	if s.State() != StateCheckGoal {
		t.Fatalf("state = %v, want goal phase", s.State())
	}

	ui.choose("Goal", 0)
	tick()
	if f.Goal == nil {
		t.Error("goal not adopted from the catalog list")
	}

	ui.press("Complete faction turn")
	tick()
	if s.Active() {
		t.Error("single-faction round should be over")
	}
}

func TestStepSpecialAbilitiesListsActionAndSpecialAssets(t *testing.T) {
	byID := func(id string) *domain.AssetPrototype {
		p, ok := catalog.AssetByID(id)
		if !ok {
			t.Fatalf("catalog has no asset %s", id)
		}
		return p
	}
	f := domain.NewFaction("a", "A")
	f.AddAsset(domain.NewAsset("x1", f.ID, byID("c_smugglers"), nil))        // Action
	f.AddAsset(domain.NewAsset("x2", f.ID, byID("c_useful_idiots"), nil))    // Special
	f.AddAsset(domain.NewAsset("x3", f.ID, byID("c_omniscient_seers"), nil)) // both
	f.AddAsset(domain.NewAsset("x4", f.ID, forceProto(2), nil))              // neither

	s := newTestSequencer(4)
	s.Restore([]*domain.Faction{f}, 0, StateSpecialAbilities, 1)

	ui := newScriptUI()
	s.Step(ui, []*domain.Faction{f}, nil)
	out := strings.Join(ui.lines, "\n")

	for _, want := range []string{
		"Smugglers [Action]",
		"Useful Idiots [Special]",
		"Omniscient Seers [Action, Special]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("phase listing missing %q", want)
		}
	}
	if strings.Contains(out, "Test Troops") {
		t.Error("asset without Action or Special quality was listed")
	}
	if strings.Contains(out, "No assets with special abilities") {
		t.Error("empty-listing fallback shown despite qualifying assets")
	}
}

func TestStepSkipAndAbortButtons(t *testing.T) {
	factions := []*domain.Faction{domain.NewFaction("a", "A"), domain.NewFaction("b", "B")}
	s := newTestSequencer(6, 3)
	ui := newScriptUI()

	ui.press("New Turn")
	s.Step(ui, factions, nil)
	ui.press("Begin faction turn")
	s.Step(ui, factions, nil)

	ui.press("Skip rest of faction turn")
	s.Step(ui, factions, nil)
	if cur := s.Current(); cur == nil || cur.ID != "b" {
		t.Fatalf("current = %v, want faction b after skip", cur)
	}

	ui.press("Abort turn")
	s.Step(ui, factions, nil)
	if s.Active() {
		t.Error("abort button left the round active")
	}
}
