package domain

import "testing"

func TestMaxHPSumsAttributeTable(t *testing.T) {
	want := map[int]int{1: 1, 2: 2, 3: 4, 4: 6, 5: 9, 6: 12, 7: 16, 8: 20}
	for level := 1; level <= MaxAttribute; level++ {
		f := &Faction{Cunning: level, Force: level, Wealth: level}
		if got := f.MaxHP(); got != 3*want[level] {
			t.Errorf("level %d: MaxHP = %d, want %d", level, got, 3*want[level])
		}
	}

	f := &Faction{Cunning: 4, Force: 8, Wealth: 6}
	if got := f.MaxHP(); got != 6+20+12 {
		t.Errorf("mixed attributes: MaxHP = %d, want 38", got)
	}
}

func TestTreasureGain(t *testing.T) {
	cases := []struct {
		cunning, force, wealth int
		want                   int
	}{
		{cunning: 4, force: 8, wealth: 6, want: 6},
		{cunning: 1, force: 1, wealth: 1, want: 1},
		{cunning: 2, force: 2, wealth: 1, want: 2},
		{cunning: 8, force: 8, wealth: 8, want: 8},
	}
	for _, tc := range cases {
		f := &Faction{Cunning: tc.cunning, Force: tc.force, Wealth: tc.wealth}
		if got := f.TreasureGain(); got != tc.want {
			t.Errorf("gain(c=%d f=%d w=%d) = %d, want %d",
				tc.cunning, tc.force, tc.wealth, got, tc.want)
		}
	}
}

func TestAssetExcess(t *testing.T) {
	f := NewFaction("f1", "Test")
	f.Force = 3
	for i := 0; i < 5; i++ {
		f.AddAsset(NewPendingAsset("a", "f1", AttributeForce))
	}
	if got := f.AssetExcess(AttributeForce); got != 2 {
		t.Errorf("5 assets at force 3: excess = %d, want 2", got)
	}

	f = NewFaction("f2", "Test")
	f.Force = 3
	f.AddAsset(NewPendingAsset("a", "f2", AttributeForce))
	f.AddAsset(NewPendingAsset("b", "f2", AttributeForce))
	if got := f.AssetExcess(AttributeForce); got != 0 {
		t.Errorf("2 assets at force 3: excess = %d, want 0", got)
	}
}

func TestTotalUpkeep(t *testing.T) {
	proto := &AssetPrototype{
		Type:    AttributeWealth,
		Strings: AssetStrings{ID: "w_test", Name: "Test"},
		Stats:   AssetStats{MaxHP: 4, Upkeep: 2},
	}
	f := NewFaction("f1", "Test")
	f.AddAsset(NewAsset("a1", "f1", proto, nil))
	f.AddAsset(NewAsset("a2", "f1", proto, nil))
	// Wealth 1 with 2 Wealth assets: 1 excess plus 2+2 asset upkeep.
	if got := f.TotalUpkeep(); got != 5 {
		t.Errorf("TotalUpkeep = %d, want 5", got)
	}
}

func TestLevelUp(t *testing.T) {
	f := NewFaction("f1", "Test")
	f.Exp = 1
	if f.LevelUp(AttributeForce) {
		t.Fatal("raise to 2 costs 2, should fail with 1 exp")
	}
	f.Exp = 2
	if !f.LevelUp(AttributeForce) {
		t.Fatal("raise to 2 should succeed with 2 exp")
	}
	if f.Force != 2 || f.Exp != 0 {
		t.Errorf("after raise: force = %d exp = %d, want 2 and 0", f.Force, f.Exp)
	}

	f.Force = MaxAttribute
	f.Exp = 100
	if f.LevelUp(AttributeForce) {
		t.Error("raising a capped attribute should fail")
	}
}

func TestDamageBaseCapsAtBaseHP(t *testing.T) {
	f := NewFaction("f1", "Test")
	f.Cunning, f.Force, f.Wealth = 3, 3, 3
	f.HP = f.MaxHP()
	loc := NewLocation("l1", "Town")
	b := NewBase("b1", "f1", loc, 4)
	f.AddBase(b)

	start := f.HP
	if got := f.DamageBase(b, 10); got != 4 {
		t.Errorf("absorbed = %d, want 4", got)
	}
	if f.HP != start-4 {
		t.Errorf("faction hp = %d, want %d", f.HP, start-4)
	}
	if len(f.Bases) != 0 {
		t.Error("destroyed base should be removed")
	}
	if len(loc.Bases) != 0 {
		t.Error("destroyed base should leave the location index")
	}
}

func TestGoalLifecycle(t *testing.T) {
	f := NewFaction("f1", "Test")
	tmpl := GoalTemplate{ID: "g_test", Name: "Test Goal", Difficulty: 2}

	f.SetGoal(tmpl)
	if f.Goal == nil || f.Goal.Name != "Test Goal" {
		t.Fatal("goal not adopted")
	}
	f.CompleteGoal()
	if f.Goal != nil || f.Exp != 2 {
		t.Errorf("after complete: goal = %v exp = %d, want nil and 2", f.Goal, f.Exp)
	}

	f.SetGoal(tmpl)
	f.AbortGoal()
	if f.Goal != nil || f.Exp != 2 {
		t.Errorf("after abort: goal = %v exp = %d, want nil and unchanged 2", f.Goal, f.Exp)
	}
}

func TestHighestLowestAttribute(t *testing.T) {
	f := &Faction{Cunning: 2, Force: 7, Wealth: 4}
	if f.HighestAttribute() != 7 || f.LowestAttribute() != 2 {
		t.Errorf("high/low = %d/%d, want 7/2", f.HighestAttribute(), f.LowestAttribute())
	}
}
