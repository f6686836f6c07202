package domain

import "testing"

func testProto() *AssetPrototype {
	return &AssetPrototype{
		Type:         AttributeForce,
		Strings:      AssetStrings{ID: "f_test", Name: "Test Troops"},
		Requirements: AssetRequirement{Tier: 1, Cost: 4},
		Stats: AssetStats{
			MaxHP:     6,
			Qualities: []*Quality{{ID: "q_innate", Name: "Innate"}},
		},
	}
}

func TestNewAssetCopiesPrototypeQualities(t *testing.T) {
	proto := testProto()
	a := NewAsset("a1", "f1", proto, nil)

	if a.HP != 6 {
		t.Errorf("hp = %d, want prototype max 6", a.HP)
	}
	a.AddQuality(&Quality{ID: "q_extra", Name: "Extra"})
	if len(proto.Stats.Qualities) != 1 {
		t.Error("instance quality mutation leaked into the prototype")
	}
	a.StripQuality("q_innate")
	if len(proto.Stats.Qualities) != 1 {
		t.Error("stripping an instance quality mutated the prototype")
	}
}

func TestPendingAssetBind(t *testing.T) {
	a := NewPendingAsset("a1", "f1", AttributeCunning)
	if a.Initialized() {
		t.Fatal("pending asset reports initialized")
	}
	if a.Type() != AttributeCunning {
		t.Errorf("pending type = %v, want Cunning", a.Type())
	}
	if a.MaxHP() != 0 {
		t.Errorf("pending max hp = %d, want 0", a.MaxHP())
	}

	proto := testProto()
	a.Bind(proto)
	if !a.Initialized() || a.HP != 6 || a.Type() != AttributeForce {
		t.Errorf("after bind: initialized=%v hp=%d type=%v", a.Initialized(), a.HP, a.Type())
	}

	other := testProto()
	a.Bind(other)
	if a.Prototype != proto {
		t.Error("rebinding a bound asset should be a no-op")
	}
}

func TestMoveToKeepsLocationIndexes(t *testing.T) {
	here := NewLocation("l1", "Here")
	there := NewLocation("l2", "There")
	a := NewAsset("a1", "f1", testProto(), here)

	if len(here.Assets) != 1 || here.Assets[0] != a {
		t.Fatal("asset missing from origin index")
	}

	a.MoveTo(there)
	if len(here.Assets) != 0 {
		t.Error("asset still indexed at origin after move")
	}
	if len(there.Assets) != 1 || there.Assets[0] != a {
		t.Error("asset missing from destination index")
	}

	a.MoveTo(nil)
	if a.Location != nil || len(there.Assets) != 0 {
		t.Error("detach left the asset indexed")
	}
}

func TestRemoveAssetDetachesLocation(t *testing.T) {
	loc := NewLocation("l1", "Town")
	f := NewFaction("f1", "Test")
	a := NewAsset("a1", "f1", testProto(), loc)
	f.AddAsset(a)

	f.RemoveAsset("a1")
	if len(f.Assets) != 0 {
		t.Error("asset still owned after removal")
	}
	if len(loc.Assets) != 0 {
		t.Error("asset still indexed at location after removal")
	}
}

func TestHasRivalBase(t *testing.T) {
	loc := NewLocation("l1", "Town")
	NewBase("b1", "f1", loc, 4)
	if loc.HasRivalBase("f1") {
		t.Error("own base counted as rival")
	}
	if !loc.HasRivalBase("f2") {
		t.Error("rival base not detected")
	}
}
