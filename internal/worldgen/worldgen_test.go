package worldgen

import "testing"

func TestGenerateShape(t *testing.T) {
	cfg := GenConfig{Seed: 7, Locations: 6, Factions: 3}
	factions, locations := Generate(cfg)

	if len(factions) != 3 || len(locations) != 6 {
		t.Fatalf("generated %d factions, %d locations", len(factions), len(locations))
	}
	for _, f := range factions {
		if len(f.Bases) != 1 {
			t.Errorf("%s has %d bases, want a single home base", f.Name, len(f.Bases))
		}
		if len(f.Assets) != 1 {
			t.Errorf("%s has %d assets, want one starter", f.Name, len(f.Assets))
		}
		if f.HP != f.MaxHP() {
			t.Errorf("%s hp = %d, want full %d", f.Name, f.HP, f.MaxHP())
		}
		if f.Treasure < 4 {
			t.Errorf("%s treasure = %d, want at least 4", f.Name, f.Treasure)
		}
		if f.Bases[0].Location == nil {
			t.Errorf("%s home base has no location", f.Name)
		}
		if f.Assets[0].Location != f.Bases[0].Location {
			t.Errorf("%s starter asset should share the home base location", f.Name)
		}
	}
}

func TestGenerateDeterministicNames(t *testing.T) {
	cfg := GenConfig{Seed: 11, Locations: 5, Factions: 2}
	fa, la := Generate(cfg)
	fb, lb := Generate(cfg)

	for i := range la {
		if la[i].Name != lb[i].Name {
			t.Errorf("location %d name diverged: %q vs %q", i, la[i].Name, lb[i].Name)
		}
	}
	for i := range fa {
		if fa[i].Name != fb[i].Name || fa[i].Treasure != fb[i].Treasure {
			t.Errorf("faction %d diverged: %s/%d vs %s/%d",
				i, fa[i].Name, fa[i].Treasure, fb[i].Name, fb[i].Treasure)
		}
	}
}
