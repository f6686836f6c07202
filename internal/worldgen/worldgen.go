// Package worldgen seeds a demo campaign: a noise-derived region map turned
// into named locations, plus a handful of starter factions with bases and
// assets, so a new project file has something to play with immediately.
package worldgen

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/faction-turn/internal/catalog"
	"github.com/talgya/faction-turn/internal/domain"
)

// GenConfig holds campaign generation parameters.
type GenConfig struct {
	Seed      int64 // 0 = random
	Locations int
	Factions  int
}

// DefaultGenConfig returns a small playable campaign.
func DefaultGenConfig() GenConfig {
	return GenConfig{Locations: 8, Factions: 3}
}

var terrainNames = [...]string{"Marsh", "Forest", "Hills", "Plains", "Coast", "Highlands"}

var settlementNames = [...]string{
	"Varn", "Oskel", "Thyrene", "Brackwater", "Calder", "Ilmouth",
	"Senn", "Duskmoor", "Harlow", "Vexford", "Quarry End", "Tarnholm",
}

var factionNames = [...]string{
	"The Crimson Pact", "House Veldren", "The Harbor Syndicate",
	"Order of the Last Lamp", "The Gray Conclave", "Sons of the Reach",
}

// Generate builds a demo campaign. The same seed always yields the same
// names, terrain, and starting holdings; entity ids are freshly minted per
// run.
func Generate(cfg GenConfig) ([]*domain.Faction, []*domain.Location) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))
	terrain := opensimplex.NewNormalized(seed)

	locations := make([]*domain.Location, 0, cfg.Locations)
	for i := 0; i < cfg.Locations; i++ {
		// Sample a coarse noise field so neighboring indexes tend to
		// share terrain, like districts of one region.
		t := terrain.Eval2(float64(i)*0.35, 0)
		kind := terrainNames[int(t*float64(len(terrainNames)))%len(terrainNames)]
		name := fmt.Sprintf("%s of %s", kind, settlementNames[i%len(settlementNames)])
		l := domain.NewLocation(uuid.NewString(), name)
		l.Desc = fmt.Sprintf("A contested %s region.", kind)
		locations = append(locations, l)
	}

	factions := make([]*domain.Faction, 0, cfg.Factions)
	for i := 0; i < cfg.Factions; i++ {
		f := domain.NewFaction(uuid.NewString(), factionNames[i%len(factionNames)])
		// One attribute raise and some seed money keep the first turns
		// moving.
		f.Exp = 3
		f.LevelUp(domain.AttributeTypes[rng.Intn(len(domain.AttributeTypes))])
		f.Treasure = 4 + rng.Intn(4)
		f.HP = f.MaxHP()

		home := locations[rng.Intn(len(locations))]
		base := domain.NewBase(uuid.NewString(), f.ID, home, 4)
		f.AddBase(base)

		if protos := catalog.Assets(domain.AttributeCunning); len(protos) > 0 {
			f.AddAsset(domain.NewAsset(uuid.NewString(), f.ID, starterProto(protos), home))
		}

		if tag := starterTag(rng); tag != nil {
			f.Tags = append(f.Tags, &domain.Tag{Prototype: tag})
		}
		factions = append(factions, f)
	}

	return factions, locations
}

// starterProto picks the cheapest tier-1 prototype so a fresh faction can
// always afford its upkeep.
func starterProto(protos []*domain.AssetPrototype) *domain.AssetPrototype {
	best := protos[0]
	for _, p := range protos {
		if p.Requirements.Tier == 1 && p.Requirements.Cost < best.Requirements.Cost {
			best = p
		}
	}
	return best
}

func starterTag(rng *rand.Rand) *domain.TagPrototype {
	tags := catalog.Tags()
	if len(tags) == 0 {
		return nil
	}
	return tags[rng.Intn(len(tags))]
}
